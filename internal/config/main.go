package config

import (
	"github.com/IamBritex/FNF-Genesis-Engine-sub000/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const DefaultKeys = "dfjk"

var (
	App = kingpin.New("genesis", "Terminal rhythm game judgment engine")

	LogLevel = App.Flag("log-level", "Log level").Default("info").Envar("GENESIS_LOG_LEVEL").Enum("trace", "debug", "info", "warn", "error")
	LogFile  = App.Flag("log-file", "Write logs to this file instead of stderr").Envar("GENESIS_LOG_FILE").String()
	Tuning   = App.Flag("tuning", "Gameplay tuning YAML").Short('t').Envar("GENESIS_TUNING").ExistingFile()
	Database = App.Flag("db", "Score database").Default("./scores.db").Envar("GENESIS_DB").String()

	Play        = App.Command("play", "Play a chart in the terminal").Default()
	PlayChart   = Play.Arg("chart", "Chart JSON file").Required().ExistingFile()
	Audio       = Play.Flag("audio", "Song audio (.ogg, .mp3, .wav), silent clock when empty").Short('a').ExistingFile()
	Device      = Play.Flag("device", "evdev keyboard device, terminal keys when empty").Envar("GENESIS_DEVICE").String()
	keys        = Play.Flag("keys", "Keys for the four lanes").Default(DefaultKeys).Short('k').String()
	Watch       = Play.Flag("watch", "Restart the song when the chart file changes").Short('w').Bool()
	Bot         = Play.Flag("bot", "Let the bot play").Short('b').Bool()
	Offset      = Play.Flag("offset", "Global input offset").Default("0ms").Short('o').Duration()
	Delay       = Play.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = Play.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	BarRow      = Play.Flag("bar-row", "Console row to render the strum line, from the bottom").Default("8").Uint()

	Autoplay      = App.Command("autoplay", "Run the bot over a chart without audio")
	AutoplayChart = Autoplay.Arg("chart", "Chart JSON file").Required().ExistingFile()
	Step          = Autoplay.Flag("step", "Simulation tick in ms").Default("16.666").Float64()
	Save          = Autoplay.Flag("save", "Record the result in the score database").Bool()

	Replay      = App.Command("replay", "Re-run the stored best inputs for a chart")
	ReplayChart = Replay.Arg("chart", "Chart JSON file").Required().ExistingFile()

	Scores = App.Command("scores", "List best scores")

	Check      = App.Command("check", "Parse a chart and print a summary")
	CheckChart = Check.Arg("chart", "Chart JSON file").Required().ExistingFile()
)

func init() {
	App.Version("0.3.0")
	App.HelpFlag.Short('h')
}

// Parse parses the command line and returns the selected command.
func Parse(args []string) (string, error) {
	return App.Parse(args)
}

func Keys() []rune {
	if *keys == "" {
		return []rune(DefaultKeys)
	}
	return []rune(*keys)
}

// KeyLane maps a key to its lane.
func KeyLane(r rune) (game.Lane, bool) {
	for i, c := range Keys() {
		if r == c && i < game.NLanes {
			return game.Lane(i), true
		}
	}
	return 0, false
}
