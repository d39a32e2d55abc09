package game

const (
	DefaultBPM   = 100.0
	DefaultSpeed = 1.0
)

// BPMChange is a tempo breakpoint declared by the chart.
type BPMChange struct {
	Time float64 // Song position in ms the change takes effect
	BPM  float64
}

// Crochet is the length of one beat in ms.
func Crochet(bpm float64) float64 {
	return 60000 / bpm
}
