package game

// Lane is a strumline column, shared by both sides.
type Lane uint8

const (
	Left Lane = iota
	Down
	Up
	Right
)

// NLanes is the number of columns on each strumline.
const NLanes = 4

var laneNames = [NLanes]string{"left", "down", "up", "right"}

func (l Lane) String() string {
	if int(l) >= NLanes {
		return "invalid"
	}
	return laneNames[l]
}

func (l Lane) Valid() bool {
	return int(l) < NLanes
}
