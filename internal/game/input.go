package game

// Input is a single press or release on a lane, stamped with the song position.
type Input struct {
	Lane    Lane
	Pressed bool
	Time    float64
}
