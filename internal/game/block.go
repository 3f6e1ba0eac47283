package game

// Mode is the scoring phase a block was played in.
type Mode uint8

const (
	NonFever Mode = iota
	Fever
)

func (m Mode) String() string {
	if m == Fever {
		return "Fever"
	}
	return "NonFever"
}

// Toggle returns the phase that follows m.
func (m Mode) Toggle() Mode {
	if m == Fever {
		return NonFever
	}
	return Fever
}

// Block is one contiguous scoring segment.
type Block struct {
	Mode  Mode
	Notes int
	Score int64
}
