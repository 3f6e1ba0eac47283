package game

type Song struct {
	Name           string
	Difficulty     Difficulty
	PrimaryColor   Color
	SecondaryColor Color
	TotalNotes     int
	LongNotes      int
	LastNoteTime   float64
	FeverFill      float64 // As listed by the song file, informational
	FeverTime      float64 // As listed by the song file, informational

	Notes []Note
	Path  string
}

// Last returns the final note of the timeline, if any.
func (s *Song) Last() (Note, bool) {
	if len(s.Notes) == 0 {
		return Note{}, false
	}
	return s.Notes[len(s.Notes)-1], true
}
