package game

type Note struct {
	Time  float64 // Seconds from song start
	Value int     // The note column of the song file, unused by scoring
	Lane  int
	Type  int
}
