package entity

import "time"

const (
	LevelUser   = "user"
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// GameResult is the record of one finished session.
type GameResult struct {
	ID         string    `json:"id"`
	Side1      string    `json:"side1"`
	Side2      string    `json:"side2"`
	Winner     Cell      `json:"winner"`
	Moves      int       `json:"moves"`
	Board      Board     `json:"board"`
	FinishedAt time.Time `json:"finished_at"`
}

func (that *GameResult) IsDraw() bool {
	return that.Winner == PlayerTie
}

// Matchup is the key results are tallied under, e.g. "hard:easy".
func (that *GameResult) Matchup() string {
	return Matchup(that.Side1, that.Side2)
}

func Matchup(side1, side2 string) string {
	return side1 + ":" + side2
}

// Stats counts wins per mark and draws (under PlayerTie) for one matchup.
type Stats struct {
	Matchup string       `json:"matchup"`
	Counts  map[Cell]int `json:"counts"`
}
