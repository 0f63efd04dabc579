package model

// DailyStats is the persisted outcome of one calendar day's play.
// JSON field names are part of the persisted format.
type DailyStats struct {
	Date        string `json:"date"`
	Played      bool   `json:"played"`
	Won         bool   `json:"won"`
	Attempts    int    `json:"attempts"`
	TimeToSolve *int   `json:"timeToSolve,omitempty"`
	Score       *int   `json:"score,omitempty"`
	Streak      int    `json:"streak"`
}
