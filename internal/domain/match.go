package domain

import "time"

// Match is a sporting fixture that bets are placed on.
type Match struct {
	MatchDate time.Time
	CreatedAt time.Time
	Outcome   *Outcome
	ID        string
	HomeTeam  string
	AwayTeam  string
}

// Finished reports whether the match has a recorded result.
func (m *Match) Finished() bool {
	return m.Outcome != nil
}
