package models

// SerieStatus defines the lifecycle states of a serie
type SerieStatus string

const (
	SerieStatusUpcoming  SerieStatus = "upcoming"
	SerieStatusOngoing   SerieStatus = "ongoing"
	SerieStatusCompleted SerieStatus = "completed"
)

// MatchWinner identifies which side won a match
type MatchWinner string

const (
	MatchWinnerTeam1 MatchWinner = "team1"
	MatchWinnerTeam2 MatchWinner = "team2"
	MatchWinnerDraw  MatchWinner = "draw"
)

// IsValid checks if the SerieStatus is valid
func (s SerieStatus) IsValid() bool {
	switch s {
	case SerieStatusUpcoming, SerieStatusOngoing, SerieStatusCompleted:
		return true
	}
	return false
}
