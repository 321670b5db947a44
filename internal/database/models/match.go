package models

// MatchTeam is a snapshot of one side of a match taken at ingestion time.
// It is not a reference to a Team record.
type MatchTeam struct {
	Name  string `json:"name" gorm:"size:200;not null;index"`
	Stand string `json:"stand" gorm:"size:40"`
	Score int    `json:"score" gorm:"not null"`
}

// Match is a single game between two teams in a serie
type Match struct {
	BaseModel
	MatchNumber int         `json:"matchNumber" gorm:"not null;index:idx_matches_serie_number,priority:2"`
	Serie       int         `json:"serie" gorm:"not null;index:idx_matches_serie_number,priority:1"`
	Team1       MatchTeam   `json:"team1" gorm:"embedded;embeddedPrefix:team1_"`
	Team2       MatchTeam   `json:"team2" gorm:"embedded;embeddedPrefix:team2_"`
	Timecode    *int        `json:"timecode,omitempty"` // seconds into the serie livestream
	Winner      MatchWinner `json:"winner" gorm:"size:10"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}

// WinnerFromScores derives the match outcome from the two scores
func WinnerFromScores(score1, score2 int) MatchWinner {
	switch {
	case score1 > score2:
		return MatchWinnerTeam1
	case score2 > score1:
		return MatchWinnerTeam2
	default:
		return MatchWinnerDraw
	}
}

// Involves reports whether the named team played this match
func (m *Match) Involves(teamName string) bool {
	return m.Team1.Name == teamName || m.Team2.Name == teamName
}

// CombinedScore is the sum of both team scores
func (m *Match) CombinedScore() int {
	return m.Team1.Score + m.Team2.Score
}
