package models

// RankingTeam is a snapshot of the ranked team taken at ingestion time
type RankingTeam struct {
	Name   string `json:"name" gorm:"size:200;not null"`
	Stand  string `json:"stand" gorm:"size:40;not null"`
	Origin string `json:"origin" gorm:"size:120;not null"`
}

// Ranking is one row of a serie ranking table
type Ranking struct {
	BaseModel
	Serie         int         `json:"serie" gorm:"not null;index:idx_rankings_serie_position,priority:1"`
	Position      int         `json:"position" gorm:"not null;index:idx_rankings_serie_position,priority:2"`
	Team          RankingTeam `json:"team" gorm:"embedded;embeddedPrefix:team_"`
	Points        int         `json:"points" gorm:"not null;default:0"`
	MatchesPlayed int         `json:"matchesPlayed" gorm:"not null;default:0"`
	Victories     int         `json:"victories" gorm:"not null;default:0"`
	Draws         int         `json:"draws" gorm:"not null;default:0"`
	Defeats       int         `json:"defeats" gorm:"not null;default:0"`
}

// TableName returns the table name for Ranking
func (Ranking) TableName() string {
	return "rankings"
}
