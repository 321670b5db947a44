package models

// UnknownOrigin is stored when no source row carried an origin for a team
const UnknownOrigin = "Unknown"

// Team is a competing team. Name is the join key used by matches and rankings.
type Team struct {
	BaseModel
	Name   string `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Stand  string `json:"stand" gorm:"size:40;not null;index"`
	Origin string `json:"origin" gorm:"size:120;not null"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
