package models

import "time"

// Serie is one competition session with its own matches and ranking table.
// TotalTeams and TotalMatches are snapshots computed at ingestion time.
type Serie struct {
	BaseModel
	SerieNumber   int         `json:"serieNumber" gorm:"not null;uniqueIndex" validate:"required,min=1"`
	Name          string      `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description   string      `json:"description" gorm:"size:2000;default:''" validate:"max=2000"`
	StartDate     time.Time   `json:"startDate" gorm:"not null" validate:"required"`
	EndDate       time.Time   `json:"endDate" gorm:"not null" validate:"required,gtefield=StartDate"`
	Status        SerieStatus `json:"status" gorm:"size:20;not null;default:'upcoming'" validate:"required,oneof=upcoming ongoing completed"`
	TotalTeams    int         `json:"totalTeams" gorm:"not null;default:0" validate:"min=0"`
	TotalMatches  int         `json:"totalMatches" gorm:"not null;default:0" validate:"min=0"`
	Location      string      `json:"location" gorm:"size:200;default:''" validate:"max=200"`
	Rules         string      `json:"rules" gorm:"type:text;default:''"`
	LiveStreamURL string      `json:"liveStreamUrl" gorm:"column:live_stream_url;size:500;default:''" validate:"omitempty,url,max=500"`
}

// TableName returns the table name for Serie
func (Serie) TableName() string {
	return "series"
}
