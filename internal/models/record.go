package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is the persisted trace of one completed analysis.
type AnalysisRecord struct {
	ID                uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename          string       `gorm:"type:text" json:"filename"`
	Kind              AnalysisKind `gorm:"type:text;not null" json:"kind"`
	Score             *int         `gorm:"type:integer" json:"score,omitempty"`
	HasJobDescription bool         `gorm:"not null;default:false" json:"has_job_description"`
	RawResponse       string       `gorm:"type:text" json:"raw_response"`
	CreatedAt         time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}
