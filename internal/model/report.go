package model

import "encoding/json"

// MedicalReport is a synthesized narrative built from a questionnaire
// result. All text is already localized to the requested language.
// swagger:model MedicalReport
type MedicalReport struct {
	Summary                 string   `json:"summary"`
	DetailedAnalysis        string   `json:"detailedAnalysis"`
	Recommendation          string   `json:"recommendation"`
	SpecificRecommendations []string `json:"specificRecommendations,omitempty"`
	SuspectedConditions     []string `json:"suspectedConditions,omitempty"`
}

// swagger:model ReportRecord
type ReportRecord struct {
	UUIDBase
	UserID       uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User         *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubmissionID uint            `gorm:"index;type:bigint unsigned" json:"submissionId"`
	Language     string          `gorm:"size:10" json:"language"`
	Report       json.RawMessage `gorm:"type:json" json:"report"`
}

func (ReportRecord) TableName() string {
	return "report_records"
}
