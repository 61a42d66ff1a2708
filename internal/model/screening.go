package model

import "encoding/json"

// SectionResult is the scored outcome of one questionnaire section.
type SectionResult struct {
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
}

// QuestionnaireResult carries one scored result per section plus the
// absolute total across all sections.
type QuestionnaireResult struct {
	Voice      SectionResult   `json:"Voice"`
	Movement   SectionResult   `json:"Movement"`
	Vision     SectionResult   `json:"Vision"`
	Cognitive  SectionResult   `json:"Cognitive"`
	Pain       SectionResult   `json:"Pain"`
	Mood       SectionResult   `json:"Mood"`
	History    SectionResult   `json:"History"`
	TotalScore int             `json:"totalScore"`
	Answers    map[string]bool `json:"answers,omitempty"`
}

// Section returns the result for the named section.
func (r *QuestionnaireResult) Section(sec Section) SectionResult {
	switch sec {
	case SectionVoice:
		return r.Voice
	case SectionMovement:
		return r.Movement
	case SectionVision:
		return r.Vision
	case SectionCognitive:
		return r.Cognitive
	case SectionPain:
		return r.Pain
	case SectionMood:
		return r.Mood
	case SectionHistory:
		return r.History
	}
	return SectionResult{}
}

// SetSection stores the result for the named section.
func (r *QuestionnaireResult) SetSection(sec Section, res SectionResult) {
	switch sec {
	case SectionVoice:
		r.Voice = res
	case SectionMovement:
		r.Movement = res
	case SectionVision:
		r.Vision = res
	case SectionCognitive:
		r.Cognitive = res
	case SectionPain:
		r.Pain = res
	case SectionMood:
		r.Mood = res
	case SectionHistory:
		r.History = res
	}
}

// ScreeningSubmission is one persisted questionnaire run, keeping both
// the raw answer map and the derived result.
type ScreeningSubmission struct {
	BaseModel
	UserID     uint            `gorm:"index;type:bigint unsigned" json:"userId"`
	User       *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Answers    json.RawMessage `gorm:"type:json" json:"answers"`
	Result     json.RawMessage `gorm:"type:json" json:"result"`
	TotalScore int             `json:"totalScore"`
}

func (ScreeningSubmission) TableName() string {
	return "screening_submissions"
}

// DecodeResult unmarshals the stored scoring result.
func (s *ScreeningSubmission) DecodeResult() (*QuestionnaireResult, error) {
	var r QuestionnaireResult
	if err := json.Unmarshal(s.Result, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
