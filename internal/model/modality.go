package model

// Modality identifies one of the instrumented screening tests.
type Modality string

const (
	ModalityVision Modality = "vision"
	ModalityMotion Modality = "motion"
	ModalitySpeech Modality = "speech"
)

// Weights of each modality in the combined screening score.
const (
	VisionWeight = 0.5
	MotionWeight = 0.3
	SpeechWeight = 0.2
)

// swagger:model ModalityResult
type ModalityResult struct {
	BaseModel
	UserID   uint     `gorm:"uniqueIndex:idx_user_modality;type:bigint unsigned" json:"userId"`
	User     *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Modality Modality `gorm:"uniqueIndex:idx_user_modality;size:20" json:"modality"`
	Score    float64  `json:"score"`
	LabelEN  string   `gorm:"size:255" json:"label_en"`
	LabelAR  string   `gorm:"size:255" json:"label_ar"`
	Source   string   `gorm:"size:255" json:"source,omitempty"`
}

func (ModalityResult) TableName() string {
	return "modality_results"
}

// ModalityScoreSet holds the latest score per modality for one user.
// A nil entry means the test has not been completed yet.
type ModalityScoreSet struct {
	Vision *ModalityResult `json:"vision,omitempty"`
	Motion *ModalityResult `json:"motion,omitempty"`
	Speech *ModalityResult `json:"speech,omitempty"`
}

// Complete reports whether all three modality tests have been recorded.
func (s ModalityScoreSet) Complete() bool {
	return s.Vision != nil && s.Motion != nil && s.Speech != nil
}

// MotionSample is one device-motion reading captured by the client:
// linear acceleration, rotation rate, a millisecond timestamp and the
// sensor reporting interval.
type MotionSample struct {
	AX       float64 `json:"ax"`
	AY       float64 `json:"ay"`
	AZ       float64 `json:"az"`
	RX       float64 `json:"rx"`
	RY       float64 `json:"ry"`
	RZ       float64 `json:"rz"`
	Time     int64   `json:"time"`
	Interval float64 `json:"interval"`
}
