package model

// swagger:model PatientProfile
type PatientProfile struct {
	BaseModel
	UserID         uint   `gorm:"uniqueIndex;type:bigint unsigned" json:"userId"`
	User           *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FullName       string `gorm:"size:100" json:"fullName"`
	Age            int    `json:"age"`
	Gender         string `gorm:"size:20" json:"gender"`
	Symptoms       string `gorm:"type:text" json:"symptoms"`
	MedicalHistory string `gorm:"type:text" json:"medicalHistory"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
