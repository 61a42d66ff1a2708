package model

import (
	"time"
)

type UserRole string

const (
	Patient   UserRole = "patient"
	Clinician UserRole = "clinician"
	Admin     UserRole = "admin"
)

// Language codes accepted throughout the API.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('patient','clinician','admin');default:'patient'" json:"role"`
	Language  string    `gorm:"size:10;default:'ar'" json:"language"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
