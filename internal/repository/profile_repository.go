package repository

import (
	"neuroscreen_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// Upsert creates or replaces the profile for the profile's user.
func (r *ProfileRepository) Upsert(profile *model.PatientProfile) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "age", "gender", "symptoms", "medical_history", "updated_at",
		}),
	}).Create(profile).Error
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.PatientProfile, error) {
	var profile model.PatientProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}
