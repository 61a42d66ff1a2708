package repository

import (
	"neuroscreen_backend/internal/model"

	"gorm.io/gorm"
)

type ScreeningRepository struct {
	DB *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{DB: db}
}

func (r *ScreeningRepository) Create(sub *model.ScreeningSubmission) error {
	return r.DB.Create(sub).Error
}

func (r *ScreeningRepository) FindByID(id uint) (*model.ScreeningSubmission, error) {
	var sub model.ScreeningSubmission
	err := r.DB.First(&sub, id).Error
	return &sub, err
}

// LatestByUserID returns the user's most recent submission.
func (r *ScreeningRepository) LatestByUserID(userID uint) (*model.ScreeningSubmission, error) {
	var sub model.ScreeningSubmission
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").First(&sub).Error
	return &sub, err
}

func (r *ScreeningRepository) ListByUserID(userID uint) ([]model.ScreeningSubmission, error) {
	var subs []model.ScreeningSubmission
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&subs).Error
	return subs, err
}

func (r *ScreeningRepository) DeleteByUserID(userID uint) error {
	return r.DB.Where("user_id = ?", userID).
		Delete(&model.ScreeningSubmission{}).Error
}
