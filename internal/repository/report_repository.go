package repository

import (
	"neuroscreen_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(record *model.ReportRecord) error {
	return r.DB.Create(record).Error
}

func (r *ReportRepository) FindByID(id string) (*model.ReportRecord, error) {
	var record model.ReportRecord
	err := r.DB.Where("id = ?", id).First(&record).Error
	return &record, err
}

func (r *ReportRepository) ListByUserID(userID uint) ([]model.ReportRecord, error) {
	var records []model.ReportRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&records).Error
	return records, err
}

func (r *ReportRepository) DeleteByUserID(userID uint) error {
	return r.DB.Where("user_id = ?", userID).
		Delete(&model.ReportRecord{}).Error
}
