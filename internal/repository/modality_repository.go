package repository

import (
	"neuroscreen_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModalityRepository struct {
	DB *gorm.DB
}

func NewModalityRepository(db *gorm.DB) *ModalityRepository {
	return &ModalityRepository{DB: db}
}

// Upsert stores the result, replacing any prior result for the same
// user and modality. Retaking a test overwrites, it never appends.
// deleted_at is part of the update set: the unique index spans
// soft-deleted rows too, so a retake after a reset must revive the row.
func (r *ModalityRepository) Upsert(result *model.ModalityResult) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "modality"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"score", "label_en", "label_ar", "source", "updated_at", "deleted_at",
		}),
	}).Create(result).Error
}

func (r *ModalityRepository) FindByUserAndModality(userID uint, modality model.Modality) (*model.ModalityResult, error) {
	var result model.ModalityResult
	err := r.DB.Where("user_id = ? AND modality = ?", userID, modality).
		First(&result).Error
	return &result, err
}

// ScoreSet loads the user's latest result per modality. Missing
// modalities are left nil.
func (r *ModalityRepository) ScoreSet(userID uint) (model.ModalityScoreSet, error) {
	var results []model.ModalityResult
	if err := r.DB.Where("user_id = ?", userID).Find(&results).Error; err != nil {
		return model.ModalityScoreSet{}, err
	}

	var set model.ModalityScoreSet
	for i := range results {
		switch results[i].Modality {
		case model.ModalityVision:
			set.Vision = &results[i]
		case model.ModalityMotion:
			set.Motion = &results[i]
		case model.ModalitySpeech:
			set.Speech = &results[i]
		}
	}
	return set, nil
}

// DeleteByUserID removes the user's modality rows for good. A reset
// must leave the (user_id, modality) slots free for a retake, so the
// rows are hard-deleted rather than soft-deleted.
func (r *ModalityRepository) DeleteByUserID(userID uint) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).
		Delete(&model.ModalityResult{}).Error
}
