package service

import (
	"context"
	"errors"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/repository"
	"neuroscreen_backend/internal/util"
	"neuroscreen_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ResultService struct {
	ModalityRepo *repository.ModalityRepository
	ReportRepo   *repository.ReportRepository
	Screening    *ScreeningService
	Storage      *StorageService
}

func NewResultService(modalityRepo *repository.ModalityRepository, reportRepo *repository.ReportRepository, screening *ScreeningService, storage *StorageService) *ResultService {
	return &ResultService{
		ModalityRepo: modalityRepo,
		ReportRepo:   reportRepo,
		Screening:    screening,
		Storage:      storage,
	}
}

// CombineScores computes the weighted screening score across the three
// modality tests (vision 0.5, motion 0.3, speech 0.2). The boolean is
// false until all three results are present; a partial set never yields
// a provisional score.
func CombineScores(set model.ModalityScoreSet) (float64, bool) {
	if !set.Complete() {
		return 0, false
	}
	combined := set.Vision.Score*model.VisionWeight +
		set.Motion.Score*model.MotionWeight +
		set.Speech.Score*model.SpeechWeight
	return combined, true
}

// SaveModality records a finished test, overwriting any earlier result
// for the same modality.
func (s *ResultService) SaveModality(userID uint, modality model.Modality, score float64, labelEN, labelAR, source string) (*model.ModalityResult, error) {
	result := &model.ModalityResult{
		UserID:   userID,
		Modality: modality,
		Score:    score,
		LabelEN:  labelEN,
		LabelAR:  labelAR,
		Source:   source,
	}
	if err := s.ModalityRepo.Upsert(result); err != nil {
		return nil, err
	}

	logger.Log.Info("modality result recorded",
		zap.Uint("userId", userID),
		zap.String("modality", string(modality)),
		zap.Float64("score", score))

	return result, nil
}

// Combined returns the weighted score once every modality is recorded.
func (s *ResultService) Combined(userID uint) (float64, model.ModalityScoreSet, error) {
	set, err := s.ModalityRepo.ScoreSet(userID)
	if err != nil {
		return 0, set, err
	}
	combined, ok := CombineScores(set)
	if !ok {
		return 0, set, util.ErrResultsIncomplete
	}
	return combined, set, nil
}

// AggregatedResults is the full picture of a patient's screening:
// the latest questionnaire outcome plus every modality result and,
// when complete, the combined score.
type AggregatedResults struct {
	Questionnaire *model.QuestionnaireResult `json:"questionnaire,omitempty"`
	Modalities    model.ModalityScoreSet     `json:"modalities"`
	Combined      *float64                   `json:"combined,omitempty"`
}

// Aggregate collects everything recorded for the user. Absent pieces
// are simply omitted; only Combined requires completeness.
func (s *ResultService) Aggregate(userID uint) (*AggregatedResults, error) {
	agg := &AggregatedResults{}

	result, _, err := s.Screening.LatestResult(userID)
	if err == nil {
		agg.Questionnaire = result
	} else if !errors.Is(err, util.ErrNoScreening) {
		return nil, err
	}

	set, err := s.ModalityRepo.ScoreSet(userID)
	if err != nil {
		return nil, err
	}
	agg.Modalities = set

	if combined, ok := CombineScores(set); ok {
		agg.Combined = &combined
	}

	return agg, nil
}

// Reset wipes all recorded screening data for the user so a fresh
// analysis can start. Archived recordings are removed best-effort;
// a storage failure must not block the reset.
func (s *ResultService) Reset(ctx context.Context, userID uint) error {
	if speech, err := s.ModalityRepo.FindByUserAndModality(userID, model.ModalitySpeech); err == nil && speech.Source != "" {
		if err := s.Storage.Delete(ctx, speech.Source); err != nil {
			logger.Log.Warn("failed to delete archived recording",
				zap.Uint("userId", userID),
				zap.String("object", speech.Source),
				zap.Error(err))
		}
	}

	if err := s.ModalityRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.ReportRepo.DeleteByUserID(userID); err != nil {
		return err
	}
	if err := s.Screening.Reset(userID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
