package service

import (
	"encoding/json"
	"errors"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/repository"
	"neuroscreen_backend/internal/util"
	"neuroscreen_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ScreeningService struct {
	ScreeningRepo *repository.ScreeningRepository
}

func NewScreeningService(screeningRepo *repository.ScreeningRepository) *ScreeningService {
	return &ScreeningService{ScreeningRepo: screeningRepo}
}

// ScoreQuestionnaire scores a full answer map. Main questions score 2
// points, follow-ups 1 point. Each section's level is derived from its
// percentage of the section maximum: >=50% high, >=25% medium,
// otherwise low. Missing keys count as false; unknown keys are ignored.
func ScoreQuestionnaire(answers map[string]bool) *model.QuestionnaireResult {
	result := &model.QuestionnaireResult{}

	for _, schema := range model.Sections() {
		score := 0
		for _, key := range schema.Keys {
			if !answers[key] {
				continue
			}
			if schema.IsMain(key) {
				score += model.MainPoints
			} else {
				score += model.SubPoints
			}
		}

		percentage := float64(score) / float64(schema.MaxScore) * 100
		level := model.RiskLow
		if percentage >= model.HighRiskPercent {
			level = model.RiskHigh
		} else if percentage >= model.MediumRiskPercent {
			level = model.RiskMedium
		}

		result.SetSection(schema.Section, model.SectionResult{Score: score, Level: level})
		result.TotalScore += score
	}

	return result
}

// Submit scores the answers and persists both the raw answer map and
// the derived result.
func (s *ScreeningService) Submit(userID uint, answers map[string]bool) (*model.QuestionnaireResult, *model.ScreeningSubmission, error) {
	result := ScoreQuestionnaire(answers)
	result.Answers = answers

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, nil, err
	}
	rawResult, err := json.Marshal(result)
	if err != nil {
		return nil, nil, err
	}

	sub := &model.ScreeningSubmission{
		UserID:     userID,
		Answers:    rawAnswers,
		Result:     rawResult,
		TotalScore: result.TotalScore,
	}

	if err := s.ScreeningRepo.Create(sub); err != nil {
		return nil, nil, err
	}

	logger.Log.Info("questionnaire scored",
		zap.Uint("userId", userID),
		zap.Int("totalScore", result.TotalScore))

	return result, sub, nil
}

// LatestResult returns the user's most recent scored submission.
func (s *ScreeningService) LatestResult(userID uint) (*model.QuestionnaireResult, *model.ScreeningSubmission, error) {
	sub, err := s.ScreeningRepo.LatestByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrNoScreening
		}
		return nil, nil, err
	}

	result, err := sub.DecodeResult()
	if err != nil {
		return nil, nil, err
	}
	return result, sub, nil
}

func (s *ScreeningService) Reset(userID uint) error {
	return s.ScreeningRepo.DeleteByUserID(userID)
}
