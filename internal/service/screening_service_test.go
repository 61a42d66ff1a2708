package service

import (
	"neuroscreen_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allAnswers(value bool) map[string]bool {
	answers := make(map[string]bool)
	for _, schema := range model.Sections() {
		for _, key := range schema.Keys {
			answers[key] = value
		}
	}
	return answers
}

func TestScoreQuestionnaireAllFalse(t *testing.T) {
	result := ScoreQuestionnaire(allAnswers(false))

	assert.Equal(t, 0, result.TotalScore)
	for _, schema := range model.Sections() {
		sec := result.Section(schema.Section)
		assert.Equal(t, 0, sec.Score)
		assert.Equal(t, model.RiskLow, sec.Level)
	}
}

func TestScoreQuestionnaireAllTrue(t *testing.T) {
	result := ScoreQuestionnaire(allAnswers(true))

	// Achievable maxima per section: mains are worth 2, follow-ups 1.
	assert.Equal(t, 10, result.Voice.Score)
	assert.Equal(t, 13, result.Movement.Score)
	assert.Equal(t, 9, result.Vision.Score)
	assert.Equal(t, 8, result.Cognitive.Score)
	assert.Equal(t, 8, result.Pain.Score)
	assert.Equal(t, 8, result.Mood.Score)
	assert.Equal(t, 8, result.History.Score)
	assert.Equal(t, 64, result.TotalScore)

	for _, schema := range model.Sections() {
		assert.Equal(t, model.RiskHigh, result.Section(schema.Section).Level)
	}
}

func TestScoreQuestionnaireLevelThresholds(t *testing.T) {
	tests := []struct {
		name      string
		answers   map[string]bool
		section   model.Section
		wantScore int
		wantLevel model.RiskLevel
	}{
		{
			name:      "vision medium at one third",
			answers:   map[string]bool{"q6": true, "q6a": true, "q6b": true},
			section:   model.SectionVision,
			wantScore: 4,
			wantLevel: model.RiskMedium,
		},
		{
			name:      "vision high above half",
			answers:   map[string]bool{"q6": true, "q6a": true, "q6b": true, "q6c": true, "q7": true},
			section:   model.SectionVision,
			wantScore: 7,
			wantLevel: model.RiskHigh,
		},
		{
			name:      "cognitive exactly at high boundary",
			answers:   map[string]bool{"q8": true, "q8a": true, "q9": true},
			section:   model.SectionCognitive,
			wantScore: 5,
			wantLevel: model.RiskHigh,
		},
		{
			name:      "mood below medium boundary",
			answers:   map[string]bool{"q12": true},
			section:   model.SectionMood,
			wantScore: 2,
			wantLevel: model.RiskLow,
		},
		{
			name:      "history exactly at medium boundary",
			answers:   map[string]bool{"q14": true, "q14a": true},
			section:   model.SectionHistory,
			wantScore: 3,
			wantLevel: model.RiskMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreQuestionnaire(tt.answers)
			sec := result.Section(tt.section)
			assert.Equal(t, tt.wantScore, sec.Score)
			assert.Equal(t, tt.wantLevel, sec.Level)
		})
	}
}

func TestScoreQuestionnaireIgnoresUnknownKeys(t *testing.T) {
	result := ScoreQuestionnaire(map[string]bool{
		"q1":      true,
		"q99":     true,
		"bogus":   true,
		"another": true,
	})

	require.Equal(t, 2, result.Voice.Score)
	assert.Equal(t, 2, result.TotalScore)
}

func TestScoreQuestionnaireTotalIsSumOfSections(t *testing.T) {
	answers := map[string]bool{
		"q3": true, "q3a": true,
		"q6": true,
		"q12": true, "q12a": true, "q12b": true,
	}
	result := ScoreQuestionnaire(answers)

	sum := 0
	for _, schema := range model.Sections() {
		sum += result.Section(schema.Section).Score
	}
	assert.Equal(t, sum, result.TotalScore)
	assert.Equal(t, 9, result.TotalScore)
}
