package service

import (
	"neuroscreen_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modality(m model.Modality, score float64) *model.ModalityResult {
	return &model.ModalityResult{Modality: m, Score: score}
}

func TestCombineScoresWeights(t *testing.T) {
	set := model.ModalityScoreSet{
		Vision: modality(model.ModalityVision, 80),
		Motion: modality(model.ModalityMotion, 50),
		Speech: modality(model.ModalitySpeech, 20),
	}

	combined, ok := CombineScores(set)
	require.True(t, ok)
	assert.InDelta(t, 59.0, combined, 1e-9)
}

func TestCombineScoresBounds(t *testing.T) {
	tests := []struct {
		name   string
		vision float64
		motion float64
		speech float64
		want   float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"all full", 100, 100, 100, 100},
		{"vision only contributes half", 100, 0, 0, 50},
		{"motion only contributes thirty percent", 0, 100, 0, 30},
		{"speech only contributes twenty percent", 0, 0, 100, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := model.ModalityScoreSet{
				Vision: modality(model.ModalityVision, tt.vision),
				Motion: modality(model.ModalityMotion, tt.motion),
				Speech: modality(model.ModalitySpeech, tt.speech),
			}
			combined, ok := CombineScores(set)
			require.True(t, ok)
			assert.InDelta(t, tt.want, combined, 1e-9)
		})
	}
}

func TestCombineScoresIncompleteSet(t *testing.T) {
	tests := []struct {
		name string
		set  model.ModalityScoreSet
	}{
		{"empty", model.ModalityScoreSet{}},
		{"vision only", model.ModalityScoreSet{Vision: modality(model.ModalityVision, 90)}},
		{"missing speech", model.ModalityScoreSet{
			Vision: modality(model.ModalityVision, 90),
			Motion: modality(model.ModalityMotion, 90),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combined, ok := CombineScores(tt.set)
			assert.False(t, ok)
			assert.Zero(t, combined)
		})
	}
}
