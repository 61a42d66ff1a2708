package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		current int
		seen    bool
		max     int
		want    int
	}{
		{"seen moves harder", 3, true, 5, 4},
		{"missed moves easier", 3, false, 5, 2},
		{"clamped at max", 5, true, 5, 5},
		{"clamped at one", 1, false, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advanceDifficulty(tt.current, tt.seen, tt.max))
		})
	}
}

func TestTrialCredit(t *testing.T) {
	assert.Equal(t, 4.0, trialCredit(4, true))
	assert.Equal(t, 0.0, trialCredit(4, false))
	assert.Equal(t, 0.0, trialCredit(1, false))
}

func TestVisionScore(t *testing.T) {
	// Ten trials all seen at max difficulty is a perfect run.
	assert.Equal(t, 100.0, visionScore(50, 10, 5))
	// Nothing seen scores zero.
	assert.Equal(t, 0.0, visionScore(0, 10, 5))
	// Half the credit budget scores fifty.
	assert.Equal(t, 50.0, visionScore(25, 10, 5))
	// Rounded to the nearest integer: 17/10/5 -> 34.
	assert.Equal(t, 34.0, visionScore(17, 10, 5))
	// Degenerate configs never divide by zero.
	assert.Equal(t, 0.0, visionScore(10, 0, 5))
	assert.Equal(t, 0.0, visionScore(10, 10, 0))
}

func TestInterpretationForBands(t *testing.T) {
	tests := []struct {
		score  float64
		wantEN string
	}{
		{100, "Normal contrast sensitivity"},
		{70, "Normal contrast sensitivity"},
		{69, "Borderline contrast sensitivity, monitoring advised"},
		{40, "Borderline contrast sensitivity, monitoring advised"},
		{39, "Reduced contrast sensitivity, clinical assessment recommended"},
		{0, "Reduced contrast sensitivity, clinical assessment recommended"},
	}

	for _, tt := range tests {
		en, ar := interpretationFor(tt.score)
		assert.Equal(t, tt.wantEN, en)
		assert.NotEmpty(t, ar)
	}
}

func TestStimulusImage(t *testing.T) {
	assert.Equal(t, "contrast_3.png", stimulusImage(3))
}
