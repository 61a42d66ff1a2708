package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSpeechDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		max      int
		wantErr  string
	}{
		{"normal clip", 12.5, 120, ""},
		{"exactly at limit", 120, 120, ""},
		{"over limit", 120.1, 120, "recording too long"},
		{"zero duration from failed probe", 0, 120, "empty or unreadable"},
		{"negative duration", -1, 120, "empty or unreadable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validSpeechDuration(tt.duration, tt.max)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
