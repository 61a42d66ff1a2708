package service

import (
	"neuroscreen_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	svc := NewPatientService(nil, nil)

	assert.ErrorIs(t, svc.SetLanguage(1, "fr"), util.ErrUnsupportedLanguage)
	assert.ErrorIs(t, svc.SetLanguage(1, ""), util.ErrUnsupportedLanguage)
	assert.ErrorIs(t, svc.SetLanguage(1, "AR"), util.ErrUnsupportedLanguage)
}
