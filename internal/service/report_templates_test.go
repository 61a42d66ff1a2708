package service

import (
	"neuroscreen_backend/internal/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText(t *testing.T) {
	phrase := LocalizedText{AR: "مرحبا", EN: "hello"}
	assert.Equal(t, "مرحبا", phrase.Text(model.LangArabic))
	assert.Equal(t, "hello", phrase.Text(model.LangEnglish))
}

func TestValidateRejectsMissingTranslation(t *testing.T) {
	templates := testTemplates()
	templates.Conditions.Parkinsons = LocalizedText{EN: "Parkinson's Disease"}

	err := templates.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conditions.parkinsons")
}

func TestLoadReportTemplates(t *testing.T) {
	path := filepath.Join("..", "..", "data", "medical_reports.json")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("template catalogue not present: %v", err)
	}

	templates, err := LoadReportTemplates(path)
	require.NoError(t, err)
	assert.Contains(t, templates.Analysis.HighRisk.EN, "{sections}")
	assert.Contains(t, templates.Analysis.HighRisk.AR, "{sections}")
}

func TestLoadReportTemplatesMissingFile(t *testing.T) {
	_, err := LoadReportTemplates(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
