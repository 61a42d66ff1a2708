package service

import (
	"encoding/json"
	"fmt"
	"neuroscreen_backend/internal/model"
	"os"
)

// LocalizedText holds one phrase in both supported languages.
type LocalizedText struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// Text returns the phrase for the given language code.
func (t LocalizedText) Text(lang string) string {
	if lang == model.LangArabic {
		return t.AR
	}
	return t.EN
}

func (t LocalizedText) complete() bool {
	return t.AR != "" && t.EN != ""
}

// ReportTemplates is the full phrase catalogue used by report
// synthesis. It is loaded from a JSON resource at startup.
type ReportTemplates struct {
	Analysis struct {
		HighRisk           LocalizedText `json:"highRisk"`
		NoHighRisk         LocalizedText `json:"noHighRisk"`
		MoodHigh           LocalizedText `json:"moodHigh"`
		CognitiveIrregular LocalizedText `json:"cognitiveIrregular"`
		MovementConcern    LocalizedText `json:"movementConcern"`
		VisionIssues       LocalizedText `json:"visionIssues"`
		PainPatterns       LocalizedText `json:"painPatterns"`
		VoiceChanges       LocalizedText `json:"voiceChanges"`
		FamilyHistory      LocalizedText `json:"familyHistory"`
	} `json:"analysis"`
	Recommendations struct {
		HighRisk   LocalizedText `json:"highRisk"`
		MediumRisk LocalizedText `json:"mediumRisk"`
		LowRisk    LocalizedText `json:"lowRisk"`
		Cognitive  LocalizedText `json:"cognitive"`
		Vision     LocalizedText `json:"vision"`
		Movement   LocalizedText `json:"movement"`
		Mood       LocalizedText `json:"mood"`
	} `json:"recommendations"`
	Conditions struct {
		MultipleSclerosis    LocalizedText `json:"multipleSclerosis"`
		PeripheralNeuropathy LocalizedText `json:"peripheralNeuropathy"`
		OpticNeuritis        LocalizedText `json:"opticNeuritis"`
		MyastheniaGravis     LocalizedText `json:"myastheniaGravis"`
		Parkinsons           LocalizedText `json:"parkinsons"`
		Fibromyalgia         LocalizedText `json:"fibromyalgia"`
		ChronicFatigue       LocalizedText `json:"chronicFatigue"`
		AnxietyDisorder      LocalizedText `json:"anxietyDisorder"`
		Depression           LocalizedText `json:"depression"`
	} `json:"conditions"`
	DetailedAnalysis struct {
		Introduction    LocalizedText `json:"introduction"`
		Conclusion      LocalizedText `json:"conclusion"`
		CognitiveDetail LocalizedText `json:"cognitiveDetail"`
		MovementDetail  LocalizedText `json:"movementDetail"`
		VisionDetail    LocalizedText `json:"visionDetail"`
		PainDetail      LocalizedText `json:"painDetail"`
		VoiceDetail     LocalizedText `json:"voiceDetail"`
		HistoryDetail   LocalizedText `json:"historyDetail"`
	} `json:"detailedAnalysis"`
}

// entries flattens the catalogue for validation.
func (t *ReportTemplates) entries() map[string]LocalizedText {
	return map[string]LocalizedText{
		"analysis.highRisk":           t.Analysis.HighRisk,
		"analysis.noHighRisk":         t.Analysis.NoHighRisk,
		"analysis.moodHigh":           t.Analysis.MoodHigh,
		"analysis.cognitiveIrregular": t.Analysis.CognitiveIrregular,
		"analysis.movementConcern":    t.Analysis.MovementConcern,
		"analysis.visionIssues":       t.Analysis.VisionIssues,
		"analysis.painPatterns":       t.Analysis.PainPatterns,
		"analysis.voiceChanges":       t.Analysis.VoiceChanges,
		"analysis.familyHistory":      t.Analysis.FamilyHistory,

		"recommendations.highRisk":   t.Recommendations.HighRisk,
		"recommendations.mediumRisk": t.Recommendations.MediumRisk,
		"recommendations.lowRisk":    t.Recommendations.LowRisk,
		"recommendations.cognitive":  t.Recommendations.Cognitive,
		"recommendations.vision":     t.Recommendations.Vision,
		"recommendations.movement":   t.Recommendations.Movement,
		"recommendations.mood":       t.Recommendations.Mood,

		"conditions.multipleSclerosis":    t.Conditions.MultipleSclerosis,
		"conditions.peripheralNeuropathy": t.Conditions.PeripheralNeuropathy,
		"conditions.opticNeuritis":        t.Conditions.OpticNeuritis,
		"conditions.myastheniaGravis":     t.Conditions.MyastheniaGravis,
		"conditions.parkinsons":           t.Conditions.Parkinsons,
		"conditions.fibromyalgia":         t.Conditions.Fibromyalgia,
		"conditions.chronicFatigue":       t.Conditions.ChronicFatigue,
		"conditions.anxietyDisorder":      t.Conditions.AnxietyDisorder,
		"conditions.depression":           t.Conditions.Depression,

		"detailedAnalysis.introduction":    t.DetailedAnalysis.Introduction,
		"detailedAnalysis.conclusion":      t.DetailedAnalysis.Conclusion,
		"detailedAnalysis.cognitiveDetail": t.DetailedAnalysis.CognitiveDetail,
		"detailedAnalysis.movementDetail":  t.DetailedAnalysis.MovementDetail,
		"detailedAnalysis.visionDetail":    t.DetailedAnalysis.VisionDetail,
		"detailedAnalysis.painDetail":      t.DetailedAnalysis.PainDetail,
		"detailedAnalysis.voiceDetail":     t.DetailedAnalysis.VoiceDetail,
		"detailedAnalysis.historyDetail":   t.DetailedAnalysis.HistoryDetail,
	}
}

// Validate checks that every phrase has both an Arabic and an English
// rendering. Synthesis must never emit empty text.
func (t *ReportTemplates) Validate() error {
	for key, entry := range t.entries() {
		if !entry.complete() {
			return fmt.Errorf("report template %q is missing a translation", key)
		}
	}
	return nil
}

// LoadReportTemplates reads and validates the phrase catalogue.
func LoadReportTemplates(path string) (*ReportTemplates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report templates: %w", err)
	}

	var templates ReportTemplates
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}

	if err := templates.Validate(); err != nil {
		return nil, err
	}
	return &templates, nil
}
