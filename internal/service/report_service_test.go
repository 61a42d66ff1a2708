package service

import (
	"neuroscreen_backend/internal/model"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplates() *ReportTemplates {
	both := func(key string) LocalizedText {
		return LocalizedText{AR: "ar:" + key, EN: "en:" + key}
	}

	t := &ReportTemplates{}
	t.Analysis.HighRisk = LocalizedText{
		AR: "ar:highRisk {sections}",
		EN: "en:highRisk {sections}",
	}
	t.Analysis.NoHighRisk = both("noHighRisk")
	t.Analysis.MoodHigh = both("moodHigh")
	t.Analysis.CognitiveIrregular = both("cognitiveIrregular")
	t.Analysis.MovementConcern = both("movementConcern")
	t.Analysis.VisionIssues = both("visionIssues")
	t.Analysis.PainPatterns = both("painPatterns")
	t.Analysis.VoiceChanges = both("voiceChanges")
	t.Analysis.FamilyHistory = both("familyHistory")

	t.Recommendations.HighRisk = both("rec.highRisk")
	t.Recommendations.MediumRisk = both("rec.mediumRisk")
	t.Recommendations.LowRisk = both("rec.lowRisk")
	t.Recommendations.Cognitive = both("rec.cognitive")
	t.Recommendations.Vision = both("rec.vision")
	t.Recommendations.Movement = both("rec.movement")
	t.Recommendations.Mood = both("rec.mood")

	t.Conditions.MultipleSclerosis = both("MS")
	t.Conditions.PeripheralNeuropathy = both("PN")
	t.Conditions.OpticNeuritis = both("ON")
	t.Conditions.MyastheniaGravis = both("MG")
	t.Conditions.Parkinsons = both("Parkinsons")
	t.Conditions.Fibromyalgia = both("Fibromyalgia")
	t.Conditions.ChronicFatigue = both("CF")
	t.Conditions.AnxietyDisorder = both("Anxiety")
	t.Conditions.Depression = both("Depression")

	t.DetailedAnalysis.Introduction = both("intro")
	t.DetailedAnalysis.Conclusion = both("conclusion")
	t.DetailedAnalysis.CognitiveDetail = both("cognitiveDetail")
	t.DetailedAnalysis.MovementDetail = both("movementDetail")
	t.DetailedAnalysis.VisionDetail = both("visionDetail")
	t.DetailedAnalysis.PainDetail = both("painDetail")
	t.DetailedAnalysis.VoiceDetail = both("voiceDetail")
	t.DetailedAnalysis.HistoryDetail = both("historyDetail")

	return t
}

func testReportService() *ReportService {
	return NewReportService(testTemplates(), nil, nil)
}

func TestTestTemplatesAreComplete(t *testing.T) {
	require.NoError(t, testTemplates().Validate())
}

func TestSynthesizeNoFindings(t *testing.T) {
	svc := testReportService()
	result := ScoreQuestionnaire(map[string]bool{})

	report := svc.Synthesize(result, model.LangEnglish)

	assert.Equal(t, "en:noHighRisk", report.Summary)
	assert.Equal(t, "en:intro en:noHighRisk en:conclusion", report.DetailedAnalysis)
	assert.Equal(t, "en:rec.lowRisk", report.Recommendation)
	assert.Empty(t, report.SpecificRecommendations)
	assert.Empty(t, report.SuspectedConditions)
}

func TestSynthesizeVisionMedium(t *testing.T) {
	svc := testReportService()
	result := ScoreQuestionnaire(map[string]bool{"q6": true, "q6a": true, "q6b": true})
	require.Equal(t, model.RiskMedium, result.Vision.Level)

	report := svc.Synthesize(result, model.LangEnglish)

	assert.Equal(t, "en:noHighRisk en:visionIssues", report.Summary)
	assert.Contains(t, report.DetailedAnalysis, "en:visionDetail")
	assert.Equal(t, "en:rec.mediumRisk", report.Recommendation)
	assert.Equal(t, []string{"en:rec.vision"}, report.SpecificRecommendations)
	assert.Equal(t, []string{"en:ON", "en:MS"}, report.SuspectedConditions)
}

func TestSynthesizeHighRiskSectionNames(t *testing.T) {
	svc := testReportService()
	// Vision high, everything else untouched.
	result := ScoreQuestionnaire(map[string]bool{
		"q6": true, "q6a": true, "q6b": true, "q6c": true, "q7": true,
	})
	require.Equal(t, model.RiskHigh, result.Vision.Level)

	en := svc.Synthesize(result, model.LangEnglish)
	assert.True(t, strings.HasPrefix(en.Summary, "en:highRisk Vision"))
	assert.Equal(t, "en:rec.highRisk", en.Recommendation)

	ar := svc.Synthesize(result, model.LangArabic)
	assert.True(t, strings.HasPrefix(ar.Summary, "ar:highRisk الرؤية"))
	assert.Equal(t, "ar:rec.highRisk", ar.Recommendation)
}

func TestSynthesizeMovementWithFamilyHistory(t *testing.T) {
	svc := testReportService()
	result := ScoreQuestionnaire(map[string]bool{
		"q3": true, "q3a": true, "q4": true, "q4a": true, "q5": true,
		"q14": true, "q14a": true,
	})
	require.Equal(t, model.RiskHigh, result.Movement.Level)
	require.Equal(t, model.RiskMedium, result.History.Level)

	report := svc.Synthesize(result, model.LangEnglish)

	// Movement findings plus the movement/history cross rule.
	assert.Equal(t, []string{"en:MS", "en:PN", "en:Parkinsons"}, report.SuspectedConditions)
	assert.Equal(t, []string{"en:rec.movement"}, report.SpecificRecommendations)
	assert.Contains(t, report.Summary, "en:familyHistory")
	assert.Contains(t, report.DetailedAnalysis, "en:historyDetail")
}

func TestSynthesizeAllHighDeduplicatesConditions(t *testing.T) {
	svc := testReportService()
	result := ScoreQuestionnaire(allAnswers(true))

	report := svc.Synthesize(result, model.LangEnglish)

	assert.Equal(t, []string{
		"en:Anxiety",
		"en:Depression",
		"en:MS",
		"en:CF",
		"en:PN",
		"en:Fibromyalgia",
		"en:ON",
		"en:MG",
		"en:Parkinsons",
	}, report.SuspectedConditions)

	assert.Equal(t, "en:rec.highRisk", report.Recommendation)
	assert.Equal(t, []string{
		"en:rec.mood",
		"en:rec.cognitive",
		"en:rec.movement",
		"en:rec.vision",
	}, report.SpecificRecommendations)

	// The overview names every high section, localized.
	for _, schema := range model.Sections() {
		assert.Contains(t, report.Summary, schema.NameEN)
	}

	// Mood has no elaboration paragraph; the other sections do.
	assert.NotContains(t, report.DetailedAnalysis, "moodDetail")
	assert.Contains(t, report.DetailedAnalysis, "en:cognitiveDetail")
	assert.Contains(t, report.DetailedAnalysis, "en:voiceDetail")
	assert.True(t, strings.HasPrefix(report.DetailedAnalysis, "en:intro"))
	assert.True(t, strings.HasSuffix(report.DetailedAnalysis, "en:conclusion"))
}

func TestSynthesizePainHighAddsFibromyalgia(t *testing.T) {
	svc := testReportService()
	result := ScoreQuestionnaire(map[string]bool{
		"q10": true, "q10a": true, "q11": true,
	})
	require.Equal(t, model.RiskHigh, result.Pain.Level)

	report := svc.Synthesize(result, model.LangEnglish)

	assert.Equal(t, []string{"en:PN", "en:Fibromyalgia"}, report.SuspectedConditions)
	// Pain alone carries no specific recommendation.
	assert.Empty(t, report.SpecificRecommendations)
}
