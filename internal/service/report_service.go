package service

import (
	"encoding/json"
	"errors"
	"math"
	"neuroscreen_backend/internal/model"
	"neuroscreen_backend/internal/repository"
	"neuroscreen_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type ReportService struct {
	Templates     *ReportTemplates
	ScreeningRepo *repository.ScreeningRepository
	ReportRepo    *repository.ReportRepository
}

func NewReportService(templates *ReportTemplates, screeningRepo *repository.ScreeningRepository, reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{
		Templates:     templates,
		ScreeningRepo: screeningRepo,
		ReportRepo:    reportRepo,
	}
}

// conditionList accumulates suspected conditions. Section rules may
// append the same condition more than once; ordering is part of the
// report contract, so duplicates are only collapsed at the end,
// keeping each condition's first occurrence.
type conditionList struct {
	items []string
}

func (l *conditionList) push(items ...string) {
	l.items = append(l.items, items...)
}

func (l *conditionList) contains(item string) bool {
	for _, existing := range l.items {
		if existing == item {
			return true
		}
	}
	return false
}

func (l *conditionList) pushIfAbsent(item string) {
	if !l.contains(item) {
		l.items = append(l.items, item)
	}
}

func (l *conditionList) unshiftIfAbsent(item string) {
	if !l.contains(item) {
		l.items = append([]string{item}, l.items...)
	}
}

func (l *conditionList) unique() []string {
	seen := make(map[string]bool, len(l.items))
	var out []string
	for _, item := range l.items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// sectionPercent is the section score as a rounded percentage of the
// schema maximum for that section.
func sectionPercent(result *model.QuestionnaireResult, sec model.Section) int {
	schema, ok := model.SectionByName(sec)
	if !ok || schema.MaxScore == 0 {
		return 0
	}
	return int(math.Round(float64(result.Section(sec).Score) / float64(schema.MaxScore) * 100))
}

// Synthesize builds the localized medical report for one scored
// questionnaire. All narrative text comes from the phrase catalogue;
// the rules mirror the clinical heuristics of the screening protocol.
func (s *ReportService) Synthesize(result *model.QuestionnaireResult, lang string) *model.MedicalReport {
	t := s.Templates

	var summary []string
	var detailed []string
	var specificRecs []string
	var conditions conditionList

	level := func(sec model.Section) model.RiskLevel {
		return result.Section(sec).Level
	}
	atLeastMedium := func(sec model.Section) bool {
		l := level(sec)
		return l == model.RiskMedium || l == model.RiskHigh
	}

	var highSections, mediumSections []model.SectionSchema
	for _, schema := range model.Sections() {
		switch level(schema.Section) {
		case model.RiskHigh:
			highSections = append(highSections, schema)
		case model.RiskMedium:
			mediumSections = append(mediumSections, schema)
		}
	}

	detailed = append(detailed, t.DetailedAnalysis.Introduction.Text(lang))

	// Overview line.
	if len(highSections) == 0 {
		summary = append(summary, t.Analysis.NoHighRisk.Text(lang))
		detailed = append(detailed, t.Analysis.NoHighRisk.Text(lang))
	} else {
		names := make([]string, len(highSections))
		for i, schema := range highSections {
			names[i] = schema.Name(lang)
		}
		line := strings.ReplaceAll(t.Analysis.HighRisk.Text(lang), "{sections}", strings.Join(names, ", "))
		summary = append(summary, line)
		detailed = append(detailed, line)
	}

	// Per-section findings.
	if level(model.SectionMood) == model.RiskHigh {
		summary = append(summary, t.Analysis.MoodHigh.Text(lang))
		detailed = append(detailed, t.Analysis.MoodHigh.Text(lang))
		specificRecs = append(specificRecs, t.Recommendations.Mood.Text(lang))
		conditions.push(t.Conditions.AnxietyDisorder.Text(lang), t.Conditions.Depression.Text(lang))
	}

	if atLeastMedium(model.SectionCognitive) {
		summary = append(summary, t.Analysis.CognitiveIrregular.Text(lang))
		detailed = append(detailed, t.Analysis.CognitiveIrregular.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.CognitiveDetail.Text(lang))
		specificRecs = append(specificRecs, t.Recommendations.Cognitive.Text(lang))
		conditions.push(t.Conditions.MultipleSclerosis.Text(lang), t.Conditions.ChronicFatigue.Text(lang))
	}

	if atLeastMedium(model.SectionMovement) {
		summary = append(summary, t.Analysis.MovementConcern.Text(lang))
		detailed = append(detailed, t.Analysis.MovementConcern.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.MovementDetail.Text(lang))
		specificRecs = append(specificRecs, t.Recommendations.Movement.Text(lang))
		conditions.push(t.Conditions.MultipleSclerosis.Text(lang), t.Conditions.PeripheralNeuropathy.Text(lang))
		if level(model.SectionPain) == model.RiskHigh {
			conditions.push(t.Conditions.Fibromyalgia.Text(lang))
		}
	}

	if atLeastMedium(model.SectionVision) {
		summary = append(summary, t.Analysis.VisionIssues.Text(lang))
		detailed = append(detailed, t.Analysis.VisionIssues.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.VisionDetail.Text(lang))
		specificRecs = append(specificRecs, t.Recommendations.Vision.Text(lang))
		conditions.push(t.Conditions.OpticNeuritis.Text(lang), t.Conditions.MultipleSclerosis.Text(lang))
	}

	if level(model.SectionPain) == model.RiskHigh {
		summary = append(summary, t.Analysis.PainPatterns.Text(lang))
		detailed = append(detailed, t.Analysis.PainPatterns.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.PainDetail.Text(lang))
		conditions.push(t.Conditions.PeripheralNeuropathy.Text(lang), t.Conditions.Fibromyalgia.Text(lang))
	}

	if level(model.SectionVoice) == model.RiskHigh {
		summary = append(summary, t.Analysis.VoiceChanges.Text(lang))
		detailed = append(detailed, t.Analysis.VoiceChanges.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.VoiceDetail.Text(lang))
		conditions.push(t.Conditions.MyastheniaGravis.Text(lang), t.Conditions.MultipleSclerosis.Text(lang))
	}

	if atLeastMedium(model.SectionHistory) {
		summary = append(summary, t.Analysis.FamilyHistory.Text(lang))
		detailed = append(detailed, t.Analysis.FamilyHistory.Text(lang))
		detailed = append(detailed, t.DetailedAnalysis.HistoryDetail.Text(lang))
	}

	cognitivePct := sectionPercent(result, model.SectionCognitive)
	moodPct := sectionPercent(result, model.SectionMood)
	painPct := sectionPercent(result, model.SectionPain)

	visionHigh := level(model.SectionVision) == model.RiskHigh
	movementHigh := level(model.SectionMovement) == model.RiskHigh
	cognitiveHigh := level(model.SectionCognitive) == model.RiskHigh
	moodHigh := level(model.SectionMood) == model.RiskHigh
	painHigh := level(model.SectionPain) == model.RiskHigh
	voiceHigh := level(model.SectionVoice) == model.RiskHigh

	// Cross-section heuristics. Conditions promoted to the front are
	// the leading suspicion for that symptom combination.
	if (visionHigh && movementHigh && cognitiveHigh) ||
		(visionHigh && movementHigh && result.TotalScore >= 40) ||
		cognitivePct >= 50 {
		conditions.unshiftIfAbsent(t.Conditions.MultipleSclerosis.Text(lang))
	}

	if (moodHigh && cognitiveHigh && result.TotalScore >= 35) ||
		(moodPct >= 60 && cognitivePct >= 50 && result.TotalScore >= 30) {
		conditions.pushIfAbsent(t.Conditions.ChronicFatigue.Text(lang))
	}

	if (movementHigh && painHigh) ||
		(painHigh && atLeastMedium(model.SectionMood)) ||
		painPct >= 70 {
		conditions.pushIfAbsent(t.Conditions.Fibromyalgia.Text(lang))
	}

	if movementHigh && painHigh && !visionHigh {
		conditions.unshiftIfAbsent(t.Conditions.PeripheralNeuropathy.Text(lang))
	}

	if voiceHigh && movementHigh && !cognitiveHigh {
		conditions.unshiftIfAbsent(t.Conditions.MyastheniaGravis.Text(lang))
	}

	if movementHigh && atLeastMedium(model.SectionHistory) {
		conditions.pushIfAbsent(t.Conditions.Parkinsons.Text(lang))
	}

	if visionHigh && !movementHigh && !cognitiveHigh {
		conditions.unshiftIfAbsent(t.Conditions.OpticNeuritis.Text(lang))
	}

	detailed = append(detailed, t.DetailedAnalysis.Conclusion.Text(lang))

	var recommendation string
	switch {
	case len(highSections) > 0:
		recommendation = t.Recommendations.HighRisk.Text(lang)
	case len(mediumSections) > 0:
		recommendation = t.Recommendations.MediumRisk.Text(lang)
	default:
		recommendation = t.Recommendations.LowRisk.Text(lang)
	}

	report := &model.MedicalReport{
		Summary:          strings.Join(summary, " "),
		DetailedAnalysis: strings.Join(detailed, " "),
		Recommendation:   recommendation,
	}
	if len(specificRecs) > 0 {
		report.SpecificRecommendations = specificRecs
	}
	if unique := conditions.unique(); len(unique) > 0 {
		report.SuspectedConditions = unique
	}
	return report
}

// Generate synthesizes a report from the user's latest questionnaire
// submission and stores it.
func (s *ReportService) Generate(userID uint, lang string) (*model.MedicalReport, *model.ReportRecord, error) {
	if lang == "" {
		lang = model.LangArabic
	}
	if lang != model.LangArabic && lang != model.LangEnglish {
		return nil, nil, util.ErrUnsupportedLanguage
	}

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

	report := s.Synthesize(result, lang)

	raw, err := json.Marshal(report)
	if err != nil {
		return nil, nil, err
	}

	record := &model.ReportRecord{
		UserID:       userID,
		SubmissionID: sub.ID,
		Language:     lang,
		Report:       raw,
	}
	if err := s.ReportRepo.Create(record); err != nil {
		return nil, nil, err
	}

	return report, record, nil
}

// History lists the user's stored reports, newest first.
func (s *ReportService) History(userID uint) ([]model.ReportRecord, error) {
	return s.ReportRepo.ListByUserID(userID)
}
