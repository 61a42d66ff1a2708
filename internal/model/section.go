package model

// Section identifies one block of the early-detection questionnaire.
type Section string

const (
	SectionVoice     Section = "Voice"
	SectionMovement  Section = "Movement"
	SectionVision    Section = "Vision"
	SectionCognitive Section = "Cognitive"
	SectionPain      Section = "Pain"
	SectionMood      Section = "Mood"
	SectionHistory   Section = "History"
)

// RiskLevel buckets a section score by its percentage of the section maximum.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SectionSchema describes the scoring rules for one questionnaire section.
// Main questions carry MainPoints, their follow-ups carry SubPoints.
type SectionSchema struct {
	Section  Section  `json:"section"`
	Keys     []string `json:"keys"`
	MainKeys []string `json:"mainKeys"`
	MaxScore int      `json:"maxScore"`
	NameAR   string   `json:"nameAr"`
	NameEN   string   `json:"nameEn"`
}

const (
	MainPoints = 2
	SubPoints  = 1
)

// Risk level thresholds, in percent of the section maximum.
const (
	HighRiskPercent   = 50
	MediumRiskPercent = 25
)

var sectionSchemas = []SectionSchema{
	{
		Section:  SectionVoice,
		Keys:     []string{"q1", "q1a", "q1b", "q1c", "q1d", "q2", "q2a", "q2b"},
		MainKeys: []string{"q1", "q2"},
		MaxScore: 12,
		NameAR:   "الصوت والكلام",
		NameEN:   "Voice and Speech",
	},
	{
		Section:  SectionMovement,
		Keys:     []string{"q3", "q3a", "q3b", "q3c", "q4", "q4a", "q4b", "q5", "q5a", "q5b"},
		MainKeys: []string{"q3", "q4", "q5"},
		MaxScore: 15,
		NameAR:   "الحركة والتوازن",
		NameEN:   "Movement and Balance",
	},
	{
		Section:  SectionVision,
		Keys:     []string{"q6", "q6a", "q6b", "q6c", "q7", "q7a", "q7b"},
		MainKeys: []string{"q6", "q7"},
		MaxScore: 12,
		NameAR:   "الرؤية",
		NameEN:   "Vision",
	},
	{
		Section:  SectionCognitive,
		Keys:     []string{"q8", "q8a", "q8b", "q9", "q9a", "q9b"},
		MainKeys: []string{"q8", "q9"},
		MaxScore: 10,
		NameAR:   "التركيز والطاقة",
		NameEN:   "Focus and Energy",
	},
	{
		Section:  SectionPain,
		Keys:     []string{"q10", "q10a", "q10b", "q11", "q11a", "q11b"},
		MainKeys: []string{"q10", "q11"},
		MaxScore: 10,
		NameAR:   "الألم والتحكم في الجسم",
		NameEN:   "Pain and Body Control",
	},
	{
		Section:  SectionMood,
		Keys:     []string{"q12", "q12a", "q12b", "q13", "q13a", "q13b"},
		MainKeys: []string{"q12", "q13"},
		MaxScore: 10,
		NameAR:   "المزاج والنوم",
		NameEN:   "Mood and Sleep",
	},
	{
		Section:  SectionHistory,
		Keys:     []string{"q14", "q14a", "q14b", "q15", "q15a", "q15b"},
		MainKeys: []string{"q14", "q15"},
		MaxScore: 10,
		NameAR:   "التاريخ المرضي والعائلة",
		NameEN:   "Medical and Family History",
	},
}

// Sections returns the questionnaire schema in canonical order.
// Callers must not mutate the returned slice.
func Sections() []SectionSchema {
	return sectionSchemas
}

// SectionByName looks up a schema entry by section identifier.
func SectionByName(sec Section) (SectionSchema, bool) {
	for _, s := range sectionSchemas {
		if s.Section == sec {
			return s, true
		}
	}
	return SectionSchema{}, false
}

// Name returns the section display name for the given language code.
func (s SectionSchema) Name(lang string) string {
	if lang == LangArabic {
		return s.NameAR
	}
	return s.NameEN
}

// IsMain reports whether key is one of the section's main questions.
func (s SectionSchema) IsMain(key string) bool {
	for _, k := range s.MainKeys {
		if k == key {
			return true
		}
	}
	return false
}

// QuestionCount returns the total number of answer keys across all sections.
func QuestionCount() int {
	n := 0
	for _, s := range sectionSchemas {
		n += len(s.Keys)
	}
	return n
}
