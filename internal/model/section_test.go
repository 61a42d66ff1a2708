package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsOrderAndMaxima(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 7)

	expected := []struct {
		section  Section
		maxScore int
		keys     int
		mains    int
	}{
		{SectionVoice, 12, 8, 2},
		{SectionMovement, 15, 10, 3},
		{SectionVision, 12, 7, 2},
		{SectionCognitive, 10, 6, 2},
		{SectionPain, 10, 6, 2},
		{SectionMood, 10, 6, 2},
		{SectionHistory, 10, 6, 2},
	}

	for i, want := range expected {
		got := sections[i]
		assert.Equal(t, want.section, got.Section)
		assert.Equal(t, want.maxScore, got.MaxScore)
		assert.Len(t, got.Keys, want.keys)
		assert.Len(t, got.MainKeys, want.mains)
	}
}

func TestQuestionCount(t *testing.T) {
	assert.Equal(t, 49, QuestionCount())
}

func TestMainKeysBelongToSection(t *testing.T) {
	for _, schema := range Sections() {
		keySet := make(map[string]bool, len(schema.Keys))
		for _, key := range schema.Keys {
			keySet[key] = true
		}
		for _, main := range schema.MainKeys {
			assert.Truef(t, keySet[main], "main key %s missing from section %s", main, schema.Section)
			assert.True(t, schema.IsMain(main))
		}
	}
}

func TestKeysAreUniqueAcrossSections(t *testing.T) {
	seen := make(map[string]Section)
	for _, schema := range Sections() {
		for _, key := range schema.Keys {
			prev, dup := seen[key]
			require.Falsef(t, dup, "key %s appears in both %s and %s", key, prev, schema.Section)
			seen[key] = schema.Section
		}
	}
}

func TestSectionByName(t *testing.T) {
	schema, ok := SectionByName(SectionVision)
	require.True(t, ok)
	assert.Equal(t, "Vision", schema.NameEN)
	assert.Equal(t, "الرؤية", schema.NameAR)
	assert.Equal(t, schema.NameEN, schema.Name(LangEnglish))
	assert.Equal(t, schema.NameAR, schema.Name(LangArabic))

	_, ok = SectionByName(Section("Unknown"))
	assert.False(t, ok)
}
