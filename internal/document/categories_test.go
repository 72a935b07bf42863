package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesStableOrder(t *testing.T) {
	want := []Category{CategoryInternalMemo, CategoryExternalLetter, CategoryMeetingMinutes}
	assert.Equal(t, want, Categories())
	assert.Equal(t, want, Categories(), "order must not vary between calls")
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Get(DefaultCategory), Get(Category("ไม่มีอยู่จริง")))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"1", CategoryInternalMemo, true},
		{"2", CategoryExternalLetter, true},
		{"3", CategoryMeetingMinutes, true},
		{"หนังสือภายใน", CategoryInternalMemo, true},
		{"รายงานการประชุม", CategoryMeetingMinutes, true},
		{"4", "", false},
		{"internal", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.in)
	}
}

func TestClassificationPromptListsAllCategories(t *testing.T) {
	prompt := ClassificationPrompt("ขออนุมัติเดินทาง")

	assert.Contains(t, prompt, "ขออนุมัติเดินทาง")
	for _, c := range Categories() {
		assert.Contains(t, prompt, string(c))
	}
}

func TestEveryTemplatePlaceholderIsDescribed(t *testing.T) {
	described := make(map[string]bool)
	for _, p := range PlaceholderSpecs() {
		described[p.Name] = true
	}

	skeletons := []string{
		DraftTemplate(CategoryInternalMemo, true),
		DraftTemplate(CategoryInternalMemo, false),
		DraftTemplate(CategoryExternalLetter, false),
		DraftTemplate(CategoryMeetingMinutes, false),
	}

	for _, skeleton := range skeletons {
		for _, m := range unreplacedRe.FindAllStringSubmatch(skeleton, -1) {
			assert.True(t, described[m[1]], "placeholder [%s] has no vocabulary entry", m[1])
		}
	}
}

func TestDraftTemplateVariants(t *testing.T) {
	request := DraftTemplate(CategoryInternalMemo, true)
	report := DraftTemplate(CategoryInternalMemo, false)

	assert.Contains(t, request, "เรื่องเพื่อพิจารณา")
	assert.NotContains(t, request, "ข้อเท็จจริง")
	assert.Contains(t, report, "ข้อเท็จจริง")
	assert.NotContains(t, report, "เรื่องเพื่อพิจารณา")

	// Variants only exist for internal memos.
	assert.Equal(t,
		DraftTemplate(CategoryExternalLetter, true),
		DraftTemplate(CategoryExternalLetter, false))
}

func TestTemplatePlaceholdersFiltersBySkeleton(t *testing.T) {
	ps := TemplatePlaceholders(DraftTemplate(CategoryMeetingMinutes, false))

	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}

	assert.Contains(t, names, "AGENDA")
	assert.Contains(t, names, "ATTENDEES")
	assert.NotContains(t, names, "BACKGROUND")
}

func TestFallbackExamplesPassTheirOwnValidation(t *testing.T) {
	v := NewValidator(nil)

	for _, c := range Categories() {
		example := FallbackExample(c)
		require.NotEmpty(t, example, "category %s has no fallback example", c)

		verdict := v.Validate(example, c, "")
		assert.True(t, verdict.Valid,
			"fallback example for %s fails validation: %v", c, verdict.Errors)
	}
}

func TestFallbackExamplesContainNoPlaceholders(t *testing.T) {
	for _, c := range Categories() {
		assert.False(t, strings.Contains(FallbackExample(c), "["),
			"fallback example for %s leaks placeholder brackets", c)
	}
}
