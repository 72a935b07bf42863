package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInternalMemo builds a draft that satisfies every internal memo rule.
func validInternalMemo(extra string) string {
	return `บันทึกข้อความ
ส่วนราชการ สำนักงาน กสทช. ภาค 3
ที่ สทช 401/2568
วันที่ 15 มกราคม 2569
เรื่อง ขออนุมัติเดินทางไปราชการจังหวัดเชียงใหม่
เรียน ผู้อำนวยการสำนักงาน

เรื่องเดิม
ตามที่สำนักงานได้รับมอบหมายให้ดำเนินการตรวจสอบการใช้งานคลื่นความถี่ในพื้นที่ภาคเหนือ

เรื่องเพื่อพิจารณา
จึงเรียนมาเพื่อโปรดพิจารณาอนุมัติให้เจ้าหน้าที่เดินทางไปปฏิบัติราชการ ณ จังหวัดเชียงใหม่
ระหว่างวันที่ 15-17 มกราคม 2569 เพื่อดำเนินการตรวจสอบคลื่นความถี่ตามแผนงานประจำปี
` + extra
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	v := NewValidator(nil)

	verdict := v.Validate(validInternalMemo(""), CategoryInternalMemo,
		"ขออนุมัติเดินทางไปราชการจังหวัดเชียงใหม่ วันที่ 15-17 มกราคม 2569")

	assert.True(t, verdict.Valid)
	assert.Empty(t, verdict.Errors)
}

func TestValidateReportsUnreplacedPlaceholders(t *testing.T) {
	v := NewValidator(nil)
	draft := validInternalMemo("ลงชื่อ [ORGANIZATION] ตำแหน่ง [POSITION]")

	verdict := v.Validate(draft, CategoryInternalMemo, "ขออนุมัติเดินทาง")

	require.False(t, verdict.Valid)
	require.Len(t, verdict.Errors, 1)
	assert.Contains(t, verdict.Errors[0], "Unreplaced placeholders")
	assert.Contains(t, verdict.Errors[0], "ORGANIZATION")
	assert.Contains(t, verdict.Errors[0], "POSITION")
}

func TestValidatePlaceholderReportCapped(t *testing.T) {
	v := NewValidator(nil)
	draft := validInternalMemo("[AAA] [BBB] [CCC] [DDD] [EEE] [FFF] [GGG]")

	verdict := v.Validate(draft, CategoryInternalMemo, "ขอ")

	require.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors[0], "EEE")
	assert.NotContains(t, verdict.Errors[0], "FFF", "only the first five placeholders are named")
}

func TestValidateMissingRequiredSections(t *testing.T) {
	v := NewValidator(nil)
	draft := strings.Repeat("เนื้อหาเอกสารราชการ ", 30)

	verdict := v.Validate(draft, CategoryInternalMemo, "ขอ")

	require.False(t, verdict.Valid)
	found := 0
	for _, e := range verdict.Errors {
		if strings.HasPrefix(e, "Missing required section:") {
			found++
		}
	}
	assert.Equal(t, len(RequiredSections(CategoryInternalMemo)), found,
		"every absent section yields its own error")
}

func TestValidateContentPatternDisjunction(t *testing.T) {
	v := NewValidator(nil)

	// Report variant: ข้อเท็จจริง instead of เรื่องเพื่อพิจารณา.
	draft := strings.Replace(validInternalMemo(""), "เรื่องเพื่อพิจารณา", "ข้อเท็จจริง", 1)
	verdict := v.Validate(draft, CategoryInternalMemo, "รายงานผลการตรวจสอบ")
	assert.True(t, verdict.Valid, "either pattern group should satisfy the check: %v", verdict.Errors)

	// Neither variant present.
	draft = strings.Replace(validInternalMemo(""), "เรื่องเพื่อพิจารณา", "หัวข้ออื่น", 1)
	verdict = v.Validate(draft, CategoryInternalMemo, "รายงานผล")
	require.False(t, verdict.Valid)
	require.Len(t, verdict.Errors, 1)
	assert.Contains(t, verdict.Errors[0], "Missing content section")
	assert.Contains(t, verdict.Errors[0], "หรือ")
}

func TestValidateDocNumberFidelityIgnoresSpacing(t *testing.T) {
	v := NewValidator(nil)
	request := "ตามหนังสือ สทช 401/2568 ขออนุมัติเดินทางไปจังหวัดเชียงใหม่"

	// Draft renders the number without the internal space.
	draft := strings.Replace(validInternalMemo(""), "สทช 401/2568", "สทช401/2568", 1)
	verdict := v.Validate(draft, CategoryInternalMemo, request)
	assert.True(t, verdict.Valid, "whitespace differences must not fail fidelity: %v", verdict.Errors)

	// Draft substitutes a different number entirely.
	draft = strings.Replace(validInternalMemo(""), "สทช 401/2568", "สทช 999/2500", 1)
	verdict = v.Validate(draft, CategoryInternalMemo, request)
	require.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors[0], "User doc number not used")
	assert.Contains(t, verdict.Errors[0], "สทช 401/2568")
}

func TestValidateLocationFidelity(t *testing.T) {
	v := NewValidator(nil)
	request := "ขออนุมัติเดินทางไปจังหวัดภูเก็ตเพื่อตรวจสอบ"

	verdict := v.Validate(validInternalMemo(""), CategoryInternalMemo, request)
	require.False(t, verdict.Valid, "draft mentions เชียงใหม่, request asked for ภูเก็ต")
	assert.Contains(t, verdict.Errors[0], "User location not used")
	assert.Contains(t, verdict.Errors[0], "ภูเก็ต")
}

func TestValidateMinimumLength(t *testing.T) {
	v := NewValidator(nil)

	verdict := v.Validate("สั้นเกินไป", CategoryExternalLetter, "ขอ")
	require.False(t, verdict.Valid)
	assert.Contains(t, verdict.Errors, "Document too short")
}

func TestValidateAccumulatesErrors(t *testing.T) {
	v := NewValidator(nil)

	verdict := v.Validate("[SUBJECT]", CategoryInternalMemo, "ขออนุมัติไปจังหวัดภูเก็ตเพื่อตรวจสอบ")

	require.False(t, verdict.Valid)
	// Placeholder, seven missing sections, content pattern, location, length.
	assert.GreaterOrEqual(t, len(verdict.Errors), 5,
		"checks must accumulate rather than short-circuit: %v", verdict.Errors)
}

func TestValidateIsIdempotent(t *testing.T) {
	v := NewValidator(nil)
	draft := validInternalMemo("[ORGANIZATION]")
	request := "ขออนุมัติเดินทางไปจังหวัดเชียงใหม่"

	first := v.Validate(draft, CategoryInternalMemo, request)
	for i := 0; i < 5; i++ {
		again := v.Validate(draft, CategoryInternalMemo, request)
		assert.Equal(t, first, again)
	}
}
