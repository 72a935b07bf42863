// Package document holds the static knowledge about Thai official document
// categories: validation rules, placeholder templates, fallback examples, and
// the deterministic extraction and validation logic built on top of them.
// The tables are process-wide and read-only; they are loaded once at init.
package document

import "fmt"

// Category identifies one of the supported document kinds. The value is the
// Thai category name itself, which is also what the classification prompt
// asks the model to answer with.
type Category string

const (
	// CategoryInternalMemo is an internal memo (บันทึกข้อความ).
	CategoryInternalMemo Category = "หนังสือภายใน"
	// CategoryExternalLetter is a letter to an outside organization.
	CategoryExternalLetter Category = "หนังสือภายนอก"
	// CategoryMeetingMinutes is a committee meeting report.
	CategoryMeetingMinutes Category = "รายงานการประชุม"
)

// DefaultCategory is used when classification cannot resolve a category.
const DefaultCategory = CategoryInternalMemo

// Info describes a category's display names and validation rules.
type Info struct {
	Name        string
	NameEN      string
	Description string

	// Keywords hint at this category during search-query construction.
	Keywords []string

	// RequiredSections must all appear as literal substrings of a draft.
	RequiredSections []string

	// OptionalSections may appear but are never enforced.
	OptionalSections []string

	// ContentPatterns is a disjunction of marker groups: a draft satisfies
	// the check when every marker of at least one group is present.
	// Empty means no content-pattern check for this category.
	ContentPatterns [][]string

	// SearchHeader is the generic header term prefixed to retrieval queries.
	SearchHeader string
}

var categories = map[Category]Info{
	CategoryInternalMemo: {
		Name:        "หนังสือภายใน",
		NameEN:      "Internal Memo",
		Description: "บันทึกข้อความภายในหน่วยงาน เช่น ขออนุมัติ รายงานผล เชิญประชุม",
		Keywords: []string{
			"บันทึกข้อความ", "ขออนุมัติ", "รายงาน", "เรียน", "หน่วยงาน",
			"ตรวจสอบ", "เชิญประชุม", "แจ้ง", "ขอความอนุเคราะห์",
			"เดินทาง", "คลื่นความถี่", "ทุบทำลาย", "สถานี",
		},
		RequiredSections: []string{
			"บันทึกข้อความ",
			"ส่วนราชการ",
			"ที่",
			"วันที่",
			"เรื่อง",
			"เรียน",
			"เรื่องเดิม",
		},
		OptionalSections: []string{
			"จึงเรียนมาเพื่อ",
		},
		ContentPatterns: [][]string{
			{"เรื่องเพื่อพิจารณา"}, // requests and approvals
			{"ข้อเท็จจริง"},        // reports
		},
		SearchHeader: "บันทึกข้อความ",
	},
	CategoryExternalLetter: {
		Name:        "หนังสือภายนอก",
		NameEN:      "External Letter",
		Description: "หนังสือติดต่อภายนอกหน่วยงาน เช่น เชิญตรวจร่วม ขอรื้อถอน ขอขยายสัญญาณ",
		Keywords: []string{
			"เรียน", "อ้างถึง", "ขอแสดงความนับถือ", "สิ่งที่ส่งมาด้วย",
			"บริษัท", "ผู้จัดการ", "ผู้อำนวยการ", "เชิญ", "ขอความอนุเคราะห์",
			"ตรวจสอบร่วม", "รื้อถอน", "ขยายสัญญาณ",
		},
		RequiredSections: []string{
			"เรื่อง",
			"เรียน",
			"ขอแสดงความนับถือ",
		},
		OptionalSections: []string{
			"อ้างถึง",
			"สิ่งที่ส่งมาด้วย",
			"ที่อยู่",
		},
		SearchHeader: "หนังสือภายนอก",
	},
	CategoryMeetingMinutes: {
		Name:        "รายงานการประชุม",
		NameEN:      "Meeting Minutes",
		Description: "บันทึกรายงานการประชุมคณะกรรมการหรือคณะทำงาน",
		Keywords: []string{
			"รายงานการประชุม", "คณะกรรมการ", "ครั้งที่", "ผู้เข้าประชุม",
			"ระเบียบวาระ", "มติที่ประชุม", "ประธาน", "เลขานุการ",
			"เริ่มประชุม", "เลิกประชุม",
		},
		RequiredSections: []string{
			"รายงานการประชุม",
			"ผู้เข้าประชุม",
			"ระเบียบวาระ",
			"มติที่ประชุม",
		},
		OptionalSections: []string{
			"ครั้งที่",
			"เริ่มประชุมเวลา",
			"เลิกประชุมเวลา",
			"ณ",
		},
		SearchHeader: "รายงานการประชุม",
	},
}

// categoryOrder fixes iteration order for classification and listings.
var categoryOrder = []Category{
	CategoryInternalMemo,
	CategoryExternalLetter,
	CategoryMeetingMinutes,
}

// Categories returns all known categories in a stable order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Get returns the Info for a category, falling back to the default
// category's Info for unknown values.
func Get(c Category) Info {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[DefaultCategory]
}

// RequiredSections returns the section markers a draft of this category
// must contain.
func RequiredSections(c Category) []string {
	return Get(c).RequiredSections
}

// ParseCategory resolves user input to a category. It accepts the 1-based
// index ("1".."3") or the Thai category name.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "1":
		return CategoryInternalMemo, true
	case "2":
		return CategoryExternalLetter, true
	case "3":
		return CategoryMeetingMinutes, true
	}
	for _, c := range categoryOrder {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// ClassificationPrompt renders the closed-set classification prompt for a
// user request. The model is expected to answer with one category name;
// the caller matches by substring.
func ClassificationPrompt(userRequest string) string {
	return fmt.Sprintf(`คุณเป็นผู้เชี่ยวชาญในการจำแนกประเภทหนังสือราชการไทย

จากคำขอของผู้ใช้ด้านล่าง ให้จำแนกว่าเป็นหนังสือประเภทใด:

1. หนังสือภายใน - บันทึกข้อความภายในหน่วยงาน เช่น ขออนุมัติ รายงานผล เชิญประชุม
2. หนังสือภายนอก - หนังสือติดต่อภายนอกหน่วยงาน เช่น เชิญตรวจร่วม ขอรื้อถอน
3. รายงานการประชุม - บันทึกรายงานการประชุมคณะกรรมการ

คำขอ: %s

ตอบเฉพาะชื่อประเภท (หนังสือภายใน, หนังสือภายนอก, หรือ รายงานการประชุม):`, userRequest)
}
