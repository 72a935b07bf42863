package document

import "strings"

// Placeholder describes one bracketed token that may appear in a skeleton.
type Placeholder struct {
	Name        string
	Description string
	Example     string
	Required    bool
}

// placeholderSpecs is the full placeholder vocabulary, in the order
// descriptions are rendered into generation prompts. Every [NAME] token
// used by any skeleton below must have an entry here.
var placeholderSpecs = []Placeholder{
	{"AGENCY", "ชื่อส่วนราชการเจ้าของหนังสือ", "สำนักงาน กสทช. ภาค ๓", true},
	{"DOC_NUMBER", "เลขที่หนังสือ", "สทช ๔๐๑/๒๕๖๘", true},
	{"DATE", "วันที่ออกหนังสือ (พ.ศ.)", "๑๒ มกราคม ๒๕๖๘", true},
	{"SUBJECT", "ชื่อเรื่องของหนังสือ", "ขออนุมัติเดินทางไปราชการ", true},
	{"TO", "ผู้รับหนังสือ", "ผู้อำนวยการสำนักงาน กสทช. ภาค ๓", true},
	{"BACKGROUND", "ความเป็นมาของเรื่อง", "ตามที่สำนักงานได้รับแจ้งเรื่องการใช้คลื่นความถี่ในพื้นที่", true},
	{"CONTENT", "เนื้อหาหลักของหนังสือ", "ขออนุมัติให้เจ้าหน้าที่เดินทางไปตรวจสอบคลื่นความถี่", true},
	{"PURPOSE", "วัตถุประสงค์ท้ายหนังสือ", "และอนุมัติค่าใช้จ่ายในการเดินทาง", false},
	{"SIGNATURE", "ชื่อผู้ลงนาม", "(นายสมชาย ใจดี)", true},
	{"POSITION", "ตำแหน่งผู้ลงนาม", "ผู้อำนวยการส่วนตรวจสอบคลื่นความถี่", true},
	{"ADDRESS", "ที่อยู่ส่วนราชการ", "สำนักงาน กสทช. ถนนพหลโยธิน กรุงเทพฯ ๑๐๔๐๐", false},
	{"REFERENCE", "หนังสือที่อ้างถึง", "หนังสือสำนักงาน กสทช. ที่ สทช ๑๒๓/๒๕๖๗", false},
	{"ATTACHMENT", "สิ่งที่ส่งมาด้วย", "รายงานผลการตรวจสอบ จำนวน ๑ ชุด", false},
	{"ORGANIZATION", "หน่วยงานหรือบริษัทภายนอกที่เกี่ยวข้อง", "บริษัทโทรคมนาคมแห่งชาติ จำกัด", false},
	{"MEETING_NUMBER", "ครั้งที่ของการประชุม", "๓/๒๕๖๘", true},
	{"LOCATION", "สถานที่ประชุมหรือปฏิบัติงาน", "ห้องประชุมชั้น ๒ สำนักงาน กสทช.", true},
	{"ATTENDEES", "รายชื่อผู้เข้าประชุมพร้อมตำแหน่ง", "๑. นายสมชาย ใจดี ประธาน", true},
	{"START_TIME", "เวลาเริ่มประชุม", "๐๙.๓๐ น.", false},
	{"END_TIME", "เวลาเลิกประชุม", "๑๒.๐๐ น.", false},
	{"AGENDA", "ชื่อระเบียบวาระ", "เรื่องที่ประธานแจ้งให้ที่ประชุมทราบ", true},
	{"RESOLUTION", "มติของที่ประชุม", "เห็นชอบตามที่ฝ่ายเลขานุการเสนอ", true},
}

// PlaceholderSpecs returns the placeholder vocabulary in rendering order.
func PlaceholderSpecs() []Placeholder {
	out := make([]Placeholder, len(placeholderSpecs))
	copy(out, placeholderSpecs)
	return out
}

const internalMemoRequestTemplate = `บันทึกข้อความ

ส่วนราชการ  [AGENCY]
ที่  [DOC_NUMBER]                                         วันที่  [DATE]
เรื่อง  [SUBJECT]
เรียน  [TO]

เรื่องเดิม
         [BACKGROUND]

เรื่องเพื่อพิจารณา
         [CONTENT]

         จึงเรียนมาเพื่อโปรดพิจารณา[PURPOSE]

                                         [SIGNATURE]
                                         [POSITION]`

const internalMemoReportTemplate = `บันทึกข้อความ

ส่วนราชการ  [AGENCY]
ที่  [DOC_NUMBER]                                         วันที่  [DATE]
เรื่อง  [SUBJECT]
เรียน  [TO]

เรื่องเดิม
         [BACKGROUND]

ข้อเท็จจริง
         [CONTENT]

         จึงเรียนมาเพื่อโปรดทราบ[PURPOSE]

                                         [SIGNATURE]
                                         [POSITION]`

const externalLetterTemplate = `ที่ [DOC_NUMBER]                                         [ADDRESS]

                                                  [DATE]

เรื่อง  [SUBJECT]
เรียน  [TO]
อ้างถึง  [REFERENCE]
สิ่งที่ส่งมาด้วย  [ATTACHMENT]

         [BACKGROUND]

         [CONTENT]

         จึงเรียนมาเพื่อโปรด[PURPOSE]

ขอแสดงความนับถือ

[SIGNATURE]
[POSITION]`

const meetingMinutesTemplate = `รายงานการประชุม[SUBJECT]
ครั้งที่ [MEETING_NUMBER]
วันที่ [DATE]
ณ [LOCATION]

ผู้เข้าประชุม
[ATTENDEES]

เริ่มประชุมเวลา [START_TIME]

ระเบียบวาระที่ ๑ [AGENDA]
         [CONTENT]
         มติที่ประชุม [RESOLUTION]

เลิกประชุมเวลา [END_TIME]

[SIGNATURE]
เลขานุการ ผู้จดรายงานการประชุม`

// DraftTemplate returns the placeholder-annotated skeleton for a category.
// Internal memos have two variants: isRequest selects the approval/request
// form (เรื่องเพื่อพิจารณา), otherwise the report form (ข้อเท็จจริง).
// Other categories have a single skeleton and ignore isRequest.
func DraftTemplate(c Category, isRequest bool) string {
	switch c {
	case CategoryExternalLetter:
		return externalLetterTemplate
	case CategoryMeetingMinutes:
		return meetingMinutesTemplate
	default:
		if isRequest {
			return internalMemoRequestTemplate
		}
		return internalMemoReportTemplate
	}
}

// TemplatePlaceholders filters the placeholder vocabulary down to the
// tokens actually present in the given skeleton.
func TemplatePlaceholders(skeleton string) []Placeholder {
	var out []Placeholder
	for _, p := range placeholderSpecs {
		if strings.Contains(skeleton, "["+p.Name+"]") {
			out = append(out, p)
		}
	}
	return out
}

var fallbackExamples = map[Category]string{
	CategoryInternalMemo: `บันทึกข้อความ

ส่วนราชการ  สำนักงาน กสทช. ภาค ๓ ส่วนตรวจสอบคลื่นความถี่
ที่  สทช ๔๐๑/๒๕๖๘                                         วันที่  ๑๒ มกราคม ๒๕๖๘
เรื่อง  ขออนุมัติเดินทางไปราชการเพื่อตรวจสอบคลื่นความถี่
เรียน  ผู้อำนวยการสำนักงาน กสทช. ภาค ๓

เรื่องเดิม
         ตามที่สำนักงานได้รับเรื่องร้องเรียนการรบกวนคลื่นความถี่วิทยุในพื้นที่จังหวัดเชียงราย
และได้มอบหมายให้ส่วนตรวจสอบคลื่นความถี่ดำเนินการตรวจสอบข้อเท็จจริง นั้น

เรื่องเพื่อพิจารณา
         เพื่อให้การดำเนินการเป็นไปด้วยความเรียบร้อย จึงขออนุมัติให้เจ้าหน้าที่จำนวน ๒ ราย
เดินทางไปราชการเพื่อตรวจสอบคลื่นความถี่ ระหว่างวันที่ ๒๐ - ๒๒ มกราคม ๒๕๖๘
พร้อมทั้งขออนุมัติค่าใช้จ่ายในการเดินทางตามระเบียบ

         จึงเรียนมาเพื่อโปรดพิจารณาอนุมัติ

                                         (นายสมชาย ใจดี)
                                         ผู้อำนวยการส่วนตรวจสอบคลื่นความถี่`,

	CategoryExternalLetter: `ที่ สทช ๔๐๒/๒๕๖๘                                         สำนักงาน กสทช. ภาค ๓
                                                  ถนนพหลโยธิน กรุงเทพฯ ๑๐๔๐๐

                                                  ๑๕ กุมภาพันธ์ ๒๕๖๘

เรื่อง  ขอเชิญร่วมตรวจสอบสถานีวิทยุคมนาคม
เรียน  ผู้จัดการบริษัทโทรคมนาคมแห่งชาติ จำกัด
อ้างถึง  หนังสือสำนักงาน กสทช. ที่ สทช ๑๒๓/๒๕๖๗

         ด้วยสำนักงาน กสทช. ได้รับเรื่องร้องเรียนการรบกวนสัญญาณวิทยุคมนาคมในพื้นที่
จึงขอเชิญผู้แทนของบริษัทร่วมตรวจสอบสถานีวิทยุคมนาคม ในวันที่ ๒๕ กุมภาพันธ์ ๒๕๖๘
เวลา ๑๐.๐๐ น. ณ ที่ตั้งสถานีดังกล่าว

         จึงเรียนมาเพื่อโปรดพิจารณามอบหมายผู้แทนเข้าร่วมการตรวจสอบ

ขอแสดงความนับถือ

(นางสาวสุดา รักงาน)
ผู้อำนวยการสำนักงาน กสทช. ภาค ๓`,

	CategoryMeetingMinutes: `รายงานการประชุมคณะทำงานตรวจสอบการใช้คลื่นความถี่
ครั้งที่ ๓/๒๕๖๘
วันที่ ๑๐ มีนาคม ๒๕๖๘
ณ ห้องประชุมชั้น ๒ สำนักงาน กสทช. ภาค ๓

ผู้เข้าประชุม
๑. นายสมชาย ใจดี        ประธานคณะทำงาน
๒. นางสาวสุดา รักงาน    คณะทำงาน
๓. นายวิชัย ขยันยิ่ง      เลขานุการ

เริ่มประชุมเวลา ๐๙.๓๐ น.

ระเบียบวาระที่ ๑ เรื่องที่ประธานแจ้งให้ที่ประชุมทราบ
         ประธานแจ้งผลการตรวจสอบคลื่นความถี่ประจำเดือนกุมภาพันธ์ ๒๕๖๘
         มติที่ประชุม รับทราบ

ระเบียบวาระที่ ๒ เรื่องเพื่อพิจารณา
         ฝ่ายเลขานุการเสนอแผนการตรวจสอบสถานีวิทยุในพื้นที่จังหวัดเชียงใหม่
         มติที่ประชุม เห็นชอบตามที่ฝ่ายเลขานุการเสนอ

เลิกประชุมเวลา ๑๒.๐๐ น.

(นายวิชัย ขยันยิ่ง)
เลขานุการ ผู้จดรายงานการประชุม`,
}

// FallbackExample returns the static category example used when retrieved
// context is too sparse to ground generation. Empty when none exists.
func FallbackExample(c Category) string {
	return fallbackExamples[c]
}
