// Package generator assembles generation prompts from templates,
// placeholders, extracted user data, and retrieved context, and invokes
// the completion client to produce a draft.
package generator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"sarabun/internal/document"
	"sarabun/internal/llm"
	"sarabun/internal/rag"
)

// ExampleRuneBudget bounds how much of a reference example is embedded in
// the prompt.
const ExampleRuneBudget = 1500

var requestPhrases = []string{"ขออนุมัติ", "ขอพิจารณา"}

var reportPhrases = []string{"รายงานผล", "ผลการตรวจสอบ", "ผลการดำเนินการ"}

// Generator produces document drafts by filling placeholder templates
// through the completion client. The draft is returned verbatim; no
// post-processing happens here.
type Generator struct {
	client llm.Client
	logger *zap.Logger
}

// New creates a Generator. A nil logger disables logging.
func New(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, logger: logger}
}

// Generate builds the prompt for the request and invokes the completion
// client once. Completion failures propagate unchanged.
func (g *Generator) Generate(ctx context.Context, request string, category document.Category, fields document.ExtractedFields, rctx *rag.Context) (string, error) {
	prompt := BuildPrompt(request, category, fields, rctx)

	draft, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	g.logger.Info("draft generated",
		zap.String("category", string(category)),
		zap.Int("draft_runes", utf8.RuneCountInString(draft)))
	return draft, nil
}

// UseRequestTemplate decides between the request and report variants of
// the internal memo. An approval phrase always wins, even when a report
// phrase is also present; absent both, a generic "ขอ" selects the request
// variant.
func UseRequestTemplate(request string) bool {
	for _, p := range requestPhrases {
		if strings.Contains(request, p) {
			return true
		}
	}
	for _, p := range reportPhrases {
		if strings.Contains(request, p) {
			return false
		}
	}
	return strings.Contains(request, "ขอ")
}

// BuildPrompt assembles the full generation prompt: role framing, the
// placeholder-annotated skeleton, descriptions for the placeholders that
// skeleton actually uses, the user-supplied data block, at most one
// reference example, and the generation rules.
func BuildPrompt(request string, category document.Category, fields document.ExtractedFields, rctx *rag.Context) string {
	info := document.Get(category)
	skeleton := document.DraftTemplate(category, UseRequestTemplate(request))

	var placeholderLines []string
	for _, p := range document.TemplatePlaceholders(skeleton) {
		req := "ถ้ามี"
		if p.Required {
			req = "จำเป็น"
		}
		placeholderLines = append(placeholderLines,
			fmt.Sprintf("  - [%s]: %s (%s)", p.Name, p.Description, req),
			fmt.Sprintf("    ตัวอย่าง: %s", p.Example))
	}

	var userData strings.Builder
	if fields.DocNumber != "" {
		fmt.Fprintf(&userData, "\n- เลขที่หนังสือ: %s", fields.DocNumber)
	}
	if fields.Location != "" {
		fmt.Fprintf(&userData, "\n- สถานที่/จังหวัด: %s", fields.Location)
	}
	if fields.Year != "" {
		fmt.Fprintf(&userData, "\n- ปี พ.ศ.: %s", fields.Year)
	}
	if fields.DateRange != "" {
		fmt.Fprintf(&userData, "\n- ช่วงวันที่: %s", fields.DateRange)
	}
	if fields.Organization != "" {
		fmt.Fprintf(&userData, "\n- หน่วยงาน/บริษัท: %s", fields.Organization)
	}

	reference := "(ใช้รูปแบบมาตรฐานราชการ)"
	if rctx != nil && len(rctx.Passages) > 0 {
		example := truncateRunes(rctx.Passages[0], ExampleRuneBudget)
		reference = fmt.Sprintf("--- ตัวอย่างอ้างอิง (ดูรูปแบบเท่านั้น) ---\n%s", example)
	}

	return fmt.Sprintf(`<role>
คุณเป็นเจ้าหน้าที่ธุรการผู้เชี่ยวชาญในการร่างหนังสือราชการไทยตามระเบียบสำนักนายกรัฐมนตรี
</role>

<task>
กรอกแบบฟอร์มหนังสือราชการโดยแทนที่ [PLACEHOLDER] ทุกตัวด้วยเนื้อหาจริง
</task>

<input>
คำขอ: %s
ประเภท: %s (%s)%s
</input>

<template>
%s
</template>

<placeholders>
%s
</placeholders>

<reference>
%s
</reference>

<rules>
1. แทนที่ [PLACEHOLDER] ทุกตัวด้วยเนื้อหาจริงที่เหมาะสม
2. ห้ามมี [ หรือ ] เหลือในเอกสารสุดท้าย
3. ใช้ข้อมูลจาก <input> เป็นหลัก ถ้าไม่มีให้สร้างข้อมูลที่สมเหตุสมผล
4. ใช้เลขไทย ๑. ๒. ๓. สำหรับลำดับหัวข้อ
5. ใช้ปี พ.ศ. (เช่น ๒๕๖๘) ไม่ใช่ ค.ศ.
6. รักษาโครงสร้างและการย่อหน้าตาม <template>
7. ภาษาราชการ: ใช้คำสุภาพ เป็นทางการ
</rules>

<output_format>
ตอบเฉพาะเอกสารที่กรอกแล้วเท่านั้น ไม่ต้องมีคำอธิบายนำหรือสรุปท้าย
เริ่มต้นด้วย "%s" หรือเนื้อหาเอกสารทันที
</output_format>

<document>`,
		request,
		info.Name, info.NameEN, userData.String(),
		skeleton,
		strings.Join(placeholderLines, "\n"),
		reference,
		info.SearchHeader)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
