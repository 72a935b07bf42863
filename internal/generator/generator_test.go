package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sarabun/internal/document"
	"sarabun/internal/llm"
	"sarabun/internal/rag"
)

type stubClient struct {
	response  string
	err       error
	gotPrompt string
}

func (c *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.gotPrompt = prompt
	return c.response, c.err
}

func (c *stubClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.response, c.err
}

func (c *stubClient) CompleteWithHistory(ctx context.Context, systemPrompt string, history []llm.Message, userPrompt string) (string, error) {
	return c.response, c.err
}

func TestUseRequestTemplate(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    bool
	}{
		{"approval phrase", "ขออนุมัติเดินทางไปราชการ", true},
		{"consideration phrase", "ขอพิจารณาจัดสรรงบประมาณ", true},
		{"report phrase", "รายงานผลการตรวจสอบสถานีวิทยุ", false},
		{"inspection result", "แจ้งผลการตรวจสอบคลื่นความถี่", false},
		{"approval wins over report", "ขออนุมัติจัดทำรายงานผลประจำปี", true},
		{"generic kho", "ขอเชิญประชุมคณะทำงาน", true},
		{"neither", "เรียนแจ้งกำหนดการประชุม", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UseRequestTemplate(tt.request))
		})
	}
}

func TestBuildPromptContainsSkeletonAndData(t *testing.T) {
	request := "ขออนุมัติเดินทางไปจังหวัดเชียงใหม่ วันที่ 15-17 มกราคม 2569"
	fields := document.Extract(request)
	rctx := &rag.Context{Passages: []string{"ตัวอย่างบันทึกข้อความจากคลังเอกสาร"}}

	prompt := BuildPrompt(request, document.CategoryInternalMemo, fields, rctx)

	assert.Contains(t, prompt, request)
	assert.Contains(t, prompt, "บันทึกข้อความ")
	assert.Contains(t, prompt, "เรื่องเพื่อพิจารณา", "approval request selects the request variant skeleton")
	assert.Contains(t, prompt, "สถานที่/จังหวัด: เชียงใหม่")
	assert.Contains(t, prompt, "ช่วงวันที่: 15-17 มกราคม 2569")
	assert.Contains(t, prompt, "ตัวอย่างอ้างอิง")
	assert.Contains(t, prompt, "ตัวอย่างบันทึกข้อความจากคลังเอกสาร")
}

func TestBuildPromptOnlyDescribesUsedPlaceholders(t *testing.T) {
	prompt := BuildPrompt("ขออนุมัติเดินทาง", document.CategoryInternalMemo,
		document.ExtractedFields{}, nil)

	skeleton := document.DraftTemplate(document.CategoryInternalMemo, true)
	for _, p := range document.TemplatePlaceholders(skeleton) {
		assert.Contains(t, prompt, "["+p.Name+"]")
	}
	assert.NotContains(t, prompt, "[AGENDA]", "meeting-only placeholders stay out of memo prompts")
}

func TestBuildPromptWithoutRetrievedContext(t *testing.T) {
	prompt := BuildPrompt("ขออนุมัติ", document.CategoryExternalLetter,
		document.ExtractedFields{}, nil)

	assert.Contains(t, prompt, "(ใช้รูปแบบมาตรฐานราชการ)")
	assert.NotContains(t, prompt, "ตัวอย่างอ้างอิง")
}

func TestBuildPromptTruncatesLongExample(t *testing.T) {
	long := strings.Repeat("ก", ExampleRuneBudget+500)
	rctx := &rag.Context{Passages: []string{long}}

	prompt := BuildPrompt("ขอ", document.CategoryInternalMemo, document.ExtractedFields{}, rctx)

	assert.NotContains(t, prompt, long)
	assert.Contains(t, prompt, strings.Repeat("ก", ExampleRuneBudget))
}

func TestGenerateReturnsDraftVerbatim(t *testing.T) {
	client := &stubClient{response: "  บันทึกข้อความ ...ฉบับร่าง  "}
	g := New(client, nil)

	draft, err := g.Generate(context.Background(), "ขออนุมัติ",
		document.CategoryInternalMemo, document.ExtractedFields{}, nil)

	require.NoError(t, err)
	assert.Equal(t, "  บันทึกข้อความ ...ฉบับร่าง  ", draft, "no post-processing, not even trimming")
	assert.NotEmpty(t, client.gotPrompt)
}

func TestGeneratePropagatesCompletionFailure(t *testing.T) {
	boom := errors.New("503 service unavailable")
	g := New(&stubClient{err: boom}, nil)

	_, err := g.Generate(context.Background(), "ขอ",
		document.CategoryInternalMemo, document.ExtractedFields{}, nil)

	assert.ErrorIs(t, err, boom)
}
