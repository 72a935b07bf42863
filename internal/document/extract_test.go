package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		request string
		want    ExtractedFields
	}{
		{
			name:    "province followed by action word",
			request: "ขออนุมัติเดินทางไปจังหวัดเชียงใหม่ตรวจสอบคลื่นความถี่",
			want: ExtractedFields{
				Location: "เชียงใหม่",
			},
		},
		{
			name:    "full travel request",
			request: "ขออนุมัติเดินทางไปราชการจังหวัดเชียงใหม่ วันที่ 15-17 มกราคม 2569",
			want: ExtractedFields{
				Location:  "เชียงใหม่",
				Year:      "2569",
				DateRange: "15-17 มกราคม 2569",
			},
		},
		{
			name:    "doc number with slash",
			request: "ตามหนังสือ สทช 401/2568 ขอรายงานผล",
			want: ExtractedFields{
				DocNumber: "สทช 401/2568",
				Year:      "2568",
			},
		},
		{
			name:    "area instead of province",
			request: "ตรวจสอบพื้นที่ภูเก็ตเพื่อดำเนินการ",
			want: ExtractedFields{
				Location: "ภูเก็ต",
			},
		},
		{
			name:    "organization",
			request: "เชิญ บริษัท ทีโอทีจำกัด ตรวจสอบร่วม",
			want: ExtractedFields{
				Organization: "ทีโอทีจำกัด",
			},
		},
		{
			name:    "en dash date range",
			request: "ประชุมวันที่ 3–5 กุมภาพันธ์ 2568",
			want: ExtractedFields{
				Year:      "2568",
				DateRange: "3–5 กุมภาพันธ์ 2568",
			},
		},
		{
			name:    "nothing to extract",
			request: "ขอเชิญประชุมคณะทำงาน",
			want:    ExtractedFields{},
		},
		{
			name:    "empty request",
			request: "",
			want:    ExtractedFields{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.request)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract(%q) mismatch (-want +got):\n%s", tt.request, diff)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	request := "ขออนุมัติเดินทางไปจังหวัดเชียงใหม่ วันที่ 15-17 มกราคม 2569 ตามหนังสือ สทช 401/2568"
	first := Extract(request)
	for i := 0; i < 10; i++ {
		if got := Extract(request); got != first {
			t.Fatalf("Extract changed between calls: %+v vs %+v", first, got)
		}
	}
}

func TestExtractedFieldsEmpty(t *testing.T) {
	if !(ExtractedFields{}).Empty() {
		t.Error("zero value should report Empty")
	}
	if (ExtractedFields{Year: "2568"}).Empty() {
		t.Error("populated fields should not report Empty")
	}
}
