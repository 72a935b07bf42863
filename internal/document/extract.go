package document

import "regexp"

// ExtractedFields holds values parsed from a raw user request. Fields are
// heuristic: an empty string means the field was not present, and that is
// a perfectly valid outcome. Values are never invented from template or
// example data.
type ExtractedFields struct {
	Location     string // province or area name
	DocNumber    string // agency reference number, e.g. "สทช 401/2568"
	Year         string // four-digit Buddhist-era year
	DateRange    string // e.g. "15-17 มกราคม 2569"
	Organization string // company name following "บริษัท"
}

// Empty reports whether no field was extracted.
func (f ExtractedFields) Empty() bool {
	return f == ExtractedFields{}
}

// Extraction anchors on literal Thai markers so false positives stay rare;
// false negatives are acceptable. The location patterns stop at common
// action words so that "จังหวัดเชียงใหม่ตรวจ..." yields "เชียงใหม่".
var (
	locationProvinceRe = regexp.MustCompile(`จังหวัด\s*([ก-๙]+?)(?:ตรวจ|เพื่อ|ระหว่าง|วันที่|ใน|และ|$|\s)`)
	locationAreaRe     = regexp.MustCompile(`พื้นที่\s*([ก-๙]+?)(?:ตรวจ|เพื่อ|ระหว่าง|วันที่|ใน|และ|$|\s)`)
	docNumberRe        = regexp.MustCompile(`(สทช\s*\d+[./]?\d*)`)
	yearRe             = regexp.MustCompile(`(25\d{2}|256\d)`)
	dateRangeRe        = regexp.MustCompile(`วันที่\s*(\d+\s*[-–]\s*\d+\s*\S+\s*\d{4})`)
	organizationRe     = regexp.MustCompile(`บริษัท\s*([^\s,]+)`)
)

// Extract parses salient fields out of a free-text request. It is a pure
// function and never fails; absent markers simply leave fields empty.
func Extract(request string) ExtractedFields {
	var f ExtractedFields

	if m := locationProvinceRe.FindStringSubmatch(request); m != nil {
		f.Location = m[1]
	} else if m := locationAreaRe.FindStringSubmatch(request); m != nil {
		f.Location = m[1]
	}

	if m := docNumberRe.FindStringSubmatch(request); m != nil {
		f.DocNumber = m[1]
	}

	if m := yearRe.FindStringSubmatch(request); m != nil {
		f.Year = m[1]
	}

	if m := dateRangeRe.FindStringSubmatch(request); m != nil {
		f.DateRange = m[1]
	}

	if m := organizationRe.FindStringSubmatch(request); m != nil {
		f.Organization = m[1]
	}

	return f
}
