package document

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// MinDocumentLength is the minimum acceptable draft length in runes.
const MinDocumentLength = 200

// maxReportedPlaceholders bounds how many surviving placeholder names are
// named in a single error.
const maxReportedPlaceholders = 5

var unreplacedRe = regexp.MustCompile(`\[([A-Z_]+)\]`)

// Verdict is the outcome of validating one draft. Errors is ordered and
// human-readable; Valid is true iff Errors is empty.
type Verdict struct {
	Errors []string
	Valid  bool
}

// Validator applies category-specific structural and fidelity rules to a
// draft. Validation is deterministic: the same draft always yields the
// same verdict. Checks are intentionally literal substring matches; the
// generation prompts are tuned against exactly these rules, so do not
// upgrade them to structural parsing.
type Validator struct {
	logger *zap.Logger
}

// NewValidator creates a Validator. A nil logger disables logging.
func NewValidator(logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{logger: logger}
}

// Validate checks a draft against the rules for its category and against
// the data the user actually supplied in the original request. All checks
// run; errors accumulate rather than short-circuiting.
func (v *Validator) Validate(draft string, category Category, originalRequest string) Verdict {
	var errs []string

	// 1. Surviving placeholders.
	if matches := unreplacedRe.FindAllStringSubmatch(draft, -1); len(matches) > 0 {
		names := make([]string, 0, maxReportedPlaceholders)
		for _, m := range matches {
			names = append(names, m[1])
			if len(names) == maxReportedPlaceholders {
				break
			}
		}
		errs = append(errs, fmt.Sprintf("Unreplaced placeholders: %s", strings.Join(names, ", ")))
	}

	info := Get(category)

	// 2. Required section markers.
	for _, section := range info.RequiredSections {
		if !strings.Contains(draft, section) {
			errs = append(errs, fmt.Sprintf("Missing required section: %s", section))
		}
	}

	// 3. Disjunctive content-pattern groups: at least one group must be
	// fully present.
	if len(info.ContentPatterns) > 0 && !contentPatternSatisfied(draft, info.ContentPatterns) {
		errs = append(errs, fmt.Sprintf("Missing content section: ต้องมี %s", describePatterns(info.ContentPatterns)))
	}

	// 4. Fidelity: values the user supplied must survive into the draft.
	// This guards against the model substituting template or example data.
	fields := Extract(originalRequest)

	if fields.DocNumber != "" {
		want := strings.ReplaceAll(fields.DocNumber, " ", "")
		if !strings.Contains(strings.ReplaceAll(draft, " ", ""), want) {
			errs = append(errs, fmt.Sprintf("User doc number not used: %s", fields.DocNumber))
		}
	}

	if fields.Location != "" && !strings.Contains(draft, fields.Location) {
		errs = append(errs, fmt.Sprintf("User location not used: %s", fields.Location))
	}

	// 5. Minimum length.
	if utf8.RuneCountInString(draft) < MinDocumentLength {
		errs = append(errs, "Document too short")
	}

	if len(errs) > 0 {
		v.logger.Info("draft validation failed",
			zap.String("category", string(category)),
			zap.Strings("errors", errs))
		return Verdict{Errors: errs}
	}
	return Verdict{Valid: true}
}

func contentPatternSatisfied(draft string, groups [][]string) bool {
	for _, group := range groups {
		all := true
		for _, marker := range group {
			if !strings.Contains(draft, marker) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func describePatterns(groups [][]string) string {
	quoted := make([]string, len(groups))
	for i, group := range groups {
		quoted[i] = "'" + strings.Join(group, "' และ '") + "'"
	}
	return strings.Join(quoted, " หรือ ")
}
