package parsing

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sarkariportal/backend/internal/types"
)

// RuleExtractor is the deterministic, offline extraction strategy. It scans
// for the section layouts government notifications commonly use (important
// dates, application fee, age limit, vacancy tables, selection process,
// physical standards) and leaves anything it cannot match absent.
type RuleExtractor struct{}

// NewRuleExtractor creates a rule-based extractor.
func NewRuleExtractor() *RuleExtractor {
	return &RuleExtractor{}
}

type section int

const (
	secNone section = iota
	secDates
	secFees
	secAge
	secVacancy
	secSelection
	secPhysical
)

var sectionHeaders = []struct {
	keyword string
	sec     section
}{
	{"important date", secDates},
	{"application fee", secFees},
	{"fee detail", secFees},
	{"age limit", secAge},
	{"vacancy detail", secVacancy},
	{"post detail", secVacancy},
	{"total vacancy", secVacancy},
	{"selection process", secSelection},
	{"mode of selection", secSelection},
	{"physical standard", secPhysical},
	{"physical efficiency", secPhysical},
	{"physical eligibility", secPhysical},
}

var (
	ageRangeRe   = regexp.MustCompile(`(\d{2})\s*(?:-|–|to)\s*(\d{2})`)
	firstNumRe   = regexp.MustCompile(`\d{1,2}`)
	totalPostRe  = regexp.MustCompile(`(?i)^\d[\d,]*\+?\s*(posts?|vacancies)?$`)
	dateValueRe  = regexp.MustCompile(`(?i)\d|tba|to be announced|notify later|available soon|as per schedule`)
	feeValueRe   = regexp.MustCompile(`(?i)\d|/-|\bnil\b|no fee|\bfree\b|exempt`)
	bulletRe     = regexp.MustCompile(`^\s*(?:\d+[).\s]\s*|[-•*·]+\s*)`)
	femaleValRe  = regexp.MustCompile(`(?i)female\s*[:\-]?\s*([^,;|]+)`)
	maleValRe    = regexp.MustCompile(`(?i)\bmale\s*[:\-]?\s*([^,;|]+)`)
	deptKeywords = []string{
		"commission", "board", "ministry", "department", "authority",
		"corporation", "police", "railway", "bank", "university",
		"institute", "army", "navy", "air force", "council",
	}
	indianStates = []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
		"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
		"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
		"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
		"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
		"West Bengal", "Delhi", "Jammu and Kashmir", "Ladakh", "Chandigarh",
		"Puducherry",
	}
)

// Extract runs the rule-based scan. It never calls out to a service and
// never returns a warning: what the rules matched is what the caller gets.
func (r *RuleExtractor) Extract(_ context.Context, rawText string) (*Result, error) {
	trimmed, err := checkInput(rawText)
	if err != nil {
		return nil, err
	}

	text := CleanText(trimmed)
	lines := strings.Split(text, "\n")

	draft := &types.JobDraft{
		Title: extractTitle(lines),
		Type:  detectType(text),
		State: detectState(text),
	}
	draft.Department = extractDepartment(lines, draft.Title)
	draft.ShortInfo = extractShortInfo(lines, draft.Title)

	cur := secNone
	var age ageAccumulator
	for _, line := range lines {
		if line == "" {
			continue
		}
		if sec, ok := matchSectionHeader(line); ok {
			cur = sec
			continue
		}

		switch cur {
		case secDates:
			if label, value, ok := splitLabeled(line); ok && dateValueRe.MatchString(value) {
				draft.ImportantDates = appendDateOnce(draft.ImportantDates, label, value)
			}
		case secFees:
			if label, value, ok := splitLabeled(line); ok && feeValueRe.MatchString(value) {
				draft.ApplicationFee = append(draft.ApplicationFee, types.FeeRow{Category: label, Fee: value})
			}
		case secAge:
			age.feed(line)
		case secVacancy:
			if row, ok := parseVacancyRow(line); ok {
				draft.VacancyDetails = append(draft.VacancyDetails, row)
			}
		case secSelection:
			draft.SelectionProcess = append(draft.SelectionProcess, parseSelectionSteps(line)...)
		case secPhysical:
			if row, ok := parsePhysicalRow(line); ok {
				draft.PhysicalEligibility = append(draft.PhysicalEligibility, row)
			}
		default:
			// Date-labeled rows are recognized anywhere, headed section or not.
			if label, value, ok := splitLabeled(line); ok && isDateLabel(label) && dateValueRe.MatchString(value) {
				draft.ImportantDates = appendDateOnce(draft.ImportantDates, label, value)
			}
		}
	}
	draft.AgeLimit = age.rows()

	return &Result{Draft: draft}, nil
}

// matchSectionHeader reports whether a line opens one of the known
// notification sections. Header lines are short and carry no figures,
// which separates "Application Fee" from "Application Fee: 500".
func matchSectionHeader(line string) (section, bool) {
	if utf8.RuneCountInString(line) > 48 || strings.ContainsAny(line, "0123456789") {
		return secNone, false
	}
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		if strings.Contains(lower, h.keyword) {
			return h.sec, true
		}
	}
	return secNone, false
}

// splitLabeled splits a "Label: Value" style row on its first separator.
func splitLabeled(line string) (string, string, bool) {
	for _, sep := range []string{":", "|", " – ", " - "} {
		if i := strings.Index(line, sep); i > 0 {
			label := strings.TrimSpace(line[:i])
			value := strings.TrimSpace(line[i+len(sep):])
			if label != "" && value != "" {
				return label, value, true
			}
		}
	}
	return "", "", false
}

func isDateLabel(label string) bool {
	lower := strings.ToLower(label)
	return strings.Contains(lower, "date") || strings.Contains(lower, "deadline")
}

func appendDateOnce(dates []types.DateEntry, label, date string) []types.DateEntry {
	lower := strings.ToLower(label)
	for _, d := range dates {
		if strings.ToLower(d.Label) == lower {
			return dates
		}
	}
	return append(dates, types.DateEntry{Label: label, Date: date})
}

// extractTitle takes the first non-blank line when it is short enough to
// plausibly be a heading rather than a paragraph.
func extractTitle(lines []string) string {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) <= 140 {
			return strings.TrimRight(line, " .:-–")
		}
		return ""
	}
	return ""
}

// detectType classifies the post from keywords near the top of the text.
// Nothing matched means the field stays absent for the admin to fill in.
func detectType(text string) string {
	head := strings.ToLower(text)
	if len(head) > 400 {
		head = head[:400]
	}
	switch {
	case strings.Contains(head, "admit card"), strings.Contains(head, "hall ticket"):
		return types.TypeAdmitCard
	case strings.Contains(head, "answer key"):
		return types.TypeAnswerKey
	case strings.Contains(head, "result"):
		return types.TypeResult
	case strings.Contains(head, "admission"), strings.Contains(head, "counselling"):
		return types.TypeAdmission
	case strings.Contains(head, "recruitment"), strings.Contains(head, "vacancy"),
		strings.Contains(head, "online form"), strings.Contains(head, "bharti"):
		return types.TypeJob
	}
	return ""
}

func detectState(text string) string {
	lower := strings.ToLower(text)
	for _, state := range indianStates {
		if strings.Contains(lower, strings.ToLower(state)) {
			return state
		}
	}
	return ""
}

// extractDepartment looks for an organization line near the top of the
// notification, below the title.
func extractDepartment(lines []string, title string) string {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen > 8 {
			break
		}
		if line == title || utf8.RuneCountInString(line) > 100 {
			continue
		}
		if _, _, labeled := splitLabeled(line); labeled {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range deptKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}
	return ""
}

// extractShortInfo joins the first prose paragraph below the title, capped
// at 300 characters on a word boundary.
func extractShortInfo(lines []string, title string) string {
	var parts []string
	started := false
	for _, line := range lines {
		if line == "" {
			if started {
				break
			}
			continue
		}
		if line == title {
			continue
		}
		if _, ok := matchSectionHeader(line); ok {
			break
		}
		if _, _, labeled := splitLabeled(line); labeled {
			if started {
				break
			}
			continue
		}
		if utf8.RuneCountInString(line) < 40 && !started {
			continue
		}
		started = true
		parts = append(parts, line)
		if len(strings.Join(parts, " ")) >= 300 {
			break
		}
	}

	info := strings.Join(parts, " ")
	if utf8.RuneCountInString(info) < 60 {
		return ""
	}
	return truncateWords(info, 300)
}

func truncateWords(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;") + "..."
}

func parseVacancyRow(line string) (types.VacancyRow, bool) {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "post name") {
		// Table header row.
		return types.VacancyRow{}, false
	}

	cells := splitCells(line)
	if len(cells) >= 3 && totalPostRe.MatchString(cells[1]) {
		return types.VacancyRow{
			PostName:    cells[0],
			TotalPost:   cells[1],
			Eligibility: strings.Join(cells[2:], ", "),
		}, true
	}

	if label, value, ok := splitLabeled(line); ok && totalPostRe.MatchString(value) {
		return types.VacancyRow{PostName: label, TotalPost: value}, true
	}
	return types.VacancyRow{}, false
}

func splitCells(line string) []string {
	raw := strings.Split(line, "|")
	cells := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func parseSelectionSteps(line string) []string {
	step := bulletRe.ReplaceAllString(line, "")
	step = strings.TrimSpace(step)
	if step == "" || utf8.RuneCountInString(step) > 80 {
		return nil
	}
	// A single comma-separated line lists every stage at once.
	if strings.Contains(step, ",") && !strings.ContainsAny(step, "0123456789") {
		var steps []string
		for _, s := range strings.Split(step, ",") {
			if s = strings.TrimSpace(s); s != "" {
				steps = append(steps, s)
			}
		}
		return steps
	}
	return []string{step}
}

func parsePhysicalRow(line string) (types.PhysicalRow, bool) {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "criteria") && strings.Contains(lower, "male") {
		// Table header row.
		return types.PhysicalRow{}, false
	}

	cells := splitCells(line)
	if len(cells) >= 3 {
		return types.PhysicalRow{Criteria: cells[0], Male: cells[1], Female: cells[2]}, true
	}

	if label, value, ok := splitLabeled(line); ok {
		female := ""
		if m := femaleValRe.FindStringSubmatch(value); m != nil {
			female = strings.TrimSpace(m[1])
			value = femaleValRe.ReplaceAllString(value, "")
		}
		male := ""
		if m := maleValRe.FindStringSubmatch(value); m != nil {
			male = strings.TrimSpace(m[1])
		}
		if male != "" || female != "" {
			return types.PhysicalRow{Criteria: label, Male: male, Female: female}, true
		}
	}
	return types.PhysicalRow{}, false
}

// ageAccumulator folds age-limit lines into rows. Bare "Minimum Age" /
// "Maximum Age" rows combine into a single General row; per-category
// ranges keep their own rows.
type ageAccumulator struct {
	minAge  string
	maxAge  string
	perCat  []types.AgeLimitRow
}

func (a *ageAccumulator) feed(line string) {
	if label, value, ok := splitLabeled(line); ok {
		lower := strings.ToLower(label)
		num := firstNumRe.FindString(value)
		switch {
		case strings.Contains(lower, "min") && num != "":
			a.minAge = num
		case strings.Contains(lower, "max") && num != "":
			a.maxAge = num
		default:
			if m := ageRangeRe.FindStringSubmatch(value); m != nil {
				a.perCat = append(a.perCat, types.AgeLimitRow{Category: label, MinAge: m[1], MaxAge: m[2]})
			}
		}
		return
	}
	if m := ageRangeRe.FindStringSubmatch(line); m != nil && a.minAge == "" && a.maxAge == "" {
		a.minAge, a.maxAge = m[1], m[2]
	}
}

func (a *ageAccumulator) rows() []types.AgeLimitRow {
	if a.minAge != "" || a.maxAge != "" {
		return append([]types.AgeLimitRow{{Category: "General", MinAge: a.minAge, MaxAge: a.maxAge}}, a.perCat...)
	}
	return a.perCat
}
