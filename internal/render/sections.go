package render

import (
	"strings"

	"github.com/sarkariportal/backend/internal/types"
)

// Section identifiers used in resolved render plans.
const (
	SectionImportantDates      = "importantDates"
	SectionApplicationFee      = "applicationFee"
	SectionAgeLimit            = "ageLimit"
	SectionVacancyDetails      = "vacancyDetails"
	SectionSelectionProcess    = "selectionProcess"
	SectionPhysicalEligibility = "physicalEligibility"
	SectionPhysicalStandard    = "physicalStandard"
	SectionPhysicalEfficiency  = "physicalEfficiency"
	SectionImportantLinks      = "importantLinks"
)

// SectionPlan is the resolved render decision for one section. HTML is
// populated, already sanitized, only when Mode is ModeHTML.
type SectionPlan struct {
	Mode Mode   `json:"mode"`
	HTML string `json:"html,omitempty"`
}

// Sections computes the render plan for every section of a post.
func Sections(job *types.Job) map[string]SectionPlan {
	plans := map[string]SectionPlan{
		SectionImportantDates:   plan(job.ImportantDatesHTML, hasDates(job.ImportantDates)),
		SectionApplicationFee:   plan(job.ApplicationFeeHTML, hasFees(job.ApplicationFee)),
		SectionAgeLimit:         plan(job.AgeLimitHTML, hasAge(job.AgeLimit)),
		SectionVacancyDetails:   plan(job.VacancyDetailsHTML, hasVacancies(job.VacancyDetails)),
		SectionSelectionProcess: plan(job.SelectionProcessHTML, hasSteps(job.SelectionProcess)),
		SectionImportantLinks:   plan(job.ImportantLinksHTML, hasLinks(job.Links)),

		SectionPhysicalStandard:   htmlOnlyPlan(job.PhysicalStandardHTML),
		SectionPhysicalEfficiency: htmlOnlyPlan(job.PhysicalEfficiencyHTML),
	}

	physMode := ResolvePhysical(job.PhysicalStandardHTML, job.PhysicalEfficiencyHTML,
		hasPhysical(job.PhysicalEligibility))
	plans[SectionPhysicalEligibility] = SectionPlan{Mode: physMode}

	return plans
}

func plan(htmlOverride string, hasStructured bool) SectionPlan {
	mode := Resolve(htmlOverride, hasStructured)
	p := SectionPlan{Mode: mode}
	if mode == ModeHTML {
		p.HTML = SanitizeHTML(htmlOverride)
	}
	return p
}

func htmlOnlyPlan(markup string) SectionPlan {
	if strings.TrimSpace(markup) == "" {
		return SectionPlan{Mode: ModeOmit}
	}
	return SectionPlan{Mode: ModeHTML, HTML: SanitizeHTML(markup)}
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// A structured section counts as present when at least one row has at
// least one non-blank cell.

func hasDates(rows []types.DateEntry) bool {
	for _, r := range rows {
		if notBlank(r.Label) || notBlank(r.Date) {
			return true
		}
	}
	return false
}

func hasFees(rows []types.FeeRow) bool {
	for _, r := range rows {
		if notBlank(r.Category) || notBlank(r.Fee) {
			return true
		}
	}
	return false
}

func hasAge(rows []types.AgeLimitRow) bool {
	for _, r := range rows {
		if notBlank(r.Category) || notBlank(r.MinAge) || notBlank(r.MaxAge) {
			return true
		}
	}
	return false
}

func hasVacancies(rows []types.VacancyRow) bool {
	for _, r := range rows {
		if notBlank(r.PostName) || notBlank(r.TotalPost) || notBlank(r.Eligibility) {
			return true
		}
	}
	return false
}

func hasSteps(steps []string) bool {
	for _, s := range steps {
		if notBlank(s) {
			return true
		}
	}
	return false
}

func hasPhysical(rows []types.PhysicalRow) bool {
	for _, r := range rows {
		if notBlank(r.Criteria) || notBlank(r.Male) || notBlank(r.Female) {
			return true
		}
	}
	return false
}

// Links need both halves: a label with no URL renders nothing clickable.
func hasLinks(links []types.Link) bool {
	for _, l := range links {
		if notBlank(l.Label) && notBlank(l.URL) {
			return true
		}
	}
	return false
}
