// Package render decides, per display section of a post, whether to show
// hand-authored markup, structured rows, or nothing, and resolves the
// labeled action links shown on the detail page.
package render

import (
	"strings"

	"github.com/sarkariportal/backend/internal/types"
)

// Mode is the render decision for one section.
type Mode string

const (
	// ModeHTML renders the hand-pasted markup override.
	ModeHTML Mode = "html"
	// ModeStructured renders the structured table or list.
	ModeStructured Mode = "structured"
	// ModeOmit drops the section entirely, placeholder included.
	ModeOmit Mode = "omit"
)

// Resolve applies the override order for one section: non-blank markup
// wins, otherwise structured rows when any exist, otherwise the section
// is omitted.
func Resolve(htmlOverride string, hasStructured bool) Mode {
	if strings.TrimSpace(htmlOverride) != "" {
		return ModeHTML
	}
	if hasStructured {
		return ModeStructured
	}
	return ModeOmit
}

// ResolvePhysical decides the mode for the structured physical-eligibility
// table. The standard-test and efficiency-test markup channels render
// independently, but either one suppresses the structured table.
func ResolvePhysical(standardHTML, efficiencyHTML string, hasStructured bool) Mode {
	if strings.TrimSpace(standardHTML) != "" || strings.TrimSpace(efficiencyHTML) != "" {
		return ModeOmit
	}
	return Resolve("", hasStructured)
}

// Action is a resolved labeled link.
type Action struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

var primaryByType = map[string]struct{ label, keyword string }{
	types.TypeJob:       {"Apply Online", "apply"},
	types.TypeAdmission: {"Apply Online", "apply"},
	types.TypeAdmitCard: {"Download Admit Card", "admit"},
	types.TypeResult:    {"Download Result", "result"},
	types.TypeAnswerKey: {"Download Answer Key", "answer"},
}

// PrimaryAction resolves the main call-to-action button for a post: the
// type-specific URL field, falling back to the first stored link whose
// label mentions the type keyword, then to a dead placeholder.
func PrimaryAction(job *types.Job) Action {
	primary, ok := primaryByType[job.Type]
	if !ok {
		primary = primaryByType[types.TypeJob]
	}
	if url := job.PrimaryURL(); url != "" {
		return Action{Label: primary.label, URL: url}
	}
	if link, ok := linkByKeyword(job.Links, primary.keyword); ok {
		return Action{Label: primary.label, URL: link.URL}
	}
	return Action{Label: primary.label, URL: "#"}
}

// NotificationLink resolves the official-notification link with the same
// two-tier fallback as PrimaryAction.
func NotificationLink(job *types.Job) Action {
	if job.NotificationURL != "" {
		return Action{Label: "Official Notification", URL: job.NotificationURL}
	}
	if link, ok := linkByKeyword(job.Links, "notification"); ok {
		return Action{Label: "Official Notification", URL: link.URL}
	}
	return Action{Label: "Official Notification", URL: "#"}
}

func linkByKeyword(links []types.Link, keyword string) (types.Link, bool) {
	for _, l := range links {
		if strings.Contains(strings.ToLower(l.Label), keyword) && strings.TrimSpace(l.URL) != "" {
			return l, true
		}
	}
	return types.Link{}, false
}
