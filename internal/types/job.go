// Package types provides type definitions for structured data used throughout the portal backend.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Post type constants. Every published record is exactly one of these.
const (
	TypeJob       = "job"
	TypeAdmitCard = "admit-card"
	TypeResult    = "result"
	TypeAnswerKey = "answer-key"
	TypeAdmission = "admission"
)

// ValidType reports whether t is one of the known post types.
func ValidType(t string) bool {
	switch t {
	case TypeJob, TypeAdmitCard, TypeResult, TypeAnswerKey, TypeAdmission:
		return true
	}
	return false
}

// DateEntry is one labeled date in the important-dates table.
// Insertion order is display order; entries are never sorted.
type DateEntry struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// VacancyRow is one row of the vacancy-details table.
type VacancyRow struct {
	PostName    string `json:"postName"`
	TotalPost   string `json:"totalPost"`
	Eligibility string `json:"eligibility"`
}

// FeeRow is one row of the application-fee table.
type FeeRow struct {
	Category string `json:"category"`
	Fee      string `json:"fee"`
}

// AgeLimitRow is one row of the age-limit table.
type AgeLimitRow struct {
	Category string `json:"category"`
	MinAge   string `json:"minAge"`
	MaxAge   string `json:"maxAge"`
}

// PhysicalRow is one row of the physical-eligibility table.
type PhysicalRow struct {
	Criteria string `json:"criteria"`
	Male     string `json:"male"`
	Female   string `json:"female"`
}

// Link is one labeled URL in the important-links section.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Job is the canonical domain record for a portal post (job, admit card,
// result, answer key or admission). Optional string fields use "" for
// absent; the store layer maps those to SQL NULL.
type Job struct {
	ID   string `json:"id"`
	Slug string `json:"slug,omitempty"`

	Title      string `json:"title" validate:"required"`
	Department string `json:"department" validate:"required"`
	Type       string `json:"type" validate:"required"`

	Qualification string `json:"qualification,omitempty"`
	State         string `json:"state,omitempty"`
	Category      string `json:"category,omitempty"`

	PostDate string `json:"postDate" validate:"required"`
	LastDate string `json:"lastDate,omitempty"`

	ShortInfo          string `json:"shortInfo" validate:"required"`
	EligibilityDetails string `json:"eligibilityDetails,omitempty"`
	RawJobContent      string `json:"rawJobContent,omitempty"`

	ImportantDates      []DateEntry   `json:"importantDates"`
	VacancyDetails      []VacancyRow  `json:"vacancyDetails"`
	ApplicationFee      []FeeRow      `json:"applicationFee"`
	AgeLimit            []AgeLimitRow `json:"ageLimit"`
	SelectionProcess    []string      `json:"selectionProcess"`
	PhysicalEligibility []PhysicalRow `json:"physicalEligibility"`
	Links               []Link        `json:"links"`

	Featured bool `json:"featured"`
	Trending bool `json:"trending"`

	ApplyOnlineURL     string `json:"applyOnlineUrl,omitempty"`
	AdmitCardURL       string `json:"admitCardUrl,omitempty"`
	ResultURL          string `json:"resultUrl,omitempty"`
	AnswerKeyURL       string `json:"answerKeyUrl,omitempty"`
	NotificationURL    string `json:"notificationUrl,omitempty"`
	OfficialWebsiteURL string `json:"officialWebsiteUrl,omitempty"`

	ImportantDatesHTML     string `json:"importantDatesHtml,omitempty"`
	ApplicationFeeHTML     string `json:"applicationFeeHtml,omitempty"`
	AgeLimitHTML           string `json:"ageLimitHtml,omitempty"`
	VacancyDetailsHTML     string `json:"vacancyDetailsHtml,omitempty"`
	PhysicalStandardHTML   string `json:"physicalStandardHtml,omitempty"`
	PhysicalEfficiencyHTML string `json:"physicalEfficiencyHtml,omitempty"`
	SelectionProcessHTML   string `json:"selectionProcessHtml,omitempty"`
	ImportantLinksHTML     string `json:"importantLinksHtml,omitempty"`
}

// JobDraft is the partial record produced by the notification text parsers.
// Only fields the extractor could confidently populate are set; drafts are
// staged into the admin form, never persisted directly.
type JobDraft struct {
	Title               string        `json:"title,omitempty"`
	Department          string        `json:"department,omitempty"`
	Type                string        `json:"type,omitempty"`
	State               string        `json:"state,omitempty"`
	ShortInfo           string        `json:"shortInfo,omitempty"`
	ImportantDates      []DateEntry   `json:"importantDates,omitempty"`
	VacancyDetails      []VacancyRow  `json:"vacancyDetails,omitempty"`
	ApplicationFee      []FeeRow      `json:"applicationFee,omitempty"`
	AgeLimit            []AgeLimitRow `json:"ageLimit,omitempty"`
	SelectionProcess    []string      `json:"selectionProcess,omitempty"`
	PhysicalEligibility []PhysicalRow `json:"physicalEligibility,omitempty"`
}

// DisplayID returns the URL identifier for the job: the slug when one was
// supplied, otherwise the opaque id.
func (j *Job) DisplayID() string {
	if j.Slug != "" {
		return j.Slug
	}
	return j.ID
}

// PrimaryURL returns the type-specific action URL for the job. Admission
// posts share the apply-online URL with plain job posts.
func (j *Job) PrimaryURL() string {
	switch j.Type {
	case TypeAdmitCard:
		return j.AdmitCardURL
	case TypeResult:
		return j.ResultURL
	case TypeAnswerKey:
		return j.AnswerKeyURL
	default:
		return j.ApplyOnlineURL
	}
}

// ErrNotPublishable indicates a record is missing a field required before
// it can be published.
type ErrNotPublishable struct {
	Field   string
	Message string
}

func (e *ErrNotPublishable) Error() string {
	return fmt.Sprintf("not publishable: %s - %s", e.Field, e.Message)
}

// ValidatePublishable checks the invariants required before a record may be
// persisted through the admin path: a notification URL plus the primary
// action URL selected by the post type.
func (j *Job) ValidatePublishable() error {
	if !ValidType(j.Type) {
		return &ErrNotPublishable{Field: "type", Message: fmt.Sprintf("unknown post type %q", j.Type)}
	}
	if j.NotificationURL == "" {
		return &ErrNotPublishable{Field: "notificationUrl", Message: "notification URL is required"}
	}
	if j.PrimaryURL() == "" {
		return &ErrNotPublishable{
			Field:   primaryURLField(j.Type),
			Message: fmt.Sprintf("primary action URL is required for type %q", j.Type),
		}
	}
	return nil
}

func primaryURLField(postType string) string {
	switch postType {
	case TypeAdmitCard:
		return "admitCardUrl"
	case TypeResult:
		return "resultUrl"
	case TypeAnswerKey:
		return "answerKeyUrl"
	default:
		return "applyOnlineUrl"
	}
}
