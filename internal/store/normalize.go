package store

import (
	"strconv"
	"strings"

	"github.com/sarkariportal/backend/internal/types"
)

// ToJob converts a persisted row into the domain shape: NULL optional
// columns become absent fields, NULL collections become empty slices and
// NULL flags become false.
func ToJob(p *Post) types.Job {
	return types.Job{
		ID:   strconv.FormatInt(p.ID, 10),
		Slug: deref(p.Slug),

		Title:      p.Title,
		Department: p.Department,
		Type:       p.Type,

		Qualification: deref(p.Qualification),
		State:         deref(p.State),
		Category:      deref(p.Category),

		PostDate: p.PostDate,
		LastDate: deref(p.LastDate),

		ShortInfo:          p.ShortInfo,
		EligibilityDetails: deref(p.EligibilityDetails),
		RawJobContent:      deref(p.RawJobContent),

		ImportantDates:      orEmpty(p.ImportantDates),
		VacancyDetails:      orEmpty(p.VacancyDetails),
		ApplicationFee:      orEmpty(p.ApplicationFee),
		AgeLimit:            orEmpty(p.AgeLimit),
		SelectionProcess:    orEmpty(p.SelectionProcess),
		PhysicalEligibility: orEmpty(p.PhysicalEligibility),
		Links:               orEmpty(p.Links),

		Featured: p.Featured != nil && *p.Featured,
		Trending: p.Trending != nil && *p.Trending,

		ApplyOnlineURL:     deref(p.ApplyOnlineURL),
		AdmitCardURL:       deref(p.AdmitCardURL),
		ResultURL:          deref(p.ResultURL),
		AnswerKeyURL:       deref(p.AnswerKeyURL),
		NotificationURL:    deref(p.NotificationURL),
		OfficialWebsiteURL: deref(p.OfficialWebsiteURL),

		ImportantDatesHTML:     deref(p.ImportantDatesHTML),
		ApplicationFeeHTML:     deref(p.ApplicationFeeHTML),
		AgeLimitHTML:           deref(p.AgeLimitHTML),
		VacancyDetailsHTML:     deref(p.VacancyDetailsHTML),
		PhysicalStandardHTML:   deref(p.PhysicalStandardHTML),
		PhysicalEfficiencyHTML: deref(p.PhysicalEfficiencyHTML),
		SelectionProcessHTML:   deref(p.SelectionProcessHTML),
		ImportantLinksHTML:     deref(p.ImportantLinksHTML),
	}
}

// FromJob converts a domain record into the persisted shape: absent
// optional fields become NULL, collections stay non-null (empty when
// absent) and flags are always written.
func FromJob(j types.Job) Post {
	id, _ := strconv.ParseInt(j.ID, 10, 64)

	return Post{
		ID:   id,
		Slug: nilIfEmpty(j.Slug),

		Title:      j.Title,
		Department: j.Department,
		Type:       j.Type,

		Qualification: nilIfEmpty(j.Qualification),
		State:         nilIfEmpty(j.State),
		Category:      nilIfEmpty(j.Category),

		PostDate: j.PostDate,
		LastDate: nilIfEmpty(j.LastDate),

		ShortInfo:          j.ShortInfo,
		EligibilityDetails: nilIfEmpty(j.EligibilityDetails),
		RawJobContent:      nilIfEmpty(j.RawJobContent),

		ImportantDates:      orEmpty(j.ImportantDates),
		VacancyDetails:      orEmpty(j.VacancyDetails),
		ApplicationFee:      orEmpty(j.ApplicationFee),
		AgeLimit:            orEmpty(j.AgeLimit),
		SelectionProcess:    orEmpty(j.SelectionProcess),
		PhysicalEligibility: orEmpty(j.PhysicalEligibility),
		Links:               orEmpty(j.Links),

		Featured: ptr(j.Featured),
		Trending: ptr(j.Trending),

		ApplyOnlineURL:     nilIfEmpty(j.ApplyOnlineURL),
		AdmitCardURL:       nilIfEmpty(j.AdmitCardURL),
		ResultURL:          nilIfEmpty(j.ResultURL),
		AnswerKeyURL:       nilIfEmpty(j.AnswerKeyURL),
		NotificationURL:    nilIfEmpty(j.NotificationURL),
		OfficialWebsiteURL: nilIfEmpty(j.OfficialWebsiteURL),

		ImportantDatesHTML:     nilIfEmpty(j.ImportantDatesHTML),
		ApplicationFeeHTML:     nilIfEmpty(j.ApplicationFeeHTML),
		AgeLimitHTML:           nilIfEmpty(j.AgeLimitHTML),
		VacancyDetailsHTML:     nilIfEmpty(j.VacancyDetailsHTML),
		PhysicalStandardHTML:   nilIfEmpty(j.PhysicalStandardHTML),
		PhysicalEfficiencyHTML: nilIfEmpty(j.PhysicalEfficiencyHTML),
		SelectionProcessHTML:   nilIfEmpty(j.SelectionProcessHTML),
		ImportantLinksHTML:     nilIfEmpty(j.ImportantLinksHTML),
	}
}

// DeriveLastDate returns the date of the first important-dates entry whose
// label mentions the application deadline ("last" or "deadline",
// case-insensitive), falling back to the explicitly set value.
func DeriveLastDate(dates []types.DateEntry, explicit string) string {
	for _, d := range dates {
		lower := strings.ToLower(d.Label)
		if strings.Contains(lower, "last") || strings.Contains(lower, "deadline") {
			if strings.TrimSpace(d.Date) != "" {
				return d.Date
			}
		}
	}
	return explicit
}

// RebuildLinks reconstructs the important-links list from the named URL
// fields. Hand-supplied links survive only through bulk import, which does
// not pass through here.
func RebuildLinks(j *types.Job) []types.Link {
	links := []types.Link{}
	if j.NotificationURL != "" {
		links = append(links, types.Link{Label: "Official Notification", URL: j.NotificationURL})
	}
	if j.OfficialWebsiteURL != "" {
		links = append(links, types.Link{Label: "Official Website", URL: j.OfficialWebsiteURL})
	}

	switch j.Type {
	case types.TypeAdmitCard:
		if j.AdmitCardURL != "" {
			links = append(links, types.Link{Label: "Download Admit Card", URL: j.AdmitCardURL})
		}
	case types.TypeResult:
		if j.ResultURL != "" {
			links = append(links, types.Link{Label: "Download Result", URL: j.ResultURL})
		}
	case types.TypeAnswerKey:
		if j.AnswerKeyURL != "" {
			links = append(links, types.Link{Label: "Download Answer Key", URL: j.AnswerKeyURL})
		}
	default:
		if j.ApplyOnlineURL != "" {
			links = append(links, types.Link{Label: "Apply Online", URL: j.ApplyOnlineURL})
		}
	}
	return links
}

// Normalize applies the publish-time derivations in place: canonical last
// date, rebuilt links and non-null collections. Running it twice changes
// nothing.
func Normalize(j *types.Job) {
	j.LastDate = DeriveLastDate(j.ImportantDates, j.LastDate)
	j.Links = RebuildLinks(j)

	j.ImportantDates = orEmpty(j.ImportantDates)
	j.VacancyDetails = orEmpty(j.VacancyDetails)
	j.ApplicationFee = orEmpty(j.ApplicationFee)
	j.AgeLimit = orEmpty(j.AgeLimit)
	j.SelectionProcess = orEmpty(j.SelectionProcess)
	j.PhysicalEligibility = orEmpty(j.PhysicalEligibility)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptr(b bool) *bool {
	return &b
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
