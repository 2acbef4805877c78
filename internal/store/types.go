package store

import (
	"time"

	"github.com/sarkariportal/backend/internal/types"
)

// Post is the persisted row shape for a portal post. Optional scalar
// columns are pointers so SQL NULL survives the trip; JSONB collections
// are slices and never null once written through this package.
type Post struct {
	ID   int64   `json:"id"`
	Slug *string `json:"slug"`

	Title      string `json:"title"`
	Department string `json:"department"`
	Type       string `json:"type"`

	Qualification *string `json:"qualification"`
	State         *string `json:"state"`
	Category      *string `json:"category"`

	PostDate string  `json:"postDate"`
	LastDate *string `json:"lastDate"`

	ShortInfo          string  `json:"shortInfo"`
	EligibilityDetails *string `json:"eligibilityDetails"`
	RawJobContent      *string `json:"rawJobContent"`

	ImportantDates      []types.DateEntry   `json:"importantDates"`
	VacancyDetails      []types.VacancyRow  `json:"vacancyDetails"`
	ApplicationFee      []types.FeeRow      `json:"applicationFee"`
	AgeLimit            []types.AgeLimitRow `json:"ageLimit"`
	SelectionProcess    []string            `json:"selectionProcess"`
	PhysicalEligibility []types.PhysicalRow `json:"physicalEligibility"`
	Links               []types.Link        `json:"links"`

	Featured *bool `json:"featured"`
	Trending *bool `json:"trending"`

	ApplyOnlineURL     *string `json:"applyOnlineUrl"`
	AdmitCardURL       *string `json:"admitCardUrl"`
	ResultURL          *string `json:"resultUrl"`
	AnswerKeyURL       *string `json:"answerKeyUrl"`
	NotificationURL    *string `json:"notificationUrl"`
	OfficialWebsiteURL *string `json:"officialWebsiteUrl"`

	ImportantDatesHTML     *string `json:"importantDatesHtml"`
	ApplicationFeeHTML     *string `json:"applicationFeeHtml"`
	AgeLimitHTML           *string `json:"ageLimitHtml"`
	VacancyDetailsHTML     *string `json:"vacancyDetailsHtml"`
	PhysicalStandardHTML   *string `json:"physicalStandardHtml"`
	PhysicalEfficiencyHTML *string `json:"physicalEfficiencyHtml"`
	SelectionProcessHTML   *string `json:"selectionProcessHtml"`
	ImportantLinksHTML     *string `json:"importantLinksHtml"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListOptions holds optional filters for listing posts
type ListOptions struct {
	Type          string
	Qualification string
	State         string
	Limit         int
	Offset        int
}
