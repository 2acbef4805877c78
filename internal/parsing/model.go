package parsing

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/sarkariportal/backend/internal/llm"
	"github.com/sarkariportal/backend/internal/prompts"
	"github.com/sarkariportal/backend/internal/schemas"
	"github.com/sarkariportal/backend/internal/types"
)

// ModelExtractor delegates extraction to the LLM. Service failures and
// unparseable responses are hard errors; a response that parses but fails
// schema validation or lacks the required fields comes back as a success
// with a warning so the admin can still review and accept it.
type ModelExtractor struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewModelExtractor creates a model-assisted extractor using the standard
// model tier.
func NewModelExtractor(client llm.Client) *ModelExtractor {
	return &ModelExtractor{client: client, tier: llm.TierStandard}
}

// WithTier returns a copy of the extractor pinned to a specific model tier.
func (m *ModelExtractor) WithTier(tier llm.ModelTier) *ModelExtractor {
	return &ModelExtractor{client: m.client, tier: tier}
}

// Extract sends the notification text to the model and maps the JSON
// response into a draft.
func (m *ModelExtractor) Extract(ctx context.Context, rawText string) (*Result, error) {
	trimmed, err := checkInput(rawText)
	if err != nil {
		return nil, err
	}

	template := prompts.MustGet("parsing.json", "extract_notification")
	prompt := prompts.Format(template, map[string]string{"RawText": CleanText(trimmed)})

	raw, err := m.client.GenerateJSON(ctx, prompt, m.tier)
	if err != nil {
		return nil, &APICallError{Message: "notification extraction request failed", Cause: err}
	}

	var draft types.JobDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, &ParseError{Message: "model response is not valid JSON", Cause: err}
	}

	warning := ""
	if err := schemas.ValidateJobDraft(raw); err != nil {
		var ve *schemas.ValidationError
		if !errors.As(err, &ve) {
			return nil, &ParseError{Message: "schema validation could not run", Cause: err}
		}
		log.Printf("[parsing] draft failed schema validation: %v", ve)
		warning = "extracted data did not fully match the expected shape; review before use"
	}

	if draft.Type != "" && !types.ValidType(draft.Type) {
		draft.Type = ""
		warning = "extracted post type was not recognized; review before use"
	}
	if draft.Title == "" || draft.ShortInfo == "" {
		warning = "title or short info could not be extracted; review before use"
	}

	return &Result{Draft: &draft, Warning: warning}, nil
}
