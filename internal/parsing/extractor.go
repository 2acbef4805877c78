// Package parsing converts unstructured notification text into partial job
// records. Two interchangeable strategies implement the same contract: a
// deterministic rule-based scanner and a model-assisted extractor.
package parsing

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sarkariportal/backend/internal/types"
)

// MinInputLength is the minimum number of characters of trimmed input
// required before any extraction strategy is attempted.
const MinInputLength = 50

// Result is the outcome of a successful extraction. Warning is non-empty
// when the draft was produced with low confidence and should be reviewed
// before use; the draft is still usable.
type Result struct {
	Draft   *types.JobDraft
	Warning string
}

// TextExtractor converts raw notification text into a partial job record.
// Implementations must reject input shorter than MinInputLength and must
// leave fields they cannot confidently extract absent rather than guessed.
type TextExtractor interface {
	Extract(ctx context.Context, rawText string) (*Result, error)
}

// checkInput applies the shared minimum-length gate and returns the
// trimmed input.
func checkInput(rawText string) (string, error) {
	trimmed := strings.TrimSpace(rawText)
	if n := utf8.RuneCountInString(trimmed); n < MinInputLength {
		return "", &InsufficientInputError{Length: n}
	}
	return trimmed, nil
}
