package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// SanitizeHTML cleans hand-pasted section markup before it is handed to
// clients. Admin-authored tables and basic formatting survive; scripts,
// event handlers and the rest do not.
func SanitizeHTML(markup string) string {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.AllowAttrs("class").Globally()
		policy = p
	})
	return strings.TrimSpace(policy.Sanitize(markup))
}
