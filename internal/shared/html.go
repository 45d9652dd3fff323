package shared

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ugcPolicy keeps formatting and links but drops scripts, styles and
// event handler attributes. Policies are safe for concurrent use.
var ugcPolicy = bluemonday.UGCPolicy()

// StripScriptsFromHTML removes script-like markup from s.
// <script> and <style> elements are dropped together with their content.
func StripScriptsFromHTML(s string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
