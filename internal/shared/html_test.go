package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripScriptsFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain Text", "Test API message", "Test API message"},
		{"Script Only", "<script>alert('test');</script>", ""},
		{"Empty", "", ""},
		{"Style Only", "<style>body{display:none}</style>", ""},
		{"Text Around Script", "Back <script>x()</script>soon", "Back soon"},
		{"Formatting Kept", "<b>Planned</b> maintenance", "<b>Planned</b> maintenance"},
		{"Event Handler Dropped", `<b onclick="steal()">Hi</b>`, "<b>Hi</b>"},
		{"Javascript Link Dropped", `<a href="javascript:alert(1)">x</a>`, "x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripScriptsFromHTML(tc.input))
		})
	}
}

func TestStripScriptsFromHTML_Idempotent(t *testing.T) {
	inputs := []string{
		"Test API message",
		"<script>alert('test');</script>",
		"We're back <i>soon</i> & stable",
		"<scr<script>ipt>alert(1)</script>",
	}

	for _, in := range inputs {
		once := StripScriptsFromHTML(in)
		assert.Equal(t, once, StripScriptsFromHTML(once), "input: %q", in)
	}
}
