package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "The Sleepy Fox", "The Sleepy Fox"},
		{"whitespace", "  The Sleepy Fox \n", "The Sleepy Fox"},
		{"double quotes", `"The Sleepy Fox"`, "The Sleepy Fox"},
		{"single quotes", "'The Sleepy Fox'", "The Sleepy Fox"},
		{"nested quotes", `"'The Sleepy Fox'"`, "The Sleepy Fox"},
		{"quotes with padding", ` " The Sleepy Fox " `, "The Sleepy Fox"},
		{"mismatched quotes kept", `"The Sleepy Fox'`, `"The Sleepy Fox'`},
		{"inner apostrophe kept", "Luna's Nap", "Luna's Nap"},
		{"empty", "", ""},
		{"only quotes", `""`, ""},
		{"single char", "a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.in))
		})
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	inputs := []string{`"The Sleepy Fox"`, " 'Luna' ", "plain", `"'deep'"`}
	for _, in := range inputs {
		once := NormalizeTitle(in)
		assert.Equal(t, once, NormalizeTitle(once))
	}
}
