package wordfreq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic sentence",
			text: "Hello world! How are you?",
			want: []string{"hello", "world", "how", "are", "you"},
		},
		{
			name: "alphanumeric only",
			text: "test123 @#$% abc-def hello_world",
			want: []string{"test123", "abc", "def", "hello", "world"},
		},
		{
			name: "case folding",
			text: "Hello HELLO hElLo",
			want: []string{"hello", "hello", "hello"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   ",
			want: nil,
		},
		{
			name: "control characters only",
			text: "\n\t\r",
			want: nil,
		},
		{
			name: "non-ASCII bytes are separators",
			text: "café naïve résumé",
			want: []string{"caf", "na", "ve", "r", "sum"},
		},
		{
			name: "digits",
			text: "v2 2024 x86 64",
			want: []string{"v2", "2024", "x86", "64"},
		},
		{
			name: "word touching both ends",
			text: "edge case edge",
			want: []string{"edge", "case", "edge"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}
