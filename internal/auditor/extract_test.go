package auditor_test

import (
	"linkaudit/internal/auditor"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no url like tokens",
			text: "import numpy as np\nprint('hello world')",
			want: nil,
		},
		{
			name: "truncated at first closing parenthesis",
			text: "see http://example.com/a) and http://dead.example/b)",
			want: []string{"http://example.com/a", "http://dead.example/b"},
		},
		{
			name: "markdown link inside notebook json",
			text: `"The [docs](https://pyfar.readthedocs.io/en/stable/) explain it.\n",`,
			want: []string{"https://pyfar.readthedocs.io/en/stable/"},
		},
		{
			name: "everything after the first parenthesis dropped",
			text: "https://en.wikipedia.org/wiki/Sound_(disambiguation)",
			want: []string{"https://en.wikipedia.org/wiki/Sound_"},
		},
		{
			name: "kept verbatim without parenthesis",
			text: "visit www.example.com, then https://pyfar.org/.",
			want: []string{"www.example.com,", "https://pyfar.org/."},
		},
		{
			name: "duplicates preserved in order",
			text: "https://a.example https://b.example https://a.example",
			want: []string{"https://a.example", "https://b.example", "https://a.example"},
		},
		{
			name: "scheme wins over www prefix",
			text: "http://www.example.com/x",
			want: []string{"http://www.example.com/x"},
		},
		{
			name: "unicode whitespace ends a match",
			text: "https://pyfar.org\u00a0and www.pyfar.org\u2003next",
			want: []string{"https://pyfar.org", "www.pyfar.org"},
		},
		{
			name: "bare scheme is not a url",
			text: "http:// is a scheme, so is https://",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, auditor.ExtractURLs(tt.text))
		})
	}
}

func TestExtractURLs_NoFabrication(t *testing.T) {
	text := "a (https://x.example/p?q=1) b www.y.example/z c"
	for _, u := range auditor.ExtractURLs(text) {
		require.Contains(t, text, u)
		require.NotContains(t, u, ")")
	}
}
