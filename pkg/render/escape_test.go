package render

import (
	"errors"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello, World!",
			expected: "Hello, World!",
		},
		{
			name:     "all five",
			input:    `<x>&"'`,
			expected: "&lt;x&gt;&amp;&quot;&#x27;",
		},
		{
			name:     "single quote",
			input:    "it's fine",
			expected: "it&#x27;s fine",
		},
		{
			name:     "script tag",
			input:    "<script>alert('xss')</script>",
			expected: "&lt;script&gt;alert(&#x27;xss&#x27;)&lt;/script&gt;",
		},
		{
			name:     "existing entity is escaped again",
			input:    "&amp;",
			expected: "&amp;amp;",
		},
		{
			name:     "tailwind classes untouched",
			input:    "mx-8 dark:bg-slate-800 top-[117px]",
			expected: "mx-8 dark:bg-slate-800 top-[117px]",
		},
		{
			name:     "whitespace untouched",
			input:    "a\n\tb\r",
			expected: "a\n\tb\r",
		},
		{
			name:     "unicode preserved",
			input:    "Hello 世界 <🌍>",
			expected: "Hello 世界 &lt;🌍&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.expected {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

type failingWriter struct{ after int }

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("write failed")
	}
	f.after--
	return len(p), nil
}

func TestEscapeToPropagatesWriteError(t *testing.T) {
	for _, after := range []int{0, 1, 2} {
		if err := EscapeTo(&failingWriter{after: after}, "a<b"); err == nil {
			t.Errorf("after=%d: expected error", after)
		}
	}
}
