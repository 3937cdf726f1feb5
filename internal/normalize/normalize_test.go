package normalize

import "testing"

func TestClean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "AI is reshaping industries.", "AI is reshaping industries."},
		{"strips urls", "read more at https://example.com/article?id=1 today", "read more at today"},
		{"strips entities", "ups &amp; downs &#39;quoted&#39;", "ups downs quoted"},
		{"strips noise characters", "wow 🚀 amazing <b>stuff</b>", "wow amazing b stuff b"},
		{"collapses whitespace", "too   many\n\nspaces\there", "too many spaces here"},
		{"keeps sentence punctuation", "Really? Yes, really! It's fine.", "Really? Yes, really! It's fine."},
		{"all noise", "🚀🔥✨ @#$%", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Check https://example.org &amp; enjoy 🎉 the   ride",
		"plain already",
		"",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
