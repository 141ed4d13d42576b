package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Senior Go Developer":     "senior-go-developer",
		"C++ / Rust (Remote)":     "c-rust-remote",
		"  spaced  out  ":         "spaced-out",
		"already-a-slug":          "already-a-slug",
		"UPPER case & Symbols!!!": "upper-case-symbols",
		"———":                     "",
	}
	for title, want := range cases {
		require.Equal(t, want, Slugify(title), "title: %q", title)
	}
}

func TestExtractMentions(t *testing.T) {
	t.Run(`collects in order without duplicates`, func(t *testing.T) {
		mentions := ExtractMentions("ping @anna and @boris, then @anna again")
		require.Equal(t, []string{"anna", "boris"}, mentions)
	})

	t.Run(`no mentions`, func(t *testing.T) {
		require.Empty(t, ExtractMentions("plain note without tags"))
	})

	t.Run(`email local part is not a mention boundary trap`, func(t *testing.T) {
		mentions := ExtractMentions("sent to user@example.com, cc @lead")
		require.Contains(t, mentions, "lead")
	})
}
