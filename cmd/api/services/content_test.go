package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":             "hello-world",
		"  Hello,   World!  ":     "hello-world",
		"Crème Brûlée":            "creme-brulee",
		"Go 1.22 released":        "go-1-22-released",
		"!!!":                     "post",
		"":                        "post",
		"日本語 タイトル":                "日本語-タイトル",
		"already-a-slug":          "already-a-slug",
		"Ünïcödé -- dashes__here": "unicode-dashes-here",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugifyTruncates(t *testing.T) {
	slug := Slugify(strings.Repeat("abcdefghij ", 20))
	assert.LessOrEqual(t, len([]rune(slug)), 80)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestPlainTextStripsMarkup(t *testing.T) {
	md := "# Title\n\nA [link](https://example.com) and `code`.\n\n<script>alert(1)</script>\n\n- one\n- two"
	assert.Equal(t, "Title A link and code . one two", PlainText(md))
	assert.Equal(t, "", PlainText("   \n"))
}

func TestCountWordsCountsHanCharacters(t *testing.T) {
	assert.Equal(t, 3, CountWords("one two three"))
	assert.Equal(t, 4, CountWords("你好世界"))
	assert.Equal(t, 4, CountWords("Go 语言 rocks"))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 0, ReadingTime("", 200))
	assert.Equal(t, 1, ReadingTime("tiny", 200))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("w ", 200), 200))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("w ", 201), 200))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("w ", 201), 100))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("w ", 201), 0))
	assert.Equal(t, 1, ReadingTime("!!! --- ???", 200))
	assert.Equal(t, 0, ReadingTime("   \n\t", 200))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", Excerpt("short **text**", 50))

	long := strings.Repeat("lorem ipsum ", 30)
	ex := Excerpt(long, 40)
	assert.True(t, strings.HasSuffix(ex, "..."))
	assert.LessOrEqual(t, len([]rune(ex)), 43)
	assert.False(t, strings.Contains(ex, "  "))
}

func TestExcerptMeasuresWordBoundaryInRunes(t *testing.T) {
	// The only space is at rune 8 (byte 16). It is before the halfway mark of a
	// 20 rune excerpt, so the text is cut mid-word instead of at the space.
	text := strings.Repeat("é", 8) + " " + strings.Repeat("é", 17)
	assert.Equal(t, strings.Repeat("é", 8)+" "+strings.Repeat("é", 11)+"...", Excerpt(text, 20))
}
