package services

import (
	"bytes"
	"math"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultWordsPerMinute = 200
	DefaultExcerptLength  = 200
	maxSlugLength         = 80
	fallbackSlug          = "post"
)

var markdown = goldmark.New()

// Slugify turns title into a lower-case, hyphen separated slug. Accents are
// stripped; letters of other scripts are kept.
func Slugify(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	pendingDash := false
	n := 0
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = b.Len() > 0
			continue
		}
		if n >= maxSlugLength {
			break
		}
		if pendingDash {
			if n+1 >= maxSlugLength {
				break
			}
			b.WriteByte('-')
			n++
			pendingDash = false
		}
		b.WriteRune(r)
		n++
	}

	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// PlainText renders Markdown content and returns its visible text with
// whitespace collapsed.
func PlainText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return strings.Join(strings.Fields(content), " ")
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// CountWords counts whitespace separated words; every Han character counts as
// a word of its own.
func CountWords(text string) int {
	count := 0
	for _, field := range strings.Fields(text) {
		other := false
		for _, r := range field {
			if unicode.Is(unicode.Han, r) {
				count++
			} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
				other = true
			}
		}
		if other {
			count++
		}
	}
	return count
}

// ReadingTime estimates minutes to read content at wpm words per minute. Any
// non-empty content takes at least one minute.
func ReadingTime(content string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	text := PlainText(content)
	if strings.TrimSpace(text) == "" {
		return 0
	}
	words := CountWords(text)
	return max(int(math.Ceil(float64(words)/float64(wpm))), 1)
}

// Excerpt returns the first maxLen runes of the content's plain text, cut at
// a word boundary and suffixed with "..." when shortened.
func Excerpt(content string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultExcerptLength
	}
	text := PlainText(content)
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}

	cut := r[:maxLen]
	for i := len(cut) - 1; i > maxLen/2; i-- {
		if unicode.IsSpace(cut[i]) {
			cut = cut[:i]
			break
		}
	}
	return strings.TrimRightFunc(string(cut), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	}) + "..."
}
