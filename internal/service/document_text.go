package service

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// MaxChunkRunes bounds the size of one stored document chunk.
const MaxChunkRunes = 1000

// documentExtractor turns uploaded text or HTML into plain paragraphs.
type documentExtractor struct {
	sanitizer *bluemonday.Policy
}

func newDocumentExtractor() *documentExtractor {
	// Strip scripts and styles so readability scores the real content.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()
	return &documentExtractor{sanitizer: p}
}

// Extract returns plain text with paragraphs separated by blank lines.
func (e *documentExtractor) Extract(content, fileName string) string {
	if !isHTMLDocument(content, fileName) {
		return normalizeText(content)
	}

	sanitized := e.sanitizer.Sanitize(content)

	pageURL := &url.URL{Scheme: "file", Path: "/" + filepath.Base(fileName)}
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), pageURL)
	if err == nil {
		var buf bytes.Buffer
		if err := article.RenderHTML(&buf); err == nil {
			if text := htmlToText(buf.String()); text != "" {
				return text
			}
		}
	}
	// Short fragments often have too little text for readability; use the sanitized markup.
	return htmlToText(sanitized)
}

func isHTMLDocument(content, fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	head := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

var paragraphElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "blockquote": true,
	"section": true, "article": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func htmlToText(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return normalizeText(content)
	}

	var buf strings.Builder
	writeText(doc, &buf)
	return normalizeText(buf.String())
}

func writeText(n *html.Node, buf *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			if buf.Len() > 0 && !strings.HasSuffix(buf.String(), "\n") {
				buf.WriteString(" ")
			}
			buf.WriteString(text)
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "head", "template":
			return
		case "br":
			buf.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, buf)
	}

	if n.Type == html.ElementNode && paragraphElements[n.Data] {
		buf.WriteString("\n\n")
	}
}

// normalizeText unifies line endings, trims each line and collapses runs of blank lines.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// chunkText packs paragraphs into chunks of at most limit runes.
// A paragraph longer than limit is split at rune boundaries.
func chunkText(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxChunkRunes
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		for _, piece := range splitRunes(para, limit) {
			n := utf8.RuneCountInString(piece)
			sep := 0
			if curLen > 0 {
				sep = 2
			}
			if curLen+sep+n > limit {
				flush()
				sep = 0
			}
			if sep > 0 {
				cur.WriteString("\n\n")
			}
			cur.WriteString(piece)
			curLen += sep + n
		}
	}
	flush()
	return chunks
}

func splitRunes(s string, limit int) []string {
	if utf8.RuneCountInString(s) <= limit {
		return []string{s}
	}
	runes := []rune(s)
	parts := make([]string, 0, len(runes)/limit+1)
	for len(runes) > 0 {
		n := min(limit, len(runes))
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}
