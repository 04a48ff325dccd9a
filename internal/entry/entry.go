// Package entry defines the clipboard capture model: a typed payload plus a
// content fingerprint used for dedup. Entries are immutable once stored; the
// store assigns the final ID on insert.
package entry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ContentType classifies what an entry holds. Link is a refinement of Text
// decided once at creation; it is never re-evaluated.
type ContentType string

const (
	TypeText  ContentType = "text"
	TypeLink  ContentType = "link"
	TypeImage ContentType = "image"
)

// ParseContentType maps a stored tag back to a ContentType. Unknown tags
// return false so callers can fall back to a safe default instead of failing
// a whole multi-row query.
func ParseContentType(s string) (ContentType, bool) {
	switch s {
	case "text":
		return TypeText, true
	case "link":
		return TypeLink, true
	case "image":
		return TypeImage, true
	}
	return TypeText, false
}

// Entry is one clipboard capture. Exactly one of Content/ImageData is set,
// matching Type.
type Entry struct {
	ID        int64
	Type      ContentType
	Content   string
	ImageData []byte
	Hash      string
	CreatedAt int64 // unix seconds
}

// NewText builds a text entry, classifying it as a link when the trimmed
// text parses as a URL.
func NewText(text string) *Entry {
	typ := TypeText
	if isURL(text) {
		typ = TypeLink
	}
	return &Entry{
		Type:      typ,
		Content:   text,
		Hash:      Fingerprint([]byte(text)),
		CreatedAt: time.Now().Unix(),
	}
}

// NewImage builds an image entry from raw PNG bytes.
func NewImage(data []byte) *Entry {
	return &Entry{
		Type:      TypeImage,
		ImageData: data,
		Hash:      Fingerprint(data),
		CreatedAt: time.Now().Unix(),
	}
}

// Fingerprint returns the SHA-256 of data as lowercase hex. It is an equality
// token for dedup, not a security boundary.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Preview renders a single-line summary. Whitespace runs (newlines, tabs)
// collapse to single spaces; text longer than maxLen characters is truncated
// at a rune boundary with a "..." suffix. Images render their payload size.
func (e *Entry) Preview(maxLen int) string {
	if e.Type == TypeImage {
		return fmt.Sprintf("[Image: %d bytes]", len(e.ImageData))
	}
	collapsed := strings.Join(strings.Fields(e.Content), " ")
	runes := []rune(collapsed)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return collapsed
}

// isURL reports whether text (trimmed) is a syntactically valid URL: a scheme
// plus an authority or opaque part. Anything with embedded whitespace is
// plain text.
func isURL(text string) bool {
	s := strings.TrimSpace(text)
	if s == "" || strings.ContainsAny(s, " \t\n\r") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}
