package entry

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextClassification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ContentType
	}{
		{"plain text", "hello world", TypeText},
		{"http url", "http://example.com", TypeLink},
		{"https url", "https://example.com/path?q=1", TypeLink},
		{"url with surrounding whitespace", "  https://example.com\n", TypeLink},
		{"mailto", "mailto:someone@example.com", TypeLink},
		{"scheme only", "https://", TypeText},
		{"no scheme", "example.com/path", TypeText},
		{"url-ish with spaces", "visit https://example.com today", TypeText},
		{"empty", "", TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewText(tt.text)
			assert.Equal(t, tt.want, e.Type)
			assert.Equal(t, tt.text, e.Content)
			assert.Empty(t, e.ImageData)
			assert.Zero(t, e.ID)
		})
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	a := Fingerprint([]byte("some clipboard text"))
	b := Fingerprint([]byte("some clipboard text"))
	c := Fingerprint([]byte("other clipboard text"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
	assert.Equal(t, strings.ToLower(a), a)
}

func TestNewImage(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	e := NewImage(data)

	require.Equal(t, TypeImage, e.Type)
	assert.Equal(t, data, e.ImageData)
	assert.Empty(t, e.Content)
	assert.Equal(t, Fingerprint(data), e.Hash)
}

func TestPreviewCollapsesWhitespace(t *testing.T) {
	e := NewText("line one\n\tline   two\r\nline three")
	assert.Equal(t, "line one line two line three", e.Preview(80))
}

func TestPreviewTruncation(t *testing.T) {
	e := NewText(strings.Repeat("a", 100))
	got := e.Preview(10)
	assert.Equal(t, strings.Repeat("a", 10)+"...", got)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 13)
}

func TestPreviewTruncationRuneSafe(t *testing.T) {
	e := NewText(strings.Repeat("ö", 20) + strings.Repeat("界", 20))
	got := e.Preview(25)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 25+3, utf8.RuneCountInString(got))
}

func TestPreviewShortTextUnchanged(t *testing.T) {
	e := NewText("short")
	assert.Equal(t, "short", e.Preview(80))
}

func TestPreviewImage(t *testing.T) {
	e := NewImage(make([]byte, 1234))
	assert.Equal(t, "[Image: 1234 bytes]", e.Preview(10))
}

func TestParseContentType(t *testing.T) {
	for _, tag := range []string{"text", "link", "image"} {
		ct, ok := ParseContentType(tag)
		assert.True(t, ok)
		assert.Equal(t, tag, string(ct))
	}

	ct, ok := ParseContentType("video")
	assert.False(t, ok)
	assert.Equal(t, TypeText, ct)
}
