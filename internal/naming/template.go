package naming

import (
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/handiism/tiktok-downloader/internal/model"
)

// Placeholder names recognized in output templates, written as
// %name% (case-insensitive) by the user.
const (
	PlaceholderDescription = "description"
	PlaceholderModTime     = "mod_time"
	PlaceholderAuthorID    = "author_id"
	PlaceholderAuthorName  = "author_name"
	PlaceholderHeight      = "media_height"
	PlaceholderWidth       = "media_width"
	PlaceholderMediaID     = "media_id"
	PlaceholderCountry     = "country_code"
	PlaceholderURL         = "url"
)

// placeholders is the fixed substitution order. Unrecognized tokens in a
// template are left untouched.
var placeholders = []string{
	PlaceholderDescription,
	PlaceholderModTime,
	PlaceholderAuthorID,
	PlaceholderAuthorName,
	PlaceholderHeight,
	PlaceholderWidth,
	PlaceholderMediaID,
	PlaceholderCountry,
	PlaceholderURL,
}

const (
	maxDescriptionRunes = 190
	maxAuthorNameRunes  = 40
)

// Fields maps placeholder names to their current string values for the
// media item being named. A Fields value is rebuilt per item; for photo
// galleries the width/height entries vary per image.
type Fields map[string]string

// FieldsFromPost builds the field map for a post. Absent metadata renders
// as the empty string, never as an error.
func FieldsFromPost(p *model.Post) Fields {
	f := Fields{
		PlaceholderDescription: strings.TrimSpace(p.Description),
		PlaceholderAuthorID:    strings.TrimSpace(p.AuthorID),
		PlaceholderAuthorName:  strings.TrimSpace(p.AuthorName),
		PlaceholderMediaID:     strings.TrimSpace(p.ID),
		PlaceholderCountry:     strings.TrimSpace(p.Region),
		PlaceholderURL:         p.CanonicalURL,
		PlaceholderModTime:     "",
		PlaceholderHeight:      "",
		PlaceholderWidth:       "",
	}
	if p.CreatedAt != 0 {
		f[PlaceholderModTime] = strconv.FormatInt(p.CreatedAt, 10)
	}
	if p.Width > 0 {
		f[PlaceholderWidth] = strconv.Itoa(p.Width)
	}
	if p.Height > 0 {
		f[PlaceholderHeight] = strconv.Itoa(p.Height)
	}
	return f
}

// WithDimensions returns a copy of f with the width/height entries
// replaced by the given image's dimensions. Zero dimensions render empty.
func (f Fields) WithDimensions(width, height int) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	out[PlaceholderWidth] = ""
	out[PlaceholderHeight] = ""
	if width > 0 {
		out[PlaceholderWidth] = strconv.Itoa(width)
	}
	if height > 0 {
		out[PlaceholderHeight] = strconv.Itoa(height)
	}
	return out
}

// Render expands template by substituting every recognized placeholder
// that is not in excluded with its sanitized field value. Substitution is
// case-insensitive; unknown %tokens% pass through unchanged. Rendering is
// total: missing fields become empty strings and a result that is empty
// or whitespace-only falls back to "_", never an empty path.
func Render(template string, fields Fields, excluded ...string) string {
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	out := template
	for _, name := range placeholders {
		if skip[name] {
			continue
		}
		value := Sanitize(fields[name])
		switch name {
		case PlaceholderDescription:
			value = truncateRunes(value, maxDescriptionRunes)
		case PlaceholderAuthorName:
			value = truncateRunes(value, maxAuthorNameRunes)
		}
		re := regexp.MustCompile("(?i)%" + regexp.QuoteMeta(name) + "%")
		out = re.ReplaceAllLiteralString(out, value)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "_"
	}
	return out
}

// fullWidth maps filesystem-illegal characters to visually similar
// full-width Unicode look-alikes. Windows forbids the whole set; on other
// platforms only the path separator is illegal in a file name.
var fullWidth = map[rune]rune{
	'<':  '﹤',
	'>':  '﹥',
	':':  '﹕',
	'"':  '＂',
	'/':  '／',
	'\\': '＼',
	'|':  '｜',
	'?':  '？',
	'*':  '＊',
}

// Sanitize replaces characters that are illegal in file names on the
// current platform with full-width look-alikes. It never fails.
func Sanitize(s string) string {
	return sanitizeFor(runtime.GOOS, s)
}

func sanitizeFor(goos, s string) string {
	if goos == "windows" {
		return strings.Map(func(r rune) rune {
			if repl, ok := fullWidth[r]; ok {
				return repl
			}
			return r
		}, s)
	}
	return strings.ReplaceAll(s, "/", string(fullWidth['/']))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
