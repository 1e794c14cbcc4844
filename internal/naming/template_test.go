package naming

import (
	"strings"
	"testing"

	"github.com/handiism/tiktok-downloader/internal/model"
)

func testFields() Fields {
	return Fields{
		PlaceholderDescription: "my clip",
		PlaceholderModTime:     "1700000000",
		PlaceholderAuthorID:    "42",
		PlaceholderAuthorName:  "someuser",
		PlaceholderHeight:      "1920",
		PlaceholderWidth:       "1080",
		PlaceholderMediaID:     "123",
		PlaceholderCountry:     "US",
		PlaceholderURL:         "https://www.tiktok.com/@someuser/video/123",
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"single placeholder", "%media_id%", "123"},
		{"mixed literal", "%author_name% - %media_id%", "someuser - 123"},
		{"case insensitive", "%MEDIA_ID%", "123"},
		{"unrecognized untouched", "%nope%-%media_id%", "%nope%-123"},
		{"no placeholders", "plain name", "plain name"},
		{"dimensions", "%media_width%x%media_height%", "1080x1920"},
	}

	fields := testFields()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, fields); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRender_Excluded(t *testing.T) {
	got := Render("%media_id%_%media_width%x%media_height%", testFields(),
		PlaceholderWidth, PlaceholderHeight)
	want := "123_%media_width%x%media_height%"
	if got != want {
		t.Errorf("Render with exclusions = %q, want %q", got, want)
	}
}

func TestRender_NeverEmpty(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"empty template", ""},
		{"whitespace template", "   "},
		{"placeholder with empty value", "%description%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, Fields{}); got != "_" {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, "_")
			}
		})
	}
}

func TestRender_Truncation(t *testing.T) {
	fields := Fields{
		PlaceholderDescription: strings.Repeat("d", 500),
		PlaceholderAuthorName:  strings.Repeat("a", 100),
	}

	desc := Render("%description%", fields)
	if n := len([]rune(desc)); n != 190 {
		t.Errorf("description rendered to %d runes, want 190", n)
	}
	author := Render("%author_name%", fields)
	if n := len([]rune(author)); n != 40 {
		t.Errorf("author name rendered to %d runes, want 40", n)
	}
}

func TestSanitizeFor(t *testing.T) {
	tests := []struct {
		name  string
		goos  string
		input string
		want  string
	}{
		{"slash on linux", "linux", "a/b", "a／b"},
		{"colon kept on linux", "linux", "a:b", "a:b"},
		{"windows full set", "windows", `<>:"/\|?*`, "﹤﹥﹕＂／＼｜？＊"},
		{"windows plain text", "windows", "clean name", "clean name"},
		{"darwin slash", "darwin", "x/y/z", "x／y／z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFor(tt.goos, tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFor(%q, %q) = %q, want %q", tt.goos, tt.input, got, tt.want)
			}
			for illegal := range fullWidth {
				if tt.goos == "windows" && strings.ContainsRune(got, illegal) {
					t.Errorf("output %q still contains illegal %q", got, illegal)
				}
			}
			if strings.ContainsRune(got, '/') {
				t.Errorf("output %q still contains a path separator", got)
			}
		})
	}
}

func TestFieldsFromPost(t *testing.T) {
	post := &model.Post{
		ID:           "123",
		Description:  "  padded  ",
		AuthorID:     "42",
		AuthorName:   " user ",
		Region:       "DE",
		CanonicalURL: "https://www.tiktok.com/@user/video/123",
		CreatedAt:    1700000000,
		Width:        720,
		Height:       1280,
	}

	fields := FieldsFromPost(post)
	if fields[PlaceholderDescription] != "padded" {
		t.Errorf("description = %q, want trimmed", fields[PlaceholderDescription])
	}
	if fields[PlaceholderAuthorName] != "user" {
		t.Errorf("author name = %q, want trimmed", fields[PlaceholderAuthorName])
	}
	if fields[PlaceholderModTime] != "1700000000" {
		t.Errorf("mod_time = %q", fields[PlaceholderModTime])
	}
	if fields[PlaceholderWidth] != "720" || fields[PlaceholderHeight] != "1280" {
		t.Errorf("dimensions = %q x %q", fields[PlaceholderWidth], fields[PlaceholderHeight])
	}
}

func TestFieldsFromPost_AbsentFields(t *testing.T) {
	fields := FieldsFromPost(&model.Post{ID: "9"})
	for _, name := range []string{PlaceholderDescription, PlaceholderModTime, PlaceholderWidth, PlaceholderHeight, PlaceholderCountry} {
		if fields[name] != "" {
			t.Errorf("%s = %q, want empty for absent field", name, fields[name])
		}
	}
}

func TestFields_WithDimensions(t *testing.T) {
	base := testFields()
	item := base.WithDimensions(640, 480)

	if item[PlaceholderWidth] != "640" || item[PlaceholderHeight] != "480" {
		t.Errorf("item dimensions = %q x %q", item[PlaceholderWidth], item[PlaceholderHeight])
	}
	// The original map must be untouched.
	if base[PlaceholderWidth] != "1080" {
		t.Errorf("base width mutated to %q", base[PlaceholderWidth])
	}

	zero := base.WithDimensions(0, 0)
	if zero[PlaceholderWidth] != "" || zero[PlaceholderHeight] != "" {
		t.Errorf("zero dimensions should render empty, got %q x %q", zero[PlaceholderWidth], zero[PlaceholderHeight])
	}
}
