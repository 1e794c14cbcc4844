package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ForceVideoExt appends ".mp4" unless the path already ends with it
// (case-insensitive). An existing different extension is kept as part of
// the name so no template information is lost.
func ForceVideoExt(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".mp4") {
		return path
	}
	return path + ".mp4"
}

// ForcePhotoExt forces a ".jpg" extension, replacing whatever extension
// the template produced.
func ForcePhotoExt(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".jpg"
	}
	if strings.EqualFold(ext, ".jpg") {
		return path
	}
	return strings.TrimSuffix(path, ext) + ".jpg"
}

// PadUntilFree returns path unchanged if nothing exists there, otherwise
// the first unused sibling derived by inserting "_01", "_02", ... before
// the extension. The suffix counter is always derived from the original
// path, so padded names stay lexically related to it.
func PadUntilFree(path string) string {
	candidate := path
	for n := 1; ; n++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		candidate = fmt.Sprintf("%s_%02d%s", base, n, ext)
	}
}

// IndexWidth returns the zero-padding width for gallery index suffixes:
// at least 2 digits, more when the gallery is large enough to need them.
func IndexWidth(count int) int {
	width := len(fmt.Sprintf("%d", count))
	if width < 2 {
		return 2
	}
	return width
}

// IndexedName inserts a 1-based, zero-padded index suffix before the
// extension: "author.jpg" with index 3 of 12 becomes "author_03.jpg".
func IndexedName(path string, index, count int) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s_%0*d%s", base, IndexWidth(count), index, ext)
}
