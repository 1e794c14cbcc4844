package tiktok

import (
	"regexp"

	"github.com/handiism/tiktok-downloader/internal/model"
)

var (
	videoURLRe = regexp.MustCompile(`^https://(?:www\.)?tiktok\.com/@[^?/]+/video/([0-9]+)(?:\?.*)?$`)
	photoURLRe = regexp.MustCompile(`^https://(?:www\.)?tiktok\.com/@[^?/]+/photo/([0-9]+)(?:\?.*)?$`)

	// canonicalRe captures the account part and the optional content
	// suffix, dropping query strings and tracking parameters.
	canonicalRe = regexp.MustCompile(`(?i)^(https://(?:www\.)?tiktok\.com/@[^?/]+)((?:/(?:video|photo)/[0-9]+)?)(?:\?.*)?$`)
)

// ParseMediaURL extracts the media reference from a raw content URL.
//
// Two URL shapes are recognized, distinguished by a path segment:
// /@user/video/<id> and /@user/photo/<id>. The numeric id is mandatory;
// a URL without one matches neither shape. The second return value is
// false for unsupported or unparseable URLs, which callers log and skip.
func ParseMediaURL(raw string) (model.MediaReference, bool) {
	if m := videoURLRe.FindStringSubmatch(raw); m != nil {
		return model.MediaReference{ID: m[1], Kind: model.KindVideo}, true
	}
	if m := photoURLRe.FindStringSubmatch(raw); m != nil {
		return model.MediaReference{ID: m[1], Kind: model.KindPhoto}, true
	}
	return model.MediaReference{}, false
}

// CanonicalURL strips the query string and tracking suffix from a
// TikTok URL, retaining scheme, account path and the optional
// /video/<id> or /photo/<id> suffix. The result is stored as the
// %url% metadata field and written into file tags.
func CanonicalURL(raw string) (string, bool) {
	m := canonicalRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1] + m[2], true
}
