package model

// MediaKind distinguishes the two content types a TikTok post can carry.
type MediaKind int

const (
	// KindVideo is a single video post (one file, .mp4).
	KindVideo MediaKind = iota

	// KindPhoto is a photo post: a gallery of one or more images (.jpg).
	KindPhoto
)

// String returns "video" or "photo".
func (k MediaKind) String() string {
	if k == KindPhoto {
		return "photo"
	}
	return "video"
}

// MediaReference identifies one piece of content on TikTok.
//
// It is derived once from an input URL by tiktok.ParseMediaURL and is
// immutable afterwards. URLs that match neither the video nor the photo
// pattern produce no reference and the input is skipped.
type MediaReference struct {
	// ID is the numeric media identifier (the aweme id).
	ID string

	// Kind says whether the URL pointed at a video or a photo post.
	Kind MediaKind
}

// GalleryImage is one image of a photo post.
//
// Width and Height are taken from the API record when present and are 0
// otherwise. URLs holds the mirror list exactly as the API returned it;
// the downloader tries the mirrors in reverse order (the last entry is
// the preferred quality).
type GalleryImage struct {
	Width  int
	Height int
	URLs   []string
}

// Post is the normalized descriptor of a resolved media item.
//
// Every metadata field is independently optional: a field the API omits
// degrades to its zero value rather than failing extraction. The only
// hard requirement is that ID equals the MediaReference.ID the post was
// resolved for; the resolver discards records where it does not.
type Post struct {
	// ID is the media identifier, verified against the requested one.
	ID string

	// Kind mirrors the reference's content kind.
	Kind MediaKind

	// Description is the post caption. Empty when absent.
	Description string

	// CreatedAt is the creation time in epoch seconds, 0 when unknown.
	// It is used for the %mod_time% placeholder, the file modification
	// time and the date tag.
	CreatedAt int64

	// AuthorID is the author's numeric uid. Empty when absent.
	AuthorID string

	// AuthorName is the author's handle (unique_id). Empty when absent.
	AuthorName string

	// Region is the two-letter country code of the post. Empty when absent.
	Region string

	// CanonicalURL is the cleaned input URL (scheme + account path +
	// content suffix, no query string). Stored as the %url% placeholder
	// and written into the comment tag.
	CanonicalURL string

	// Width and Height are the video play-address dimensions.
	// Unused for photo posts, whose dimensions vary per image.
	Width  int
	Height int

	// VideoURLs is the ordered mirror list for the video stream.
	// The first mirror that downloads successfully wins.
	VideoURLs []string

	// Images is the gallery for photo posts, in display order.
	Images []GalleryImage
}

// IsGallery reports whether the post is a photo post with more than one image.
func (p *Post) IsGallery() bool {
	return p.Kind == KindPhoto && len(p.Images) > 1
}
