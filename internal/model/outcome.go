package model

// OutcomeKind is the terminal state of processing one input URL.
type OutcomeKind int

const (
	// OutcomeSuccess means the media was resolved, downloaded and
	// (when configured) recorded in the archive.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeAlreadyDownloaded means the archive already contained the
	// media id; nothing was fetched or written.
	OutcomeAlreadyDownloaded

	// OutcomeFailed means resolution or download failed, or the URL was
	// not a recognized TikTok media URL (in which case MediaID is empty).
	OutcomeFailed
)

// Outcome is the per-URL result reported by the download manager.
//
// Outcomes are mutually exclusive; every input URL produces exactly one.
type Outcome struct {
	// URL is the raw input URL as supplied.
	URL string

	// MediaID is the parsed media identifier, empty when the URL itself
	// was unparseable.
	MediaID string

	// Kind is the terminal state.
	Kind OutcomeKind

	// Err carries the failure cause for OutcomeFailed, nil otherwise.
	Err error
}
