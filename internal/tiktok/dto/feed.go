// Package dto mirrors the subset of the feed API payload the resolver
// needs. Every field is optional on the wire: absent fields keep their
// zero value and never fail extraction.
package dto

import (
	"github.com/handiism/tiktok-downloader/internal/model"
)

// FeedResponse is the top-level payload of the feed endpoints.
type FeedResponse struct {
	// AwemeList holds the returned records. Endpoints are known to
	// answer with an empty list, or with a record for a different id
	// than the one requested.
	AwemeList []Aweme `json:"aweme_list"`
}

// First returns the first record, or nil when the list is empty.
func (r *FeedResponse) First() *Aweme {
	if len(r.AwemeList) == 0 {
		return nil
	}
	return &r.AwemeList[0]
}

// Aweme is one media record as the API returns it.
type Aweme struct {
	// AwemeID is the record's media id, verified against the requested
	// one before the record is trusted.
	AwemeID string `json:"aweme_id"`

	// Desc is the post caption. May be absent.
	Desc string `json:"desc"`

	// CreateTime is the creation time in epoch seconds. May be absent.
	CreateTime int64 `json:"create_time"`

	// Region is the two-letter country code. May be absent.
	Region string `json:"region"`

	Author        Author         `json:"author"`
	Video         Video          `json:"video"`
	ImagePostInfo *ImagePostInfo `json:"image_post_info"`
}

// Author identifies the posting account.
type Author struct {
	UID      string `json:"uid"`
	UniqueID string `json:"unique_id"`
}

// Video carries the play address of a video post.
type Video struct {
	PlayAddr Media `json:"play_addr"`
}

// ImagePostInfo carries the gallery of a photo post.
type ImagePostInfo struct {
	Images []Image `json:"images"`
}

// Image is one gallery entry.
type Image struct {
	OwnerWatermarkImage Media `json:"owner_watermark_image"`
}

// Media is a dimensioned mirror list shared by video play addresses and
// gallery images.
type Media struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	URLList []string `json:"url_list"`
}

// ToPost converts the record into the normalized descriptor. kind comes
// from the parsed input URL and canonicalURL from the canonicalizer;
// everything else degrades to zero values when absent upstream.
func (a *Aweme) ToPost(kind model.MediaKind, canonicalURL string) *model.Post {
	post := &model.Post{
		ID:           a.AwemeID,
		Kind:         kind,
		Description:  a.Desc,
		CreatedAt:    a.CreateTime,
		AuthorID:     a.Author.UID,
		AuthorName:   a.Author.UniqueID,
		Region:       a.Region,
		CanonicalURL: canonicalURL,
		Width:        a.Video.PlayAddr.Width,
		Height:       a.Video.PlayAddr.Height,
		VideoURLs:    a.Video.PlayAddr.URLList,
	}

	if a.ImagePostInfo != nil {
		for _, img := range a.ImagePostInfo.Images {
			post.Images = append(post.Images, model.GalleryImage{
				Width:  img.OwnerWatermarkImage.Width,
				Height: img.OwnerWatermarkImage.Height,
				URLs:   img.OwnerWatermarkImage.URLList,
			})
		}
	}

	return post
}
