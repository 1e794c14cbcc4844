package tiktok

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/handiism/tiktok-downloader/internal/http"
	"github.com/handiism/tiktok-downloader/internal/model"
	"github.com/handiism/tiktok-downloader/internal/tiktok/dto"
)

// DefaultEndpoints is the ordered priority list of feed API endpoints.
// Each entry takes the media id as its single format argument. The
// first endpoint producing a verified record wins; the list is a
// fallback chain, not a load-balance set.
var DefaultEndpoints = []string{
	"https://api19-core-c-useast1a.musical.ly/aweme/v1/feed/?aweme_id=%s",
	"https://api16-normal-c-useast1a.tiktokv.com/aweme/v1/feed/?aweme_id=%s",
	"https://api31-normal-useast2a.tiktokv.com/aweme/v1/aweme/detail/?aweme_id=%s",
}

// apiQuerySuffix carries the fixed device parameters the endpoints
// expect alongside the media id.
const apiQuerySuffix = "&version_code=330304&app_name=musical_ly&channel=App" +
	"&device_id=null&os_version=16.6&device_platform=iphone&device_type=iPhone15"

var (
	// ErrNotFound means every endpoint was exhausted without a record
	// matching the requested id.
	ErrNotFound = errors.New("no endpoint returned a matching record")

	// ErrNetwork means every endpoint attempt failed at the transport
	// level, before any payload could be judged.
	ErrNetwork = errors.New("all endpoints unreachable")
)

// Resolver turns a media reference into a normalized descriptor by
// querying the endpoint list in order.
//
// Endpoints are unreliable: they may 404, return an empty list, or
// return a stale record for a different id. Each endpoint gets exactly
// one request and a failed or mismatched attempt moves on to the next.
type Resolver struct {
	client    *http.Client
	endpoints []string

	// OnAttempt, when set, is called after each failed endpoint attempt
	// so the caller can log the fallback progression.
	OnAttempt func(endpoint string, err error)
}

// NewResolver creates a resolver over the given endpoint list; an empty
// list selects DefaultEndpoints.
func NewResolver(client *http.Client, endpoints []string) *Resolver {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	return &Resolver{client: client, endpoints: endpoints}
}

// Resolve fetches the descriptor for ref. canonicalURL is carried into
// the descriptor as its %url% metadata field.
//
// The endpoint list is walked in order and the first verified record is
// returned; remaining endpoints are not contacted. When the list is
// exhausted the error is ErrNetwork if every attempt failed in
// transport, ErrNotFound otherwise. Both are wrapped with the media id.
func (r *Resolver) Resolve(ctx context.Context, ref model.MediaReference, canonicalURL string) (*model.Post, error) {
	transportFailures := 0

	for _, endpoint := range r.endpoints {
		url := fmt.Sprintf(endpoint, ref.ID) + apiQuerySuffix

		body, err := r.client.Get(ctx, url)
		if err != nil {
			var statusErr *http.StatusError
			if !errors.As(err, &statusErr) {
				transportFailures++
			}
			r.attemptFailed(endpoint, err)
			continue
		}

		var feed dto.FeedResponse
		if err := json.Unmarshal(body, &feed); err != nil {
			r.attemptFailed(endpoint, fmt.Errorf("decoding payload: %w", err))
			continue
		}

		record := feed.First()
		if record == nil {
			r.attemptFailed(endpoint, errors.New("empty record list"))
			continue
		}
		// Endpoints sometimes answer with a stale record for another
		// id; such a payload is discarded, not trusted.
		if record.AwemeID != ref.ID {
			r.attemptFailed(endpoint, fmt.Errorf("record id %s does not match requested %s", record.AwemeID, ref.ID))
			continue
		}

		return record.ToPost(ref.Kind, canonicalURL), nil
	}

	if transportFailures == len(r.endpoints) {
		return nil, fmt.Errorf("resolving %s: %w", ref.ID, ErrNetwork)
	}
	return nil, fmt.Errorf("resolving %s: %w", ref.ID, ErrNotFound)
}

func (r *Resolver) attemptFailed(endpoint string, err error) {
	if r.OnAttempt != nil {
		r.OnAttempt(endpoint, err)
	}
}
