// Package download provides the orchestration logic for fetching
// TikTok videos and photo galleries.
//
// # Manager
//
// The Manager runs the entire pipeline per input URL:
//
//  1. Parse the URL into a media reference
//  2. Skip media already recorded in the archive ledger
//  3. Resolve the reference via the fallback endpoint chain
//  4. Render the destination file name from the output template
//  5. Stream the video or every gallery image to disk
//  6. Embed metadata tags via ffmpeg
//  7. Restore the file's modification time and record the ledger entry
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	outcomes, err := manager.Run(ctx, urls)
//	if err != nil {
//	    log.Fatal(err) // run-fatal: destination or ledger unusable
//	}
//	for _, outcome := range outcomes {
//	    // OutcomeSuccess, OutcomeAlreadyDownloaded or OutcomeFailed
//	}
//
// # Failure Model
//
// A failure on one URL never stops the others: it yields a failed
// Outcome and the run continues. Only two conditions abort the run,
// because continuing would corrupt state rather than skip work: the
// download directory cannot be created, or the archive ledger cannot
// be read.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// # Retry Logic
//
// Failed downloads walk the record's mirror list and are retried with
// exponential backoff, configurable via settings.DownloadMaxRetries and
// settings.DownloadRetryCooldown.
package download
