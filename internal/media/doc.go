// Package media post-processes downloaded files.
//
// It covers two concerns: embedding post metadata into video files via
// an external ffmpeg binary (see Tagger), and probing the pixel
// dimensions of downloaded gallery images (see Dimensions). Both
// operate on files already on disk; neither touches the network.
package media
