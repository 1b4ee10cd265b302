// Package extractor fetches remote media and writes it to a local file.
package extractor

import (
	"context"
	"errors"
)

var (
	ErrUnsupportedURL   = errors.New("unsupported URL")
	ErrExtractionFailed = errors.New("extraction failed")
)

// Extractor downloads the media behind sourceURL into destinationPath as
// a playable video container. The call may block for a network-dependent
// duration; no timeout is applied beyond what ctx carries.
type Extractor interface {
	Extract(ctx context.Context, sourceURL, destinationPath string) error
}
