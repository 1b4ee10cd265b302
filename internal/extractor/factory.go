package extractor

import (
	"context"
	"strings"
)

// Auto routes YouTube links to the native client and everything else to
// yt-dlp. If the native path fails, yt-dlp gets a try as well, so an API
// change on YouTube's side degrades rather than breaks downloads.
type Auto struct {
	youtube Extractor
	ytdlp   Extractor
}

var _ Extractor = (*Auto)(nil)

func NewAuto() *Auto {
	return &Auto{
		youtube: NewYouTubeExtractor(),
		ytdlp:   NewYTDLPExtractor(),
	}
}

func (a *Auto) Extract(ctx context.Context, sourceURL, destinationPath string) error {
	if isYouTubeURL(sourceURL) {
		if err := a.youtube.Extract(ctx, sourceURL, destinationPath); err == nil {
			return nil
		}
	}
	return a.ytdlp.Extract(ctx, sourceURL, destinationPath)
}

func isYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com/") || strings.Contains(url, "youtu.be/")
}
