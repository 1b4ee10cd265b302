package extractor

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"
)

var videoIDRe = regexp.MustCompile(
	`(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/|youtube\.com/shorts/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`)

// YouTubeExtractor downloads YouTube videos natively, without shelling
// out to yt-dlp. It only accepts URLs it can extract a video ID from.
type YouTubeExtractor struct {
	client youtube.Client
}

var _ Extractor = (*YouTubeExtractor)(nil)

func NewYouTubeExtractor() *YouTubeExtractor {
	return &YouTubeExtractor{}
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL.
func ExtractVideoID(url string) (string, error) {
	match := videoIDRe.FindStringSubmatch(url)
	if len(match) < 2 {
		return "", fmt.Errorf("%w: not a YouTube URL: %s", ErrUnsupportedURL, url)
	}
	return match[1], nil
}

func (e *YouTubeExtractor) Extract(ctx context.Context, sourceURL, destinationPath string) error {
	videoID, err := ExtractVideoID(sourceURL)
	if err != nil {
		return err
	}

	video, err := e.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return fmt.Errorf("%w: failed to get video info: %v", ErrExtractionFailed, err)
	}
	logrus.WithField("title", video.Title).Debug("Fetched YouTube video info")

	// Shorts are small enough that a muxed mp4 format is always available,
	// so no separate audio merge step is needed.
	formats := video.Formats.Type("video/mp4").WithAudioChannels()
	if len(formats) == 0 {
		return fmt.Errorf("%w: no suitable mp4 format for video %s", ErrExtractionFailed, videoID)
	}
	formats.Sort()

	stream, _, err := e.client.GetStreamContext(ctx, video, &formats[0])
	if err != nil {
		return fmt.Errorf("%w: failed to get video stream: %v", ErrExtractionFailed, err)
	}
	defer stream.Close()

	out, err := os.Create(destinationPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, stream); err != nil {
		return fmt.Errorf("%w: failed to save video stream: %v", ErrExtractionFailed, err)
	}
	return nil
}
