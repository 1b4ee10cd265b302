package extractor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

const defaultFormat = "mp4"

// YTDLPExtractor shells out to yt-dlp. It handles every supported URL,
// including the Instagram ones the native YouTube client cannot.
type YTDLPExtractor struct {
	// Format is the yt-dlp format selector; defaults to "mp4".
	Format string
}

var _ Extractor = (*YTDLPExtractor)(nil)

func NewYTDLPExtractor() *YTDLPExtractor {
	return &YTDLPExtractor{Format: defaultFormat}
}

func (e *YTDLPExtractor) Extract(ctx context.Context, sourceURL, destinationPath string) error {
	format := e.Format
	if format == "" {
		format = defaultFormat
	}

	args := []string{
		"-f", format,
		"-o", destinationPath,
		"--no-playlist",
		sourceURL,
	}

	logrus.WithFields(logrus.Fields{
		"url":    sourceURL,
		"output": destinationPath,
	}).Debug("Running yt-dlp")

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logrus.WithError(err).WithField("stderr", stderr.String()).Error("yt-dlp failed")
		return fmt.Errorf("%w: yt-dlp: %v", ErrExtractionFailed, err)
	}
	return nil
}
