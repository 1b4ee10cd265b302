// Package downloads runs a single download request end to end.
package downloads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/reelfetch/telegram-reels-bot/internal/bot"
	"github.com/reelfetch/telegram-reels-bot/internal/extractor"
	"github.com/reelfetch/telegram-reels-bot/internal/metrics"
)

// Orchestrator owns the temporary artifact of each download: it creates
// the file, hands it to the reply sink, and guarantees removal on both
// the success and the failure path. The counter is incremented only
// after extract, reply and cleanup have all succeeded.
type Orchestrator struct {
	bot         bot.Service
	extractor   extractor.Extractor
	counter     *metrics.Counter
	downloadDir string
}

func NewOrchestrator(botService bot.Service, ext extractor.Extractor, counter *metrics.Counter, downloadDir string) *Orchestrator {
	return &Orchestrator{
		bot:         botService,
		extractor:   ext,
		counter:     counter,
		downloadDir: downloadDir,
	}
}

// Handle downloads url and replies with the video, threaded to the
// original message. A failed download is terminal for the request: the
// error is returned for logging, the user gets no reply, the counter
// stays put and the temp file is removed best-effort.
func (o *Orchestrator) Handle(ctx context.Context, url string, chatID int64, replyToMessageID int) error {
	videoPath := filepath.Join(o.downloadDir, uuid.NewString()+".mp4")
	logrus.WithFields(logrus.Fields{
		"url":  url,
		"path": videoPath,
	}).Info("Starting media download")

	if err := o.extractor.Extract(ctx, url, videoPath); err != nil {
		o.cleanup(videoPath)
		return fmt.Errorf("media extraction failed: %w", err)
	}

	if err := o.bot.SendVideo(chatID, videoPath, replyToMessageID); err != nil {
		o.cleanup(videoPath)
		return fmt.Errorf("video reply failed: %w", err)
	}

	if err := os.Remove(videoPath); err != nil {
		return fmt.Errorf("failed to remove downloaded file: %w", err)
	}

	o.counter.Inc()
	logrus.WithField("url", url).Info("Download completed successfully")
	return nil
}

func (o *Orchestrator) cleanup(videoPath string) {
	if err := os.Remove(videoPath); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warnf("Failed to clean up file %s", videoPath)
	}
}
