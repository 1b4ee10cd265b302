package downloads

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reelfetch/telegram-reels-bot/internal/metrics"
	"github.com/reelfetch/telegram-reels-bot/internal/testutils"
)

func TestHandle_Success(t *testing.T) {
	dir := t.TempDir()
	mockBot := &testutils.MockBot{}
	fake := &testutils.FakeExtractor{Content: []byte("mp4 bytes")}
	counter := metrics.NewCounter()
	o := NewOrchestrator(mockBot, fake, counter, dir)

	url := "https://www.instagram.com/reel/XYZ/"
	if err := o.Handle(context.Background(), url, 100, 7); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if calls := fake.Calls(); len(calls) != 1 || calls[0] != url {
		t.Errorf("extractor calls = %v, want exactly [%s]", calls, url)
	}
	if len(mockBot.SentVideos) != 1 {
		t.Fatalf("sent %d videos, want 1", len(mockBot.SentVideos))
	}
	video := mockBot.SentVideos[0]
	if video.ChatID != 100 {
		t.Errorf("video chat = %d, want 100", video.ChatID)
	}
	if video.ReplyToMessageID != 7 {
		t.Errorf("video reply threading = %d, want 7", video.ReplyToMessageID)
	}
	if got := counter.Value(); got != 1 {
		t.Errorf("counter = %d, want 1", got)
	}
	assertDirEmpty(t, dir)
}

func TestHandle_ExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	mockBot := &testutils.MockBot{}
	fake := &testutils.FakeExtractor{
		Err:                 errors.New("network error"),
		WritePartialOnError: true,
		Content:             []byte("partial"),
	}
	counter := metrics.NewCounter()
	o := NewOrchestrator(mockBot, fake, counter, dir)

	err := o.Handle(context.Background(), "https://youtu.be/shorts/abc", 100, 7)
	if err == nil {
		t.Fatal("expected error from failed extraction")
	}

	if len(mockBot.SentVideos) != 0 || len(mockBot.SentMessages) != 0 {
		t.Error("no reply must be sent on extraction failure")
	}
	if got := counter.Value(); got != 0 {
		t.Errorf("counter = %d, want 0", got)
	}
	// Partially written temp file must be cleaned up.
	assertDirEmpty(t, dir)
}

func TestHandle_ReplyDeliveryFailure(t *testing.T) {
	dir := t.TempDir()
	mockBot := &testutils.MockBot{SendVideoError: errors.New("file too large")}
	fake := &testutils.FakeExtractor{}
	counter := metrics.NewCounter()
	o := NewOrchestrator(mockBot, fake, counter, dir)

	err := o.Handle(context.Background(), "https://youtu.be/shorts/abc", 100, 7)
	if err == nil {
		t.Fatal("expected error from failed reply delivery")
	}

	if got := counter.Value(); got != 0 {
		t.Errorf("counter = %d, want 0", got)
	}
	assertDirEmpty(t, dir)
}

func TestHandle_UniqueTempNames(t *testing.T) {
	dir := t.TempDir()
	mockBot := &testutils.MockBot{}
	fake := &testutils.FakeExtractor{}
	o := NewOrchestrator(mockBot, fake, metrics.NewCounter(), dir)

	for i := 0; i < 3; i++ {
		if err := o.Handle(context.Background(), "https://youtu.be/shorts/abc", 100, i); err != nil {
			t.Fatalf("Handle #%d: %v", i, err)
		}
	}

	seen := make(map[string]bool)
	for _, v := range mockBot.SentVideos {
		if seen[v.FilePath] {
			t.Errorf("temp path %s reused", v.FilePath)
		}
		seen[v.FilePath] = true
		if filepath.Dir(v.FilePath) != dir {
			t.Errorf("temp file %s not under download dir %s", v.FilePath, dir)
		}
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("download dir not empty: %d leftover files", len(entries))
	}
}
