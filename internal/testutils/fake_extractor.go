package testutils

import (
	"context"
	"os"
	"sync"
)

// FakeExtractor implements extractor.Extractor. On success it writes
// Content to the destination path, like the real extractor would.
type FakeExtractor struct {
	// Err, if set, is returned without writing anything.
	Err error
	// WritePartialOnError also writes Content before failing, to test
	// cleanup of partially written files.
	WritePartialOnError bool
	// Content is the payload written to the destination path.
	Content []byte

	mu    sync.Mutex
	calls []string
}

func (f *FakeExtractor) Extract(_ context.Context, sourceURL, destinationPath string) error {
	f.mu.Lock()
	f.calls = append(f.calls, sourceURL)
	f.mu.Unlock()

	if f.Err != nil {
		if f.WritePartialOnError {
			_ = os.WriteFile(destinationPath, f.Content, 0o600)
		}
		return f.Err
	}

	content := f.Content
	if content == nil {
		content = []byte("video")
	}
	return os.WriteFile(destinationPath, content, 0o600)
}

// Calls returns the URLs Extract was invoked with, in order.
func (f *FakeExtractor) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
