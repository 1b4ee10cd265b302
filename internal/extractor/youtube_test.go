package extractor

import (
	"errors"
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{url: "https://www.youtube.com/shorts/2vAFkEhL2g4", want: "2vAFkEhL2g4"},
		{url: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{url: "https://www.instagram.com/reel/DE9WkhAoLQJ/", wantErr: true},
		{url: "not a url", wantErr: true},
		{url: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ExtractVideoID(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ExtractVideoID(%q): expected error", tt.url)
			} else if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("ExtractVideoID(%q): error = %v, want ErrUnsupportedURL", tt.url, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractVideoID(%q): %v", tt.url, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/shorts/abc", true},
		{"https://youtu.be/shorts/abc", true},
		{"https://www.instagram.com/reel/XYZ/", false},
		{"https://example.com/youtube", false},
	}

	for _, tt := range tests {
		if got := isYouTubeURL(tt.url); got != tt.want {
			t.Errorf("isYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
