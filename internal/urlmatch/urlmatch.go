// Package urlmatch recognizes links to supported short-form video content.
package urlmatch

import "strings"

// SupportedPrefixes are the URL fragments the bot downloads. Order
// matters: the first fragment found in a message wins.
var SupportedPrefixes = []string{
	"youtube.com/shorts/",
	"youtu.be/shorts/",
	"instagram.com/reel/",
	"instagram.com/p/",
}

// Match describes a recognized link inside a message.
type Match struct {
	// Prefix is the supported fragment that matched.
	Prefix string
	// URL is the whitespace-delimited token of the message containing
	// the fragment.
	URL string
}

// Find scans text for a supported URL fragment. Matching is plain
// substring containment, not URL parsing: any text containing a
// supported fragment anywhere qualifies.
func Find(text string) (Match, bool) {
	for _, prefix := range SupportedPrefixes {
		if !strings.Contains(text, prefix) {
			continue
		}
		return Match{
			Prefix: prefix,
			URL:    tokenContaining(text, prefix),
		}, true
	}
	return Match{}, false
}

func tokenContaining(text, substr string) string {
	for _, token := range strings.Fields(text) {
		if strings.Contains(token, substr) {
			return token
		}
	}
	return text
}
