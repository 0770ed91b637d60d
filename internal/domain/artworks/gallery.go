package artworks

import "strings"

// MergeGallery assembles the public gallery sequence for an artwork: the
// main image first (when set), then the extra URLs in their stored order.
// Blank entries are dropped and each URL appears at most once.
func MergeGallery(mainImageURL string, urls []string) []string {
	merged := make([]string, 0, len(urls)+1)
	seen := make(map[string]bool, len(urls)+1)

	appendURL := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		merged = append(merged, u)
	}

	appendURL(mainImageURL)
	for _, u := range urls {
		appendURL(u)
	}
	return merged
}
