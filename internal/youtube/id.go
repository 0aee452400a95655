package youtube

import "strings"

// ParseVideoID extracts the video ID from a full watch URL, a youtu.be
// short link, or a bare ID.
func ParseVideoID(input string) string {
	input = strings.TrimSpace(input)

	if strings.Contains(input, "youtube.com") {
		if _, after, ok := strings.Cut(input, "watch?v="); ok {
			id, _, _ := strings.Cut(after, "&")
			return id
		}
	}
	if strings.Contains(input, "youtu.be") {
		if _, after, ok := strings.Cut(input, "youtu.be/"); ok {
			id, _, _ := strings.Cut(after, "?")
			return id
		}
	}
	return input
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
