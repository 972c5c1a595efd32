package locator

import (
	"fmt"
	"net/url"
	"strings"

	"tasktamer/internal/usecase/locate"
)

// IsVideoURL reports whether rawURL points at a YouTube video. The check
// is purely structural; no network call is made.
//
// Recognized forms:
//   - youtube.com/watch?v=<id> (with or without www.)
//   - youtube.com/shorts/<id>
//   - youtu.be/<id>
func IsVideoURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com":
		return u.Path == "/watch" || strings.Contains(u.Path, "/shorts/")
	case "youtu.be":
		return true
	}
	return false
}

// videoID extracts the video identifier from a YouTube URL.
func videoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", locate.ErrVideoID, err)
	}

	var id string
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		} else if _, after, found := strings.Cut(u.Path, "/shorts/"); found {
			id = strings.Trim(after, "/")
		}
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	}

	if id == "" {
		return "", fmt.Errorf("%w: no ID in %q", locate.ErrVideoID, rawURL)
	}
	return id, nil
}

// syntheticTranscriptHeader labels placeholder transcripts so they are
// never mistaken for real caption data.
const syntheticTranscriptHeader = "[SYNTHETIC TRANSCRIPT: no caption source configured]"

// syntheticTranscript returns a clearly labeled placeholder for a video.
// A transcript-access integration (the YouTube Data API captions
// endpoint or a transcript-fetching service) would replace this; until
// one is configured, the placeholder keeps the downstream transformers
// usable while stating plainly that the text is not the video's content.
func syntheticTranscript(id string) string {
	return syntheticTranscriptHeader + "\n\n" +
		"Video ID: " + id + "\n\n" +
		"Task management is essential for productivity. " +
		"Breaking complex tasks into smaller steps helps make them more manageable. " +
		"The Pomodoro Technique suggests working in focused intervals of 25 minutes followed by short breaks. " +
		"Another effective strategy is time blocking, where you schedule specific activities during designated time slots. " +
		"Prioritization is also crucial - the Eisenhower Matrix helps categorize tasks by urgency and importance. " +
		"Regular reviews of your task list help ensure you're on track and making progress toward your goals. " +
		"Digital tools can enhance task management by providing reminders, organization features, and synchronization across devices."
}
