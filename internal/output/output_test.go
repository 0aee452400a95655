package output

import (
	"strings"
	"testing"
)

func TestTrackerOnlyPrintsWhenPercentAdvances(t *testing.T) {
	var buf strings.Builder
	tracker := NewFormatter(&buf).Tracker("Download")

	if tracker.Active() {
		t.Fatal("tracker active before any update")
	}

	tracker.Update(10)
	tracker.Update(10)
	tracker.Update(5)
	tracker.Update(42)

	if !tracker.Active() {
		t.Fatal("tracker not active after updates")
	}
	got := buf.String()
	if strings.Count(got, "\r") != 2 {
		t.Fatalf("printed %d updates, want 2: %q", strings.Count(got, "\r"), got)
	}
	if !strings.Contains(got, "Download: 42%") {
		t.Fatalf("output = %q", got)
	}
}

func TestTrackerCompleteEndsTheProgressLine(t *testing.T) {
	var buf strings.Builder
	tracker := NewFormatter(&buf).Tracker("Transcription")

	tracker.Update(100)
	tracker.Complete()

	if !strings.HasSuffix(buf.String(), "\n✅ Transcription complete\n") {
		t.Fatalf("output = %q", buf.String())
	}
}
