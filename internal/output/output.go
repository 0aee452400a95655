package output

import (
	"fmt"
	"io"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Downloading(videoID string) {
	fmt.Fprintf(f.w, "⬇️  Downloading audio for %s...\n", videoID)
}

func (f *Formatter) DownloadDone(path string) {
	fmt.Fprintf(f.w, "✅ Audio saved: %s\n", path)
}

func (f *Formatter) Transcribing() {
	fmt.Fprintf(f.w, "📝 Transcribing audio...\n")
}

func (f *Formatter) TranscriptSaved(detailedPath, simplePath string) {
	fmt.Fprintf(f.w, "✅ Transcripts saved:\n   - %s\n   - %s\n", detailedPath, simplePath)
}

func (f *Formatter) TranscriptReused(path string) {
	fmt.Fprintf(f.w, "ℹ️  Transcript already exists: %s\n", path)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) TranscriptListHeader() {
	fmt.Fprintf(f.w, "📁 Transcripts:\n\n")
}

func (f *Formatter) TranscriptListItem(title string, hasSimple bool) {
	status := ""
	if hasSimple {
		status = " ✅"
	}
	fmt.Fprintf(f.w, "  %s%s\n", title, status)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

// Tracker returns a progress tracker that rewrites one status line as
// the percentage grows.
func (f *Formatter) Tracker(description string) *ProgressTracker {
	return &ProgressTracker{w: f.w, description: description}
}

// ProgressTracker prints progress updates in place, only when the
// integer percentage actually advances.
type ProgressTracker struct {
	w           io.Writer
	description string
	last        int
	dirty       bool
}

func (p *ProgressTracker) Update(percent int) {
	if percent <= p.last {
		return
	}
	p.last = percent
	p.dirty = true
	fmt.Fprintf(p.w, "\r%s: %d%%", p.description, p.last)
}

// Active reports whether any progress line has been printed yet.
func (p *ProgressTracker) Active() bool {
	return p.dirty
}

func (p *ProgressTracker) Complete() {
	if p.dirty {
		fmt.Fprintln(p.w)
	}
	fmt.Fprintf(p.w, "✅ %s complete\n", p.description)
}
