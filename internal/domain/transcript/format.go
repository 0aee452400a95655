package transcript

import (
	"fmt"
	"strings"
	"time"
)

const (
	ruleLine            = "=================================================="
	noUtterancesMessage = "Sem utterances disponíveis."
	noTimestampsMessage = "Sem timestamps disponíveis."
)

// Metadata describes the video a detailed transcript belongs to.
type Metadata struct {
	Title       string
	URL         string
	GeneratedAt time.Time
}

// FormatBySpeaker renders the diarized view: consecutive utterances by
// the same speaker merge into one paragraph. The same speaker returning
// after someone else starts a new paragraph.
func FormatBySpeaker(t *Transcript) string {
	if len(t.Utterances) == 0 {
		return noUtterancesMessage
	}

	var paragraphs []string
	currentSpeaker := ""
	var currentText []string

	flush := func() {
		if len(currentText) > 0 {
			paragraphs = append(paragraphs, fmt.Sprintf("Falante %s:\n%s\n", currentSpeaker, strings.Join(currentText, " ")))
			currentText = nil
		}
	}

	for _, u := range t.Utterances {
		speaker := u.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		if speaker != currentSpeaker {
			flush()
			currentSpeaker = speaker
		}
		currentText = append(currentText, strings.TrimSpace(u.Text))
	}
	flush()

	return strings.Join(paragraphs, "\n")
}

// FormatTimestamps renders one line per word with start/end clock times.
func FormatTimestamps(t *Transcript) string {
	if len(t.Words) == 0 {
		return noTimestampsMessage
	}

	lines := make([]string, 0, len(t.Words))
	for _, w := range t.Words {
		lines = append(lines, fmt.Sprintf("[%s - %s] %s", formatClock(w.StartMs), formatClock(w.EndMs), w.Text))
	}
	return strings.Join(lines, "\n")
}

// FormatDetailed composes the full transcript document: banner, info
// block, speaker view, timestamp view, and complete text, each section
// delimited by a rule line.
func FormatDetailed(t *Transcript, meta Metadata) string {
	sections := []string{
		ruleLine,
		"TRANSCRIÇÃO DO VÍDEO: " + meta.Title,
		"URL: " + meta.URL,
		ruleLine + "\n",
		"=== INFORMAÇÕES ===\n",
		"Data: " + meta.GeneratedAt.Format("2006-01-02 15:04:05"),
		"Duração: " + formatClock(t.AudioDurationMs),
		ruleLine + "\n",
		"=== TRANSCRIÇÃO POR FALANTES ===\n",
		FormatBySpeaker(t),
		ruleLine + "\n",
		"=== TIMESTAMPS ===\n",
		FormatTimestamps(t),
		ruleLine + "\n",
		"=== TEXTO COMPLETO ===\n",
		t.Text,
		"\n" + ruleLine,
	}
	return strings.Join(sections, "\n")
}

// formatClock renders milliseconds as mm:ss.cc, e.g. 65000 -> "01:05.00".
func formatClock(ms int) string {
	totalSeconds := float64(ms) / 1000
	minutes := int(totalSeconds) / 60
	seconds := totalSeconds - float64(minutes*60)
	return fmt.Sprintf("%02d:%05.2f", minutes, seconds)
}
