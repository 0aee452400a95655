package transcript

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBySpeakerGroupsConsecutiveUtterances(t *testing.T) {
	tr := &Transcript{
		Utterances: []Utterance{
			{Speaker: "A", Text: "hi"},
			{Speaker: "A", Text: "there"},
			{Speaker: "B", Text: "hey"},
			{Speaker: "A", Text: "ok"},
		},
	}

	got := FormatBySpeaker(tr)
	want := "Falante A:\nhi there\n\nFalante B:\nhey\n\nFalante A:\nok\n"
	if got != want {
		t.Fatalf("FormatBySpeaker() = %q, want %q", got, want)
	}
}

func TestFormatBySpeakerUnknownSpeakerAndTrimming(t *testing.T) {
	tr := &Transcript{
		Utterances: []Utterance{
			{Speaker: "", Text: "  hello  "},
		},
	}

	got := FormatBySpeaker(tr)
	want := "Falante Unknown:\nhello\n"
	if got != want {
		t.Fatalf("FormatBySpeaker() = %q, want %q", got, want)
	}
}

func TestFormatBySpeakerPlaceholderWhenAbsent(t *testing.T) {
	if got := FormatBySpeaker(&Transcript{}); got != "Sem utterances disponíveis." {
		t.Fatalf("FormatBySpeaker() = %q", got)
	}
}

func TestFormatTimestamps(t *testing.T) {
	tr := &Transcript{
		Words: []Word{
			{Text: "hello", StartMs: 0, EndMs: 1500},
			{Text: "world", StartMs: 65000, EndMs: 66500},
		},
	}

	got := FormatTimestamps(tr)
	want := "[00:00.00 - 00:01.50] hello\n[01:05.00 - 01:06.50] world"
	if got != want {
		t.Fatalf("FormatTimestamps() = %q, want %q", got, want)
	}
}

func TestFormatTimestampsPlaceholderWhenAbsent(t *testing.T) {
	if got := FormatTimestamps(&Transcript{}); got != "Sem timestamps disponíveis." {
		t.Fatalf("FormatTimestamps() = %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		ms   int
		want string
	}{
		{0, "00:00.00"},
		{1500, "00:01.50"},
		{65000, "01:05.00"},
		{3599990, "59:59.99"},
	}
	for _, c := range cases {
		if got := formatClock(c.ms); got != c.want {
			t.Errorf("formatClock(%d) = %q, want %q", c.ms, got, c.want)
		}
	}
}

func TestFormatDetailedContainsEverySection(t *testing.T) {
	tr := &Transcript{
		Text:            "full text here",
		AudioDurationMs: 65000,
		Utterances:      []Utterance{{Speaker: "A", Text: "hi"}},
		Words:           []Word{{Text: "hi", StartMs: 0, EndMs: 1500}},
	}
	meta := Metadata{
		Title:       "My Video",
		URL:         "https://www.youtube.com/watch?v=abc123",
		GeneratedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}

	got := FormatDetailed(tr, meta)

	for _, section := range []string{
		"TRANSCRIÇÃO DO VÍDEO: My Video",
		"URL: https://www.youtube.com/watch?v=abc123",
		"=== INFORMAÇÕES ===",
		"Data: 2025-03-14 15:09:26",
		"Duração: 01:05.00",
		"=== TRANSCRIÇÃO POR FALANTES ===",
		"Falante A:\nhi",
		"=== TIMESTAMPS ===",
		"[00:00.00 - 00:01.50] hi",
		"=== TEXTO COMPLETO ===",
		"full text here",
	} {
		if !strings.Contains(got, section) {
			t.Errorf("detailed output missing %q", section)
		}
	}
}

func TestFormatDetailedMissingOptionalFieldsUsePlaceholders(t *testing.T) {
	tr := &Transcript{Text: "only text"}
	meta := Metadata{Title: "t", URL: "u", GeneratedAt: time.Unix(0, 0).UTC()}

	got := FormatDetailed(tr, meta)

	if !strings.Contains(got, "Sem utterances disponíveis.") {
		t.Errorf("missing utterances placeholder in %q", got)
	}
	if !strings.Contains(got, "Sem timestamps disponíveis.") {
		t.Errorf("missing timestamps placeholder in %q", got)
	}
}

func TestFormattingIsDeterministic(t *testing.T) {
	tr := &Transcript{
		Text:            "text",
		AudioDurationMs: 1234,
		Utterances:      []Utterance{{Speaker: "A", Text: "a"}, {Speaker: "B", Text: "b"}},
		Words:           []Word{{Text: "a", StartMs: 10, EndMs: 20}},
	}
	meta := Metadata{Title: "t", URL: "u", GeneratedAt: time.Unix(42, 0).UTC()}

	if FormatBySpeaker(tr) != FormatBySpeaker(tr) {
		t.Fatal("FormatBySpeaker not deterministic")
	}
	if FormatTimestamps(tr) != FormatTimestamps(tr) {
		t.Fatal("FormatTimestamps not deterministic")
	}
	if FormatDetailed(tr, meta) != FormatDetailed(tr, meta) {
		t.Fatal("FormatDetailed not deterministic")
	}
}
