package transcript

// Status is the job state reported by the transcription service.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether no further polling can change the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Utterance is one diarized speech segment.
type Utterance struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Word is a single word with millisecond timing.
type Word struct {
	Text    string `json:"text"`
	StartMs int    `json:"start"`
	EndMs   int    `json:"end"`
}

// Transcript is the payload of one transcription job. Utterances and
// Words are only present when the service produced them; the formatter
// must tolerate either being nil.
type Transcript struct {
	ID                 string      `json:"id"`
	Status             Status      `json:"status"`
	PercentageComplete int         `json:"percentage_complete"`
	Text               string      `json:"text"`
	Utterances         []Utterance `json:"utterances"`
	Words              []Word      `json:"words"`
	AudioDurationMs    int         `json:"audio_duration"`
	Error              string      `json:"error"`
}
