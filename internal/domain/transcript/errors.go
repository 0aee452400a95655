package transcript

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure by the phase that produced it.
type Kind string

const (
	// KindDownload means the audio could not be acquired.
	KindDownload Kind = "download"
	// KindUpload means the audio never reached the service after retries.
	KindUpload Kind = "upload"
	// KindAPI covers job submission, polling, remote job errors, and timeouts.
	KindAPI Kind = "api"
	// KindPipeline covers local failures such as persisting outputs.
	KindPipeline Kind = "pipeline"
)

// PipelineError is the umbrella error for every pipeline failure. The
// originating cause is carried, never swallowed.
type PipelineError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewDownloadError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindDownload, Message: message, Err: err}
}

func NewUploadError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindUpload, Message: message, Err: err}
}

func NewAPIError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindAPI, Message: message, Err: err}
}

func NewPipelineError(message string, err error) *PipelineError {
	return &PipelineError{Kind: KindPipeline, Message: message, Err: err}
}

// KindOf returns the failure kind of err, or "" if err is not a
// pipeline error.
func KindOf(err error) Kind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
