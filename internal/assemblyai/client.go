// Package assemblyai is a minimal client for the AssemblyAI v2 REST API,
// covering the three calls the transcription pipeline needs: audio
// upload, job submission, and status polling.
package assemblyai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/matt11seven/tr/internal/domain/transcript"
)

const (
	defaultBaseURL      = "https://api.assemblyai.com/v2"
	defaultPollInterval = 30 * time.Second
	defaultTimeout      = 10 * time.Hour

	defaultMaxAttempts  = 3
	defaultRetryInitial = 4 * time.Second
	defaultRetryCap     = 10 * time.Second

	uploadBufferSize = 5 * 1024 * 1024
)

// Client talks to the AssemblyAI API. It owns one HTTP client for the
// lifetime of a pipeline run; call Close when done with it.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	pollInterval time.Duration
	timeout      time.Duration

	maxAttempts  uint64
	retryInitial time.Duration
	retryCap     time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPollInterval sets the delay between status polls.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithTimeout sets the wall-clock budget for WaitForCompletion.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetryPolicy sets the bounded backoff applied to upload and submit.
func WithRetryPolicy(attempts uint64, initial, ceiling time.Duration) Option {
	return func(c *Client) {
		c.maxAttempts = attempts
		c.retryInitial = initial
		c.retryCap = ceiling
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithClock injects the time source and sleep function used by the
// polling loop. Tests use this to simulate elapsed time.
func WithClock(now func() time.Time, sleep func(time.Duration)) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
	}
}

// New builds a Client authenticated with apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{},
		logger:       slog.Default(),
		pollInterval: defaultPollInterval,
		timeout:      defaultTimeout,
		maxAttempts:  defaultMaxAttempts,
		retryInitial: defaultRetryInitial,
		retryCap:     defaultRetryCap,
		now:          time.Now,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the HTTP session.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Upload streams the audio file to the upload endpoint and returns the
// URL the service assigned to it. Transport errors and non-2xx
// responses are retried with exponential backoff up to the configured
// attempt bound; a missing or empty file fails immediately.
func (c *Client) Upload(ctx context.Context, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil {
		return "", transcript.NewUploadError("audio file not found: "+audioPath, err)
	}
	if info.Size() == 0 {
		return "", transcript.NewUploadError("audio file is empty: "+audioPath, nil)
	}

	c.logger.Info("uploading audio", "path", audioPath, "bytes", info.Size())

	var uploadURL string
	err = c.retry(ctx, func() error {
		f, err := os.Open(audioPath)
		if err != nil {
			return err
		}
		defer f.Close()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bufio.NewReaderSize(f, uploadBufferSize))
		if err != nil {
			return err
		}
		req.Header.Set("authorization", c.apiKey)
		req.Header.Set("content-type", "application/octet-stream")
		req.ContentLength = info.Size()

		var resp struct {
			UploadURL string `json:"upload_url"`
		}
		if err := c.do(req, &resp); err != nil {
			return err
		}
		uploadURL = resp.UploadURL
		return nil
	})
	if err != nil {
		return "", transcript.NewUploadError("uploading audio", err)
	}
	return uploadURL, nil
}

// Submit creates a transcription job for an uploaded audio URL with
// speaker diarization enabled, returning the job ID. Same retry policy
// as Upload.
func (c *Client) Submit(ctx context.Context, audioURL, languageCode string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"audio_url":      audioURL,
		"speaker_labels": true,
		"language_code":  languageCode,
	})
	if err != nil {
		return "", transcript.NewAPIError("encoding job request", err)
	}

	var jobID string
	err = c.retry(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("authorization", c.apiKey)
		req.Header.Set("content-type", "application/json")

		var resp struct {
			ID string `json:"id"`
		}
		if err := c.do(req, &resp); err != nil {
			return err
		}
		jobID = resp.ID
		return nil
	})
	if err != nil {
		return "", transcript.NewAPIError("submitting transcription job", err)
	}

	c.logger.Info("transcription job submitted", "id", jobID)
	return jobID, nil
}

// WaitForCompletion polls the job at a fixed interval until it reaches
// a terminal status or the timeout budget is spent. Poll failures are
// not retried: steady-state polling assumes the endpoint is reliable,
// so a failed tick ends the run. Progress percentages observed while
// the job is processing are reported to onProgress.
func (c *Client) WaitForCompletion(ctx context.Context, jobID string, onProgress func(percent int)) (*transcript.Transcript, error) {
	start := c.now()

	for {
		if c.now().Sub(start) > c.timeout {
			return nil, transcript.NewAPIError(fmt.Sprintf("transcription timed out after %s", c.timeout), nil)
		}

		t, err := c.fetch(ctx, jobID)
		if err != nil {
			return nil, transcript.NewAPIError("fetching job status", err)
		}

		if t.Status.Terminal() {
			if t.Status == transcript.StatusError {
				return nil, transcript.NewAPIError("transcription failed: "+t.Error, nil)
			}
			return t, nil
		}
		if t.Status == transcript.StatusProcessing && onProgress != nil {
			onProgress(t.PercentageComplete)
		}

		c.sleep(c.pollInterval)
	}
}

func (c *Client) fetch(ctx context.Context, jobID string) (*transcript.Transcript, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("authorization", c.apiKey)

	var t transcript.Transcript
	if err := c.do(req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// do executes a request and decodes the JSON response into v. Non-2xx
// responses become errors carrying the status and body.
func (c *Client) do(req *http.Request, v any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("assemblyai API error (HTTP %d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	if v == nil {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// retry runs op with the client's bounded exponential backoff policy.
func (c *Client) retry(ctx context.Context, op backoff.Operation) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInitial
	bo.MaxInterval = c.retryCap
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.maxAttempts-1), ctx))
}
