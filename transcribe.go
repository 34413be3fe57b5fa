package tripsplit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
)

// contains the client for the remote transcription service.

const (
	defaultTranscriptionURL   = "https://api.openai.com/v1/audio/transcriptions"
	defaultTranscriptionModel = "whisper-1"
)

// WhisperClient calls an OpenAI-compatible speech-to-text endpoint. One
// request per transcription, no retry: a failure aborts the assisted intake
// and the user re-initiates.
type WhisperClient struct {
	APIKey string
	Model  string
	URL    string
	Client *http.Client
}

// NewWhisperClient creates a transcription client with the default endpoint
// and model.
func NewWhisperClient(apiKey string) *WhisperClient {
	return &WhisperClient{
		APIKey: apiKey,
		Model:  defaultTranscriptionModel,
		URL:    defaultTranscriptionURL,
		Client: new(http.Client),
	}
}

// Transcribe uploads the audio and returns the transcript text.
func (c *WhisperClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building transcription request: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("reading audio: %w", err)
	}
	if err := w.WriteField("model", c.Model); err != nil {
		return "", fmt.Errorf("building transcription request: %w", err)
	}
	if err := w.WriteField("language", "en"); err != nil {
		return "", fmt.Errorf("building transcription request: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("building transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, &body)
	if err != nil {
		return "", fmt.Errorf("building transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	defer resp.Body.Close()
	slog.Debug("transcription response", "status", resp.Status)

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("transcription service returned %s: %s", resp.Status, msg)
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding transcription response: %w", err)
	}
	return out.Text, nil
}
