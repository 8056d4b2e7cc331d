package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/bdurukan/texxteditor/audio"
	"github.com/bdurukan/texxteditor/encoder"
)

const (
	defaultAPIURL = "https://api.openai.com/v1/audio/transcriptions"
	model         = "whisper-1"
)

// Client posts WAV uploads to the OpenAI transcription endpoint.
type Client struct {
	client *TracedClient
	apiURL string
	keys   KeyProvider
}

// NewClient talks to the production endpoint.
func NewClient(keys KeyProvider) *Client {
	return NewClientURL(keys, defaultAPIURL)
}

// NewClientURL targets an alternate endpoint; tests point it at httptest
// servers.
func NewClientURL(keys KeyProvider, apiURL string) *Client {
	return &Client{
		client: NewTracedClient(),
		apiURL: apiURL,
		keys:   keys,
	}
}

// Transcribe uploads a finished WAV container and returns the transcript
// with edge whitespace trimmed. An unconfigured key fails before any
// network activity.
func (c *Client) Transcribe(ctx context.Context, wavBytes []byte) (*Result, error) {
	apiKey := c.keys.APIKey()
	if apiKey == "" {
		return nil, newError(KindConfiguration, nil, "API key not configured")
	}

	body, contentType, err := buildUpload(wavBytes)
	if err != nil {
		return nil, newError(KindProcessing, err, "building upload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, body)
	if err != nil {
		return nil, newError(KindProcessing, err, "building request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, newError(KindNetwork, err, "request failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newError(KindRemoteAPI, nil, "%s", remoteDetail(resp))
	}

	return &Result{
		Text:    strings.TrimSpace(string(resp.Body)),
		Metrics: resp.Metrics,
	}, nil
}

// ProcessClip is the whole pipeline for one recording: package the clip as
// WAV and upload it. An empty clip short-circuits to an empty success
// without touching the network.
func (c *Client) ProcessClip(ctx context.Context, clip *audio.Clip) (*Result, error) {
	if clip.Empty() {
		return &Result{}, nil
	}

	wavBytes, err := encoder.EncodeClip(clip)
	if err != nil {
		return nil, newError(KindProcessing, err, "packaging clip: %v", err)
	}
	return c.Transcribe(ctx, wavBytes)
}

// buildUpload assembles the multipart body: the WAV payload as audio/wav,
// the model name, and a plain-text response format.
func buildUpload(wavBytes []byte) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="audio.wav"`)
	header.Set("Content-Type", "audio/wav")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(wavBytes); err != nil {
		return nil, "", err
	}

	writer.WriteField("model", model)
	writer.WriteField("response_format", "text")
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &body, writer.FormDataContentType(), nil
}

// remoteDetail pulls the message out of an API error body, falling back to
// the raw status line when the body isn't the documented JSON shape.
func remoteDetail(resp *TracedResponse) string {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	if resp.Status != "" {
		return fmt.Sprintf("API error: %s", resp.Status)
	}
	return fmt.Sprintf("API error: %d", resp.StatusCode)
}
