package background

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	imagepkg "github.com/youruser/posterapp/internal/image"
)

const (
	DefaultEndpoint = "https://api-inference.huggingface.co"
	DefaultModel    = "prompthero/openjourney"

	promptSuffix = ", poster design, concept art, trending on artstation, sharp, 4k, mdjrny-v4 style"
)

var (
	// ErrNoToken is returned before any request when no API token is set.
	ErrNoToken = errors.New("hugging face token not configured")
	// ErrModelLoading is returned when every attempt found the model still loading.
	ErrModelLoading = errors.New("model still loading")
)

// StatusError reports a non-success response from the inference API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference API status %d: %s", e.Code, e.Body)
}

// HuggingFace generates backgrounds through the Hugging Face inference API.
// A 503 (model loading) is retried up to Retries attempts with a backoff that
// doubles from Backoff up to MaxBackoff; every other failure stops at once.
type HuggingFace struct {
	Token      string
	Model      string
	Endpoint   string
	Retries    int
	Backoff    time.Duration
	MaxBackoff time.Duration
	Client     *http.Client
}

// NewHuggingFace returns a client with the stock model, three attempts and a
// 120s per-request timeout.
func NewHuggingFace(token string) *HuggingFace {
	return &HuggingFace{
		Token:      token,
		Model:      DefaultModel,
		Endpoint:   DefaultEndpoint,
		Retries:    3,
		Backoff:    15 * time.Second,
		MaxBackoff: time.Minute,
		Client:     &http.Client{Timeout: 120 * time.Second},
	}
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Fetch implements Provider.
func (h *HuggingFace) Fetch(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	if h.Token == "" {
		return nil, ErrNoToken
	}
	body, err := json.Marshal(inferenceRequest{
		Inputs:     prompt + promptSuffix,
		Parameters: inferenceParameters{Width: width, Height: height},
	})
	if err != nil {
		return nil, fmt.Errorf("encode inference request: %w", err)
	}

	attempts := max(h.Retries, 1)
	wait := h.Backoff
	for i := 1; i <= attempts; i++ {
		img, err := h.attempt(ctx, body)
		if err == nil {
			slog.Info("background generated", "model", h.model(), "attempt", i)
			return conform(img, width, height), nil
		}
		if !errors.Is(err, ErrModelLoading) {
			return nil, err
		}
		if i == attempts {
			break
		}
		slog.Info("model loading, retrying", "attempt", i, "of", attempts, "wait", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait = min(wait*2, h.maxBackoff())
	}
	return nil, fmt.Errorf("after %d attempts: %w", attempts, ErrModelLoading)
}

func (h *HuggingFace) attempt(ctx context.Context, body []byte) (image.Image, error) {
	url := strings.TrimRight(h.endpoint(), "/") + "/models/" + h.model()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+h.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read inference response: %w", err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return imagepkg.DecodeImage(data)
	case http.StatusServiceUnavailable:
		return nil, ErrModelLoading
	default:
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
}

func (h *HuggingFace) model() string {
	if h.Model == "" {
		return DefaultModel
	}
	return h.Model
}

func (h *HuggingFace) endpoint() string {
	if h.Endpoint == "" {
		return DefaultEndpoint
	}
	return h.Endpoint
}

func (h *HuggingFace) client() *http.Client {
	if h.Client == nil {
		return http.DefaultClient
	}
	return h.Client
}

func (h *HuggingFace) maxBackoff() time.Duration {
	if h.MaxBackoff <= 0 {
		return h.Backoff
	}
	return h.MaxBackoff
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
