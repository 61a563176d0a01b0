package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// DefaultAPIURL is the Instasend SMS endpoint.
const DefaultAPIURL = "https://api.instasend.io/v1/sms"

var (
	// ErrAPIKeyRequired indicates that no API key was configured.
	ErrAPIKeyRequired = errors.New("instasend API key is required")

	// ErrSendFailed indicates that the SMS could not be delivered.
	ErrSendFailed = errors.New("failed to send SMS")
)

// InstasendNotifier sends SMS messages through the Instasend HTTP API.
type InstasendNotifier struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *slog.Logger
}

var _ Notifier = (*InstasendNotifier)(nil)

// InstasendOption configures an InstasendNotifier.
type InstasendOption func(*InstasendNotifier) error

// WithAPIURL overrides the Instasend endpoint. Used in tests.
func WithAPIURL(url string) InstasendOption {
	return func(n *InstasendNotifier) error {
		if url == "" {
			return errors.New("API URL cannot be empty")
		}
		n.apiURL = url
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) InstasendOption {
	return func(n *InstasendNotifier) error {
		if client == nil {
			return errors.New("HTTP client cannot be nil")
		}
		n.client = client
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) InstasendOption {
	return func(n *InstasendNotifier) error {
		if logger == nil {
			logger = slog.Default()
		}
		n.logger = logger
		return nil
	}
}

// NewInstasendNotifier creates a notifier that delivers SMS through Instasend.
func NewInstasendNotifier(apiKey string, opts ...InstasendOption) (Notifier, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	n := &InstasendNotifier{
		apiKey: apiKey,
		apiURL: DefaultAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}

	return n, nil
}

type smsRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendSMS posts the message to the Instasend API.
func (n *InstasendNotifier) SendSMS(ctx context.Context, phoneNumber, message string) error {
	body, err := json.Marshal(smsRequest{To: phoneNumber, Message: message})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Error("instasend rejected SMS", "status", resp.StatusCode, "to", phoneNumber)
		return fmt.Errorf("%w: unexpected status %d", ErrSendFailed, resp.StatusCode)
	}

	n.logger.Debug("SMS sent", "to", phoneNumber)
	return nil
}
