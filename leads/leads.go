// Package leads relays consultation requests to the spreadsheet intake
// script. The script is an external collaborator: it decides what a valid
// lead is, and this package only reports what it answered.
package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vimldn/invis/metrics"
	"github.com/vimldn/invis/models"
)

// DefaultSource labels leads from this site in the spreadsheet
const DefaultSource = "Invisalign Dentists"

// DefaultEndpoint is the intake script deployment
const DefaultEndpoint = "https://script.google.com/macros/s/AKfycbz-B9H0JTI7a9Cgyn9z-pZXKnuiNm6acAn8Zb13N21qGRcpxy7EtVvlPAjpl6f7Hj3-RQ/exec"

// FailureMessage is what users see when a submission does not go through
const FailureMessage = "Something went wrong. Please try again."

// maxReplyBytes caps how much of the script's reply is read
const maxReplyBytes = 64 * 1024

// ErrInvalidLead is returned by Validate
var ErrInvalidLead = errors.New("invalid lead")

// RejectedError is returned when the intake script answers {ok: false}
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "lead rejected: " + e.Message
}

// Config contains lead client configuration
type Config struct {
	Endpoint string
	Source   string
	Timeout  time.Duration
}

// DefaultConfig returns default lead client configuration
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Source:   DefaultSource,
		Timeout:  15 * time.Second,
	}
}

// Receipt identifies an accepted submission in logs and API responses
type Receipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Client posts leads to the intake endpoint
type Client struct {
	endpoint   string
	source     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new lead client
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	source := config.Source
	if source == "" {
		source = DefaultSource
	}

	return &Client{
		endpoint: config.Endpoint,
		source:   source,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Validate checks the fields every lead form marks as required
func Validate(lead models.Lead) error {
	var missing []string
	if strings.TrimSpace(lead.FullName) == "" {
		missing = append(missing, "fullName")
	}
	if strings.TrimSpace(lead.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(lead.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrInvalidLead, strings.Join(missing, ", "))
	}

	if _, err := mail.ParseAddress(lead.Email); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidLead)
	}
	return nil
}

// Submit posts the lead. A reply that is not JSON counts as success; a JSON
// reply with ok=false becomes a *RejectedError. No Content-Type header is
// set, matching what the site's forms send.
func (c *Client) Submit(ctx context.Context, lead models.Lead) (*Receipt, error) {
	if lead.Source == "" {
		lead.Source = c.source
	}

	receipt := &Receipt{ID: uuid.NewString(), SubmittedAt: time.Now().UTC()}
	logger := c.logger.With("lead_id", receipt.ID, "location", lead.Location)

	body, err := json.Marshal(lead)
	if err != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadFailed).Inc()
		return nil, fmt.Errorf("failed to marshal lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadFailed).Inc()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadFailed).Inc()
		logger.Error("lead submission failed", "error", err)
		return nil, fmt.Errorf("failed to submit lead: %w", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadFailed).Inc()
		logger.Error("failed to read lead reply", "error", err)
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}

	if rejected := parseRejection(reply); rejected != nil {
		metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadRejected).Inc()
		logger.Warn("lead rejected by intake script", "reason", rejected.Message)
		return nil, rejected
	}

	metrics.LeadSubmissionsTotal.WithLabelValues(metrics.LeadAccepted).Inc()
	logger.Info("lead submitted", "status", resp.StatusCode)
	return receipt, nil
}

// parseRejection returns nil unless the reply is JSON with ok=false
func parseRejection(reply []byte) *RejectedError {
	var ack struct {
		OK    *bool  `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(reply, &ack); err != nil {
		return nil
	}
	if ack.OK == nil || *ack.OK {
		return nil
	}

	msg := ack.Error
	if msg == "" {
		msg = "Submission failed"
	}
	return &RejectedError{Message: msg}
}
