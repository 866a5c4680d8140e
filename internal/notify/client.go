package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// Notification is the body sent for both shapes. Status is omitted for clear.
type Notification struct {
	Action   domain.EventAction `json:"action"`
	Identity string             `json:"identity"`
	Date     domain.DateKey     `json:"date"`
	Status   domain.Status      `json:"status,omitempty"`
}

// Notifier forwards report mutations to the remote collaborator.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NoopNotifier is used when forwarding is disabled.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) error { return nil }

type httpNotifier struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPNotifier posts notifications as JSON to <Endpoint>/reports.
// There are no retries; callers treat every outcome as fire-and-forget.
func NewHTTPNotifier(cfg Config, observer Observer) Notifier {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpNotifier{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 3 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// New returns the HTTP notifier when cfg is usable and a NoopNotifier otherwise.
func New(cfg Config, observer Observer) Notifier {
	if !cfg.Usable() {
		return NoopNotifier{}
	}
	return NewHTTPNotifier(cfg, observer)
}

func (c *httpNotifier) Notify(ctx context.Context, n Notification) error {
	start := time.Now()
	if n.Identity == "" {
		n.Identity = c.cfg.Identity
	}
	if n.Action == domain.ActionClear {
		n.Status = domain.StatusNone
	}

	timeoutMs := c.cfg.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = DefaultConfig().TimeoutMs
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	err := c.post(ctx, n)
	if err != nil && ctx.Err() != nil {
		err = ErrTimeout
	} else if isConnectionError(err) {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.observer.OnCallComplete(CallEvent{
		Action:    n.Action,
		Date:      n.Date,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *httpNotifier) post(ctx context.Context, n Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/reports", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused; the body is not inspected.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}
