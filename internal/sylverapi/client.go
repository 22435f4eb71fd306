// internal/sylverapi/client.go
//
// HTTP client for the Sylver Coinage computation service.
// Responsibilities:
//   - Build GET /api/get?length=..&input=..&children=.. lookups.
//   - Decode the position payload, or classify the failure as a
//     ServiceError (the service answered with an error) or a TransportError
//     (no usable answer at all).
//   - Log, count and time every lookup; optionally throttle outgoing lookups.
//
// Notes:
//   - The client never retries and never cancels an earlier lookup.
//   - A payload carrying a truthy "error" field is a failure as a whole; none
//     of its other fields are surfaced.

package sylverapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/sylver/apps/go-viz/internal/generators"
	"github.com/robalobadob/sylver/apps/go-viz/internal/metrics"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
)

const (
	lookupPath      = "/api/get"
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 64 << 20 // children payloads grow with the board length
)

// Request is one position lookup.
type Request struct {
	Length   int
	Input    generators.Set
	Children bool
}

// Query renders the query string. The input is written as-is ("9,11") so the
// service sees exactly the serialized generator set.
func (r Request) Query() string {
	return "length=" + strconv.Itoa(r.Length) +
		"&input=" + r.Input.String() +
		"&children=" + strconv.FormatBool(r.Children)
}

// Client talks to one computation service.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout bounds each lookup.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithRateLimit throttles lookups to rps per second with the given burst.
// rps <= 0 disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New constructs a Client for baseURL (e.g. "http://localhost:5000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// URL returns the full lookup URL for req.
func (c *Client) URL(req Request) string {
	return c.baseURL + lookupPath + "?" + req.Query()
}

// Fetch performs one lookup. On any failure the returned position is nil and
// the error is a *ServiceError or *TransportError.
func (c *Client) Fetch(ctx context.Context, req Request) (*position.Position, error) {
	start := time.Now()
	pos, err := c.fetch(ctx, req)
	outcome := outcomeOf(err)
	metrics.ObserveFetch(outcome, time.Since(start))

	ev := log.Debug()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("input", req.Input.String()).
		Int("length", req.Length).
		Str("outcome", outcome).
		Dur("took", time.Since(start)).
		Msg("position lookup")
	return pos, err
}

func (c *Client) fetch(ctx context.Context, req Request) (*position.Position, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: "throttle", Err: err}
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(req), nil)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "get", Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Op: "read body", Err: err}
	}
	return decode(res.StatusCode, body)
}

// envelope is the union of the success and error payloads.
type envelope struct {
	position.Position
	Error any `json:"error"`
}

func decode(status int, body []byte) (*position.Position, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status < 200 || status > 299 {
			return nil, &ServiceError{Status: status, Message: http.StatusText(status)}
		}
		return nil, &TransportError{Op: "decode", Err: err}
	}
	if truthy(env.Error) {
		return nil, &ServiceError{Status: status, Message: errorMessage(env.Error)}
	}
	if status < 200 || status > 299 {
		return nil, &ServiceError{Status: status, Message: http.StatusText(status)}
	}
	pos := env.Position
	return &pos, nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	default:
		return true
	}
}

func errorMessage(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func outcomeOf(err error) string {
	switch err.(type) {
	case nil:
		return metrics.OutcomeOK
	case *ServiceError:
		return metrics.OutcomeServiceError
	default:
		return metrics.OutcomeTransportError
	}
}
