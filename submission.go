package kirchhoff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const TimestampLayout = "2006-01-02 15:04:05"

const (
	KindCurrents  = "currents"
	KindEquations = "equations"
)

var ErrRateLimited = errors.New("submission log rate limit exceeded")

// SubmissionRecord is the row appended to the remote submission sheet.
type SubmissionRecord struct {
	ID              string     `json:"id"`
	Timestamp       string     `json:"timestamp"`
	SetNumber       int        `json:"set_number"`
	Kind            string     `json:"kind"`
	I1              *float64   `json:"I1,omitempty"`
	I2              *float64   `json:"I2,omitempty"`
	I3              *float64   `json:"I3,omitempty"`
	Equations       []Equation `json:"equations,omitempty"`
	EquationMatches []bool     `json:"equation_matches,omitempty"`
	Result          string     `json:"result"`
	Name            string     `json:"name"`
}

func NewCurrentsRecord(v Verdict, name string, now time.Time) SubmissionRecord {
	i1, i2, i3 := v.Submitted[0], v.Submitted[1], v.Submitted[2]
	return SubmissionRecord{
		ID:        uuid.New().String(),
		Timestamp: now.Format(TimestampLayout),
		SetNumber: setNumber(v.SetID),
		Kind:      KindCurrents,
		I1:        &i1,
		I2:        &i2,
		I3:        &i3,
		Result:    v.Outcome.Label(),
		Name:      name,
	}
}

func NewEquationsRecord(r EquationReport, name string, now time.Time) SubmissionRecord {
	return SubmissionRecord{
		ID:              uuid.New().String(),
		Timestamp:       now.Format(TimestampLayout),
		SetNumber:       setNumber(r.SetID),
		Kind:            KindEquations,
		Equations:       r.Equations,
		EquationMatches: r.Matches,
		Result:          r.Outcome().Label(),
		Name:            name,
	}
}

func setNumber(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0
	}
	return n
}

// Logger ships submission records to an external sink. Callers treat errors
// as diagnostics only.
type Logger interface {
	Log(ctx context.Context, rec SubmissionRecord) error
}

type NopLogger struct{}

func (NopLogger) Log(context.Context, SubmissionRecord) error { return nil }

// HTTPLogger POSTs each record as JSON. There is no retry.
type HTTPLogger struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	limiter  *rate.Limiter
}

// NewHTTPLogger returns a logger for cfg.Endpoint. A zero RatePerMinute
// disables the outbound limit. client may be nil.
func NewHTTPLogger(cfg LoggingConfig, client *http.Client) *HTTPLogger {
	if client == nil {
		client = &http.Client{}
	}

	limit := rate.Inf
	burst := 0
	if cfg.RatePerMinute > 0 {
		limit = rate.Limit(float64(cfg.RatePerMinute) / 60.0)
		burst = int(math.Max(1, float64(cfg.RatePerMinute)/10))
	}

	return &HTTPLogger{
		endpoint: cfg.Endpoint,
		timeout:  cfg.Timeout,
		client:   client,
		limiter:  rate.NewLimiter(limit, burst),
	}
}

func (l *HTTPLogger) Log(ctx context.Context, rec SubmissionRecord) error {
	if !l.limiter.Allow() {
		return ErrRateLimited
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("post submission: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// NewLogger builds the logger for cfg. Disabled logging, or logging without
// an endpoint, yields a NopLogger.
func NewLogger(cfg LoggingConfig) Logger {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NopLogger{}
	}
	return NewHTTPLogger(cfg, nil)
}
