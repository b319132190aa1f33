package kirchhoff

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrentsRecord(t *testing.T) {
	now := time.Date(2025, 2, 3, 14, 5, 6, 0, time.UTC)
	v := Verdict{SetID: "7", Outcome: WithinTolerance, Submitted: Currents{64.7, 42.5, 0}}

	rec := NewCurrentsRecord(v, "Ada", now)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "2025-02-03 14:05:06", rec.Timestamp)
	assert.Equal(t, 7, rec.SetNumber)
	assert.Equal(t, KindCurrents, rec.Kind)
	assert.Equal(t, "Almost correct", rec.Result)
	require.NotNil(t, rec.I3)
	assert.Equal(t, 0.0, *rec.I3)

	body, err := json.Marshal(rec)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "I3", "zero currents must still be sent")
	assert.NotContains(t, decoded, "equations")
	assert.Equal(t, "Ada", decoded["name"])
}

func TestNewEquationsRecord(t *testing.T) {
	report := EquationReport{
		SetID:     "2",
		Equations: []Equation{{1, -1, -1, 0}},
		Matches:   []bool{true},
	}

	rec := NewEquationsRecord(report, "", time.Now())

	assert.Equal(t, KindEquations, rec.Kind)
	assert.Equal(t, "Correct", rec.Result)
	assert.Nil(t, rec.I1)
	assert.Equal(t, []bool{true}, rec.EquationMatches)
}

func TestHTTPLogger_Posts(t *testing.T) {
	var got SubmissionRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	logger := NewHTTPLogger(LoggingConfig{Enabled: true, Endpoint: srv.URL, Timeout: time.Second}, srv.Client())
	rec := NewCurrentsRecord(Verdict{SetID: "1", Outcome: Exact, Submitted: Currents{81.05, 57.08, 23.97}}, "", time.Now())

	require.NoError(t, logger.Log(context.Background(), rec))
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Correct", got.Result)
	require.NotNil(t, got.I1)
	assert.Equal(t, 81.05, *got.I1)
}

func TestHTTPLogger_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	logger := NewHTTPLogger(LoggingConfig{Enabled: true, Endpoint: srv.URL}, srv.Client())
	err := logger.Log(context.Background(), SubmissionRecord{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestHTTPLogger_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	logger := NewHTTPLogger(LoggingConfig{Enabled: true, Endpoint: endpoint, Timeout: time.Second}, nil)
	assert.Error(t, logger.Log(context.Background(), SubmissionRecord{}))
}

func TestHTTPLogger_RateLimited(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	// 6 per minute gives a burst of one.
	logger := NewHTTPLogger(LoggingConfig{Enabled: true, Endpoint: srv.URL, RatePerMinute: 6}, srv.Client())

	require.NoError(t, logger.Log(context.Background(), SubmissionRecord{}))
	err := logger.Log(context.Background(), SubmissionRecord{})
	assert.True(t, errors.Is(err, ErrRateLimited), "err = %v", err)
	assert.Equal(t, 1, calls)
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, NopLogger{}, NewLogger(LoggingConfig{}))
	assert.IsType(t, NopLogger{}, NewLogger(LoggingConfig{Enabled: true}))
	assert.IsType(t, &HTTPLogger{}, NewLogger(LoggingConfig{Enabled: true, Endpoint: "https://example.com"}))
	assert.NoError(t, NopLogger{}.Log(context.Background(), SubmissionRecord{}))
}
