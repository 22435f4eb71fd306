package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveFetch(t *testing.T) {
	before := testutil.ToFloat64(fetchTotal.WithLabelValues(OutcomeServiceError))
	ObserveFetch(OutcomeServiceError, 20*time.Millisecond)
	after := testutil.ToFloat64(fetchTotal.WithLabelValues(OutcomeServiceError))
	assert.Equal(t, before+1, after)
}

func TestIntentAndBlocked(t *testing.T) {
	before := testutil.ToFloat64(intentTotal.WithLabelValues("undo"))
	Intent("undo")
	assert.Equal(t, before+1, testutil.ToFloat64(intentTotal.WithLabelValues("undo")))

	before = testutil.ToFloat64(blockedSubmits.WithLabelValues("input"))
	SubmitBlocked("input")
	assert.Equal(t, before+1, testutil.ToFloat64(blockedSubmits.WithLabelValues("input")))
}

func TestSessionsGauge(t *testing.T) {
	before := testutil.ToFloat64(sessions)
	SessionOpened()
	SessionOpened()
	SessionClosed()
	assert.Equal(t, before+1, testutil.ToFloat64(sessions))
}
