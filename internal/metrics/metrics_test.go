package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRepository(t *testing.T) {
	success := repositoryOperations.WithLabelValues("member", "create", OutcomeSuccess)
	failure := repositoryOperations.WithLabelValues("member", "create", OutcomeError)

	beforeSuccess := testutil.ToFloat64(success)
	beforeFailure := testutil.ToFloat64(failure)

	ObserveRepository("member", "create", time.Now(), nil)
	ObserveRepository("member", "create", time.Now(), errors.New("boom"))
	ObserveRepository("member", "create", time.Now(), nil)

	assert.Equal(t, beforeSuccess+2, testutil.ToFloat64(success))
	assert.Equal(t, beforeFailure+1, testutil.ToFloat64(failure))
}

func TestRecordWelcomeEmail(t *testing.T) {
	before := testutil.ToFloat64(welcomeEmails.WithLabelValues("skipped"))

	RecordWelcomeEmail("skipped")

	assert.Equal(t, before+1, testutil.ToFloat64(welcomeEmails.WithLabelValues("skipped")))
}

func TestRecordRateLimitHit(t *testing.T) {
	before := testutil.ToFloat64(rateLimitHits.WithLabelValues("/members"))

	RecordRateLimitHit("/members")

	assert.Equal(t, before+1, testutil.ToFloat64(rateLimitHits.WithLabelValues("/members")))
}
