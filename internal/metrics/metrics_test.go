package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordDecision(t *testing.T) {
	before := testutil.ToFloat64(GuardDecisions.WithLabelValues("Query.me", "granted"))
	RecordDecision("Query.me", "granted")
	RecordDecision("Query.me", "granted")
	assert.Equal(t, before+2, testutil.ToFloat64(GuardDecisions.WithLabelValues("Query.me", "granted")))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "/graphql", "200"))
	RecordRequest("POST", "/graphql", "200", 0.02)
	assert.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("POST", "/graphql", "200")))
}
