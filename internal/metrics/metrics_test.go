package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/terra-clan/paradigm-advisor/internal/models"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("functional"))
	RecordRecommendation(models.ParadigmFunctional)
	RecordRecommendation(models.ParadigmFunctional)
	after := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("functional"))

	assert.Equal(t, before+2, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/", "200"))
	RecordHTTPRequest("GET", "/", "200", 15*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/", "200")))
}

func TestRecordAction(t *testing.T) {
	RecordAction("toggle_criterion", "form")
	assert.Equal(t, 1.0, testutil.ToFloat64(PageActionsTotal.WithLabelValues("toggle_criterion", "form")))
}
