package prom

import (
	"testing"

	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestMetrics(t *testing.T) {
	t.Cleanup(func() { MetricSystemEnabled = false })

	IncDonationCreated("cash")

	require.NoError(t, Create(prometheus.NewRegistry(), "test-host", "test", "ngo"))

	IncDonationCreated("online")
	IncDonationCreated("online")
	IncDonationStatus("completed")

	created := MetricCollectionCounterVec[SystemDonations+MetricDonationsCreatedTotal]
	assert.Equal(t, float64(2), testutil.ToFloat64(created.WithLabelValues("online")))
	assert.Equal(t, float64(0), testutil.ToFloat64(created.WithLabelValues("cash")))

	status := MetricCollectionCounterVec[SystemDonations+MetricDonationStatusTransitions]
	assert.Equal(t, float64(1), testutil.ToFloat64(status.WithLabelValues("completed")))

	e := xhttp.CreateServer(0, 0)
	e.Use(Middleware)
	e.GET("/api/programs/{slug}", func(ctx *xhttp.RequestCtx) { ctx.SetStatusCode(xhttp.StatusOK) })

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod("GET")
	ctx.Request.SetRequestURI("/api/programs/clean-water")
	e.Handler()(ctx)

	requests := MetricCollectionCounterVec[SystemHTTP+MetricHTTPRequestsTotal]
	assert.Equal(t, float64(1), testutil.ToFloat64(requests.WithLabelValues("GET", "/api/programs/{slug}", "200")))
}
