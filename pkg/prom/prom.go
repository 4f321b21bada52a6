package prom

import (
	"strconv"
	"sync"
	"time"

	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	SystemHTTP      = "http"
	SystemDonations = "donations"
)

const (
	MetricHTTPRequestsTotal         = "requests_total"
	MetricHTTPRequestDuration       = "request_duration_seconds"
	MetricDonationsCreatedTotal     = "created_total"
	MetricDonationStatusTransitions = "status_transitions_total"
)

var lockCreateMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
var MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

// Create registers the service metrics on registerer. Until it is called
// every Inc/Add helper is a no-op.
func Create(registerer prometheus.Registerer, host string, env string, nameSpace string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()

	defaultLabels = prometheus.Labels{"env": env, "instance": host}
	namespace = nameSpace

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounterVec(registerer, SystemHTTP, MetricHTTPRequestsTotal,
		"HTTP requests by method, matched route and status.", []string{"method", "route", "status"}))
	hasError(createHistogramVec(registerer, SystemHTTP, MetricHTTPRequestDuration,
		"HTTP request latency by method and matched route.", []string{"method", "route"}))

	hasError(createCounterVec(registerer, SystemDonations, MetricDonationsCreatedTotal,
		"Donations recorded by payment method.", []string{"payment_method"}))
	hasError(createCounterVec(registerer, SystemDonations, MetricDonationStatusTransitions,
		"Payment callback outcomes by resulting donation status.", []string{"status"}))

	MetricSystemEnabled = err == nil
	return err
}

// ListenAndServer exposes the default registry on addr+url. It blocks.
func ListenAndServer(addr string, url string) {
	hh := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s := xhttp.CreateServer(0, 0)
	s.GET(url, hh)
	logger.Info("[metrics-server] listening...", "addr", addr, "url", url)
	if err := s.ListenAndServe(addr); err != nil {
		logger.Error("[metrics-server] http listen error", "error", err)
	}
}

// Middleware records request count and latency labelled by the matched route.
func Middleware(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		if !MetricSystemEnabled {
			return
		}
		method := string(ctx.Method())
		route := xhttp.MatchedRoutePath(ctx)
		IncCounterVec(SystemHTTP, MetricHTTPRequestsTotal, method, route, strconv.Itoa(ctx.Response.StatusCode()))
		AddHistogramVec(SystemHTTP, MetricHTTPRequestDuration, time.Since(start).Seconds(), method, route)
	}
}

func createCounterVec(registerer prometheus.Registerer, subsystem, name, help string, labels []string) error {
	MetricCollectionCounterVec[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: defaultLabels,
	}, labels)
	return registerer.Register(MetricCollectionCounterVec[subsystem+name])
}

func createHistogramVec(registerer prometheus.Registerer, subsystem, name, help string, labels []string) error {
	MetricCollectionHistogramVec[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: defaultLabels,
		Buckets:     prometheus.DefBuckets,
	}, labels)
	return registerer.Register(MetricCollectionHistogramVec[subsystem+name])
}

func AddCounterVec(subsystem, name string, num float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionCounterVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Add(num)
		return
	}
	logger.Warn("[metrics-server] counter vec not found", "subsystem", subsystem, "name", name)
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	AddCounterVec(subsystem, name, 1, labelValues...)
}

func AddHistogramVec(subsystem, name string, number float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionHistogramVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Observe(number)
		return
	}
	logger.Warn("[metrics-server] histogram vec not found", "subsystem", subsystem, "name", name)
}

func IncDonationCreated(paymentMethod string) {
	IncCounterVec(SystemDonations, MetricDonationsCreatedTotal, paymentMethod)
}

// IncDonationStatus counts a payment callback outcome.
func IncDonationStatus(status string) {
	IncCounterVec(SystemDonations, MetricDonationStatusTransitions, status)
}
