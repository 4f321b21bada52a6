package xhttp

import (
	"crypto/tls"
	"net"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"slices"
	"syscall"
	"time"

	"github.com/nimasrn/ngo-backend/pkg/logger"
	"github.com/valyala/fasthttp"
)

var (
	defaultReadBufferSize  = 1024 * 8
	defaultWriteBufferSize = 1024 * 8
	defaultReadTimeout     = time.Second * 10
	defaultWriteTimeout    = time.Second * 10
)

var DefaultServerOption = ServerOption{
	IdleTimeout:           time.Second * 30,
	MaxIdleWorkerDuration: time.Minute,
	TCPKeepalivePeriod:    time.Minute * 120,
	MaxRequestBodySize:    4 * 1024 * 1024,
	ReadBufferSize:        defaultReadBufferSize,
	WriteBufferSize:       defaultWriteBufferSize,
	ReadTimeout:           defaultReadTimeout,
	WriteTimeout:          defaultWriteTimeout,
	Concurrency:           fasthttp.DefaultConcurrency,
	ErrorHandler: func(ctx *RequestCtx, err error) {
		logger.Warn("[xhttp] connection error", "error", err, "remote", ctx.RemoteIP().String())
	},
	TCPKeepalive:                 true,
	DisablePreParseMultipartForm: true,
	NoDefaultServerHeader:        true,
	CloseOnShutdown:              true,
}

type RequestHeader = fasthttp.RequestHeader
type ResponseHeader = fasthttp.ResponseHeader
type Server = fasthttp.Server

type ServerOption struct {
	Name string

	// idle keep-alive connections are closed after this long
	IdleTimeout time.Duration

	MaxIdleWorkerDuration time.Duration
	TCPKeepalivePeriod    time.Duration

	// default is 4MB
	MaxRequestBodySize int

	// ReadBufferSize also bounds the request header size.
	ReadBufferSize  int
	WriteBufferSize int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Concurrency int

	ErrorHandler                 func(ctx *RequestCtx, err error)
	TCPKeepalive                 bool
	DisablePreParseMultipartForm bool
	NoDefaultServerHeader        bool
	CloseOnShutdown              bool
	ConnState                    func(net.Conn, fasthttp.ConnState)
	TLSConfig                    *tls.Config
}

// Engine couples a router with a fasthttp server and an ordered middleware chain.
type Engine struct {
	*Router
	*Server
	option ServerOption
	middle []MiddlewareFunc
}

func newServer(options ServerOption) *fasthttp.Server {
	return &fasthttp.Server{
		ErrorHandler:                 options.ErrorHandler,
		Name:                         options.Name,
		Concurrency:                  options.Concurrency,
		ReadBufferSize:               options.ReadBufferSize,
		WriteBufferSize:              options.WriteBufferSize,
		ReadTimeout:                  options.ReadTimeout,
		WriteTimeout:                 options.WriteTimeout,
		IdleTimeout:                  options.IdleTimeout,
		MaxIdleWorkerDuration:        options.MaxIdleWorkerDuration,
		TCPKeepalivePeriod:           options.TCPKeepalivePeriod,
		MaxRequestBodySize:           options.MaxRequestBodySize,
		TCPKeepalive:                 options.TCPKeepalive,
		DisablePreParseMultipartForm: options.DisablePreParseMultipartForm,
		NoDefaultServerHeader:        options.NoDefaultServerHeader,
		CloseOnShutdown:              options.CloseOnShutdown,
		ConnState:                    options.ConnState,
		TLSConfig:                    options.TLSConfig,
		Logger:                       logger.GetLogger().Named("fasthttp"),
	}
}

func NewServer(options ServerOption) *Engine {
	return &Engine{
		Server: newServer(options),
		Router: CreateDefaultRouter(),
		option: options,
	}
}

// CreateServer builds an engine with DefaultServerOption and the given
// read/write timeouts; zero keeps the defaults.
func CreateServer(readTimeout, writeTimeout time.Duration) *Engine {
	opt := DefaultServerOption
	if readTimeout > 0 {
		opt.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		opt.WriteTimeout = writeTimeout
	}
	return NewServer(opt)
}

// Use adds middleware to the end of the chain. The first registered
// middleware is the outermost one.
func (e *Engine) Use(middleware ...MiddlewareFunc) {
	e.middle = append(e.middle, middleware...)
}

// Handler composes the middleware chain around the router.
func (e *Engine) Handler() RequestHandler {
	h := e.Router.Handler
	chain := slices.Clone(e.middle)
	slices.Reverse(chain)
	for _, m := range chain {
		h = m(h)
	}
	return h
}

func (e *Engine) DoRouting() {
	for method, routes := range e.Router.List() {
		for _, r := range routes {
			logger.Debug("[xhttp] route registered", "method", method, "path", r)
		}
	}
	for i, m := range e.middle {
		logger.Debug("[xhttp] middleware registered", "order", i+1, "name", runtime.FuncForPC(reflect.ValueOf(m).Pointer()).Name())
	}
	e.Server.Handler = e.Handler()
}

func (e *Engine) ListenAndServe(addr string) error {
	e.DoRouting()
	logger.Info("[xhttp] server is listening", "addr", addr)
	return e.Server.ListenAndServe(addr)
}

// CloseOnSignal shuts the server down on SIGINT/SIGTERM and then calls done.
func (e *Engine) CloseOnSignal(done func()) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		s := <-sig
		logger.Info("[xhttp] signal received", "signal", s.String())
		e.Shutdown()
		if done != nil {
			done()
		}
	}()
}

// Shutdown gracefully shuts down the server without interrupting any active connections.
func (e *Engine) Shutdown() {
	logger.Info("[xhttp] server is shutting down", "pid", os.Getpid())
	if err := e.Server.Shutdown(); err != nil {
		logger.Error("[xhttp] error while shutting down", "error", err)
	}
}
