package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

// Session is one open checkout page.
type Session struct {
	ID         string    `json:"sessionId"`
	DonationID string    `json:"donationId"`
	Amount     string    `json:"amount"`
	QRCode     string    `json:"qrCode"`
	ConfirmURL string    `json:"confirmUrl"`
	CancelURL  string    `json:"cancelUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Checkout plays the hosted payment page a donation's paymentLink points
// at. Confirming or cancelling a session calls back into the API.
type Checkout struct {
	apiURL    string
	publicURL string
	client    *http.Client

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewCheckout(apiURL, publicURL string, client *http.Client) *Checkout {
	return &Checkout{
		apiURL:    apiURL,
		publicURL: publicURL,
		client:    client,
		sessions:  make(map[string]*Session),
	}
}

func (c *Checkout) open(donationID, amount string) *Session {
	id := uuid.New().String()
	base := c.publicURL + "/checkout/" + id
	s := &Session{
		ID:         id,
		DonationID: donationID,
		Amount:     amount,
		QRCode:     base + "/qr.png",
		ConfirmURL: base + "/confirm",
		CancelURL:  base + "/cancel",
		CreatedAt:  time.Now(),
	}
	c.mu.Lock()
	c.sessions[id] = s
	c.mu.Unlock()
	return s
}

func (c *Checkout) lookup(id string) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	return s, ok
}

// take removes the session so it can be settled only once.
func (c *Checkout) take(id string) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sessions[id]
	if ok {
		delete(c.sessions, id)
	}
	return s, ok
}

// callback hits /api/donations/<outcome>/<id> and returns the API's answer.
func (c *Checkout) callback(ctx context.Context, outcome, donationID string) (int, []byte, error) {
	target := fmt.Sprintf("%s/api/donations/%s/%s", c.apiURL, outcome, url.PathEscape(donationID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

type Handler struct {
	checkout *Checkout
}

func NewHandler(checkout *Checkout) *Handler {
	return &Handler{checkout: checkout}
}

func (h *Handler) Open(c *gin.Context) {
	donationID := c.Query("donationId")
	amount := c.Query("amount")
	if donationID == "" || amount == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and donationId are required"})
		return
	}

	s := h.checkout.open(donationID, amount)
	log.Info().
		Str("session_id", s.ID).
		Str("donation_id", donationID).
		Str("amount", amount).
		Msg("Checkout session opened")
	c.JSON(http.StatusOK, s)
}

func (h *Handler) QRCode(c *gin.Context) {
	s, ok := h.checkout.lookup(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	png, err := qrcode.Encode(s.ConfirmURL, qrcode.Medium, 256)
	if err != nil {
		log.Error().Err(err).Str("session_id", s.ID).Msg("QR encoding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "qr encoding failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) Confirm(c *gin.Context) {
	h.settle(c, "success")
}

func (h *Handler) Cancel(c *gin.Context) {
	h.settle(c, "failed")
}

func (h *Handler) settle(c *gin.Context, outcome string) {
	s, ok := h.checkout.take(c.Param("session"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	status, body, err := h.checkout.callback(c.Request.Context(), outcome, s.DonationID)
	if err != nil {
		log.Error().Err(err).Str("session_id", s.ID).Str("outcome", outcome).Msg("API callback failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment callback failed", "details": err.Error()})
		return
	}

	log.Info().
		Str("session_id", s.ID).
		Str("donation_id", s.DonationID).
		Str("outcome", outcome).
		Int("api_status", status).
		Msg("Checkout session settled")
	c.Data(status, "application/json; charset=utf-8", body)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

func SetupRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request processed")
	})

	router.GET("/checkout", handler.Open)
	router.GET("/checkout/:session/qr.png", handler.QRCode)
	router.POST("/checkout/:session/confirm", handler.Confirm)
	router.POST("/checkout/:session/cancel", handler.Cancel)
	router.GET("/health", handler.HealthCheck)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := getEnv("PORT", "8081")
	apiURL := getEnv("API_URL", "http://localhost:5000")
	publicURL := getEnv("PUBLIC_URL", "http://localhost:"+port)

	log.Info().
		Str("port", port).
		Str("api_url", apiURL).
		Msg("Starting checkout simulator")

	checkout := NewCheckout(apiURL, publicURL, &http.Client{Timeout: 10 * time.Second})
	router := SetupRouter(NewHandler(checkout))

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
