package server

import (
	"time"

	"github.com/nimasrn/ngo-backend/internal/auth"
	"github.com/nimasrn/ngo-backend/internal/handlers"
	"github.com/nimasrn/ngo-backend/internal/repository"
	"github.com/nimasrn/ngo-backend/internal/services"
	"github.com/nimasrn/ngo-backend/pkg/db"
	xhttp "github.com/nimasrn/ngo-backend/pkg/http"
	"github.com/nimasrn/ngo-backend/pkg/prom"
	"github.com/nimasrn/ngo-backend/pkg/redis"
)

const compressionLevel = 6

// Dependencies are the long-lived resources the API is built from.
type Dependencies struct {
	DB          *db.DB
	Redis       redis.RedisAdapter
	Tokens      *auth.TokenManager
	CheckoutURL string
	CorsOrigins []string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New wires repositories, services and handlers into an engine. The
// caller starts it with ListenAndServe.
func New(d Dependencies) *xhttp.Engine {
	e := xhttp.CreateServer(d.ReadTimeout, d.WriteTimeout)
	e.Use(xhttp.RecoverMiddleware)
	e.Use(xhttp.RequestIDMiddleware)
	e.Use(xhttp.RequestLoggerMiddleware)
	e.Use(prom.Middleware)
	e.Use(xhttp.CORSMiddleware(d.CorsOrigins))
	e.Use(xhttp.CompressMiddleware(compressionLevel))

	// repositories
	users := repository.NewUserRepository(d.DB)
	beneficiaries := repository.NewBeneficiaryRepository(d.DB)
	contacts := repository.NewContactRepository(d.DB)
	donations := repository.NewDonationRepository(d.DB)
	events := repository.NewEventRepository(d.DB)
	volunteers := repository.NewVolunteerRepository(d.DB)
	reports := repository.NewReportRepository(d.DB)
	programs := repository.NewProgramRepository(d.Redis)

	mw := handlers.NewAuthMiddleware(d.Tokens)

	g := e.Router.Group("/api")
	handlers.RegisterAuthRoutes(g, handlers.NewAuthHandler(services.NewAuthService(users, d.Tokens)), mw)
	handlers.RegisterBeneficiaryRoutes(g, handlers.NewBeneficiaryHandler(
		services.NewBeneficiaryService(beneficiaries),
		services.NewContactService(contacts),
	), mw)
	handlers.RegisterDonationRoutes(g, handlers.NewDonationHandler(services.NewDonationService(donations, d.CheckoutURL)), mw)
	handlers.RegisterEventRoutes(g, handlers.NewEventHandler(services.NewEventService(events)), mw)
	handlers.RegisterVolunteerRoutes(g, handlers.NewVolunteerHandler(services.NewVolunteerService(volunteers)), mw)
	handlers.RegisterProgramRoutes(g, handlers.NewProgramHandler(services.NewProgramService(programs)), mw)
	handlers.RegisterReportRoutes(g, handlers.NewReportHandler(services.NewReportService(reports)), mw)

	handlers.RegisterHealthRoutes(e.Router, handlers.NewHealthHandler(map[string]handlers.Pinger{
		"database": d.DB,
		"redis":    d.Redis,
	}))

	return e
}
