package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	cmdbus "accessengine-backend/application/commands/bus"
	querybus "accessengine-backend/application/queries/bus"
	"accessengine-backend/application/ports"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/observability"
	"accessengine-backend/interfaces/http/rest/handlers"
	"accessengine-backend/interfaces/http/rest/middleware"
	"accessengine-backend/pkg/ratelimit"

	pkgerrors "accessengine-backend/pkg/errors"
)

const serviceVersion = "1.0.0"

// healthCheckTimeout bounds the persistence ping on /health
const healthCheckTimeout = 2 * time.Second

// Router wires the HTTP surface: service routes, the versioned API and
// the middleware chain around them
type Router struct {
	cfg           *config.Config
	commandBus    *cmdbus.CommandBus
	queryBus      *querybus.QueryBus
	celebrityRepo ports.CelebrityRepository
	collector     *observability.Collector
	ddb           *awsdynamodb.Client
	errorHandler  *pkgerrors.ErrorHandler
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	celebrityRepo ports.CelebrityRepository,
	collector *observability.Collector,
	ddb *awsdynamodb.Client,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:           cfg,
		commandBus:    commandBus,
		queryBus:      queryBus,
		celebrityRepo: celebrityRepo,
		collector:     collector,
		ddb:           ddb,
		errorHandler:  pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment()),
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestContext)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errorHandler.Middleware)
	router.Use(observability.MetricsMiddleware(rt.collector))
	router.Use(middleware.SecurityHeaders)
	router.Use(versionMiddleware)

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID", "X-API-Version"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	if rt.cfg.RateLimitPerMinute > 0 {
		// Lambda containers share no process state, so the dynamodb
		// driver counts requests in the table instead of in memory.
		var limiter middleware.ClientLimiter = ratelimit.NewIPRateLimiter(rt.cfg.RateLimitPerMinute)
		if rt.cfg.PersistenceDriver == "dynamodb" && rt.ddb != nil {
			limiter = ratelimit.NewDistributedIPRateLimiter(rt.ddb, rt.cfg.DynamoDBTable, rt.cfg.RateLimitPerMinute)
		}
		router.Use(middleware.RateLimit(limiter, rt.errorHandler, rt.logger))
	}

	router.Get("/", rt.serviceInfo)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.collector.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		celebrityHandler := handlers.NewCelebrityHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)
		outreachHandler := handlers.NewOutreachHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.cfg.GenerateTimeout, rt.logger)

		r.Route("/celebrities", func(r chi.Router) {
			r.Get("/", celebrityHandler.List)
			r.Post("/search", celebrityHandler.Search)

			r.Route("/{celebrityID}", func(r chi.Router) {
				r.Use(middleware.CelebrityContext)
				r.Get("/graph", celebrityHandler.GetGraph)
				r.Get("/score", celebrityHandler.GetScore)
				r.Get("/nodes", celebrityHandler.ListNodes)
				r.Post("/nodes", celebrityHandler.AddNode)
				r.Get("/best-path", celebrityHandler.GetBestPath)
				r.Post("/rebuild", celebrityHandler.Rebuild)
			})
		})

		r.Route("/outreach", func(r chi.Router) {
			// Generation burns paid model tokens; it gets its own
			// per-caller budget on top of the global IP limit.
			generate := r.With()
			if rt.cfg.GenerationsPerHour > 0 {
				var genLimiter middleware.ClientLimiter = ratelimit.NewGenerationRateLimiter(
					rt.cfg.GenerationsPerHour, time.Hour/time.Duration(rt.cfg.GenerationsPerHour))
				if rt.cfg.PersistenceDriver == "dynamodb" && rt.ddb != nil {
					genLimiter = ratelimit.NewDistributedGenerationRateLimiter(rt.ddb, rt.cfg.DynamoDBTable, rt.cfg.GenerationsPerHour)
				}
				generate = r.With(middleware.RateLimit(genLimiter, rt.errorHandler, rt.logger))
			}
			generate.Post("/generate", outreachHandler.Generate)

			r.With(middleware.CelebrityContext).Get("/celebrity/{celebrityID}", outreachHandler.History)
			r.Patch("/{outreachID}/status", outreachHandler.UpdateStatus)
			r.Get("/stats", outreachHandler.Stats)
		})
	})

	return router
}

// serviceInfo handles GET /
func (rt *Router) serviceInfo(w http.ResponseWriter, r *http.Request) {
	rt.respond(w, http.StatusOK, map[string]interface{}{
		"name":        "Access Engine API",
		"status":      "running",
		"version":     serviceVersion,
		"environment": rt.cfg.Environment,
		"endpoints": map[string]string{
			"list_celebrities":  "GET /api/v1/celebrities",
			"search":            "POST /api/v1/celebrities/search",
			"graph":             "GET /api/v1/celebrities/{id}/graph",
			"score":             "GET /api/v1/celebrities/{id}/score",
			"nodes":             "GET /api/v1/celebrities/{id}/nodes",
			"best_path":         "GET /api/v1/celebrities/{id}/best-path",
			"rebuild":           "POST /api/v1/celebrities/{id}/rebuild",
			"generate_outreach": "POST /api/v1/outreach/generate",
			"outreach_history":  "GET /api/v1/outreach/celebrity/{id}",
			"outreach_status":   "PATCH /api/v1/outreach/{id}/status",
			"outreach_stats":    "GET /api/v1/outreach/stats",
		},
	})
}

// healthCheck handles GET /health with a real dependency ping
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{
		"persistence": "ok",
		"generation":  "disabled",
	}
	healthy := true

	if _, err := rt.celebrityRepo.GetAll(ctx); err != nil {
		checks["persistence"] = "error: " + err.Error()
		healthy = false
	}
	if rt.cfg.EnableAI && rt.cfg.AnthropicAPIKey != "" {
		checks["generation"] = "ok"
	}

	status := http.StatusOK
	body := map[string]interface{}{
		"status": "healthy",
		"driver": rt.cfg.PersistenceDriver,
		"checks": checks,
	}
	if !healthy {
		status = http.StatusServiceUnavailable
		body["status"] = "degraded"
	}

	rt.respond(w, status, body)
}

// readinessCheck handles GET /ready. It stays cheap; load balancers
// poll it far more often than /health.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	rt.respond(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (rt *Router) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rt.logger.Error("Failed to write response", zap.Error(err))
	}
}

// versionMiddleware stamps every response with the API version
func versionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-API-Version", "v1")
		w.Header().Set("X-Service-Version", serviceVersion)
		next.ServeHTTP(w, r)
	})
}
