package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tfalohun/olera-sub001/internal/eligibility"
	eligibilityhandler "github.com/tfalohun/olera-sub001/internal/eligibility/handler"
	eligibilitymetrics "github.com/tfalohun/olera-sub001/internal/eligibility/metrics"
	eligibilityports "github.com/tfalohun/olera-sub001/internal/eligibility/ports"
	eligibilitystore "github.com/tfalohun/olera-sub001/internal/eligibility/store"
	"github.com/tfalohun/olera-sub001/internal/platform/config"
	"github.com/tfalohun/olera-sub001/internal/platform/metrics"
	"github.com/tfalohun/olera-sub001/internal/platform/ratelimit"
	"github.com/tfalohun/olera-sub001/internal/providermatch"
	providerhandler "github.com/tfalohun/olera-sub001/internal/providermatch/handler"
	providermetrics "github.com/tfalohun/olera-sub001/internal/providermatch/metrics"
	providerports "github.com/tfalohun/olera-sub001/internal/providermatch/ports"
	providerstore "github.com/tfalohun/olera-sub001/internal/providermatch/store"
	"github.com/tfalohun/olera-sub001/pkg/platform/circuit"
	"github.com/tfalohun/olera-sub001/pkg/platform/httputil"
	"github.com/tfalohun/olera-sub001/pkg/platform/middleware/auth"
	"github.com/tfalohun/olera-sub001/pkg/platform/middleware/requestid"
	"github.com/tfalohun/olera-sub001/pkg/platform/middleware/requesttime"
)

type app struct {
	eligibility *eligibilityhandler.Handler
	providers   *providerhandler.Handler
	verifier    auth.Verifier
	httpMetrics *metrics.Metrics
	limiter     *ratelimit.Limiter
	infra       *infraDeps
	log         *slog.Logger
}

func buildApp(cfg config.Server, infra *infraDeps, log *slog.Logger) (*app, error) {
	eligMetrics := eligibilitymetrics.New()

	var catalog eligibilityports.CatalogPort
	if infra.db != nil {
		catalog = eligibilitystore.NewPostgresCatalog(infra.db, log)
	} else {
		mem := eligibilitystore.NewInMemoryCatalog()
		eligibilitystore.Seed(mem)
		catalog = mem
	}
	if infra.redis != nil {
		catalog = eligibilitystore.NewCachedCatalog(catalog, infra.redis,
			eligibilitystore.WithCacheTTL(cfg.Matching.CatalogCacheTTL),
			eligibilitystore.WithCacheMetrics(eligMetrics),
			eligibilitystore.WithCacheBreaker(circuit.New("catalog-cache")),
			eligibilitystore.WithCacheLogger(log),
		)
	}

	eligibilityService, err := eligibility.New(catalog,
		eligibility.WithAuditor(infra.auditor()),
		eligibility.WithMetrics(eligMetrics),
		eligibility.WithLogger(log),
		eligibility.WithFetchTimeout(cfg.Matching.CatalogFetchTimeout),
	)
	if err != nil {
		return nil, err
	}

	var (
		requesters    providerports.RequesterStore
		relationships providerports.RelationshipStore
		candidates    providerports.CandidateStore
	)
	if infra.db != nil {
		pg := providerstore.NewPostgresStore(infra.db, log)
		requesters, relationships, candidates = pg, pg, pg
	} else {
		mem := providerstore.NewInMemoryStore()
		providerstore.Seed(mem)
		requesters, relationships, candidates = mem, mem, mem
	}

	providerService, err := providermatch.New(requesters, relationships, candidates,
		providermatch.WithAuditor(infra.auditor()),
		providermatch.WithMetrics(providermetrics.New()),
		providermatch.WithLogger(log),
		providermatch.WithCooldownDays(cfg.Matching.DismissalCooldownDays),
		providermatch.WithMinStrictResults(cfg.Matching.MinStrictResults),
	)
	if err != nil {
		return nil, err
	}

	a := &app{
		eligibility: eligibilityhandler.New(eligibilityService, log),
		providers:   providerhandler.New(providerService, log),
		httpMetrics: metrics.New(prometheus.DefaultRegisterer),
		limiter:     ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window, prometheus.DefaultRegisterer, log),
		infra:       infra,
		log:         log,
	}
	if cfg.Auth.TokenSecret != "" {
		a.verifier = auth.NewHMACVerifier(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
	} else {
		log.Warn("AUTH_TOKEN_SECRET not set, provider matching routes are disabled")
	}
	return a, nil
}

// Router mounts every route behind the shared middleware stack.
func (a *app) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(a.httpMetrics.Middleware)

	r.Get("/health", a.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(a.limiter.Handler)
		a.eligibility.Register(r)
	})
	if a.verifier != nil {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser(a.verifier, a.log))
			a.providers.Register(r)
		})
	}
	return r
}

// handleHealth reports liveness plus the state of each configured backing
// service. A failing dependency degrades the status but still answers 200.
func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{}
	status := "ok"
	record := func(name string, err error) {
		if err != nil {
			checks[name] = err.Error()
			status = "degraded"
			return
		}
		checks[name] = "ok"
	}
	if a.infra.db != nil {
		record("postgres", a.infra.db.PingContext(ctx))
	}
	if a.infra.redis != nil {
		record("redis", a.infra.redis.Health(ctx))
	}
	if a.infra.producer != nil {
		record("kafka", a.infra.producer.Ping(ctx))
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status": status,
		"checks": checks,
	})
}
