package web

import (
	"net/http"

	"workoutapi/internal/adapters/http/middleware"
	"workoutapi/internal/adapters/http/perf"
	athleteStore "workoutapi/internal/adapters/storage/athlete"
	categoryStore "workoutapi/internal/adapters/storage/category"
	trainingCenterStore "workoutapi/internal/adapters/storage/trainingcenter"
	"workoutapi/internal/application/pagination"
)

// Stores holds all storage dependencies.
type Stores struct {
	CategoryStore       categoryStore.Store
	TrainingCenterStore trainingCenterStore.Store
	AthleteStore        athleteStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// RateLimitPerSecond and RateLimitBurst control the per-IP rate limit.
// Tests can increase them.
var (
	RateLimitPerSecond = 10.0
	RateLimitBurst     = 20
)

// MaxPageLimit caps the limit query parameter on list endpoints.
// Requests above the cap are clamped, not rejected.
var MaxPageLimit = pagination.DefaultMaxLimit

// NewMux wires HTTP handlers for the service.
func NewMux(s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector

	mux := http.NewServeMux()
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, RateLimitBurst)

	// Request path: SecurityHeaders -> RateLimit -> Timing -> Mux
	return middleware.Chain(mux,
		middleware.Timing(collector),
		middleware.RateLimit(limiter),
		middleware.SecurityHeaders,
	)
}
