package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/service"
	"github.com/aussiebroadwan/pitchdeck/internal/pitchdeck/store"
	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/aussiebroadwan/pitchdeck/pkg/otelx"
	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"

	_ "github.com/aussiebroadwan/pitchdeck/api/pitchdeck" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	roleFounder  = "founder"
	roleInvestor = "investor"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	exposeStack  bool
	store        store.Store

	// FrontendURL receives the Google sign-in redirects.
	FrontendURL string

	// Optional. HTTPMetrics wraps the mux; MetricsHandler is served at /metrics.
	HTTPMetrics    *otelx.HTTPMetrics
	MetricsHandler http.Handler

	TokenService    *service.TokenService
	AuthService     *service.AuthService
	PitchService    *service.PitchService
	InterestService *service.InterestService
	OAuthService    *service.OAuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	exposeStack bool,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		exposeStack:  exposeStack,
	}

	// Request logger first so recovered panics are logged with the req_id.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(r.exposeStack),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerOAuth()
	r.registerInvestor()
	r.registerStartups()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", NotFoundHandler)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Pitchdeck API
//	@version		0.1.0
//	@description	Startup pitch marketplace. Founders submit pitches, investors browse them and mark interest.
//	@description
//	@description				Session tokens are HS256 signed JWTs carrying the user id and role.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/pitchdeck
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5099
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var h http.Handler = r.Mux
	if r.HTTPMetrics != nil {
		h = r.HTTPMetrics.Middleware(h)
	}
	httpx.Chain(h, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the bearer token and rejects logged-out tokens.
func (r *Router) authn() httpx.Middleware {
	var revoked httpx.RevocationChecker
	if r.TokenService != nil {
		revoked = r.TokenService
	}
	return httpx.AuthnMiddleware(r.verifier, revoked)
}

// requireRole gates on the token role and, when the auth service is wired,
// on the role currently stored for the user.
func (r *Router) requireRole(roles ...string) httpx.Middleware {
	if r.AuthService == nil {
		return httpx.RequireRole(roles...)
	}
	return httpx.RequireCurrentRole(r.AuthService.CurrentRole, roles...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:  r.AuthService,
		TokenService: r.TokenService,
		ExposeStack:  r.exposeStack,
	}

	// Credential endpoints - strict rate limit by IP + email to slow brute force
	r.Mux.Handle("POST /auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/signup/investor",
		httpx.Chain(http.HandlerFunc(h.HandleSignupInvestor),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("PUT /auth/profile",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateProfile),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Logout never fails, so it runs without the authn middleware.
	r.Mux.Handle("POST /auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerOAuth() {
	h := &OAuthHandler{
		OAuthService: r.OAuthService,
		FrontendURL:  r.FrontendURL,
	}

	r.Mux.Handle("GET /auth/google",
		httpx.Chain(http.HandlerFunc(h.HandleBegin),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /auth/google/callback",
		httpx.Chain(http.HandlerFunc(h.HandleCallback),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /auth/error",
		httpx.Chain(http.HandlerFunc(h.HandleError),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerInvestor() {
	h := &InvestorHandler{
		PitchService:    r.PitchService,
		InterestService: r.InterestService,
		ExposeStack:     r.exposeStack,
	}

	secured := func(fn http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			r.requireRole(roleInvestor),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /api/investor/pitches", secured(h.HandleListPitches, httpx.LenientLimit))
	r.Mux.Handle("GET /api/investor/interests", secured(h.HandleListInterests, httpx.LenientLimit))
	r.Mux.Handle("POST /api/investor/interest/{id}", secured(h.HandleMarkInterest, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /api/investor/interest/{id}", secured(h.HandleUnmarkInterest, httpx.ModerateLimit))
}

func (r *Router) registerStartups() {
	h := &StartupsHandler{
		PitchService: r.PitchService,
		ExposeStack:  r.exposeStack,
	}

	// Browsing is open to every authenticated role.
	anyRole := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	founder := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.authn(),
			r.requireRole(roleFounder),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/startups", anyRole(h.HandleList))
	r.Mux.Handle("GET /api/startups/{id}", anyRole(h.HandleGet))

	r.Mux.Handle("POST /api/startups", founder(h.HandleCreate))
	r.Mux.Handle("GET /api/startups/mine", founder(h.HandleMine))
	r.Mux.Handle("PUT /api/startups/{id}", founder(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/startups/{id}", founder(h.HandleDelete))
	r.Mux.Handle("GET /api/startups/{id}/interests", founder(h.HandleInterests))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /{$}",
		httpx.Chain(HealthHandler("Server is running!"),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler("API is healthy"),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	var signer jwtx.Signer
	if r.TokenService != nil {
		signer = r.TokenService.Signer
	}
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.MetricsHandler != nil {
		r.Mux.Handle("GET /metrics", r.MetricsHandler)
	}
}
