package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auditlog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auth"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/service"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/health"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Shops      *service.ShopService
	Offers     *service.OfferService
	Categories *service.CategoryService
	Floors     *service.FloorService
	Browse     *service.BrowseService
	Auth       *service.AuthService
	JWT        *auth.JWTManager
	AuditLog   *auditlog.Buffer
	Health     *health.Handler
	Logger     *slog.Logger
	CORS       middleware.CORSConfig
}

// NewRouter creates a chi router with all portal routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics("portal"))
	r.Use(middleware.Tracing("portal"))
	r.Use(middleware.RequestLogger(deps.Logger))

	// Health check endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	shopHandler := NewShopHandler(deps.Shops, deps.Logger)
	offerHandler := NewOfferHandler(deps.Offers, deps.Logger)
	categoryHandler := NewCategoryHandler(deps.Categories, deps.Logger)
	floorHandler := NewFloorHandler(deps.Floors, deps.Logger)
	browseHandler := NewBrowseHandler(deps.Browse)
	authHandler := NewAuthHandler(deps.Auth, deps.Logger)
	logsHandler := NewLogsHandler(deps.AuditLog)

	// Token validator bridging to the portal JWT manager. Every admin
	// account carries the admin role.
	tokenValidator := func(token string) (*middleware.Claims, error) {
		claims, err := deps.JWT.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.AdminID,
			Email:  claims.Email,
			Role:   "admin",
		}, nil
	}

	// Public storefront endpoints. Catalog reads are cacheable for a minute.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CacheControl(60))

		r.Get("/shops", browseHandler.BrowseShops)
		r.Get("/shops/{id}", shopHandler.GetShop)
		r.Get("/offers", browseHandler.BrowseOffers)
		r.Get("/offers/{id}", offerHandler.GetOffer)
		r.Get("/categories", browseHandler.ListCategories)
		r.Get("/floors", browseHandler.ListFloors)
	})

	// Auth endpoints.
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokenValidator))

			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
			r.Post("/change-password", authHandler.ChangePassword)
		})
	})

	// Admin management endpoints.
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.Auth(tokenValidator))

		r.Get("/dashboard", browseHandler.Dashboard)

		r.Get("/shops", shopHandler.ListShops)
		r.Post("/shops", shopHandler.CreateShop)
		r.Put("/shops/{id}", shopHandler.UpdateShop)
		r.Delete("/shops/{id}", shopHandler.DeleteShop)

		r.Get("/offers", offerHandler.ListOffers)
		r.Get("/offers/expiring-soon", offerHandler.ListExpiringSoonOffers)
		r.Post("/offers", offerHandler.CreateOffer)
		r.Put("/offers/{id}", offerHandler.UpdateOffer)
		r.Delete("/offers/{id}", offerHandler.DeleteOffer)

		r.Post("/categories", categoryHandler.CreateCategory)
		r.Put("/categories/{id}", categoryHandler.UpdateCategory)
		r.Delete("/categories/{id}", categoryHandler.DeleteCategory)

		r.Post("/floors", floorHandler.CreateFloor)
		r.Put("/floors/{id}", floorHandler.UpdateFloor)
		r.Delete("/floors/{id}", floorHandler.DeleteFloor)

		r.Get("/logs", logsHandler.Query)
		r.Get("/logs/export", logsHandler.Export)
		r.Delete("/logs", logsHandler.Clear)
	})

	return r
}
