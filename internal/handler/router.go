package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler so the router signature stays stable.
type Handlers struct {
	Auth        *api.AuthHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Reservation *api.ReservationHandler
	User        *api.UserHandler
	Report      *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireRole(user.RoleAdmin)
	adminOnly := []gin.HandlerFunc{requireAuth, requireAdmin}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Hotel.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: h.Hotel.Stats},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: h.Room.ListByHotel},
				{Method: http.MethodPost, Path: "/:id/rating", Handler: h.Hotel.Rate, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "", Handler: h.Hotel.Create, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Hotel.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Hotel.Delete, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/rooms", Handler: h.Room.Create, Mw: adminOnly},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Reservation.Book, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: adminOnly},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/stats", Handler: h.User.Stats},
				{Method: http.MethodGet, Path: "", Handler: h.User.List, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(adminOnly...)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reports/reservations.csv", Handler: h.Report.ReservationsCSV},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
