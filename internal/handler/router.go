package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"enrollhub/internal/handler/api"
	"enrollhub/internal/handler/middleware"
	"enrollhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	enrollmentHandler *api.EnrollmentHandler,
	courseHandler *api.CourseHandler,
	discountHandler *api.DiscountHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, enrollmentHandler, courseHandler, discountHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	enrollmentHandler *api.EnrollmentHandler,
	courseHandler *api.CourseHandler,
	discountHandler *api.DiscountHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		courses := apiGroup.Group("/courses")
		{
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: courseHandler.ListCourses},
				{Method: http.MethodGet, Path: "/:id", Handler: courseHandler.GetCourse},
			})

			roster := courses.Group("")
			roster.Use(authMiddleware.RequireAuth())
			addRoutes(roster, []route{
				{Method: http.MethodGet, Path: "/:id/registrations", Handler: enrollmentHandler.ListCourseRegistrations},
			})
		}

		registrations := apiGroup.Group("/registrations")
		{
			addRoutes(registrations, []route{
				{Method: http.MethodPost, Path: "", Handler: enrollmentHandler.CreateRegistration},
			})

			lookup := registrations.Group("")
			lookup.Use(authMiddleware.RequireAuth())
			addRoutes(lookup, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: enrollmentHandler.GetRegistration},
			})
		}

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: discountHandler.ValidateDiscount},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/courses", Handler: courseHandler.CreateCourse},
				{Method: http.MethodPost, Path: "/discounts", Handler: discountHandler.CreateDiscount},
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
