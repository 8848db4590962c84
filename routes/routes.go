package routes

import (
	"net/http"
	"time"

	"readycleans/config"
	"readycleans/handlers"
	"readycleans/middleware"
	"readycleans/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RegisterBookingRoutes registers the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/booking")
	{
		api.GET("/rates", hb.RatesHandler)
		api.GET("/service-area/:zip", hb.ServiceAreaHandler)
		api.POST("/quote", hb.QuoteHandler)
		api.POST("/flow", hb.FlowHandler)
		api.POST("/checkout", hb.CheckoutHandler)
	}
}

// RegisterPaymentRoutes keeps the path the storefront already calls.
func RegisterPaymentRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
}

// RegisterAIRoutes registers the chat widget endpoint.
func RegisterAIRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	r.POST("/chat", hb.ChatHandler)
}

// RegisterBlogRoutes registers the blog read endpoints.
func RegisterBlogRoutes(r *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api := r.Group("/blogs")
	{
		api.GET("", hb.ListBlogsHandler)
		api.GET("/:id", hb.GetBlogHandler)
	}
}

// NewRouter builds the engine with middleware and every route group.
func NewRouter(hb *handlers.HandlerBundle) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(config.TrustedProxies()); err != nil {
		utils.GetLogger().Warn("invalid TRUSTED_PROXIES; trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())

	origins := config.AllowedOrigins()
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Idempotency-Key", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterBookingRoutes(api, hb)
	RegisterPaymentRoutes(api, hb)
	RegisterAIRoutes(api, hb)
	RegisterBlogRoutes(api, hb)
	return r
}
