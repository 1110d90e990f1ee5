package http

import (
	"context"
	"errors"
	gohttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/split-engine/internal/config"
	"github.com/hxuan190/split-engine/internal/http/httputil"
	"github.com/hxuan190/split-engine/internal/http/middlewares"
	"github.com/hxuan190/split-engine/internal/services"
)

const (
	API_VERSION  = "v1"
	HTTP_SERVICE = "http-service"
)

type HTTPService struct {
	container.BaseDIInstance

	splitSvc    *services.SplitService
	rateLimiter *middlewares.RateLimiter
	server      *gohttp.Server
	conf        *config.GeneralConfig

	handlers []httputil.IHttpHandler
}

func (svc *HTTPService) ID() string {
	return HTTP_SERVICE
}

func (svc *HTTPService) Start() error {
	if svc.conf.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	svc.server = &gohttp.Server{
		Addr:              svc.conf.Addr(),
		Handler:           NewRouter(svc.rateLimiter, svc.handlers...),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Info().Str("addr", svc.conf.Addr()).Msg("http server started")

	if err := svc.server.ListenAndServe(); err != nil && err != gohttp.ErrServerClosed {
		return err
	}

	return nil
}

func (svc *HTTPService) Configure(c container.IContainer) error {
	conf, ok := c.GetConfig(config.GENERAL_CONFIG_KEY).(*config.GeneralConfig)
	if !ok || conf == nil {
		return errors.New("invalid server config")
	}
	svc.conf = conf

	splitConf, ok := c.GetConfig(config.SPLITTER_CONFIG_KEY).(*config.SplitterConfig)
	if !ok || splitConf == nil {
		return errors.New("invalid splitter config")
	}

	svc.splitSvc, ok = c.Instance(services.SPLIT_SERVICE).(*services.SplitService)
	if !ok {
		return errors.New("split service not registered")
	}
	svc.rateLimiter = middlewares.NewRateLimiter(splitConf.RateLimit, splitConf.RateBurst)

	svc.handlers = []httputil.IHttpHandler{
		NewSplitHandler(svc.splitSvc),
	}
	return nil
}

func (svc *HTTPService) Stop() error {
	if svc.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := svc.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to stop http server")
		return err
	}
	log.Info().Msg("http server stopped gracefully")
	return nil
}

// NewRouter wires middlewares, health and metrics endpoints and the API
// handlers. A nil rateLimiter disables rate limiting.
func NewRouter(rateLimiter *middlewares.RateLimiter, handlers ...httputil.IHttpHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	r.Use(cors.New(corsConf))

	r.Use(middlewares.MetricsMiddleware())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(gohttp.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("api")
	if rateLimiter != nil {
		api.Use(rateLimiter.RateLimitMiddleware())
	}
	pub := api.Group(API_VERSION)
	priv := api.Group(API_VERSION)
	admin := api.Group(API_VERSION + "/admin")

	setupHandlers(handlers, pub, priv, admin)
	return r
}

func setupHandlers(
	handlers []httputil.IHttpHandler,
	rootPub *gin.RouterGroup,
	rootPriv *gin.RouterGroup,
	rootAdmin *gin.RouterGroup,
) {
	for _, h := range handlers {
		pub := rootPub.Group(h.Root())
		priv := rootPriv.Group(h.Root())
		admin := rootAdmin.Group(h.Root())
		h.SetRoutes(pub, priv, admin)
	}
}
