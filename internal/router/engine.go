package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/postboard/internal/container"
	"github.com/oksasatya/postboard/internal/interface/middleware"
	"github.com/oksasatya/postboard/pkg/validation"
)

// NewEngine builds the gin engine with global middleware and every module
// registered under the configured API prefix.
func NewEngine() *gin.Engine {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	validation.Init()

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.WithError(err).Warn("invalid TRUSTED_PROXIES; trusting no proxy")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
			ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	} else if cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := NewRegistry(r, cfg.APIPrefix)
	InitModules(reg)
	reg.RegisterAll(logger)
	return r
}
