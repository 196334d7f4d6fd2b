package router

import (
	"time"

	"github.com/oksasatya/postboard/internal/application"
	"github.com/oksasatya/postboard/internal/container"
	handlers "github.com/oksasatya/postboard/internal/interface/http"
	"github.com/oksasatya/postboard/internal/interface/middleware"
	"github.com/oksasatya/postboard/internal/router/modules"
)

type Handlers struct {
	Users    *handlers.UserHandler
	Posts    *handlers.PostHandler
	Comments *handlers.CommentHandler
}

func buildHandlers() Handlers {
	logger := container.GetLogger()
	events := container.GetEvents()
	users, posts, comments := container.Repositories()

	return Handlers{
		Users:    handlers.NewUserHandler(application.NewUserService(users, events, logger), logger),
		Posts:    handlers.NewPostHandler(application.NewPostService(posts, events, logger), logger),
		Comments: handlers.NewCommentHandler(application.NewCommentService(comments, events, logger), logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	if cfg.RateLimitEnabled {
		var skip middleware.AllowFunc
		if cfg.RateLimitSkipPrivate {
			skip = middleware.AllowPrivateIP()
		}
		rdb := container.GetRedis()
		r.Use(
			middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIP(), skip),
			middleware.RateLimit(rdb, cfg.RateLimitWritesPerMinute, time.Minute, middleware.KeyByIPWrites(),
				middleware.AnyOf(middleware.OnlyWrites(), skip)),
		)
	}

	h := buildHandlers()
	r.Add(modules.NewHealthModule(cfg.AppName))
	r.Add(modules.NewUserModule(h.Users, h.Posts))
	r.Add(modules.NewPostModule(h.Posts, h.Comments))
	r.Add(modules.NewCommentModule(h.Comments))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
