package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Registry collects modules and group-level middleware, then mounts them all
// under one prefix (e.g. /api/v1).
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
	names       map[string]bool
}

func NewRegistry(engine *gin.Engine, prefix string) *Registry {
	return &Registry{Engine: engine, API: engine.Group(prefix), names: map[string]bool{}}
}

// Use adds middleware that runs for every module route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// Add queues mod. A second module with the same name is ignored.
func (r *Registry) Add(mod Module) {
	if mod == nil || r.names[mod.Name()] {
		return
	}
	r.names[mod.Name()] = true
	r.modules = append(r.modules, mod)
}

// Modules lists the queued module names in registration order.
func (r *Registry) Modules() []string {
	out := make([]string, len(r.modules))
	for i, m := range r.modules {
		out[i] = m.Name()
	}
	return out
}

// RegisterAll applies middleware, then lets each module mount its routes.
func (r *Registry) RegisterAll(logger *logrus.Logger) {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"prefix":  r.API.BasePath(),
			"modules": r.Modules(),
			"routes":  len(r.Engine.Routes()),
		}).Debug("routes registered")
	}
}
