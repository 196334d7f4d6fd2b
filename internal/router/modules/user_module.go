package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/postboard/internal/interface/http"
)

// UserModule wires user routes, including the posts-by-user listing.
// GET /users, GET /users/:id, GET /users/:id/posts,
// POST /users, PUT /users/:id, DELETE /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Posts   *handlers.PostHandler
}

func NewUserModule(h *handlers.UserHandler, posts *handlers.PostHandler) *UserModule {
	return &UserModule{Handler: h, Posts: posts}
}

func (m *UserModule) Name() string { return "users" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("", m.Handler.List)
	users.POST("", m.Handler.Create)
	users.GET("/:id", m.Handler.Get)
	users.PUT("/:id", m.Handler.Update)
	users.DELETE("/:id", m.Handler.Delete)
	users.GET("/:id/posts", m.Posts.ListByUser)
}
