package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/postboard/internal/interface/http"
)

type PostModule struct {
	Handler  *handlers.PostHandler
	Comments *handlers.CommentHandler
}

func NewPostModule(h *handlers.PostHandler, comments *handlers.CommentHandler) *PostModule {
	return &PostModule{Handler: h, Comments: comments}
}

func (m *PostModule) Name() string { return "posts" }

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", m.Handler.List)
	posts.POST("", m.Handler.Create)
	posts.GET("/:id", m.Handler.Get)
	posts.PUT("/:id", m.Handler.Update)
	posts.DELETE("/:id", m.Handler.Delete)
	posts.GET("/:id/comments", m.Comments.ListByPost)
}
