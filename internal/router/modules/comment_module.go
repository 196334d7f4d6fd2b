package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/postboard/internal/interface/http"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
}

func NewCommentModule(h *handlers.CommentHandler) *CommentModule {
	return &CommentModule{Handler: h}
}

func (m *CommentModule) Name() string { return "comments" }

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	comments := rg.Group("/comments")
	comments.GET("", m.Handler.List)
	comments.POST("", m.Handler.Create)
	comments.GET("/:id", m.Handler.Get)
	comments.PUT("/:id", m.Handler.Update)
	comments.DELETE("/:id", m.Handler.Delete)
}
