package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/internal/application"
	"github.com/oksasatya/postboard/internal/domain/entity"
	"github.com/oksasatya/postboard/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	UserID  string `json:"userId" binding:"notblank"`
	Title   string `json:"title" binding:"notblank,max=256"`
	Content string `json:"content" binding:"notblank"`
}

type updatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,notblank,max=256"`
	Content *string `json:"content" binding:"omitempty,notblank"`
	immutableFields
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, "post.list", err)
		return
	}
	record("post.list", http.StatusOK)
	response.List(c, posts)
}

// ListByUser serves /users/:id/posts. An unknown user yields an empty list.
func (h *PostHandler) ListByUser(c *gin.Context) {
	posts, err := h.Svc.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, "post.list_by_user", err)
		return
	}
	record("post.list_by_user", http.StatusOK)
	response.List(c, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, "post.get", err)
		return
	}
	record("post.get", http.StatusOK)
	response.JSON(c, http.StatusOK, p)
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "post.create", err)
		return
	}
	// content is stored verbatim; only identifiers and titles are trimmed
	p, err := h.Svc.Create(c.Request.Context(), application.CreatePostInput{
		UserID:  strings.TrimSpace(req.UserID),
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
	})
	if err != nil {
		fail(c, h.Logger, "post.create", err)
		return
	}
	record("post.create", http.StatusCreated)
	response.JSON(c, http.StatusCreated, p)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "post.update", err)
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.PostPatch{
		Title:   trimmed(req.Title),
		Content: req.Content,
	})
	if err != nil {
		fail(c, h.Logger, "post.update", err)
		return
	}
	record("post.update", http.StatusOK)
	response.JSON(c, http.StatusOK, p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, "post.delete", err)
		return
	}
	record("post.delete", http.StatusOK)
	response.Message(c, http.StatusOK, "Post deleted successfully")
}
