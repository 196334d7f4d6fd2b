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

type CommentHandler struct {
	Svc    *application.CommentService
	Logger *logrus.Logger
}

func NewCommentHandler(svc *application.CommentService, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Svc: svc, Logger: logger}
}

type createCommentRequest struct {
	UserID  string `json:"userId" binding:"notblank"`
	PostID  string `json:"postId" binding:"notblank"`
	Content string `json:"content" binding:"notblank"`
}

type updateCommentRequest struct {
	Content *string `json:"content" binding:"omitempty,notblank"`
	immutableFields
}

func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, "comment.list", err)
		return
	}
	record("comment.list", http.StatusOK)
	response.List(c, comments)
}

// ListByPost serves /posts/:id/comments.
func (h *CommentHandler) ListByPost(c *gin.Context) {
	comments, err := h.Svc.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, "comment.list_by_post", err)
		return
	}
	record("comment.list_by_post", http.StatusOK)
	response.List(c, comments)
}

func (h *CommentHandler) Get(c *gin.Context) {
	cm, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, "comment.get", err)
		return
	}
	record("comment.get", http.StatusOK)
	response.JSON(c, http.StatusOK, cm)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "comment.create", err)
		return
	}
	cm, err := h.Svc.Create(c.Request.Context(), application.CreateCommentInput{
		UserID:  strings.TrimSpace(req.UserID),
		PostID:  strings.TrimSpace(req.PostID),
		Content: req.Content,
	})
	if err != nil {
		fail(c, h.Logger, "comment.create", err)
		return
	}
	record("comment.create", http.StatusCreated)
	response.JSON(c, http.StatusCreated, cm)
}

func (h *CommentHandler) Update(c *gin.Context) {
	var req updateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "comment.update", err)
		return
	}
	cm, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.CommentPatch{Content: req.Content})
	if err != nil {
		fail(c, h.Logger, "comment.update", err)
		return
	}
	record("comment.update", http.StatusOK)
	response.JSON(c, http.StatusOK, cm)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, "comment.delete", err)
		return
	}
	record("comment.delete", http.StatusOK)
	response.Message(c, http.StatusOK, "Comment deleted successfully")
}
