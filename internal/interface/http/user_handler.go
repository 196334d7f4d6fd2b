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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email string `json:"email" binding:"notblank,email,max=256"`
	Name  string `json:"name" binding:"notblank,max=256"`
}

type updateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,notblank,email,max=256"`
	Name  *string `json:"name" binding:"omitempty,notblank,max=256"`
	immutableFields
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, "user.list", err)
		return
	}
	record("user.list", http.StatusOK)
	response.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, "user.get", err)
		return
	}
	record("user.get", http.StatusOK)
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "user.create", err)
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Email: strings.TrimSpace(req.Email),
		Name:  strings.TrimSpace(req.Name),
	})
	if err != nil {
		fail(c, h.Logger, "user.create", err)
		return
	}
	record("user.create", http.StatusCreated)
	response.JSON(c, http.StatusCreated, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, "user.update", err)
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), c.Param("id"), entity.UserPatch{
		Email: trimmed(req.Email),
		Name:  trimmed(req.Name),
	})
	if err != nil {
		fail(c, h.Logger, "user.update", err)
		return
	}
	record("user.update", http.StatusOK)
	response.JSON(c, http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, h.Logger, "user.delete", err)
		return
	}
	record("user.delete", http.StatusOK)
	response.Message(c, http.StatusOK, "User deleted successfully")
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
