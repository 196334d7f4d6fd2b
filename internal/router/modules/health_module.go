package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthModule struct {
	AppName string
}

func NewHealthModule(appName string) *HealthModule { return &HealthModule{AppName: appName} }

func (m *HealthModule) Name() string { return "health" }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, m.AppName+" ok")
	})
}
