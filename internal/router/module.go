package router

import "github.com/gin-gonic/gin"

// Module registers one resource's routes on the API group. Name identifies
// it in startup logs.
type Module interface {
	Name() string
	Register(rg *gin.RouterGroup)
}
