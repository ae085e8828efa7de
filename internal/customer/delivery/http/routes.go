package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterLegacyRoutes maps the endpoints the legacy web form calls.
// write is applied to routes that modify data.
func RegisterLegacyRoutes(rg *gin.RouterGroup, h Handler, write gin.HandlerFunc) {
	rg.GET("/Org", h.ListOrgsLegacy)
	rg.GET("/customer/:Org", h.DetailLegacy)
	rg.POST("/saveData", write, h.SaveData)
}

// RegisterRoutes maps the versioned API.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, write gin.HandlerFunc) {
	rg.GET("/orgs", h.ListOrgs)

	customers := rg.Group("/customers")
	{
		customers.GET("/:org", h.Detail)
		customers.PUT("/:org", write, h.Apply)
	}
}
