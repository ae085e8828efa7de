package http

import (
	"github.com/gin-gonic/gin"

	"cseboard/internal/customer"
	"cseboard/pkg/log"
)

// Handler is the public interface for the customer HTTP delivery layer.
type Handler interface {
	// Legacy form endpoints
	ListOrgsLegacy(c *gin.Context)
	DetailLegacy(c *gin.Context)
	SaveData(c *gin.Context)

	// Versioned API
	ListOrgs(c *gin.Context)
	Detail(c *gin.Context)
	Apply(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc customer.UseCase
}

// New creates a new HTTP handler for the customer domain.
func New(l log.Logger, uc customer.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
