package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "cseboard/pkg/errors"
)

// legacyError writes an error in the {"message","error"} shape the legacy
// form client reads.
func (h *handler) legacyError(c *gin.Context, err *pkgErrors.HTTPError) {
	c.JSON(err.StatusCode(), messageResp{Message: err.Message, Error: err.Detail})
}
