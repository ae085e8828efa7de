package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errOrgRequired = errors.New("org is required")

// processSaveDataReq binds the form body of the legacy save endpoint.
func (h *handler) processSaveDataReq(c *gin.Context) (saveDataReq, error) {
	var req saveDataReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processApplyReq binds the request body + URI param.
func (h *handler) processApplyReq(c *gin.Context) (applyReq, error) {
	var req applyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Org = c.Param("org")
	if req.Org == "" {
		return req, errOrgRequired
	}
	return req, nil
}
