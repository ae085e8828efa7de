package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cseboard/pkg/response"
)

// ListOrgsLegacy godoc
// @Summary     List Orgs for the selection dropdown
// @Description Returns every distinct Org as a bare JSON array.
// @Tags        Form
// @Produce     json
// @Success     200 {array}  string
// @Failure     500 {object} messageResp "Error fetching Org data"
// @Router      /api/Org [GET]
func (h *handler) ListOrgsLegacy(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListOrgs(ctx)
	if err != nil {
		h.l.Errorf(ctx, "Error fetching Org data: %v", err)
		h.legacyError(c, h.mapError(err, msgListFailed))
		return
	}

	c.JSON(http.StatusOK, output.Orgs)
}

// DetailLegacy godoc
// @Summary     Get customer details by Org
// @Description Returns the stored record for an exact Org match.
// @Tags        Form
// @Produce     json
// @Param       Org path string true "Org"
// @Success     200 {object} recordResp
// @Failure     404 {object} messageResp "Customer not found"
// @Failure     500 {object} messageResp "Error fetching customer data"
// @Router      /api/customer/{Org} [GET]
func (h *handler) DetailLegacy(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("Org"))
	if err != nil {
		h.l.Errorf(ctx, "Error fetching customer data: %v", err)
		h.legacyError(c, h.mapError(err, msgDetailFailed))
		return
	}
	if !output.Found {
		c.JSON(http.StatusNotFound, messageResp{Message: msgCustomerNotFound})
		return
	}

	c.JSON(http.StatusOK, newRecordResp(output.Record))
}

// SaveData godoc
// @Summary     Save or update an Org
// @Description Inserts the Org if it is new, otherwise updates only the fields provided. "-" means no selection.
// @Tags        Form
// @Accept      json
// @Produce     json
// @Param       body body     saveDataReq true "Org and fields"
// @Success     200  {object} messageResp
// @Failure     400  {object} messageResp "Validation failed"
// @Failure     500  {object} messageResp "Error saving data in database"
// @Router      /api/saveData [POST]
func (h *handler) SaveData(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSaveDataReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, messageResp{Message: "Invalid request body", Error: err.Error()})
		return
	}

	output, err := h.uc.Apply(ctx, req.toInput())
	if err != nil {
		h.legacyError(c, h.mapError(err, msgSaveFailed))
		return
	}

	msg := msgUpdated
	if output.Created {
		msg = msgInserted
	}
	created := output.Created
	c.JSON(http.StatusOK, messageResp{Message: msg, Created: &created})
}

// ListOrgs godoc
// @Summary     List Orgs
// @Description Returns every distinct Org.
// @Tags        Customers
// @Produce     json
// @Success     200 {object} listOrgsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orgs [GET]
func (h *handler) ListOrgs(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListOrgs(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOrgs: %v", err)
		response.Error(c, h.mapError(err, msgListFailed))
		return
	}

	response.OK(c, h.newListOrgsResp(output))
}

// Detail godoc
// @Summary     Get customer record
// @Description Returns the record for an exact Org match.
// @Tags        Customers
// @Produce     json
// @Param       org path string true "Org"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/customers/{org} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("org"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, msgDetailFailed))
		return
	}
	if !output.Found {
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: msgCustomerNotFound})
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Apply godoc
// @Summary     Upsert customer record
// @Description Creates the record if the Org is new, otherwise updates only the fields provided (partial update).
// @Tags        Customers
// @Accept      json
// @Produce     json
// @Param       org  path string   true "Org"
// @Param       body body fieldsReq true "Fields to set"
// @Success     200 {object} applyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/customers/{org} [PUT]
func (h *handler) Apply(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApplyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Apply(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err, msgSaveFailed))
		return
	}

	response.OK(c, h.newApplyResp(req.Org, output))
}
