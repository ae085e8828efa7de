package http

import (
	"errors"
	"net/http"

	"cseboard/internal/customer"
	pkgErrors "cseboard/pkg/errors"
)

// Messages of the legacy form endpoints.
const (
	msgOrgRequired      = "'Org' is a required field."
	msgNoFields         = "At least one additional field must be provided for update."
	msgSaveFailed       = "Error saving data in database"
	msgListFailed       = "Error fetching Org data"
	msgDetailFailed     = "Error fetching customer data"
	msgCustomerNotFound = "Customer not found"
	msgInserted         = "New Org data saved successfully"
	msgUpdated          = "Org data updated successfully"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// storeMessage is the generic text reported for store failures; the cause
// string goes in Detail.
func (h *handler) mapError(err error, storeMessage string) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, customer.ErrMissingOrg):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgOrgRequired)
	case errors.Is(err, customer.ErrNoFields):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgNoFields)
	}

	var ve *customer.ValidationError
	if errors.As(err, &ve) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, ve.Reason)
	}

	var se *customer.StoreError
	if errors.As(err, &se) {
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, storeMessage).WithDetail(se.Err.Error())
	}

	return pkgErrors.ErrInternalServerError
}
