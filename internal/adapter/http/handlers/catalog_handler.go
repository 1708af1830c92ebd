package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase/interfaces"
	"oficina_os/pkg"
)

// CatalogHandler serves the read-only part and fault-type catalogs used when
// editing a work order.
type CatalogHandler struct {
	parts      interfaces.IPartCatalog
	faultTypes interfaces.IFaultTypeCatalog
}

func NewCatalogHandler(parts interfaces.IPartCatalog, faultTypes interfaces.IFaultTypeCatalog) *CatalogHandler {
	return &CatalogHandler{parts: parts, faultTypes: faultTypes}
}

// ListParts returns catalog parts with stock left.
//
// @Summary  List available catalog parts
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.CatalogPartResponse
// @Router   /v1/catalog/parts [get]
func (h *CatalogHandler) ListParts(c *gin.Context) {
	parts, err := h.parts.ListAvailable(c.Request.Context(), Establishment(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogParts(parts))
}

// ListFaultTypes returns the selectable fault entries.
//
// @Summary  List fault types
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.FaultTypeResponse
// @Router   /v1/catalog/fault-types [get]
func (h *CatalogHandler) ListFaultTypes(c *gin.Context) {
	types, err := h.faultTypes.List(c.Request.Context(), Establishment(c))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFaultTypes(types))
}
