package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"oficina_os/pkg"
)

// EstablishmentKey is the gin context key holding the establishment resolved
// from the X-Establishment-Id header.
const EstablishmentKey = "establishment_id"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidOrderID = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_ID", "Work order id must be a positive integer", http.StatusBadRequest)
	errInvalidIndex   = pkg.NewDomainErrorSimple("INVALID_DEVICE_INDEX", "Device index must be a non-negative integer", http.StatusBadRequest)
)

// WorkOrderHandler exposes the work-order lifecycle over HTTP: creation,
// tree edits through granular command endpoints, status changes and payment
// recording. Every mutation responds with the full recomputed order.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func Establishment(c *gin.Context) string {
	if v := c.GetString(EstablishmentKey); v != "" {
		return v
	}
	return "default"
}

// Create opens a new work order.
//
// @Summary  Create work order
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateWorkOrderRequest true "Work order"
// @Success  201 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /v1/work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	input, err := payload.ToInput(Establishment(c))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_KIND", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(order))
}

// List returns the establishment's work orders, newest first.
//
// @Summary  List work orders
// @Tags     work-orders
// @Produce  json
// @Success  200 {array} response.WorkOrderResponse
// @Router   /v1/work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context(), Establishment(c))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// Get returns one work order by id.
//
// @Summary  Get work order
// @Tags     work-orders
// @Produce  json
// @Param    id path int true "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// GetByCode looks a work order up by its human-facing code.
//
// @Summary  Get work order by code
// @Tags     work-orders
// @Produce  json
// @Param    code path string true "Work order code"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /v1/work-orders/code/{code} [get]
func (h *WorkOrderHandler) GetByCode(c *gin.Context) {
	order, err := h.usecase.GetByCode(c.Request.Context(), Establishment(c), c.Param("code"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// Update patches the order's editable header fields.
func (h *WorkOrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload request.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.UpdateDetails(c.Request.Context(), id, payload.ToInput())
	h.respond(c, order, err)
}

// Delete removes a work order and its tree.
func (h *WorkOrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// AddDevice appends an empty device slot to an intervention order.
func (h *WorkOrderHandler) AddDevice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	order, err := h.usecase.AddDevice(c.Request.Context(), id)
	h.respond(c, order, err)
}

// RemoveDevice drops a device by its ordinal position.
func (h *WorkOrderHandler) RemoveDevice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	order, err := h.usecase.RemoveDevice(c.Request.Context(), id, index)
	h.respond(c, order, err)
}

// UpdateDevice patches a device's descriptive fields.
func (h *WorkOrderHandler) UpdateDevice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	var payload request.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.UpdateDevice(c.Request.Context(), id, index, payload.ToInput())
	h.respond(c, order, err)
}

// ToggleFault attaches the fault type to the device, or detaches it when
// already present.
func (h *WorkOrderHandler) ToggleFault(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	var payload request.ToggleFaultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.ToggleFault(c.Request.Context(), id, index, payload.FaultTypeID, payload.Price)
	h.respond(c, order, err)
}

// SetFaultPrice sets the labor price of an attached fault.
func (h *WorkOrderHandler) SetFaultPrice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	var payload request.FaultPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.SetFaultPrice(c.Request.Context(), id, index, payload.FaultTypeID, payload.Price)
	h.respond(c, order, err)
}

// AllocatePart reserves catalog stock against a fault.
func (h *WorkOrderHandler) AllocatePart(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	var payload request.AllocatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.AddFaultPart(c.Request.Context(), id, index, payload.FaultTypeID, payload.CatalogPartID, payload.Quantity)
	h.respond(c, order, err)
}

// ReleasePart removes a part allocation from a fault.
func (h *WorkOrderHandler) ReleasePart(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	index, ok := deviceIndex(c)
	if !ok {
		return
	}
	var payload request.ReleasePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.RemoveFaultPart(c.Request.Context(), id, index, payload.FaultTypeID, payload.CatalogPartID)
	h.respond(c, order, err)
}

// AllocateOrderPart attaches a part directly to a simple order.
func (h *WorkOrderHandler) AllocateOrderPart(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload request.AllocatePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.AddOrderPart(c.Request.Context(), id, payload.CatalogPartID, payload.Quantity)
	h.respond(c, order, err)
}

// ReleaseOrderPart removes a part from a simple order.
func (h *WorkOrderHandler) ReleaseOrderPart(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload request.ReleasePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.RemoveOrderPart(c.Request.Context(), id, payload.CatalogPartID)
	h.respond(c, order, err)
}

// UpdateStatus moves the order through its lifecycle.
//
// @Summary  Update work order status
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id path int true "Work order id"
// @Param    payload body request.UpdateStatusRequest true "Target status"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /v1/work-orders/{id}/status [patch]
func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	h.respond(c, order, err)
}

// RecordPayment updates the payment state and appends to the ledger.
func (h *WorkOrderHandler) RecordPayment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := bindError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_STATUS", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := h.usecase.RecordPayment(c.Request.Context(), id, status, payload.Amount, payload.Method)
	h.respond(c, order, err)
}

func (h *WorkOrderHandler) respond(c *gin.Context, order *entities.WorkOrder, err error) {
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// bindError surfaces per-field messages when the payload fails binding
// validation, instead of a bare 400.
func bindError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fmt.Sprintf("%s failed on the %s rule", fe.Field(), fe.Tag()))
		}
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", strings.Join(details, "; "), http.StatusBadRequest)
	}
	return errInvalidPayload
}

func orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidOrderID.HTTPStatus, errInvalidOrderID.ToHTTPError())
		return 0, false
	}
	return id, true
}

// Device ordinals are zero-based: the device seeded at creation sits at 0.
func deviceIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("device_index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidKind),
		errors.Is(err, usecase.ErrItemRequired),
		errors.Is(err, usecase.ErrClientRequired),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrNegativePrice),
		errors.Is(err, entities.ErrNegativePaidAmount),
		errors.Is(err, entities.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogPartNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_PART_NOT_FOUND", "Catalog part not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFaultTypeNotFound):
		return pkg.NewDomainErrorSimple("FAULT_TYPE_NOT_FOUND", "Fault type not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDeviceNotFound),
		errors.Is(err, entities.ErrFaultNotFound),
		errors.Is(err, entities.ErrPartNotAllocated):
		return pkg.NewDomainErrorSimple("TREE_NODE_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrStockExceeded):
		return pkg.NewDomainErrorSimple("STOCK_EXCEEDED", "Requested quantity exceeds available stock", http.StatusConflict)
	case errors.Is(err, entities.ErrMinimumDeviceRequired):
		return pkg.NewDomainErrorSimple("MINIMUM_DEVICE_REQUIRED", "An intervention order keeps at least one device", http.StatusConflict)
	case errors.Is(err, entities.ErrNotInterventionOrder),
		errors.Is(err, entities.ErrNotSimpleOrder):
		return pkg.NewDomainErrorSimple("WRONG_ORDER_KIND", err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatusTransition),
		errors.Is(err, usecase.ErrDeviceModelRequired),
		errors.Is(err, usecase.ErrDeviceFaultRequired):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrPartialWrite):
		return pkg.NewDomainError("PARTIAL_WRITE", "Work order could not be fully persisted", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
