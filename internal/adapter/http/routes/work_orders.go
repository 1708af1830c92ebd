package routes

import (
	"github.com/gin-gonic/gin"

	"oficina_os/internal/adapter/http/handlers"
)

const (
	PathWorkOrders = "/work-orders"
	PathCatalog    = "/catalog"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.WorkOrderHandler, catalogHandler *handlers.CatalogHandler) {
	orders := rg.Group(PathWorkOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.GET("/code/:code", orderHandler.GetByCode)
		orders.GET("/:id", orderHandler.Get)
		orders.PATCH("/:id", orderHandler.Update)
		orders.DELETE("/:id", orderHandler.Delete)

		orders.POST("/:id/devices", orderHandler.AddDevice)
		orders.PATCH("/:id/devices/:device_index", orderHandler.UpdateDevice)
		orders.DELETE("/:id/devices/:device_index", orderHandler.RemoveDevice)

		orders.POST("/:id/devices/:device_index/faults", orderHandler.ToggleFault)
		orders.PATCH("/:id/devices/:device_index/faults/price", orderHandler.SetFaultPrice)
		orders.POST("/:id/devices/:device_index/parts", orderHandler.AllocatePart)
		orders.DELETE("/:id/devices/:device_index/parts", orderHandler.ReleasePart)

		orders.POST("/:id/parts", orderHandler.AllocateOrderPart)
		orders.DELETE("/:id/parts", orderHandler.ReleaseOrderPart)

		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PATCH("/:id/payment", orderHandler.RecordPayment)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/parts", catalogHandler.ListParts)
		catalog.GET("/fault-types", catalogHandler.ListFaultTypes)
	}
}
