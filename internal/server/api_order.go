package orderserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/go-order-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-order-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-order-api/internal/shared/errors"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Post /api/orders
// Create a new order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	var payload orderhttpmapper.OrderMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error creating order: "+err.Error())
		return
	}
	if err := payload.ValidateRequired(); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error creating order: "+err.Error())
		return
	}
	candidate, err := orderhttpmapper.ToDomainOrder(payload)
	if err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error creating order: "+err.Error())
		return
	}
	created, err := api.service.Create(c.Request.Context(), candidate)
	if err != nil {
		respondOrderServiceError(c, err, "Error creating order")
		return
	}
	c.JSON(http.StatusCreated, orderhttpmapper.FromDomainOrder(created))
}

// Get /api/orders
// Get all orders
func (api *OrderAPI) GetAllOrders(c *gin.Context) {
	orders, err := api.service.GetAll(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err, "Error listing orders")
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /api/orders/:id
// Get order by surrogate id
func (api *OrderAPI) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err, "Error loading order", notFoundByID(id))
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /api/orders/order-id/:orderId
// Get order by external order id
func (api *OrderAPI) GetOrderByOrderID(c *gin.Context) {
	orderID, ok := parseIDParam(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondOrderServiceError(c, err, "Error loading order", notFoundByOrderID(orderID))
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(order))
}

// Get /api/orders/user/:userId
// Get a user's orders, newest first
func (api *OrderAPI) GetOrdersByUserID(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	orders, err := api.service.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		respondOrderServiceError(c, err, "Error listing orders")
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /api/orders/status/:status
// Get orders by status
func (api *OrderAPI) GetOrdersByStatus(c *gin.Context) {
	orders, err := api.service.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondOrderServiceError(c, err, "Error listing orders")
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Get /api/orders/user/:userId/status/:status
// Get a user's orders filtered by status
func (api *OrderAPI) GetOrdersByUserIDAndStatus(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	orders, err := api.service.ListByUserIDAndStatus(c.Request.Context(), userID, c.Param("status"))
	if err != nil {
		respondOrderServiceError(c, err, "Error listing orders")
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrderList(orders))
}

// Put /api/orders/:id
// Update an existing order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error updating order: "+err.Error())
		return
	}
	if err := payload.ValidateRequired(); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error updating order: "+err.Error())
		return
	}
	api.applyUpdate(c, id, payload)
}

// Patch /api/orders/:id
// Partially update an existing order; absent fields keep their stored values
func (api *OrderAPI) PartialUpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.OrderMutation
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error updating order: "+err.Error())
		return
	}
	if err := payload.ValidatePartial(); err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Error updating order: "+err.Error())
		return
	}
	api.applyUpdate(c, id, payload)
}

func (api *OrderAPI) applyUpdate(c *gin.Context, id int64, payload orderhttpmapper.OrderMutation) {
	updated, err := api.service.Update(c.Request.Context(), id, orderhttpmapper.ToPatch(payload))
	if err != nil {
		respondOrderServiceError(c, err, "Error updating order", notFoundByID(id))
		return
	}
	c.JSON(http.StatusOK, orderhttpmapper.FromDomainOrder(updated))
}

// Delete /api/orders/:id
// Delete an order
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondOrderServiceError(c, err, "Error deleting order", notFoundByID(id))
		return
	}
	apierrors.RespondMessage(c, "Order deleted successfully")
}

// Get /api/orders/:id/exists
// Check whether an order exists
func (api *OrderAPI) OrderExists(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	exists, err := api.service.Exists(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err, "Error checking order")
		return
	}
	c.JSON(http.StatusOK, exists)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apierrors.RespondError(c, http.StatusBadRequest, "Invalid "+name+": "+raw)
		return 0, false
	}
	return id, true
}
