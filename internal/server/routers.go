package orderserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handler sets served by the router.
type ApiHandleFunctions struct {
	OrderAPI OrderAPI
}

// NewRouter returns a gin engine with the order routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers the order routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	api := handleFunctions.OrderAPI
	return []Route{
		{http.MethodPost, "/api/orders", api.CreateOrder},
		{http.MethodGet, "/api/orders", api.GetAllOrders},
		{http.MethodGet, "/api/orders/:id", api.GetOrderByID},
		{http.MethodGet, "/api/orders/:id/exists", api.OrderExists},
		{http.MethodGet, "/api/orders/order-id/:orderId", api.GetOrderByOrderID},
		{http.MethodGet, "/api/orders/user/:userId", api.GetOrdersByUserID},
		{http.MethodGet, "/api/orders/user/:userId/status/:status", api.GetOrdersByUserIDAndStatus},
		{http.MethodGet, "/api/orders/status/:status", api.GetOrdersByStatus},
		{http.MethodPut, "/api/orders/:id", api.UpdateOrder},
		{http.MethodPatch, "/api/orders/:id", api.PartialUpdateOrder},
		{http.MethodDelete, "/api/orders/:id", api.DeleteOrder},
	}
}
