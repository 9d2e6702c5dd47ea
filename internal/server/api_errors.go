package orderserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderapp "github.com/Apurer/go-order-api/internal/domains/orders/application"
	orderports "github.com/Apurer/go-order-api/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-order-api/internal/shared/errors"
)

// respondOrderServiceError translates service errors into the envelope
// responses. Business-rule violations map to 400, absence to 404, and
// everything else, storage failures included, to 500.
func respondOrderServiceError(c *gin.Context, err error, prefix string, extra ...apierrors.StatusMapper) {
	mappers := append(extra, clientError(prefix))
	apierrors.RespondServiceError(c, err, mappers...)
}

func notFoundByID(id int64) apierrors.StatusMapper {
	return func(err error) (int, string, bool) {
		if errors.Is(err, orderports.ErrNotFound) {
			return http.StatusNotFound, fmt.Sprintf("Order not found with id: %d", id), true
		}
		return 0, "", false
	}
}

func notFoundByOrderID(orderID int64) apierrors.StatusMapper {
	return func(err error) (int, string, bool) {
		if errors.Is(err, orderports.ErrNotFound) {
			return http.StatusNotFound, fmt.Sprintf("Order not found with order ID: %d", orderID), true
		}
		return 0, "", false
	}
}

func clientError(prefix string) apierrors.StatusMapper {
	return func(err error) (int, string, bool) {
		if errors.Is(err, orderapp.ErrDuplicateOrderID) || errors.Is(err, orderapp.ErrInvalidInput) {
			return http.StatusBadRequest, prefix + ": " + err.Error(), true
		}
		return 0, "", false
	}
}
