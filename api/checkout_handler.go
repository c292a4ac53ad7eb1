package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
	"github.com/arkasala/badmintongo-storefront/cart"
)

type CheckoutService interface {
	Submit(ctx context.Context, session string) (*bookingapi.CheckoutResult, error)
}

type CheckoutHandler struct {
	service CheckoutService
}

func NewCheckoutHandler(service CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

func (h *CheckoutHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	result, err := h.service.Submit(c.Request.Context(), sessionID(c))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		c.Error(err)

		if errors.Is(err, cart.ErrCartEmpty) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		// Business failures from the booking API keep their own status
		// and wording so the user sees the server's message verbatim.
		var apiErr *bookingapi.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}

		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to reach booking service",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"redirect": result.Redirect,
		"code":     result.Code,
		"total":    result.Total,
	})
}
