package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
)

type BookingsService interface {
	List(ctx context.Context, limit int, status, query string) ([]bookingapi.Booking, error)
}

type BookingsHandler struct {
	service BookingsService
}

func NewBookingsHandler(service BookingsService) *BookingsHandler {
	return &BookingsHandler{service: service}
}

func (h *BookingsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
}

func (h *BookingsHandler) List(c *gin.Context) {
	limit := 0

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)

		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}

		limit = n
	}

	rows, err := h.service.List(c.Request.Context(), limit, c.Query("status"), c.Query("q"))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, rows)
}
