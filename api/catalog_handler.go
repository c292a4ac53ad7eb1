package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arkasala/badmintongo-storefront/catalog"
)

type CatalogService interface {
	Courts(ctx context.Context) ([]catalog.Court, error)
	AvailabilityForDate(ctx context.Context, courts []catalog.Court, date string) ([]catalog.Court, error)
	SlotsForCourt(ctx context.Context, courtID int, date string) ([]catalog.Timeslot, error)
}

type CatalogHandler struct {
	service      CatalogService
	scrollerDays int
}

func NewCatalogHandler(service CatalogService, scrollerDays int) *CatalogHandler {
	return &CatalogHandler{service: service, scrollerDays: scrollerDays}
}

func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.ListCourts)
	rg.GET("/:id/slots", h.ListSlots)
}

// ListCourts returns the catalog; with ?date=YYYY-MM-DD each court also
// carries its available timeslots for that date.
func (h *CatalogHandler) ListCourts(c *gin.Context) {
	ctx := c.Request.Context()

	courts, err := h.service.Courts(ctx)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to retrieve courts",
		})
		return
	}

	date := c.Query("date")

	if date != "" {
		courts, err = h.service.AvailabilityForDate(ctx, courts, date)

		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.Error(err)
			if errors.Is(err, catalog.ErrInvalidDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "failed to retrieve availability",
			})
			return
		}
	}

	c.IndentedJSON(http.StatusOK, courts)
}

func (h *CatalogHandler) ListSlots(c *gin.Context) {
	courtID, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid court id"})
		return
	}

	slots, err := h.service.SlotsForCourt(c.Request.Context(), courtID, c.Query("date"))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.Error(err)
		if errors.Is(err, catalog.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to retrieve slots",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

// Dates serves the date scroller of the home view.
func (h *CatalogHandler) Dates(c *gin.Context) {
	days := h.scrollerDays

	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 31 {
			days = n
		}
	}

	c.IndentedJSON(http.StatusOK, catalog.DateRange(time.Now(), days))
}
