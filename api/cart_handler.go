package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arkasala/badmintongo-storefront/cart"
	"github.com/arkasala/badmintongo-storefront/catalog"
	"github.com/arkasala/badmintongo-storefront/money"
)

type CartService interface {
	Add(ctx context.Context, session string, item cart.Item) error
	Remove(ctx context.Context, session string, id string) error
	Clear(ctx context.Context, session string) error
	Items(ctx context.Context, session string) ([]cart.Item, error)
	Total(ctx context.Context, session string) (int, error)
	Count(ctx context.Context, session string) (int, error)
}

type CartHandler struct {
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.POST("/items", h.AddItem)
	rg.DELETE("/items/:id", h.RemoveItem)
	rg.DELETE("", h.Clear)
}

type addItemRequest struct {
	ID        string `json:"id" binding:"required"`
	CourtID   int    `json:"courtId" binding:"required"`
	CourtName string `json:"courtName"`
	Date      string `json:"date" binding:"required"`
	SlotLabel string `json:"slotLabel" binding:"required"`
	StartMin  int    `json:"startMin"`
	EndMin    int    `json:"endMin"`
	Price     int    `json:"price"`
}

func (h *CartHandler) Get(c *gin.Context) {
	h.respondWithCart(c)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	if err := catalog.ValidateDate(req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := cart.Item{
		ID:        req.ID,
		CourtID:   req.CourtID,
		CourtName: req.CourtName,
		Date:      req.Date,
		SlotLabel: req.SlotLabel,
		StartMin:  req.StartMin,
		EndMin:    req.EndMin,
		Price:     req.Price,
	}

	if err := h.service.Add(c.Request.Context(), sessionID(c), item); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to add item to cart",
		})
		return
	}

	h.respondWithCart(c)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Remove(c.Request.Context(), sessionID(c), id); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to remove item from cart",
		})
		return
	}

	h.respondWithCart(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), sessionID(c)); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to clear cart",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

func (h *CartHandler) respondWithCart(c *gin.Context) {
	ctx := c.Request.Context()
	session := sessionID(c)

	items, err := h.service.Items(ctx, session)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to load cart",
		})
		return
	}

	total, err := h.service.Total(ctx, session)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to load cart",
		})
		return
	}

	if items == nil {
		items = []cart.Item{}
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"items":      items,
		"count":      len(items),
		"total":      total,
		"totalLabel": money.FormatIDR(total),
	})
}
