package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arkasala/badmintongo-storefront/api"
	mock_api "github.com/arkasala/badmintongo-storefront/api/mocks"
	"github.com/arkasala/badmintongo-storefront/cart"
)

const testSession = "test-session"

func setSessionInContext(session string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", session)
		c.Next()
	}
}

func setupCartRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockCartService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockCartService(ctrl)
	handler := api.NewCartHandler(mockService)
	rg := router.Group("/api/cart")
	rg.Use(setSessionInContext(testSession))
	handler.Register(rg)

	return router, ctrl, mockService
}

var cartItems = []cart.Item{
	{
		ID:        "1-2024-01-01-t7",
		CourtID:   1,
		CourtName: "Lapangan Lor",
		Date:      "2024-01-01",
		SlotLabel: "07:00 – 08:00",
		StartMin:  420,
		EndMin:    480,
		Price:     90000,
	},
	{
		ID:        "2-2024-01-01-t8",
		CourtID:   2,
		CourtName: "Lapangan Kidul",
		Date:      "2024-01-01",
		SlotLabel: "08:00 – 09:00",
		StartMin:  480,
		EndMin:    540,
		Price:     90000,
	},
}

func TestGetCart(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Items(gomock.Any(), testSession).Return(cartItems, nil).Times(1)
		mockService.EXPECT().Total(gomock.Any(), testSession).Return(180000, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cart", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{
			"items": [
				{"id":"1-2024-01-01-t7","courtId":1,"courtName":"Lapangan Lor","date":"2024-01-01","slotLabel":"07:00 – 08:00","startMin":420,"endMin":480,"price":90000},
				{"id":"2-2024-01-01-t8","courtId":2,"courtName":"Lapangan Kidul","date":"2024-01-01","slotLabel":"08:00 – 09:00","startMin":480,"endMin":540,"price":90000}
			],
			"count": 2,
			"total": 180000,
			"totalLabel": "Rp 180.000"
		}`, w.Body.String())
	})

	t.Run("empty cart", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Items(gomock.Any(), testSession).Return(nil, nil).Times(1)
		mockService.EXPECT().Total(gomock.Any(), testSession).Return(0, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cart", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"items":[],"count":0,"total":0,"totalLabel":"Rp 0"}`, w.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Items(gomock.Any(), testSession).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/cart", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to load cart"}`, w.Body.String())
	})
}

func TestAddItem(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), testSession, cartItems[0]).Return(nil).Times(1)
		mockService.EXPECT().Items(gomock.Any(), testSession).Return(cartItems[:1], nil).Times(1)
		mockService.EXPECT().Total(gomock.Any(), testSession).Return(90000, nil).Times(1)

		body, _ := json.Marshal(cartItems[0])
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/cart/items", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/cart/items", bytes.NewReader([]byte(`{"id":""}`)))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		bad := cartItems[0]
		bad.Date = "01/01/2024"
		body, _ := json.Marshal(bad)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/cart/items", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"date must be YYYY-MM-DD"}`, w.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		router, ctrl, mockService := setupCartRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), testSession, gomock.Any()).Return(assert.AnError).Times(1)

		body, _ := json.Marshal(cartItems[0])
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/cart/items", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to add item to cart"}`, w.Body.String())
	})
}

func TestRemoveItem(t *testing.T) {
	router, ctrl, mockService := setupCartRouter(t)
	defer ctrl.Finish()

	mockService.EXPECT().Remove(gomock.Any(), testSession, "1-2024-01-01-t7").Return(nil).Times(1)
	mockService.EXPECT().Items(gomock.Any(), testSession).Return(nil, nil).Times(1)
	mockService.EXPECT().Total(gomock.Any(), testSession).Return(0, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/cart/items/1-2024-01-01-t7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
}

func TestClearCart(t *testing.T) {
	router, ctrl, mockService := setupCartRouter(t)
	defer ctrl.Finish()

	mockService.EXPECT().Clear(gomock.Any(), testSession).Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"cart cleared"}`, w.Body.String())
}
