package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arkasala/badmintongo-storefront/api"
	mock_api "github.com/arkasala/badmintongo-storefront/api/mocks"
	"github.com/arkasala/badmintongo-storefront/catalog"
)

func setupCatalogRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockCatalogService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockCatalogService(ctrl)
	handler := api.NewCatalogHandler(mockService, 10)
	handler.Register(router.Group("/api/courts"))
	router.GET("/api/dates", handler.Dates)

	return router, ctrl, mockService
}

var courts = []catalog.Court{
	{
		ID:              1,
		Name:            "Lapangan Lor",
		Sport:           catalog.SportBadminton,
		Indoor:          true,
		Surface:         "Vinyl",
		Images:          []string{"https://img/1"},
		TimeslotsByDate: map[string][]catalog.Timeslot{},
	},
}

func TestListCourts(t *testing.T) {

	t.Run("without date", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		courtsJson, _ := json.MarshalIndent(courts, "", "    ")
		mockService.EXPECT().Courts(gomock.Any()).Return(courts, nil).Times(1)
		mockService.EXPECT().AvailabilityForDate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(courtsJson), w.Body.String())
	})

	t.Run("with date merges availability", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		merged := []catalog.Court{courts[0]}
		merged[0].TimeslotsByDate = map[string][]catalog.Timeslot{
			"2024-01-01": {{ID: "7", Label: "07:00 – 08:00", StartMin: 420, EndMin: 480, Price: 90000}},
		}
		mergedJson, _ := json.MarshalIndent(merged, "", "    ")

		mockService.EXPECT().Courts(gomock.Any()).Return(courts, nil).Times(1)
		mockService.EXPECT().AvailabilityForDate(gomock.Any(), courts, "2024-01-01").Return(merged, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts?date=2024-01-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(mergedJson), w.Body.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Courts(gomock.Any()).Return(courts, nil).Times(1)
		mockService.EXPECT().AvailabilityForDate(gomock.Any(), courts, "bad").Return(nil, catalog.ErrInvalidDate).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts?date=bad", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"date must be YYYY-MM-DD"}`, w.Body.String())
	})

	t.Run("upstream error", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Courts(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 502, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve courts"}`, w.Body.String())
	})
}

func TestListSlots(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		slots := []catalog.Timeslot{{ID: "7", Label: "07:00 – 08:00", StartMin: 420, EndMin: 480, Price: 90000}}
		slotsJson, _ := json.MarshalIndent(slots, "", "    ")

		mockService.EXPECT().SlotsForCourt(gomock.Any(), 1, "2024-01-01").Return(slots, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts/1/slots?date=2024-01-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(slotsJson), w.Body.String())
	})

	t.Run("invalid court id", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().SlotsForCourt(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts/abc/slots?date=2024-01-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid court id"}`, w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		router, ctrl, mockService := setupCatalogRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().SlotsForCourt(gomock.Any(), 1, "").Return(nil, catalog.ErrInvalidDate).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/courts/1/slots", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"date must be YYYY-MM-DD"}`, w.Body.String())
	})
}

func TestDates(t *testing.T) {
	router, ctrl, _ := setupCatalogRouter(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/dates?days=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var entries []catalog.DateEntry
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, entries[0].ISO)
}
