package bookings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arkasala/badmintongo-storefront/bookingapi"
	api_mocks "github.com/arkasala/badmintongo-storefront/bookingapi/mocks"
	"github.com/arkasala/badmintongo-storefront/bookings"
)

var rows = []bookingapi.Booking{
	{ID: 3, Code: "RESV20240103", Total: 90000, Status: "pending", CreatedAt: time.Now(), Items: []bookingapi.BookingItem{
		{ID: 31, BookingID: 3, CourtID: 1, Date: "2024-01-03", StartMin: 420, EndMin: 480, Price: 90000},
	}},
	{ID: 2, Code: "RESV20240102", Total: 180000, Status: "paid", CreatedAt: time.Now()},
	{ID: 1, Code: "RESV20240101", Total: 90000, Status: "failed", CreatedAt: time.Now()},
}

func newBookingsDeps(t *testing.T) (*gomock.Controller, *api_mocks.MockBookingAPI, *bookings.Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := api_mocks.NewMockBookingAPI(ctrl)
	service := bookings.NewService(api)

	return ctrl, api, service, context.Background()
}

func TestList(t *testing.T) {

	t.Run("passes everything through by default", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 100).Return(rows, nil).Times(1)

		got, err := service.List(ctx, 0, "", "")

		require.Nil(t, err)
		require.Equal(t, rows, got)
	})

	t.Run("explicit limit is forwarded", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 25).Return(rows, nil).Times(1)

		_, err := service.List(ctx, 25, bookings.StatusAll, "")

		require.Nil(t, err)
	})

	t.Run("filters by status chip", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 100).Return(rows, nil).Times(1)

		got, err := service.List(ctx, 0, "Paid", "")

		require.Nil(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "RESV20240102", got[0].Code)
	})

	t.Run("filters by code substring", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 100).Return(rows, nil).Times(1)

		got, err := service.List(ctx, 0, "all", "resv20240101")

		require.Nil(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "failed", got[0].Status)
	})

	t.Run("no matches is an empty list, not an error", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 100).Return(rows, nil).Times(1)

		got, err := service.List(ctx, 0, "paid", "nope")

		require.Nil(t, err)
		require.NotNil(t, got)
		require.Len(t, got, 0)
	})

	t.Run("api error", func(t *testing.T) {
		ctrl, api, service, ctx := newBookingsDeps(t)
		defer ctrl.Finish()

		api.EXPECT().GetBookings(ctx, 100).Return(nil, errors.New("api error")).Times(1)

		got, err := service.List(ctx, 0, "", "")

		require.Error(t, err)
		require.Nil(t, got)
	})
}
