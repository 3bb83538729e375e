package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vincent-oy/GrocerEase/internal/service"
)

func TestCreateTripValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	_, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "  "})
	require.True(t, service.IsValidation(err))

	_, err = service.CreateTrip(sqldb, service.TripInput{TripDate: "03-05-2025"})
	require.True(t, service.IsValidation(err))

	_, err = service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: -1})
	require.True(t, service.IsValidation(err))
}

func TestListTripsMostRecentFirst(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	first, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-01", BudgetCents: 50000})
	require.NoError(t, err)
	second, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: 80000})
	require.NoError(t, err)
	third, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: 20000})
	require.NoError(t, err)

	trips, err := service.ListTrips(sqldb)
	require.NoError(t, err)
	require.Len(t, trips, 3)
	require.Equal(t, third.ID, trips[0].ID)
	require.Equal(t, second.ID, trips[1].ID)
	require.Equal(t, first.ID, trips[2].ID)
}

func TestTripByID(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	store, err := service.AddStore(sqldb, "PX Mart")
	require.NoError(t, err)

	created, err := service.CreateTrip(sqldb, service.TripInput{
		TripDate:    "2025-03-05",
		StoreID:     &store.ID,
		BudgetCents: 120000,
		Note:        "weekly run",
	})
	require.NoError(t, err)

	loaded, err := service.TripByID(sqldb, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, loaded)

	_, err = service.TripByID(sqldb, 999)
	require.Error(t, err)
	require.True(t, service.IsNotFound(err))
}

func TestAddTripItemComputesLineTotal(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	trip, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: 100000})
	require.NoError(t, err)

	milk, err := service.AddTripItem(sqldb, service.TripItemInput{
		TripID:             trip.ID,
		ItemName:           "Milk",
		Unit:               "bottle",
		PlannedQty:         3,
		ExpectedPriceCents: cents(50),
	})
	require.NoError(t, err)
	require.Equal(t, int64(150), milk.LineTotalCents)

	eggs, err := service.AddTripItem(sqldb, service.TripItemInput{
		TripID:     trip.ID,
		ItemName:   "Eggs",
		Unit:       "dozen",
		PlannedQty: 2,
	})
	require.NoError(t, err)
	require.Nil(t, eggs.ExpectedPriceCents)
	require.Zero(t, eggs.LineTotalCents)

	items, err := service.ListTripItems(sqldb, trip.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, *milk, items[0])
	require.Equal(t, *eggs, items[1])
}

func TestAddTripItemValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	trip, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05"})
	require.NoError(t, err)

	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Milk", PlannedQty: 0})
	require.True(t, service.IsValidation(err))

	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: " ", PlannedQty: 1})
	require.True(t, service.IsValidation(err))

	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Milk", PlannedQty: 1, ExpectedPriceCents: cents(-5)})
	require.True(t, service.IsValidation(err))
}

func TestUpdateTripItemQtyUsesStoredPrice(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	trip, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: 100000})
	require.NoError(t, err)

	milk, err := service.AddTripItem(sqldb, service.TripItemInput{
		TripID:             trip.ID,
		ItemName:           "Milk",
		PlannedQty:         3,
		ExpectedPriceCents: cents(50),
	})
	require.NoError(t, err)
	eggs, err := service.AddTripItem(sqldb, service.TripItemInput{
		TripID:     trip.ID,
		ItemName:   "Eggs",
		PlannedQty: 2,
	})
	require.NoError(t, err)

	updated, err := service.UpdateTripItemQty(sqldb, milk.ID, 4)
	require.NoError(t, err)
	require.True(t, updated)

	// Price stays unknown, so the recomputed total stays zero.
	updated, err = service.UpdateTripItemQty(sqldb, eggs.ID, 5)
	require.NoError(t, err)
	require.True(t, updated)

	items, err := service.ListTripItems(sqldb, trip.ID)
	require.NoError(t, err)
	require.Equal(t, 4, items[0].PlannedQty)
	require.Equal(t, int64(200), items[0].LineTotalCents)
	require.Equal(t, 5, items[1].PlannedQty)
	require.Zero(t, items[1].LineTotalCents)

	updated, err = service.UpdateTripItemQty(sqldb, 999, 2)
	require.NoError(t, err)
	require.False(t, updated)

	_, err = service.UpdateTripItemQty(sqldb, milk.ID, 0)
	require.True(t, service.IsValidation(err))
}

func TestRemoveTripItemReportsExistence(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	trip, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05"})
	require.NoError(t, err)
	item, err := service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Milk", PlannedQty: 1})
	require.NoError(t, err)

	removed, err := service.RemoveTripItem(sqldb, item.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = service.RemoveTripItem(sqldb, item.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestTripSubtotalAndRemainingBudget(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	trip, err := service.CreateTrip(sqldb, service.TripInput{TripDate: "2025-03-05", BudgetCents: 1000})
	require.NoError(t, err)

	subtotal, err := service.TripSubtotalCents(sqldb, trip.ID)
	require.NoError(t, err)
	require.Zero(t, subtotal)

	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Milk", PlannedQty: 3, ExpectedPriceCents: cents(50)})
	require.NoError(t, err)
	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Eggs", PlannedQty: 2})
	require.NoError(t, err)
	_, err = service.AddTripItem(sqldb, service.TripItemInput{TripID: trip.ID, ItemName: "Bread", PlannedQty: 2, ExpectedPriceCents: cents(120)})
	require.NoError(t, err)

	subtotal, err = service.TripSubtotalCents(sqldb, trip.ID)
	require.NoError(t, err)
	require.Equal(t, int64(390), subtotal)

	require.Equal(t, int64(610), service.RemainingBudgetCents(trip, subtotal))
}
