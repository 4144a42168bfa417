package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
)

type bookingStoreStub struct {
	bookings   map[string]*models.Booking
	assigned   []string
	unassigned []string
}

func (s *bookingStoreStub) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := s.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (s *bookingStoreStub) AssignChef(ctx context.Context, bookingID, chefID string) error {
	s.assigned = append(s.assigned, bookingID+":"+chefID)
	return nil
}

func (s *bookingStoreStub) UnassignChef(ctx context.Context, bookingID string) error {
	s.unassigned = append(s.unassigned, bookingID)
	return nil
}

func pendingBooking(id string, chefID *string) *models.Booking {
	return &models.Booking{
		ID:        id,
		Date:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		EventTime: "12:00",
		Status:    models.BookingStatusConfirmed,
		ChefID:    chefID,
	}
}

func chefID(id string) *string { return &id }

func TestAssignmentServiceAssign(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", nil),
	}}
	cache := &invalidatorStub{}
	svc := NewAssignmentService(store, rosterWithChef(), cache, nil, zap.NewNop())

	got, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("chef-1")})
	require.NoError(t, err)
	require.NotNil(t, got.ChefID)
	assert.Equal(t, "chef-1", *got.ChefID)
	assert.Equal(t, []string{"bk-1:chef-1"}, store.assigned)
	assert.Equal(t, []string{"chef-1"}, cache.invalidated)
}

func TestAssignmentServiceReassignInvalidatesBoth(t *testing.T) {
	roster := rosterWithChef()
	roster.items["chef-2"] = &models.Chef{ID: "chef-2", Name: "Chef B", StationID: "st-1", Active: true}
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", chefID("chef-1")),
	}}
	cache := &invalidatorStub{}
	svc := NewAssignmentService(store, roster, cache, nil, zap.NewNop())

	got, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("chef-2")})
	require.NoError(t, err)
	assert.Equal(t, "chef-2", *got.ChefID)
	assert.ElementsMatch(t, []string{"chef-1", "chef-2"}, cache.invalidated)
}

func TestAssignmentServiceSameChefIsNoOp(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", chefID("chef-1")),
	}}
	svc := NewAssignmentService(store, rosterWithChef(), nil, nil, zap.NewNop())

	got, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("chef-1")})
	require.NoError(t, err)
	assert.Equal(t, "chef-1", *got.ChefID)
	assert.Empty(t, store.assigned)
}

func TestAssignmentServiceUnassign(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", chefID("chef-1")),
	}}
	cache := &invalidatorStub{}
	svc := NewAssignmentService(store, rosterWithChef(), cache, nil, zap.NewNop())

	got, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: nil})
	require.NoError(t, err)
	assert.Nil(t, got.ChefID)
	assert.Equal(t, []string{"bk-1"}, store.unassigned)
	assert.Equal(t, []string{"chef-1"}, cache.invalidated)
}

func TestAssignmentServiceUnassignWithoutChefFails(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", nil),
	}}
	svc := NewAssignmentService(store, rosterWithChef(), nil, nil, zap.NewNop())

	_, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: nil})
	require.Error(t, err)
	assert.Empty(t, store.unassigned)
}

func TestAssignmentServiceRejectsEmptyCandidate(t *testing.T) {
	roster := rosterWithChef()
	roster.items[""] = &models.Chef{ID: "", Active: true}
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", nil),
	}}
	svc := NewAssignmentService(store, roster, nil, nil, zap.NewNop())

	_, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("")})
	require.Error(t, err)
}

func TestAssignmentServiceRejectsInactiveChef(t *testing.T) {
	roster := rosterWithChef()
	roster.items["chef-3"] = &models.Chef{ID: "chef-3", Name: "Retired", StationID: "st-1", Active: false}
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", nil),
	}}
	svc := NewAssignmentService(store, roster, nil, nil, zap.NewNop())

	_, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("chef-3")})
	require.Error(t, err)
	assert.Empty(t, store.assigned)
}

func TestAssignmentServiceBookingNotFound(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{}}
	svc := NewAssignmentService(store, rosterWithChef(), nil, nil, zap.NewNop())

	_, err := svc.Assign(context.Background(), "ghost", AssignRequest{ChefID: chefID("chef-1")})
	require.Error(t, err)
}

func TestAssignmentServiceUnknownChef(t *testing.T) {
	store := &bookingStoreStub{bookings: map[string]*models.Booking{
		"bk-1": pendingBooking("bk-1", nil),
	}}
	svc := NewAssignmentService(store, rosterWithChef(), nil, nil, zap.NewNop())

	_, err := svc.Assign(context.Background(), "bk-1", AssignRequest{ChefID: chefID("nobody")})
	require.Error(t, err)
}
