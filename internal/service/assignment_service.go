package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
	"github.com/tableset/catering-api/internal/schedule"
	appErrors "github.com/tableset/catering-api/pkg/errors"
)

type bookingAssigner interface {
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	AssignChef(ctx context.Context, bookingID, chefID string) error
	UnassignChef(ctx context.Context, bookingID string) error
}

// AssignmentService applies the chef assignment workflow: validation
// guards first, then the booking store write, then cache invalidation.
// Calendar-invite side effects belong to the booking subsystem.
type AssignmentService struct {
	bookings  bookingAssigner
	chefs     chefReader
	cache     calendarInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssignmentService constructs the service. cache may be nil.
func NewAssignmentService(bookings bookingAssigner, chefs chefReader, cache calendarInvalidator, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{bookings: bookings, chefs: chefs, cache: cache, validator: validate, logger: logger}
}

// AssignRequest names the candidate chef. A nil ChefID unassigns.
type AssignRequest struct {
	ChefID *string `json:"chef_id"`
}

// Assign validates and applies a chef assignment (or unassignment) to
// a booking. Re-assigning the current chef is a no-op success.
func (s *AssignmentService) Assign(ctx context.Context, bookingID string, req AssignRequest) (*models.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "booking not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load booking")
	}

	if req.ChefID != nil {
		chef, err := s.chefs.FindByID(ctx, *req.ChefID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "chef not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load chef")
		}
		if !chef.Active {
			return nil, appErrors.Clone(appErrors.ErrInvalidAssignment, "chef is inactive")
		}
	}

	switch err := schedule.ValidateAssignment(*booking, req.ChefID); {
	case errors.Is(err, schedule.ErrKeepCurrent):
		return booking, nil
	case err != nil:
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidAssignment.Code, appErrors.ErrInvalidAssignment.Status, err.Error())
	}

	previous := booking.ChefID
	if req.ChefID == nil {
		err = s.bookings.UnassignChef(ctx, bookingID)
	} else {
		err = s.bookings.AssignChef(ctx, bookingID, *req.ChefID)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update assignment")
	}
	booking.ChefID = req.ChefID

	if s.cache != nil {
		if previous != nil && *previous != "" {
			s.cache.InvalidateChef(ctx, *previous)
		}
		if req.ChefID != nil {
			s.cache.InvalidateChef(ctx, *req.ChefID)
		}
	}
	return booking, nil
}
