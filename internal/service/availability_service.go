package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
	"github.com/tableset/catering-api/internal/schedule"
	appErrors "github.com/tableset/catering-api/pkg/errors"
)

type templateRepository interface {
	ListByChef(ctx context.Context, chefID string) ([]models.WeeklyTemplate, error)
	ReplaceWeek(ctx context.Context, chefID string, templates []models.WeeklyTemplate) error
}

type overrideRepository interface {
	ListByChefRange(ctx context.Context, chefID string, from, to time.Time) ([]models.DateOverride, error)
	GetByChefDate(ctx context.Context, chefID string, date time.Time) (*models.DateOverride, error)
	Upsert(ctx context.Context, override *models.DateOverride) error
	Delete(ctx context.Context, chefID string, date time.Time) error
}

type chefReader interface {
	FindByID(ctx context.Context, id string) (*models.Chef, error)
}

type calendarInvalidator interface {
	InvalidateChef(ctx context.Context, chefID string)
}

// AvailabilityService manages weekly templates and date overrides for
// the chef calendar.
type AvailabilityService struct {
	chefs     chefReader
	templates templateRepository
	overrides overrideRepository
	cache     calendarInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs the service. cache may be nil when
// calendar caching is disabled.
func NewAvailabilityService(chefs chefReader, templates templateRepository, overrides overrideRepository, cache calendarInvalidator, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{chefs: chefs, templates: templates, overrides: overrides, cache: cache, validator: validate, logger: logger}
}

// WeekDayRequest is one weekday entry of a full-week replacement.
type WeekDayRequest struct {
	DayOfWeek   int      `json:"day_of_week" validate:"min=0,max=6"`
	SlotIDs     []string `json:"slot_ids"`
	IsAvailable bool     `json:"is_available"`
}

// ReplaceWeekRequest carries the full 7-day template set for a chef.
type ReplaceWeekRequest struct {
	Days []WeekDayRequest `json:"days" validate:"required,len=7,dive"`
}

// UpsertOverrideRequest creates or replaces an explicit date override.
type UpsertOverrideRequest struct {
	Date        string   `json:"date" validate:"required"`
	SlotIDs     []string `json:"slot_ids"`
	IsAvailable bool     `json:"is_available"`
	Reason      *string  `json:"reason"`
	CreatedBy   *string  `json:"created_by"`
}

// ToggleSlotRequest flips one slot's availability on one date.
type ToggleSlotRequest struct {
	Date   string `json:"date" validate:"required"`
	SlotID string `json:"slot_id" validate:"required"`
}

// ChefAvailability bundles a chef's templates and overrides for the editor.
type ChefAvailability struct {
	Templates []models.WeeklyTemplate `json:"templates"`
	Overrides []models.DateOverride   `json:"overrides"`
}

// Get returns the chef's weekly templates plus the overrides inside
// [from, to].
func (s *AvailabilityService) Get(ctx context.Context, chefID string, from, to time.Time) (*ChefAvailability, error) {
	if err := s.ensureChef(ctx, chefID); err != nil {
		return nil, err
	}
	templates, err := s.templates.ListByChef(ctx, chefID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load templates")
	}
	overrides, err := s.overrides.ListByChefRange(ctx, chefID, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load overrides")
	}
	return &ChefAvailability{Templates: templates, Overrides: overrides}, nil
}

// ReplaceWeek atomically swaps a chef's 7-day template set. Every
// weekday 0..6 must appear exactly once and slot ids must come from the
// catalog.
func (s *AvailabilityService) ReplaceWeek(ctx context.Context, chefID string, req ReplaceWeekRequest) ([]models.WeeklyTemplate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid weekly template payload")
	}
	seen := make(map[int]bool, 7)
	for _, day := range req.Days {
		if seen[day.DayOfWeek] {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("duplicate entry for weekday %d", day.DayOfWeek))
		}
		seen[day.DayOfWeek] = true
		for _, slotID := range day.SlotIDs {
			if !schedule.ValidSlotID(slotID) {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown slot id %q", slotID))
			}
		}
	}
	if err := s.ensureChef(ctx, chefID); err != nil {
		return nil, err
	}

	templates := make([]models.WeeklyTemplate, 0, 7)
	for _, day := range req.Days {
		templates = append(templates, models.WeeklyTemplate{
			ChefID:      chefID,
			DayOfWeek:   day.DayOfWeek,
			SlotIDs:     day.SlotIDs,
			IsAvailable: day.IsAvailable,
		})
	}
	if err := s.templates.ReplaceWeek(ctx, chefID, templates); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace weekly templates")
	}
	s.invalidate(ctx, chefID)
	return templates, nil
}

// ToggleSlot flips one slot on one date. When no override exists for
// the date yet, the new override is seeded with the resolved state of
// the other slots first, so toggling never blanks the rest of the day.
func (s *AvailabilityService) ToggleSlot(ctx context.Context, chefID string, req ToggleSlotRequest) (*models.DateOverride, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid toggle payload")
	}
	if !schedule.ValidSlotID(req.SlotID) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown slot id %q", req.SlotID))
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureChef(ctx, chefID); err != nil {
		return nil, err
	}

	templates, err := s.templates.ListByChef(ctx, chefID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load templates")
	}
	var existing []models.DateOverride
	if current, err := s.overrides.GetByChefDate(ctx, chefID, date); err == nil {
		existing = append(existing, *current)
	} else if err != sql.ErrNoRows {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load override")
	}

	override := schedule.SeedOverride(chefID, date, req.SlotID,
		schedule.NewTemplateSet(templates), schedule.NewOverrideSet(existing))
	if err := s.overrides.Upsert(ctx, &override); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save override")
	}
	s.invalidate(ctx, chefID)
	return &override, nil
}

// UpsertOverride creates or replaces an explicit whole-day override,
// e.g. marking a vacation day.
func (s *AvailabilityService) UpsertOverride(ctx context.Context, chefID string, req UpsertOverrideRequest) (*models.DateOverride, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid override payload")
	}
	for _, slotID := range req.SlotIDs {
		if !schedule.ValidSlotID(slotID) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown slot id %q", slotID))
		}
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureChef(ctx, chefID); err != nil {
		return nil, err
	}

	override := &models.DateOverride{
		ChefID:      chefID,
		Date:        date,
		SlotIDs:     req.SlotIDs,
		IsAvailable: req.IsAvailable,
		Reason:      req.Reason,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.overrides.Upsert(ctx, override); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save override")
	}
	s.invalidate(ctx, chefID)
	return override, nil
}

// DeleteOverride removes a date override, restoring the weekly template
// for that date.
func (s *AvailabilityService) DeleteOverride(ctx context.Context, chefID, rawDate string) error {
	date, err := parseDate(rawDate)
	if err != nil {
		return err
	}
	if err := s.ensureChef(ctx, chefID); err != nil {
		return err
	}
	if err := s.overrides.Delete(ctx, chefID, date); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "override not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete override")
	}
	s.invalidate(ctx, chefID)
	return nil
}

func (s *AvailabilityService) ensureChef(ctx context.Context, chefID string) error {
	if _, err := s.chefs.FindByID(ctx, chefID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "chef not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load chef")
	}
	return nil
}

func (s *AvailabilityService) invalidate(ctx context.Context, chefID string) {
	if s.cache != nil {
		s.cache.InvalidateChef(ctx, chefID)
	}
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	return date, nil
}
