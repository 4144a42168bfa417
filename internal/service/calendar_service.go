package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
	"github.com/tableset/catering-api/internal/schedule"
	appErrors "github.com/tableset/catering-api/pkg/errors"
)

type bookingReader interface {
	ListRange(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

type chefLister interface {
	chefReader
	List(ctx context.Context, filter models.ChefFilter) ([]models.Chef, int, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type calendarMetrics interface {
	ObserveCalendarBuild(view string, duration time.Duration)
	AddBookingAnomalies(count int)
}

// ChefCalendar is the computed calendar payload for one chef.
type ChefCalendar struct {
	ChefID        string             `json:"chef_id"`
	View          string             `json:"view"`
	ReferenceDate string             `json:"reference_date"`
	Days          []schedule.DayCell `json:"days"`
}

// StationCalendar holds one calendar per active chef of a station.
type StationCalendar struct {
	StationID string         `json:"station_id"`
	View      string         `json:"view"`
	Calendars []ChefCalendar `json:"calendars"`
}

// CalendarService composes the availability engine with range-scoped
// data fetches. Payloads are cached per (chef, view, reference date);
// any template, override or assignment write for a chef drops all of
// that chef's cached ranges.
type CalendarService struct {
	chefs     chefLister
	templates templateRepository
	overrides overrideRepository
	bookings  bookingReader
	cache     cacheStore
	metrics   calendarMetrics
	cacheTTL  time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewCalendarService constructs the service. cache and metrics may be
// nil, but must then be interface-nil: a typed nil pointer would pass
// the nil guards and be dereferenced. The clock defaults to time.Now.
func NewCalendarService(chefs chefLister, templates templateRepository, overrides overrideRepository, bookings bookingReader, cache cacheStore, metrics calendarMetrics, cacheTTL time.Duration, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{
		chefs:     chefs,
		templates: templates,
		overrides: overrides,
		bookings:  bookings,
		cache:     cache,
		metrics:   metrics,
		cacheTTL:  cacheTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// CalendarRequest selects the chef, view mode and reference date.
type CalendarRequest struct {
	ChefID string
	View   string
	Date   string
}

// GetChefCalendar returns the chef's day cells for the requested range.
func (s *CalendarService) GetChefCalendar(ctx context.Context, req CalendarRequest) (*ChefCalendar, error) {
	mode, err := parseViewMode(req.View)
	if err != nil {
		return nil, err
	}
	ref, err := s.referenceDate(req.Date)
	if err != nil {
		return nil, err
	}

	chef, err := s.chefs.FindByID(ctx, req.ChefID)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "chef not found")
	}

	key := calendarKey(chef.ID, string(mode), schedule.DateKey(ref))
	if s.cache != nil {
		var cached ChefCalendar
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("calendar cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	calendar, err := s.buildCalendar(ctx, chef.ID, mode, ref)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, calendar, s.cacheTTL); err != nil {
			s.logger.Warn("calendar cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return calendar, nil
}

// stationPageSize bounds each roster fetch while building a station
// calendar; GetStationCalendar pages until the station is exhausted.
const stationPageSize = 200

// GetStationCalendar builds calendars for every active chef of a
// station. Station views are not cached: per-chef granularity keeps
// invalidation simple and station pages are rare.
func (s *CalendarService) GetStationCalendar(ctx context.Context, stationID string, req CalendarRequest) (*StationCalendar, error) {
	mode, err := parseViewMode(req.View)
	if err != nil {
		return nil, err
	}
	ref, err := s.referenceDate(req.Date)
	if err != nil {
		return nil, err
	}

	active := true
	filter := models.ChefFilter{StationID: stationID, Active: &active, Page: 1, PageSize: stationPageSize}
	out := &StationCalendar{StationID: stationID, View: string(mode)}
	seen := 0
	for {
		chefs, total, err := s.chefs.List(ctx, filter)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list station chefs")
		}
		if len(chefs) == 0 {
			break
		}
		for _, chef := range chefs {
			calendar, err := s.buildCalendar(ctx, chef.ID, mode, ref)
			if err != nil {
				return nil, err
			}
			out.Calendars = append(out.Calendars, *calendar)
		}
		seen += len(chefs)
		if seen >= total {
			break
		}
		filter.Page++
	}
	return out, nil
}

// InvalidateChef drops every cached calendar payload for the chef.
func (s *CalendarService) InvalidateChef(ctx context.Context, chefID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, calendarKey(chefID, "*", "*")); err != nil {
		s.logger.Warn("calendar cache invalidation failed", zap.String("chef_id", chefID), zap.Error(err))
	}
}

func (s *CalendarService) buildCalendar(ctx context.Context, chefID string, mode schedule.ViewMode, ref time.Time) (*ChefCalendar, error) {
	start := s.now()
	dates := schedule.GenerateRange(ref, mode, start)
	from := dates[0].Date
	to := dates[len(dates)-1].Date

	templates, err := s.templates.ListByChef(ctx, chefID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load templates")
	}
	overrides, err := s.overrides.ListByChefRange(ctx, chefID, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load overrides")
	}
	bookings, err := s.bookings.ListRange(ctx, models.BookingFilter{
		DateFrom: from,
		DateTo:   to,
		Status:   models.BookingStatusConfirmed,
		ChefID:   chefID,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load bookings")
	}

	idx := schedule.BuildIndex(bookings)
	for _, anomaly := range idx.Anomalies() {
		s.logger.Warn("booking maps to no slot",
			zap.String("booking_id", anomaly.ID),
			zap.String("event_time", anomaly.EventTime),
			zap.String("chef_id", chefID))
	}

	days := schedule.BuildRange(dates,
		schedule.NewTemplateSet(templates),
		schedule.NewOverrideSet(overrides), idx)

	if s.metrics != nil {
		s.metrics.ObserveCalendarBuild(string(mode), time.Since(start))
		s.metrics.AddBookingAnomalies(len(idx.Anomalies()))
	}

	return &ChefCalendar{
		ChefID:        chefID,
		View:          string(mode),
		ReferenceDate: schedule.DateKey(ref),
		Days:          days,
	}, nil
}

func (s *CalendarService) referenceDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return parseDate(raw)
}

func parseViewMode(raw string) (schedule.ViewMode, error) {
	switch raw {
	case "", string(schedule.ViewWeek):
		return schedule.ViewWeek, nil
	case string(schedule.ViewMonth):
		return schedule.ViewMonth, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid view %q, expected week or month", raw))
	}
}

func calendarKey(chefID, view, ref string) string {
	return fmt.Sprintf("calendar:chef:%s:%s:%s", chefID, view, ref)
}
