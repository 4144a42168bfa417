package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
	"github.com/tableset/catering-api/internal/schedule"
)

type chefRepoStub struct {
	items map[string]*models.Chef
}

func (s *chefRepoStub) List(ctx context.Context, filter models.ChefFilter) ([]models.Chef, int, error) {
	out := make([]models.Chef, 0, len(s.items))
	for _, chef := range s.items {
		if filter.StationID != "" && chef.StationID != filter.StationID {
			continue
		}
		out = append(out, *chef)
	}
	return out, len(out), nil
}

func (s *chefRepoStub) FindByID(ctx context.Context, id string) (*models.Chef, error) {
	if chef, ok := s.items[id]; ok {
		cp := *chef
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (s *chefRepoStub) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return false, nil
}

func (s *chefRepoStub) Create(ctx context.Context, chef *models.Chef) error { return nil }
func (s *chefRepoStub) Update(ctx context.Context, chef *models.Chef) error { return nil }
func (s *chefRepoStub) Deactivate(ctx context.Context, id string) error     { return nil }

type templateRepoStub struct {
	templates []models.WeeklyTemplate
	replaced  [][]models.WeeklyTemplate
	listErr   error
}

func (s *templateRepoStub) ListByChef(ctx context.Context, chefID string) ([]models.WeeklyTemplate, error) {
	return s.templates, s.listErr
}

func (s *templateRepoStub) ReplaceWeek(ctx context.Context, chefID string, templates []models.WeeklyTemplate) error {
	s.replaced = append(s.replaced, templates)
	return nil
}

type overrideRepoStub struct {
	byDate   map[string]*models.DateOverride
	upserted []*models.DateOverride
}

func (s *overrideRepoStub) ListByChefRange(ctx context.Context, chefID string, from, to time.Time) ([]models.DateOverride, error) {
	out := make([]models.DateOverride, 0, len(s.byDate))
	for _, o := range s.byDate {
		out = append(out, *o)
	}
	return out, nil
}

func (s *overrideRepoStub) GetByChefDate(ctx context.Context, chefID string, date time.Time) (*models.DateOverride, error) {
	if o, ok := s.byDate[date.Format("2006-01-02")]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (s *overrideRepoStub) Upsert(ctx context.Context, override *models.DateOverride) error {
	s.upserted = append(s.upserted, override)
	return nil
}

func (s *overrideRepoStub) Delete(ctx context.Context, chefID string, date time.Time) error {
	if _, ok := s.byDate[date.Format("2006-01-02")]; !ok {
		return sql.ErrNoRows
	}
	delete(s.byDate, date.Format("2006-01-02"))
	return nil
}

type invalidatorStub struct {
	invalidated []string
}

func (s *invalidatorStub) InvalidateChef(ctx context.Context, chefID string) {
	s.invalidated = append(s.invalidated, chefID)
}

func rosterWithChef() *chefRepoStub {
	return &chefRepoStub{items: map[string]*models.Chef{
		"chef-1": {ID: "chef-1", Name: "Chef A", StationID: "st-1", Active: true},
	}}
}

func fullWeekRequest() ReplaceWeekRequest {
	days := make([]WeekDayRequest, 7)
	for i := range days {
		days[i] = WeekDayRequest{DayOfWeek: i, SlotIDs: []string{schedule.SlotNoon}, IsAvailable: true}
	}
	return ReplaceWeekRequest{Days: days}
}

func TestAvailabilityServiceReplaceWeek(t *testing.T) {
	templates := &templateRepoStub{}
	cache := &invalidatorStub{}
	svc := NewAvailabilityService(rosterWithChef(), templates, &overrideRepoStub{}, cache, validator.New(), zap.NewNop())

	got, err := svc.ReplaceWeek(context.Background(), "chef-1", fullWeekRequest())
	require.NoError(t, err)
	assert.Len(t, got, 7)
	require.Len(t, templates.replaced, 1)
	assert.Equal(t, []string{"chef-1"}, cache.invalidated)
}

func TestAvailabilityServiceReplaceWeekRejectsDuplicateDay(t *testing.T) {
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, &overrideRepoStub{}, nil, validator.New(), zap.NewNop())

	req := fullWeekRequest()
	req.Days[6].DayOfWeek = 0
	_, err := svc.ReplaceWeek(context.Background(), "chef-1", req)
	require.Error(t, err)
}

func TestAvailabilityServiceReplaceWeekRejectsUnknownSlot(t *testing.T) {
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, &overrideRepoStub{}, nil, validator.New(), zap.NewNop())

	req := fullWeekRequest()
	req.Days[0].SlotIDs = []string{"midnight"}
	_, err := svc.ReplaceWeek(context.Background(), "chef-1", req)
	require.Error(t, err)
}

func TestAvailabilityServiceReplaceWeekRejectsShortWeek(t *testing.T) {
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, &overrideRepoStub{}, nil, validator.New(), zap.NewNop())

	req := fullWeekRequest()
	req.Days = req.Days[:5]
	_, err := svc.ReplaceWeek(context.Background(), "chef-1", req)
	require.Error(t, err)
}

func TestAvailabilityServiceToggleSeedsFromTemplate(t *testing.T) {
	templates := &templateRepoStub{templates: []models.WeeklyTemplate{{
		ChefID:      "chef-1",
		DayOfWeek:   int(time.Monday),
		SlotIDs:     []string{schedule.SlotNoon, schedule.SlotThreePM, schedule.SlotSixPM, schedule.SlotNinePM},
		IsAvailable: true,
	}}}
	overrides := &overrideRepoStub{byDate: map[string]*models.DateOverride{}}
	svc := NewAvailabilityService(rosterWithChef(), templates, overrides, nil, validator.New(), zap.NewNop())

	// 2025-03-10 is a Monday.
	got, err := svc.ToggleSlot(context.Background(), "chef-1", ToggleSlotRequest{Date: "2025-03-10", SlotID: schedule.SlotSixPM})
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.ElementsMatch(t, []string{schedule.SlotNoon, schedule.SlotThreePM, schedule.SlotNinePM}, []string(got.SlotIDs))
	require.Len(t, overrides.upserted, 1)
}

func TestAvailabilityServiceToggleMutatesExistingOverride(t *testing.T) {
	overrides := &overrideRepoStub{byDate: map[string]*models.DateOverride{
		"2025-03-10": {ID: "ovr-1", ChefID: "chef-1", Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), SlotIDs: []string{schedule.SlotSixPM}, IsAvailable: true},
	}}
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, overrides, nil, validator.New(), zap.NewNop())

	got, err := svc.ToggleSlot(context.Background(), "chef-1", ToggleSlotRequest{Date: "2025-03-10", SlotID: schedule.SlotNoon})
	require.NoError(t, err)
	assert.Equal(t, "ovr-1", got.ID)
	assert.ElementsMatch(t, []string{schedule.SlotNoon, schedule.SlotSixPM}, []string(got.SlotIDs))
}

func TestAvailabilityServiceToggleUnknownChef(t *testing.T) {
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, &overrideRepoStub{}, nil, validator.New(), zap.NewNop())

	_, err := svc.ToggleSlot(context.Background(), "ghost", ToggleSlotRequest{Date: "2025-03-10", SlotID: schedule.SlotNoon})
	require.Error(t, err)
}

func TestAvailabilityServiceDeleteOverride(t *testing.T) {
	overrides := &overrideRepoStub{byDate: map[string]*models.DateOverride{
		"2025-03-10": {ID: "ovr-1", ChefID: "chef-1", Date: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
	}}
	cache := &invalidatorStub{}
	svc := NewAvailabilityService(rosterWithChef(), &templateRepoStub{}, overrides, cache, validator.New(), zap.NewNop())

	require.NoError(t, svc.DeleteOverride(context.Background(), "chef-1", "2025-03-10"))
	assert.Empty(t, overrides.byDate)
	assert.Equal(t, []string{"chef-1"}, cache.invalidated)

	err := svc.DeleteOverride(context.Background(), "chef-1", "2025-03-10")
	require.Error(t, err)
}
