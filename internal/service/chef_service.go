package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/tableset/catering-api/internal/models"
	appErrors "github.com/tableset/catering-api/pkg/errors"
)

type chefRepository interface {
	List(ctx context.Context, filter models.ChefFilter) ([]models.Chef, int, error)
	FindByID(ctx context.Context, id string) (*models.Chef, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, chef *models.Chef) error
	Update(ctx context.Context, chef *models.Chef) error
	Deactivate(ctx context.Context, id string) error
}

type stationReader interface {
	List(ctx context.Context) ([]models.Station, error)
	FindByID(ctx context.Context, id string) (*models.Station, error)
}

// ChefService manages the chef roster.
type ChefService struct {
	chefs     chefRepository
	stations  stationReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewChefService constructs the service.
func NewChefService(chefs chefRepository, stations stationReader, validate *validator.Validate, logger *zap.Logger) *ChefService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChefService{chefs: chefs, stations: stations, validator: validate, logger: logger}
}

// CreateChefRequest describes the create payload.
type CreateChefRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	StationID string  `json:"station_id" validate:"required"`
	AvatarURL *string `json:"avatar_url"`
}

// UpdateChefRequest describes the update payload.
type UpdateChefRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
	StationID string  `json:"station_id" validate:"required"`
	AvatarURL *string `json:"avatar_url"`
	Active    *bool   `json:"active"`
}

// List returns chefs matching the filter.
func (s *ChefService) List(ctx context.Context, filter models.ChefFilter) ([]models.Chef, *models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	chefs, total, err := s.chefs.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list chefs")
	}
	pagination := &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}
	return chefs, pagination, nil
}

// Get returns a chef by id.
func (s *ChefService) Get(ctx context.Context, id string) (*models.Chef, error) {
	chef, err := s.chefs.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "chef not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get chef")
	}
	return chef, nil
}

// ListStations returns all stations.
func (s *ChefService) ListStations(ctx context.Context) ([]models.Station, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list stations")
	}
	return stations, nil
}

// Create registers a chef on the roster.
func (s *ChefService) Create(ctx context.Context, req CreateChefRequest) (*models.Chef, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chef payload")
	}
	if err := s.ensureStation(ctx, req.StationID); err != nil {
		return nil, err
	}
	exists, err := s.chefs.ExistsByEmail(ctx, req.Email, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check chef email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already in use")
	}
	chef := &models.Chef{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		StationID: req.StationID,
		AvatarURL: req.AvatarURL,
		Active:    true,
	}
	if err := s.chefs.Create(ctx, chef); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create chef")
	}
	return chef, nil
}

// Update modifies a chef.
func (s *ChefService) Update(ctx context.Context, id string, req UpdateChefRequest) (*models.Chef, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chef payload")
	}
	chef, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureStation(ctx, req.StationID); err != nil {
		return nil, err
	}
	exists, err := s.chefs.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check chef email")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already in use")
	}
	chef.Name = req.Name
	chef.Email = req.Email
	chef.Phone = req.Phone
	chef.StationID = req.StationID
	chef.AvatarURL = req.AvatarURL
	if req.Active != nil {
		chef.Active = *req.Active
	}
	if err := s.chefs.Update(ctx, chef); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update chef")
	}
	return chef, nil
}

// Deactivate removes a chef from the active roster.
func (s *ChefService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.chefs.Deactivate(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to deactivate chef")
	}
	return nil
}

func (s *ChefService) ensureStation(ctx context.Context, stationID string) error {
	if _, err := s.stations.FindByID(ctx, stationID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "station not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load station")
	}
	return nil
}
