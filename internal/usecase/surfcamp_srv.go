package usecase

import (
	"context"
	"fmt"
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/internal/data/repository"
	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"
	"surfcamp-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SurfCampService interface {
	// Public endpoint
	GetPublicSurfCamps(ctx context.Context) ([]response.SurfCampResponse, error)

	// Admin endpoints
	GetSurfCamps(ctx context.Context) ([]response.SurfCampResponse, error)
	GetSurfCampByID(ctx context.Context, campID string) (*response.SurfCampResponse, error)
	CreateSurfCamp(ctx context.Context, req *request.SaveSurfCampRequest) (*response.SurfCampResponse, error)
	UpdateSurfCamp(ctx context.Context, campID string, req *request.SaveSurfCampRequest) (*response.SurfCampResponse, error)
	DeleteSurfCamp(ctx context.Context, campID string) error
}

type surfCampService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSurfCampService(repo *repository.Repository, log *zap.Logger) SurfCampService {
	return &surfCampService{
		repo: repo,
		log:  log.With(zap.String("service", "surf_camp")),
	}
}

func (s *surfCampService) GetPublicSurfCamps(ctx context.Context) ([]response.SurfCampResponse, error) {
	camps, err := s.repo.SurfCamp.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active surf camps", zap.Error(err))
		return nil, fmt.Errorf("list active surf camps: %w", err)
	}

	result := make([]response.SurfCampResponse, len(camps))
	for i, camp := range camps {
		result[i] = response.SurfCampToResponse(camp)
	}
	return result, nil
}

// ==================== ADMIN METHODS ====================

func (s *surfCampService) GetSurfCamps(ctx context.Context) ([]response.SurfCampResponse, error) {
	camps, err := s.repo.SurfCamp.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list surf camps", zap.Error(err))
		return nil, fmt.Errorf("list surf camps: %w", err)
	}

	result := make([]response.SurfCampResponse, len(camps))
	for i, camp := range camps {
		result[i] = response.SurfCampToResponse(camp)
	}
	return result, nil
}

func (s *surfCampService) GetSurfCampByID(ctx context.Context, campID string) (*response.SurfCampResponse, error) {
	camp, err := s.findSurfCamp(ctx, campID)
	if err != nil {
		return nil, err
	}
	resp := response.SurfCampToResponse(camp)
	return &resp, nil
}

func (s *surfCampService) CreateSurfCamp(ctx context.Context, req *request.SaveSurfCampRequest) (*response.SurfCampResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	camp := &entity.SurfCamp{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := applySurfCampRequest(camp, req); err != nil {
		return nil, NewValidationError(err.Error())
	}

	if err := s.repo.SurfCamp.Create(ctx, camp); err != nil {
		s.log.Error("Failed to create surf camp", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create surf camp: %w", err)
	}

	s.log.Info("Surf camp created", zap.String("camp_id", camp.ID.String()), zap.String("name", camp.Name))

	resp := response.SurfCampToResponse(camp)
	return &resp, nil
}

func (s *surfCampService) UpdateSurfCamp(ctx context.Context, campID string, req *request.SaveSurfCampRequest) (*response.SurfCampResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	camp, err := s.findSurfCamp(ctx, campID)
	if err != nil {
		return nil, err
	}

	if err := applySurfCampRequest(camp, req); err != nil {
		return nil, NewValidationError(err.Error())
	}
	camp.UpdatedAt = time.Now()

	if err := s.repo.SurfCamp.Update(ctx, camp); err != nil {
		s.log.Error("Failed to update surf camp", zap.Error(err), zap.String("camp_id", campID))
		return nil, fmt.Errorf("update surf camp %s: %w", campID, err)
	}

	resp := response.SurfCampToResponse(camp)
	return &resp, nil
}

func (s *surfCampService) DeleteSurfCamp(ctx context.Context, campID string) error {
	camp, err := s.findSurfCamp(ctx, campID)
	if err != nil {
		return err
	}

	if err := s.repo.SurfCamp.Delete(ctx, camp.ID); err != nil {
		s.log.Error("Failed to delete surf camp", zap.Error(err), zap.String("camp_id", campID))
		return fmt.Errorf("delete surf camp %s: %w", campID, err)
	}

	s.log.Info("Surf camp deleted", zap.String("camp_id", campID))
	return nil
}

func (s *surfCampService) findSurfCamp(ctx context.Context, campID string) (*entity.SurfCamp, error) {
	id, err := uuid.Parse(campID)
	if err != nil {
		return nil, fmt.Errorf("invalid surf camp ID format %s: %w", campID, err)
	}
	camp, err := s.repo.SurfCamp.FindByID(ctx, id)
	if err != nil || camp == nil {
		return nil, fmt.Errorf("surf camp %s not found", campID)
	}
	return camp, nil
}

func applySurfCampRequest(camp *entity.SurfCamp, req *request.SaveSurfCampRequest) error {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return fmt.Errorf("%s", errInvalidDateFormat)
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return fmt.Errorf("%s", errInvalidDateFormat)
	}
	if !endDate.After(startDate) {
		return fmt.Errorf("%s", errInvalidDateRange)
	}

	rooms := make([]uuid.UUID, 0, len(req.AvailableRooms))
	for _, raw := range req.AvailableRooms {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid room ID in available_rooms: %s", raw)
		}
		rooms = append(rooms, id)
	}

	camp.Name = req.Name
	camp.Category = req.Category
	camp.StartDate = startDate
	camp.EndDate = endDate
	camp.AvailableRooms = rooms
	camp.Occupancy = req.Occupancy
	camp.Price = req.Price
	camp.Level = req.Level
	camp.IsActive = req.Active()
	return nil
}
