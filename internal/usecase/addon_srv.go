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

type AddOnService interface {
	// Public endpoint
	GetPublicAddOns(ctx context.Context) ([]response.AddOnResponse, error)

	// Admin endpoints
	GetAddOns(ctx context.Context) ([]response.AddOnResponse, error)
	CreateAddOn(ctx context.Context, req *request.SaveAddOnRequest) (*response.AddOnResponse, error)
	UpdateAddOn(ctx context.Context, addOnID string, req *request.SaveAddOnRequest) (*response.AddOnResponse, error)
	DeleteAddOn(ctx context.Context, addOnID string) error
}

type addOnService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAddOnService(repo *repository.Repository, log *zap.Logger) AddOnService {
	return &addOnService{
		repo: repo,
		log:  log.With(zap.String("service", "add_on")),
	}
}

func (s *addOnService) GetPublicAddOns(ctx context.Context) ([]response.AddOnResponse, error) {
	addOns, err := s.repo.AddOn.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active add-ons", zap.Error(err))
		return nil, fmt.Errorf("list active add-ons: %w", err)
	}

	result := make([]response.AddOnResponse, len(addOns))
	for i, addOn := range addOns {
		result[i] = response.AddOnToResponse(addOn)
	}
	return result, nil
}

// ==================== ADMIN METHODS ====================

func (s *addOnService) GetAddOns(ctx context.Context) ([]response.AddOnResponse, error) {
	addOns, err := s.repo.AddOn.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list add-ons", zap.Error(err))
		return nil, fmt.Errorf("list add-ons: %w", err)
	}

	result := make([]response.AddOnResponse, len(addOns))
	for i, addOn := range addOns {
		result[i] = response.AddOnToResponse(addOn)
	}
	return result, nil
}

func (s *addOnService) CreateAddOn(ctx context.Context, req *request.SaveAddOnRequest) (*response.AddOnResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	addOn := &entity.AddOn{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyAddOnRequest(addOn, req)

	if err := s.repo.AddOn.Create(ctx, addOn); err != nil {
		s.log.Error("Failed to create add-on", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create add-on: %w", err)
	}

	s.log.Info("Add-on created", zap.String("add_on_id", addOn.ID.String()), zap.String("name", addOn.Name))

	resp := response.AddOnToResponse(addOn)
	return &resp, nil
}

func (s *addOnService) UpdateAddOn(ctx context.Context, addOnID string, req *request.SaveAddOnRequest) (*response.AddOnResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, NewValidationError(utils.FormatValidationErrors(errs))
	}

	addOn, err := s.findAddOn(ctx, addOnID)
	if err != nil {
		return nil, err
	}

	applyAddOnRequest(addOn, req)
	addOn.UpdatedAt = time.Now()

	if err := s.repo.AddOn.Update(ctx, addOn); err != nil {
		s.log.Error("Failed to update add-on", zap.Error(err), zap.String("add_on_id", addOnID))
		return nil, fmt.Errorf("update add-on %s: %w", addOnID, err)
	}

	resp := response.AddOnToResponse(addOn)
	return &resp, nil
}

func (s *addOnService) DeleteAddOn(ctx context.Context, addOnID string) error {
	addOn, err := s.findAddOn(ctx, addOnID)
	if err != nil {
		return err
	}

	if err := s.repo.AddOn.Delete(ctx, addOn.ID); err != nil {
		s.log.Error("Failed to delete add-on", zap.Error(err), zap.String("add_on_id", addOnID))
		return fmt.Errorf("delete add-on %s: %w", addOnID, err)
	}

	s.log.Info("Add-on deleted", zap.String("add_on_id", addOnID))
	return nil
}

func (s *addOnService) findAddOn(ctx context.Context, addOnID string) (*entity.AddOn, error) {
	id, err := uuid.Parse(addOnID)
	if err != nil {
		return nil, fmt.Errorf("invalid add-on ID format %s: %w", addOnID, err)
	}
	addOn, err := s.repo.AddOn.FindByID(ctx, id)
	if err != nil || addOn == nil {
		return nil, fmt.Errorf("add-on %s not found", addOnID)
	}
	return addOn, nil
}

func applyAddOnRequest(addOn *entity.AddOn, req *request.SaveAddOnRequest) {
	addOn.Name = req.Name
	addOn.Price = req.Price
	addOn.Category = entity.AddOnCategory(req.Category)
	addOn.MaxQuantity = req.MaxQuantity
	addOn.Description = req.Description
	addOn.IsActive = req.Active()
}
