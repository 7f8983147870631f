package usecase

import (
	"context"
	"fmt"

	"github.com/finora/liability-service/internal/application/dto"
	"github.com/finora/liability-service/internal/domain/port"
)

// GetLiabilityUseCase retrieves one liability with its schedule.
type GetLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
}

// NewGetLiabilityUseCase wires dependencies.
func NewGetLiabilityUseCase(liabilityRepo port.LiabilityRepository) *GetLiabilityUseCase {
	return &GetLiabilityUseCase{liabilityRepo: liabilityRepo}
}

// Execute fetches the liability.
func (uc *GetLiabilityUseCase) Execute(
	ctx context.Context,
	req dto.GetLiabilityRequest,
) (dto.LiabilityResponse, error) {
	liability, err := uc.liabilityRepo.FindByID(ctx, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}
	return dto.NewLiabilityResponse(liability), nil
}

// ListLiabilitiesUseCase retrieves all liabilities of one user.
type ListLiabilitiesUseCase struct {
	liabilityRepo port.LiabilityRepository
}

// NewListLiabilitiesUseCase wires dependencies.
func NewListLiabilitiesUseCase(liabilityRepo port.LiabilityRepository) *ListLiabilitiesUseCase {
	return &ListLiabilitiesUseCase{liabilityRepo: liabilityRepo}
}

// Execute lists the user's liabilities.
func (uc *ListLiabilitiesUseCase) Execute(
	ctx context.Context,
	req dto.ListLiabilitiesRequest,
) ([]dto.LiabilityResponse, error) {
	liabilities, err := uc.liabilityRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("find liabilities: %w", err)
	}

	out := make([]dto.LiabilityResponse, 0, len(liabilities))
	for _, l := range liabilities {
		out = append(out, dto.NewLiabilityResponse(l))
	}
	return out, nil
}
