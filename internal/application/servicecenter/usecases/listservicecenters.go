package usecases

import (
	"context"

	"billu/internal/application/servicecenter/dto"
	"billu/internal/domain/servicecenter"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListServiceCentersQuery struct {
	// OperatorID scopes the listing; zero means all operators.
	OperatorID uint
}

type ListServiceCentersResult struct {
	ServiceCenters []*dto.ServiceCenterDTO
	Total          int
}

type ListServiceCentersUseCase struct {
	centerRepo servicecenter.Repository
	logger     logger.Interface
}

func NewListServiceCentersUseCase(centerRepo servicecenter.Repository, logger logger.Interface) *ListServiceCentersUseCase {
	return &ListServiceCentersUseCase{centerRepo: centerRepo, logger: logger}
}

func (uc *ListServiceCentersUseCase) Execute(ctx context.Context, query ListServiceCentersQuery) (*ListServiceCentersResult, error) {
	var (
		centers []*servicecenter.ServiceCenter
		err     error
	)
	if query.OperatorID == 0 {
		centers, err = uc.centerRepo.FindAll(ctx)
	} else {
		centers, err = uc.centerRepo.FindByOperatorID(ctx, query.OperatorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list service centers", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewPersistenceError("failed to list service centers", err)
	}

	return &ListServiceCentersResult{
		ServiceCenters: dto.ToServiceCenterDTOs(centers),
		Total:          len(centers),
	}, nil
}
