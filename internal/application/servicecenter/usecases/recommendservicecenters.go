package usecases

import (
	"context"

	"billu/internal/application/servicecenter/dto"
	"billu/internal/domain/servicecenter"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type RecommendServiceCentersQuery struct {
	OperatorID uint
	// Company is the product company/brand string the ranking keys on.
	Company string
}

type RecommendServiceCentersResult struct {
	ServiceCenters []*dto.ServiceCenterDTO
}

// RecommendServiceCentersUseCase returns the operator's centers ordered by
// company affinity. The ordering is advisory; every center is returned.
type RecommendServiceCentersUseCase struct {
	centerRepo servicecenter.Repository
	logger     logger.Interface
}

func NewRecommendServiceCentersUseCase(centerRepo servicecenter.Repository, logger logger.Interface) *RecommendServiceCentersUseCase {
	return &RecommendServiceCentersUseCase{centerRepo: centerRepo, logger: logger}
}

func (uc *RecommendServiceCentersUseCase) Execute(ctx context.Context, query RecommendServiceCentersQuery) (*RecommendServiceCentersResult, error) {
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
		uc.logger.Errorw("failed to load service centers", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewPersistenceError("failed to load service centers", err)
	}

	ranked := servicecenter.RankForCompany(centers, query.Company)

	return &RecommendServiceCentersResult{
		ServiceCenters: dto.ToServiceCenterDTOs(ranked),
	}, nil
}
