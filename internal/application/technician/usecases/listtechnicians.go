package usecases

import (
	"context"

	"billu/internal/application/technician/dto"
	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListTechniciansQuery struct {
	// OperatorID scopes the listing; zero means all operators.
	OperatorID uint
}

type ListTechniciansResult struct {
	Technicians []*dto.TechnicianDTO
	Total       int
}

type ListTechniciansUseCase struct {
	techRepo technician.Repository
	logger   logger.Interface
}

func NewListTechniciansUseCase(techRepo technician.Repository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{techRepo: techRepo, logger: logger}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context, query ListTechniciansQuery) (*ListTechniciansResult, error) {
	var (
		techs []*technician.Technician
		err   error
	)
	if query.OperatorID == 0 {
		techs, err = uc.techRepo.FindAll(ctx)
	} else {
		techs, err = uc.techRepo.FindByOperatorID(ctx, query.OperatorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewPersistenceError("failed to list technicians", err)
	}

	return &ListTechniciansResult{
		Technicians: dto.ToTechnicianDTOs(techs),
		Total:       len(techs),
	}, nil
}
