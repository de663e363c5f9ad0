package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/mapper"
)

// AdminsUseCase reads the static admin directory; it never touches storage.
type AdminsUseCase struct {
	directory AdminDirectory
}

func NewAdminsUseCase(directory AdminDirectory) *AdminsUseCase {
	return &AdminsUseCase{directory: directory}
}

func (uc *AdminsUseCase) List(_ context.Context) []dto.AdminDTO {
	return mapper.MapSlice(uc.directory.AdminDirectory(), dto.ToAdminDTO)
}

func (uc *AdminsUseCase) GetByID(_ context.Context, adminID string) (*dto.AdminDTO, error) {
	a := ticket.FindAdmin(uc.directory.AdminDirectory(), adminID)
	if a == nil {
		return nil, errors.NewNotFoundError("admin not found", adminID)
	}
	result := dto.ToAdminDTO(*a)
	return &result, nil
}
