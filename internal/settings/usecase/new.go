package usecase

import (
	"schedlink/internal/settings/repository"
	pkgLog "schedlink/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.ConfigRepository
}

// New creates a new settings UseCase instance.
func New(l pkgLog.Logger, repo repository.ConfigRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
