// Package usecase orchestrates the pure engines against the profile
// repository: every operation is load whole, mutate whole, write whole.
package usecase

import (
	"time"

	"kidsplatform/internal/infrastructure/repository"
	"kidsplatform/internal/infrastructure/security"
	"kidsplatform/internal/progression"
)

type ProfileUseCase struct {
	repo         *repository.ProfileRepository
	tracker      *progression.Tracker
	tokenManager *security.TokenManager
	pinHasher    *security.PinHasher
	now          func() time.Time
}

func NewProfileUseCase(
	repo *repository.ProfileRepository,
	tracker *progression.Tracker,
	tm *security.TokenManager,
	ph *security.PinHasher,
) *ProfileUseCase {
	return &ProfileUseCase{
		repo:         repo,
		tracker:      tracker,
		tokenManager: tm,
		pinHasher:    ph,
		now:          time.Now,
	}
}

// WithClock overrides the clock, for tests.
func (uc *ProfileUseCase) WithClock(now func() time.Time) *ProfileUseCase {
	uc.now = now
	return uc
}
