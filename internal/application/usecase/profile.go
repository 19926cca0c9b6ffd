package usecase

import (
	"context"

	"github.com/google/uuid"

	"kidsplatform/internal/domain"
	"kidsplatform/internal/infrastructure/repository"
	"kidsplatform/internal/petcare"
	"kidsplatform/internal/progression"
)

// Create builds a new default profile, applies the given identity fields
// and returns it with a session token.
func (uc *ProfileUseCase) Create(ctx context.Context, name string, age int, language domain.Language, pin string) (*domain.UserProfile, string, error) {
	now := uc.now()
	p := repository.DefaultProfile(uuid.NewString(), now)
	if name != "" {
		p.Name = name
	}
	if age > 0 {
		p.Age = age
	}
	if language != "" {
		if !language.Valid() {
			return nil, "", domain.ErrInvalidArgument
		}
		p.Language = language
	}
	if pin != "" {
		hash, err := uc.pinHasher.Hash(pin)
		if err != nil {
			return nil, "", err
		}
		p.PinHash = hash
	}

	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, "", err
	}
	token, err := uc.tokenManager.Generate(p.ID)
	if err != nil {
		return nil, "", err
	}
	return p, token, nil
}

// Login re-issues a session token for an existing profile. When the
// profile has a PIN it must match; without one any holder of the id may
// unlock it.
func (uc *ProfileUseCase) Login(ctx context.Context, id, pin string) (string, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return "", err
	}
	if p.PinHash != "" {
		if err := uc.pinHasher.Compare(p.PinHash, pin); err != nil {
			return "", domain.ErrUnauthorized
		}
	}
	return uc.tokenManager.Generate(p.ID)
}

// Get loads a profile with pet decay applied up to now. The decayed state
// is persisted so a later read never re-charges the same window.
func (uc *ProfileUseCase) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if uc.decayPets(p) {
		if err := uc.repo.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// UpdateSettings changes the cosmetic identity fields.
func (uc *ProfileUseCase) UpdateSettings(ctx context.Context, id, name string, age int, language domain.Language) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	if age > 0 {
		p.Age = age
	}
	if language != "" {
		if !language.Valid() {
			return nil, domain.ErrInvalidArgument
		}
		p.Language = language
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SelectAvatar switches the active avatar to an owned one.
func (uc *ProfileUseCase) SelectAvatar(ctx context.Context, id, avatarID string) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := progression.SelectAvatar(p, avatarID); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// decayPets runs decay on every owned pet. Reports whether anything moved.
func (uc *ProfileUseCase) decayPets(p *domain.UserProfile) bool {
	now := uc.now()
	changed := false
	for _, pet := range p.VirtualPets {
		before := pet.LastCared
		petcare.Decay(pet, now)
		if pet.LastCared != before {
			changed = true
		}
	}
	return changed
}
