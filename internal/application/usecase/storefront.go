package usecase

import (
	"context"

	"kidsplatform/internal/domain"
	"kidsplatform/internal/progression"
)

// PurchaseAvatar buys a cosmetic with stars.
func (uc *ProfileUseCase) PurchaseAvatar(ctx context.Context, id, avatarID string) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := progression.PurchaseAvatar(p, avatarID); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// PurchasePet adopts a new pet with stars.
func (uc *ProfileUseCase) PurchasePet(ctx context.Context, id, petID string) (*domain.UserProfile, *domain.VirtualPet, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	pet, err := progression.PurchasePet(p, petID, uc.now())
	if err != nil {
		return nil, nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, pet, nil
}

// PurchaseItem buys care consumables with coins.
func (uc *ProfileUseCase) PurchaseItem(ctx context.Context, id, itemID string) (*domain.UserProfile, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := progression.PurchaseItem(p, itemID); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
