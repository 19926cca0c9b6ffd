package usecase

import (
	"context"
	"log"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
	"kidsplatform/internal/petcare"
)

// Pets returns all owned pets with decay applied up to now.
func (uc *ProfileUseCase) Pets(ctx context.Context, id string) ([]*domain.VirtualPet, error) {
	p, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pets := make([]*domain.VirtualPet, 0, len(p.VirtualPets))
	for _, petID := range p.OwnedPets {
		if pet, ok := p.VirtualPets[petID]; ok {
			pets = append(pets, pet)
		}
	}
	return pets, nil
}

// UseItem applies one care item to one pet. Decay runs first so the item
// lands on the pet's real current state.
func (uc *ProfileUseCase) UseItem(ctx context.Context, id, petID, itemID string) (*domain.VirtualPet, error) {
	item, ok := content.ItemByID(itemID)
	if !ok {
		return nil, domain.ErrInvalidArgument
	}
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	pet, ok := p.VirtualPets[petID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	petcare.Decay(pet, now)
	if err := petcare.ApplyItem(p, pet, item, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return pet, nil
}

// PlayWithPet is the free care action.
func (uc *ProfileUseCase) PlayWithPet(ctx context.Context, id, petID string) (*domain.VirtualPet, error) {
	p, err := uc.repo.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	pet, ok := p.VirtualPets[petID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	now := uc.now()
	petcare.Decay(pet, now)
	petcare.Play(pet, now)
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return pet, nil
}

// DecayAll is the sweeper entry point: decay every pet of every stored
// profile and persist the ones that moved.
func (uc *ProfileUseCase) DecayAll(ctx context.Context) {
	ids, err := uc.repo.List(ctx)
	if err != nil {
		log.Printf("decay sweep: listing profiles failed: %v", err)
		return
	}
	for _, id := range ids {
		p, err := uc.repo.Load(ctx, id)
		if err != nil {
			log.Printf("decay sweep: loading profile %s failed: %v", id, err)
			continue
		}
		if uc.decayPets(p) {
			if err := uc.repo.Save(ctx, p); err != nil {
				log.Printf("decay sweep: saving profile %s failed: %v", id, err)
			}
		}
	}
}
