package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kidsplatform/internal/content"
	"kidsplatform/internal/domain"
	"kidsplatform/internal/infrastructure/kv"
	"kidsplatform/internal/infrastructure/repository"
	"kidsplatform/internal/infrastructure/security"
	"kidsplatform/internal/progression"
)

func newTestUseCase(now *time.Time) *ProfileUseCase {
	repo := repository.NewProfileRepository(kv.NewMemory())
	tm := security.NewTokenManager("test-secret", time.Hour)
	return NewProfileUseCase(repo, progression.NewTracker(), tm, security.NewPinHasher()).
		WithClock(func() time.Time { return *now })
}

func TestCreateAndLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)

	p, token, err := uc.Create(ctx, "Luna", 5, domain.LanguageES, "1234")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}
	if p.Name != "Luna" || p.Age != 5 || p.Language != domain.LanguageES {
		t.Errorf("profile = %+v, identity fields not applied", p)
	}
	if p.Coins != 50 || p.Level != 1 {
		t.Errorf("coins/level = %d/%d, want defaults 50/1", p.Coins, p.Level)
	}

	if _, err := uc.Login(ctx, p.ID, "1234"); err != nil {
		t.Errorf("Login with right PIN: %v", err)
	}
	if _, err := uc.Login(ctx, p.ID, "0000"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Login with wrong PIN: err = %v, want ErrUnauthorized", err)
	}
	if _, err := uc.Login(ctx, "ghost", "1234"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Login for unknown profile: err = %v, want ErrNotFound", err)
	}
}

func TestRewardsPersist(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)

	p, _, err := uc.Create(ctx, "", 0, "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := uc.AwardStars(ctx, p.ID, 12); err != nil {
		t.Fatalf("AwardStars: %v", err)
	}

	loaded, err := uc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.Stars != 12 || loaded.Level != 2 {
		t.Errorf("stars/level = %d/%d, want 12/2 after reload", loaded.Stars, loaded.Level)
	}

	_, coins, err := uc.ReportMinigame(ctx, p.ID, content.MinigameOutcome{
		Game: content.MinigameMemory, Level: 1, Result: content.ResultLevelCleared,
	})
	if err != nil {
		t.Fatalf("ReportMinigame: %v", err)
	}
	if coins != 15 {
		t.Errorf("coins earned = %d, want 15", coins)
	}

	loaded, _ = uc.Get(ctx, p.ID)
	if loaded.Coins != 65 {
		t.Errorf("Coins = %d, want 65 after reload", loaded.Coins)
	}
}

func TestGameTaskFlow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)

	p, _, _ := uc.Create(ctx, "", 0, "", "")
	row, _ := content.Level(content.GameStories, 1)

	var leveled bool
	for i := 0; i < row.Requirement; i++ {
		res, _, err := uc.CompleteGameTask(ctx, p.ID, content.GameStories)
		if err != nil {
			t.Fatalf("CompleteGameTask: %v", err)
		}
		leveled = res.LeveledUp
	}
	if !leveled {
		t.Fatalf("no level-up after %d tasks", row.Requirement)
	}

	progress, err := uc.GameProgressFor(ctx, p.ID, content.GameStories)
	if err != nil {
		t.Fatalf("GameProgressFor: %v", err)
	}
	if progress.Level != 2 || progress.TasksDone != 0 {
		t.Errorf("progress = %+v, want level 2 with a reset counter", progress)
	}

	loaded, _ := uc.Get(ctx, p.ID)
	if loaded.Stars != row.Reward {
		t.Errorf("Stars = %d, want the level reward %d", loaded.Stars, row.Reward)
	}
}

func TestPetCareFlow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)

	p, _, _ := uc.Create(ctx, "", 0, "", "")
	uc.AwardStars(ctx, p.ID, 60)
	if _, _, err := uc.PurchasePet(ctx, p.ID, "bebe-abeja"); err != nil {
		t.Fatalf("PurchasePet: %v", err)
	}
	if _, err := uc.PurchaseItem(ctx, p.ID, "milk-basic"); err != nil {
		t.Fatalf("PurchaseItem: %v", err)
	}

	// Ten minutes later the pet has decayed and the milk partially refills.
	now = now.Add(10 * time.Minute)
	pet, err := uc.UseItem(ctx, p.ID, "bebe-abeja", "milk-basic")
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	// 100 - 10*2 decay + 20 milk, clamped at 100.
	if pet.Needs.Hunger != 100 {
		t.Errorf("Hunger = %v, want 100", pet.Needs.Hunger)
	}
	if pet.Needs.Sleep != 90 {
		t.Errorf("Sleep = %v, want 90 after ten minutes", pet.Needs.Sleep)
	}
	if pet.Experience != 10 {
		t.Errorf("Experience = %d, want 10", pet.Experience)
	}

	// The item is gone now.
	if _, err := uc.UseItem(ctx, p.ID, "bebe-abeja", "milk-basic"); !errors.Is(err, domain.ErrMissingInventory) {
		t.Errorf("second UseItem: err = %v, want ErrMissingInventory", err)
	}

	pet, err = uc.PlayWithPet(ctx, p.ID, "bebe-abeja")
	if err != nil {
		t.Fatalf("PlayWithPet: %v", err)
	}
	if pet.Experience != 25 {
		t.Errorf("Experience = %d, want 25 after playing", pet.Experience)
	}

	// Reads persist decay: the same elapsed window is never charged twice.
	now = now.Add(2 * time.Minute)
	first, _ := uc.Get(ctx, p.ID)
	second, _ := uc.Get(ctx, p.ID)
	a := first.VirtualPets["bebe-abeja"].Needs
	b := second.VirtualPets["bebe-abeja"].Needs
	if a != b {
		t.Errorf("back-to-back reads disagree: %+v != %+v", a, b)
	}
}

func TestDecayAll(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&now)

	p, _, _ := uc.Create(ctx, "", 0, "", "")
	uc.AwardStars(ctx, p.ID, 60)
	uc.PurchasePet(ctx, p.ID, "bebe-abeja")

	now = now.Add(5 * time.Minute)
	uc.DecayAll(ctx)

	loaded, _ := uc.Get(ctx, p.ID)
	pet := loaded.VirtualPets["bebe-abeja"]
	if pet.Needs.Hunger != 90 {
		t.Errorf("Hunger = %v, want 90 after the sweep", pet.Needs.Hunger)
	}
}
