package services

import (
	"context"
	"errors"
	"testing"

	"promasterBack/internal/models"
)

type fakeSavedStore struct {
	nextID  int
	entries map[int]models.SavedCompany
}

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{nextID: 1, entries: map[int]models.SavedCompany{}}
}

func (f *fakeSavedStore) AddSavedCompany(_ context.Context, sc models.SavedCompany) (models.SavedCompany, error) {
	sc.ID = f.nextID
	f.nextID++
	f.entries[sc.ID] = sc
	return sc, nil
}

func (f *fakeSavedStore) GetSavedEntry(_ context.Context, clientID, companyID int) (models.SavedCompany, error) {
	for _, sc := range f.entries {
		if sc.ClientID == clientID && sc.CompanyID == companyID {
			return sc, nil
		}
	}
	return models.SavedCompany{}, models.ErrSavedNotFound
}

func (f *fakeSavedStore) GetSavedByID(_ context.Context, id int) (models.SavedCompany, error) {
	sc, ok := f.entries[id]
	if !ok {
		return models.SavedCompany{}, models.ErrSavedNotFound
	}
	return sc, nil
}

func (f *fakeSavedStore) IsSaved(ctx context.Context, clientID, companyID int) (bool, error) {
	_, err := f.GetSavedEntry(ctx, clientID, companyID)
	if errors.Is(err, models.ErrSavedNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (f *fakeSavedStore) RemoveSavedCompany(_ context.Context, id int) error {
	if _, ok := f.entries[id]; !ok {
		return models.ErrSavedNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeSavedStore) GetSavedByClient(_ context.Context, clientID int) ([]models.SavedCompany, error) {
	var out []models.SavedCompany
	for _, sc := range f.entries {
		if sc.ClientID == clientID {
			out = append(out, sc)
		}
	}
	return out, nil
}

type fakeCompanyChecker struct {
	existing map[int]bool
}

func (f fakeCompanyChecker) CompanyExists(_ context.Context, id int) (bool, error) {
	return f.existing[id], nil
}

func TestToggleSavedCompany(t *testing.T) {
	ctx := context.Background()
	svc := &SavedCompanyService{
		SavedRepo:   newFakeSavedStore(),
		CompanyRepo: fakeCompanyChecker{existing: map[int]bool{3: true}},
	}

	steps := []struct {
		name      string
		wantSaved bool
	}{
		{"first toggle saves", true},
		{"second toggle removes", false},
		{"third toggle saves again", true},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			saved, err := svc.ToggleSavedCompany(ctx, 1, 3)
			if err != nil {
				t.Fatalf("ToggleSavedCompany returned error: %v", err)
			}
			if saved != step.wantSaved {
				t.Fatalf("expected saved=%v, got %v", step.wantSaved, saved)
			}
			isSaved, err := svc.IsSaved(ctx, 1, 3)
			if err != nil {
				t.Fatalf("IsSaved returned error: %v", err)
			}
			if isSaved != step.wantSaved {
				t.Fatalf("store disagrees: expected %v, got %v", step.wantSaved, isSaved)
			}
		})
	}
}

func TestToggleSavedCompanyUnknownCompany(t *testing.T) {
	svc := &SavedCompanyService{
		SavedRepo:   newFakeSavedStore(),
		CompanyRepo: fakeCompanyChecker{existing: map[int]bool{}},
	}

	if _, err := svc.ToggleSavedCompany(context.Background(), 1, 99); !errors.Is(err, models.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestSaveCompanyIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := &SavedCompanyService{
		SavedRepo:   newFakeSavedStore(),
		CompanyRepo: fakeCompanyChecker{existing: map[int]bool{3: true}},
	}

	first, created, err := svc.SaveCompany(ctx, 1, 3)
	if err != nil {
		t.Fatalf("SaveCompany returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first save to create an entry")
	}

	second, created, err := svc.SaveCompany(ctx, 1, 3)
	if err != nil {
		t.Fatalf("repeat SaveCompany returned error: %v", err)
	}
	if created {
		t.Fatal("expected repeat save to be a no-op")
	}
	if second.ID != first.ID {
		t.Fatalf("repeat save returned a different entry: %d vs %d", second.ID, first.ID)
	}
}
