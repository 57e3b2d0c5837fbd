package service

import (
	"context"
	"errors"
	"testing"

	"task_manager/internal/models"
)

// mockCategoryRepo is a lightweight in-test mock for repository.CategoryRepo.
type mockCategoryRepo struct {
	ListFn    func() ([]models.Category, error)
	CreateFn  func(name string) (string, error)
	GetByIDFn func(id string) (*models.Category, error)
	ReplaceFn func(id, name string) error

	createCalls  []string
	replaceCalls [][2]string
}

func (m *mockCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	return m.ListFn()
}

func (m *mockCategoryRepo) Create(_ context.Context, name string) (string, error) {
	m.createCalls = append(m.createCalls, name)
	return m.CreateFn(name)
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	return m.GetByIDFn(id)
}

func (m *mockCategoryRepo) Replace(_ context.Context, id, name string) error {
	m.replaceCalls = append(m.replaceCalls, [2]string{id, name})
	return m.ReplaceFn(id, name)
}

func TestCategoryService_Create(t *testing.T) {
	repo := &mockCategoryRepo{CreateFn: func(string) (string, error) { return "c1", nil }}
	svc := NewCategoryService(repo)

	id, err := svc.Create(context.Background(), "Garden")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if id != "c1" || len(repo.createCalls) != 1 || repo.createCalls[0] != "Garden" {
		t.Fatalf("unexpected create: id=%q calls=%v", id, repo.createCalls)
	}
}

func TestCategoryService_RejectsEmptyName(t *testing.T) {
	repo := &mockCategoryRepo{}
	svc := NewCategoryService(repo)

	if _, err := svc.Create(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Create: expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Update(context.Background(), "c1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Update: expected ErrInvalidInput, got %v", err)
	}
	if len(repo.createCalls)+len(repo.replaceCalls) != 0 {
		t.Fatalf("repository should not be called")
	}
}

func TestCategoryService_Update(t *testing.T) {
	repo := &mockCategoryRepo{ReplaceFn: func(string, string) error { return nil }}
	svc := NewCategoryService(repo)

	if err := svc.Update(context.Background(), "c1", "Yard"); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.replaceCalls) != 1 || repo.replaceCalls[0] != [2]string{"c1", "Yard"} {
		t.Fatalf("unexpected replace calls %v", repo.replaceCalls)
	}
}

func TestCategoryService_ListAndGet(t *testing.T) {
	cats := []models.Category{{ID: "a", CategoryName: "Errands"}, {ID: "b", CategoryName: "Home"}}
	repo := &mockCategoryRepo{
		ListFn: func() ([]models.Category, error) { return cats, nil },
		GetByIDFn: func(id string) (*models.Category, error) {
			for i := range cats {
				if cats[i].ID == id {
					return &cats[i], nil
				}
			}
			return nil, nil
		},
	}
	svc := NewCategoryService(repo)
	ctx := context.Background()

	got, err := svc.List(ctx)
	if err != nil || len(got) != 2 || got[0].CategoryName != "Errands" {
		t.Fatalf("List: %v, %v", got, err)
	}
	if c, err := svc.Get(ctx, "b"); err != nil || c == nil || c.CategoryName != "Home" {
		t.Fatalf("Get(b): %+v, %v", c, err)
	}
	if c, err := svc.Get(ctx, "zzz"); err != nil || c != nil {
		t.Fatalf("Get(zzz): expected (nil, nil), got (%+v, %v)", c, err)
	}
}
