package food

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
)

var _ foodRepo = &foodRepoMock{}

type foodRepoMock struct {
	CreateFunc      func(ctx context.Context, food *domain.Food) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	ListVisibleFunc func(ctx context.Context, userID uuid.UUID, mealType domain.MealType, nameSearch string) ([]domain.Food, error)
	UpdateFunc      func(ctx context.Context, food *domain.Food) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Food *domain.Food
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListVisible []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			MealType   domain.MealType
			NameSearch string
		}
		Update []struct {
			Ctx  context.Context
			Food *domain.Food
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListVisible sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *foodRepoMock) Create(ctx context.Context, food *domain.Food) error {
	if mock.CreateFunc == nil {
		panic("foodRepoMock.CreateFunc: method is nil but foodRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Food *domain.Food
	}{Ctx: ctx, Food: food}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, food)
}

func (mock *foodRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Food *domain.Food
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *foodRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	if mock.GetByIDFunc == nil {
		panic("foodRepoMock.GetByIDFunc: method is nil but foodRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *foodRepoMock) ListVisible(ctx context.Context, userID uuid.UUID, mealType domain.MealType, nameSearch string) ([]domain.Food, error) {
	if mock.ListVisibleFunc == nil {
		panic("foodRepoMock.ListVisibleFunc: method is nil but foodRepo.ListVisible was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		MealType   domain.MealType
		NameSearch string
	}{Ctx: ctx, UserID: userID, MealType: mealType, NameSearch: nameSearch}
	mock.lockListVisible.Lock()
	mock.calls.ListVisible = append(mock.calls.ListVisible, callInfo)
	mock.lockListVisible.Unlock()
	return mock.ListVisibleFunc(ctx, userID, mealType, nameSearch)
}

func (mock *foodRepoMock) ListVisibleCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	MealType   domain.MealType
	NameSearch string
} {
	mock.lockListVisible.RLock()
	calls := mock.calls.ListVisible
	mock.lockListVisible.RUnlock()
	return calls
}

func (mock *foodRepoMock) Update(ctx context.Context, food *domain.Food) error {
	if mock.UpdateFunc == nil {
		panic("foodRepoMock.UpdateFunc: method is nil but foodRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Food *domain.Food
	}{Ctx: ctx, Food: food}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, food)
}

func (mock *foodRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Food *domain.Food
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *foodRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("foodRepoMock.DeleteFunc: method is nil but foodRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *foodRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
