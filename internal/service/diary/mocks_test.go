package diary

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc     func(ctx context.Context, entry *domain.MealEntry) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.MealEntry, error)
	ListByDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntryWithFood, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.MealEntry
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByDate sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.MealEntry) error {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.MealEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.MealEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
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

func (mock *entryRepoMock) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntryWithFood, error) {
	if mock.ListByDateFunc == nil {
		panic("entryRepoMock.ListByDateFunc: method is nil but entryRepo.ListByDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockListByDate.Lock()
	mock.calls.ListByDate = append(mock.calls.ListByDate, callInfo)
	mock.lockListByDate.Unlock()
	return mock.ListByDateFunc(ctx, userID, date)
}

func (mock *entryRepoMock) ListByDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockListByDate.RLock()
	calls := mock.calls.ListByDate
	mock.lockListByDate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
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

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ foodRepo = &foodRepoMock{}

type foodRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Food, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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

func (mock *foodRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ weightRepo = &weightRepoMock{}

type weightRepoMock struct {
	GetByDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error)

	calls struct {
		GetByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
	}
	lockGetByDate sync.RWMutex
}

func (mock *weightRepoMock) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error) {
	if mock.GetByDateFunc == nil {
		panic("weightRepoMock.GetByDateFunc: method is nil but weightRepo.GetByDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockGetByDate.Lock()
	mock.calls.GetByDate = append(mock.calls.GetByDate, callInfo)
	mock.lockGetByDate.Unlock()
	return mock.GetByDateFunc(ctx, userID, date)
}

func (mock *weightRepoMock) GetByDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockGetByDate.RLock()
	calls := mock.calls.GetByDate
	mock.lockGetByDate.RUnlock()
	return calls
}
