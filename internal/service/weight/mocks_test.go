package weight

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
)

var _ weightRepo = &weightRepoMock{}

type weightRepoMock struct {
	UpsertFunc    func(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) (*domain.WeightEntry, error)
	GetByDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error)
	LatestFunc    func(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error)
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error)
	DeleteFunc    func(ctx context.Context, userID uuid.UUID, date time.Time) error

	calls struct {
		Upsert []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Date     time.Time
			WeightKg float64
		}
		GetByDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
		Latest []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
	}
	lockUpsert    sync.RWMutex
	lockGetByDate sync.RWMutex
	lockLatest    sync.RWMutex
	lockListRange sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *weightRepoMock) Upsert(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) (*domain.WeightEntry, error) {
	if mock.UpsertFunc == nil {
		panic("weightRepoMock.UpsertFunc: method is nil but weightRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Date     time.Time
		WeightKg float64
	}{Ctx: ctx, UserID: userID, Date: date, WeightKg: weightKg}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, date, weightKg)
}

func (mock *weightRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Date     time.Time
	WeightKg float64
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
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

func (mock *weightRepoMock) Latest(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error) {
	if mock.LatestFunc == nil {
		panic("weightRepoMock.LatestFunc: method is nil but weightRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, userID)
}

func (mock *weightRepoMock) LatestCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *weightRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error) {
	if mock.ListRangeFunc == nil {
		panic("weightRepoMock.ListRangeFunc: method is nil but weightRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *weightRepoMock) Delete(ctx context.Context, userID uuid.UUID, date time.Time) error {
	if mock.DeleteFunc == nil {
		panic("weightRepoMock.DeleteFunc: method is nil but weightRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, date)
}

func (mock *weightRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateWeightFunc func(ctx context.Context, id uuid.UUID, weightKg, bmi float64, dailyAllowance int) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateWeight []struct {
			Ctx            context.Context
			ID             uuid.UUID
			WeightKg       float64
			BMI            float64
			DailyAllowance int
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateWeight sync.RWMutex
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

func (mock *userRepoMock) UpdateWeight(ctx context.Context, id uuid.UUID, weightKg, bmi float64, dailyAllowance int) error {
	if mock.UpdateWeightFunc == nil {
		panic("userRepoMock.UpdateWeightFunc: method is nil but userRepo.UpdateWeight was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		ID             uuid.UUID
		WeightKg       float64
		BMI            float64
		DailyAllowance int
	}{Ctx: ctx, ID: id, WeightKg: weightKg, BMI: bmi, DailyAllowance: dailyAllowance}
	mock.lockUpdateWeight.Lock()
	mock.calls.UpdateWeight = append(mock.calls.UpdateWeight, callInfo)
	mock.lockUpdateWeight.Unlock()
	return mock.UpdateWeightFunc(ctx, id, weightKg, bmi, dailyAllowance)
}

func (mock *userRepoMock) UpdateWeightCalls() []struct {
	Ctx            context.Context
	ID             uuid.UUID
	WeightKg       float64
	BMI            float64
	DailyAllowance int
} {
	mock.lockUpdateWeight.RLock()
	calls := mock.calls.UpdateWeight
	mock.lockUpdateWeight.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
