package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
)

var _ adviceRepo = &adviceRepoMock{}

type adviceRepoMock struct {
	UpsertPlanFunc   func(ctx context.Context, p *domain.Plan) error
	GetPlanFunc      func(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	UpsertReviewFunc func(ctx context.Context, rev *domain.Review) error
	GetReviewFunc    func(ctx context.Context, userID uuid.UUID) (*domain.Review, error)

	calls struct {
		UpsertPlan []struct {
			Ctx context.Context
			P   *domain.Plan
		}
		GetPlan []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertReview []struct {
			Ctx context.Context
			Rev *domain.Review
		}
		GetReview []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockUpsertPlan   sync.RWMutex
	lockGetPlan      sync.RWMutex
	lockUpsertReview sync.RWMutex
	lockGetReview    sync.RWMutex
}

func (mock *adviceRepoMock) UpsertPlan(ctx context.Context, p *domain.Plan) error {
	if mock.UpsertPlanFunc == nil {
		panic("adviceRepoMock.UpsertPlanFunc: method is nil but adviceRepo.UpsertPlan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Plan
	}{Ctx: ctx, P: p}
	mock.lockUpsertPlan.Lock()
	mock.calls.UpsertPlan = append(mock.calls.UpsertPlan, callInfo)
	mock.lockUpsertPlan.Unlock()
	return mock.UpsertPlanFunc(ctx, p)
}

func (mock *adviceRepoMock) UpsertPlanCalls() []struct {
	Ctx context.Context
	P   *domain.Plan
} {
	mock.lockUpsertPlan.RLock()
	calls := mock.calls.UpsertPlan
	mock.lockUpsertPlan.RUnlock()
	return calls
}

func (mock *adviceRepoMock) GetPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	if mock.GetPlanFunc == nil {
		panic("adviceRepoMock.GetPlanFunc: method is nil but adviceRepo.GetPlan was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPlan.Lock()
	mock.calls.GetPlan = append(mock.calls.GetPlan, callInfo)
	mock.lockGetPlan.Unlock()
	return mock.GetPlanFunc(ctx, userID)
}

func (mock *adviceRepoMock) GetPlanCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetPlan.RLock()
	calls := mock.calls.GetPlan
	mock.lockGetPlan.RUnlock()
	return calls
}

func (mock *adviceRepoMock) UpsertReview(ctx context.Context, rev *domain.Review) error {
	if mock.UpsertReviewFunc == nil {
		panic("adviceRepoMock.UpsertReviewFunc: method is nil but adviceRepo.UpsertReview was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rev *domain.Review
	}{Ctx: ctx, Rev: rev}
	mock.lockUpsertReview.Lock()
	mock.calls.UpsertReview = append(mock.calls.UpsertReview, callInfo)
	mock.lockUpsertReview.Unlock()
	return mock.UpsertReviewFunc(ctx, rev)
}

func (mock *adviceRepoMock) UpsertReviewCalls() []struct {
	Ctx context.Context
	Rev *domain.Review
} {
	mock.lockUpsertReview.RLock()
	calls := mock.calls.UpsertReview
	mock.lockUpsertReview.RUnlock()
	return calls
}

func (mock *adviceRepoMock) GetReview(ctx context.Context, userID uuid.UUID) (*domain.Review, error) {
	if mock.GetReviewFunc == nil {
		panic("adviceRepoMock.GetReviewFunc: method is nil but adviceRepo.GetReview was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetReview.Lock()
	mock.calls.GetReview = append(mock.calls.GetReview, callInfo)
	mock.lockGetReview.Unlock()
	return mock.GetReviewFunc(ctx, userID)
}

func (mock *adviceRepoMock) GetReviewCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetReview.RLock()
	calls := mock.calls.GetReview
	mock.lockGetReview.RUnlock()
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
	ListRangeFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error)

	calls struct {
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockListRange sync.RWMutex
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

func (mock *weightRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	TotalCaloriesForDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (int, error)

	calls struct {
		TotalCaloriesForDate []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Date   time.Time
		}
	}
	lockTotalCaloriesForDate sync.RWMutex
}

func (mock *mealRepoMock) TotalCaloriesForDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	if mock.TotalCaloriesForDateFunc == nil {
		panic("mealRepoMock.TotalCaloriesForDateFunc: method is nil but mealRepo.TotalCaloriesForDate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Date   time.Time
	}{Ctx: ctx, UserID: userID, Date: date}
	mock.lockTotalCaloriesForDate.Lock()
	mock.calls.TotalCaloriesForDate = append(mock.calls.TotalCaloriesForDate, callInfo)
	mock.lockTotalCaloriesForDate.Unlock()
	return mock.TotalCaloriesForDateFunc(ctx, userID, date)
}

func (mock *mealRepoMock) TotalCaloriesForDateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Date   time.Time
} {
	mock.lockTotalCaloriesForDate.RLock()
	calls := mock.calls.TotalCaloriesForDate
	mock.lockTotalCaloriesForDate.RUnlock()
	return calls
}

var _ llmClient = &llmClientMock{}

type llmClientMock struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx    context.Context
			Prompt string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *llmClientMock) Complete(ctx context.Context, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("llmClientMock.CompleteFunc: method is nil but llmClient.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{Ctx: ctx, Prompt: prompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *llmClientMock) CompleteCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
