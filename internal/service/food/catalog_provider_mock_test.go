package food

import (
	"context"
	"sync"

	"github.com/okravets/caltrack-backend/internal/provider"
)

var _ catalogProvider = &catalogProviderMock{}

type catalogProviderMock struct {
	SearchFunc func(ctx context.Context, query string) ([]provider.FoodResult, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockSearch sync.RWMutex
}

func (mock *catalogProviderMock) Search(ctx context.Context, query string) ([]provider.FoodResult, error) {
	if mock.SearchFunc == nil {
		panic("catalogProviderMock.SearchFunc: method is nil but catalogProvider.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{Ctx: ctx, Query: query}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *catalogProviderMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
