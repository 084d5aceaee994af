package customer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (_m *MockStore) FindByPosition(ctx context.Context, position int) (Customer, error) {
	ret := _m.Called(ctx, position)

	var r0 Customer
	if rf, ok := ret.Get(0).(func(context.Context, int) Customer); ok {
		r0 = rf(ctx, position)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(Customer)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, position)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MockStore) FindAll(ctx context.Context) []Customer {
	ret := _m.Called(ctx)

	var r0 []Customer
	if rf, ok := ret.Get(0).(func(context.Context) []Customer); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Customer)
	}

	return r0
}
