package mock

import (
	context "context"
	reflect "reflect"

	ownership "github.com/kampfschwein/schweinchen-tcg/internal/domain/ownership"
	gomock "go.uber.org/mock/gomock"
)

// MockSource is a mock of Source interface.
type MockSource struct {
	ctrl     *gomock.Controller
	recorder *MockSourceMockRecorder
	isgomock struct{}
}

// MockSourceMockRecorder is the mock recorder for MockSource.
type MockSourceMockRecorder struct {
	mock *MockSource
}

// NewMockSource creates a new mock instance.
func NewMockSource(ctrl *gomock.Controller) *MockSource {
	mock := &MockSource{ctrl: ctrl}
	mock.recorder = &MockSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSource) EXPECT() *MockSourceMockRecorder {
	return m.recorder
}

// TalliesByUsername mocks base method.
func (m *MockSource) TalliesByUsername(ctx context.Context, username string) ([]ownership.Tally, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TalliesByUsername", ctx, username)
	ret0, _ := ret[0].([]ownership.Tally)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TalliesByUsername indicates an expected call of TalliesByUsername.
func (mr *MockSourceMockRecorder) TalliesByUsername(ctx, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TalliesByUsername", reflect.TypeOf((*MockSource)(nil).TalliesByUsername), ctx, username)
}
