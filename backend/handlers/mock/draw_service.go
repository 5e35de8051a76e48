package mock

import (
	context "context"
	reflect "reflect"

	catalog "github.com/kampfschwein/schweinchen-tcg/internal/domain/catalog"
	draw "github.com/kampfschwein/schweinchen-tcg/internal/domain/draw"
	gomock "go.uber.org/mock/gomock"
)

// MockDrawService is a mock of draw.Service interface.
type MockDrawService struct {
	ctrl     *gomock.Controller
	recorder *MockDrawServiceMockRecorder
	isgomock struct{}
}

// MockDrawServiceMockRecorder is the mock recorder for MockDrawService.
type MockDrawServiceMockRecorder struct {
	mock *MockDrawService
}

// NewMockDrawService creates a new mock instance.
func NewMockDrawService(ctrl *gomock.Controller) *MockDrawService {
	mock := &MockDrawService{ctrl: ctrl}
	mock.recorder = &MockDrawServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDrawService) EXPECT() *MockDrawServiceMockRecorder {
	return m.recorder
}

// Draw mocks base method.
func (m *MockDrawService) Draw(ctx context.Context, username string) (catalog.Card, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Draw", ctx, username)
	ret0, _ := ret[0].(catalog.Card)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Draw indicates an expected call of Draw.
func (mr *MockDrawServiceMockRecorder) Draw(ctx, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Draw", reflect.TypeOf((*MockDrawService)(nil).Draw), ctx, username)
}

// Odds mocks base method.
func (m *MockDrawService) Odds() draw.Odds {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Odds")
	ret0, _ := ret[0].(draw.Odds)
	return ret0
}

// Odds indicates an expected call of Odds.
func (mr *MockDrawServiceMockRecorder) Odds() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Odds", reflect.TypeOf((*MockDrawService)(nil).Odds))
}
