package mock

import (
	context "context"
	reflect "reflect"

	album "github.com/kampfschwein/schweinchen-tcg/internal/domain/album"
	gomock "go.uber.org/mock/gomock"
)

// MockAlbumService is a mock of album.Service interface.
type MockAlbumService struct {
	ctrl     *gomock.Controller
	recorder *MockAlbumServiceMockRecorder
	isgomock struct{}
}

// MockAlbumServiceMockRecorder is the mock recorder for MockAlbumService.
type MockAlbumServiceMockRecorder struct {
	mock *MockAlbumService
}

// NewMockAlbumService creates a new mock instance.
func NewMockAlbumService(ctrl *gomock.Controller) *MockAlbumService {
	mock := &MockAlbumService{ctrl: ctrl}
	mock.recorder = &MockAlbumServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAlbumService) EXPECT() *MockAlbumServiceMockRecorder {
	return m.recorder
}

// Build mocks base method.
func (m *MockAlbumService) Build(ctx context.Context, username string) ([]album.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Build", ctx, username)
	ret0, _ := ret[0].([]album.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Build indicates an expected call of Build.
func (mr *MockAlbumServiceMockRecorder) Build(ctx, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Build", reflect.TypeOf((*MockAlbumService)(nil).Build), ctx, username)
}

// BuildAlbum mocks base method.
func (m *MockAlbumService) BuildAlbum(ctx context.Context, username string) (album.Album, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BuildAlbum", ctx, username)
	ret0, _ := ret[0].(album.Album)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BuildAlbum indicates an expected call of BuildAlbum.
func (mr *MockAlbumServiceMockRecorder) BuildAlbum(ctx, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BuildAlbum", reflect.TypeOf((*MockAlbumService)(nil).BuildAlbum), ctx, username)
}
