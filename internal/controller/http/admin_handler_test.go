package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shripad-gm/inceptrix/internal/entity"
	"github.com/shripad-gm/inceptrix/internal/usecase"
	"github.com/shripad-gm/inceptrix/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminUseCase is a mock implementation of AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) CurateContent(ctx context.Context) ([]*entity.AdminContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminContent), args.Error(1)
}

func (m *MockAdminUseCase) ListCuratedContent(ctx context.Context) ([]*entity.AdminContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.AdminContent), args.Error(1)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)

func TestPushToAdmin_CreatesEntries(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/pushadmin", asUser("admin-1", handler.PushToAdmin))

	created := []*entity.AdminContent{
		{ID: "ac-1", CuratorID: "user-456", OriginalPostID: "post-1"},
		{ID: "ac-2", CuratorID: "user-789", OriginalPostID: "post-2"},
	}
	mockUseCase.On("CurateContent").Return(created, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/pushadmin", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Popular and SOS posts pushed to admin content", response["message"])
	assert.Equal(t, float64(2), response["count"])
	mockUseCase.AssertExpectations(t)
}

func TestPushToAdmin_NothingNew(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/pushadmin", asUser("admin-1", handler.PushToAdmin))

	mockUseCase.On("CurateContent").Return([]*entity.AdminContent{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/pushadmin", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(0), response["count"])
}

func TestPushToAdmin_Error(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/pushadmin", asUser("admin-1", handler.PushToAdmin))

	mockUseCase.On("CurateContent").Return(nil, errors.New("mongo down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/admin/pushadmin", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "mongo down")
}

func TestGetAdminContent_WithEntries(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/all", asUser("admin-1", handler.GetAdminContent))

	entries := []*entity.AdminContent{
		{ID: "ac-1", CuratorID: "user-456", OriginalPostID: "post-1",
			OriginalPost: &entity.Post{ID: "post-1", AuthorID: "user-456", Text: "popular"}},
	}
	mockUseCase.On("ListCuratedContent").Return(entries, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/all", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []entity.AdminContent
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "ac-1", response[0].ID)
	assert.NotNil(t, response[0].OriginalPost)
}

func TestGetAdminContent_Empty(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/all", asUser("admin-1", handler.GetAdminContent))

	mockUseCase.On("ListCuratedContent").Return([]*entity.AdminContent{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/all", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No admin content found")
}
