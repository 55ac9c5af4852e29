package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"edupress/internal/entity"
	"edupress/internal/repo/persistent"
	"edupress/internal/usecase"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminUseCase is a mock implementation of AdminUseCase
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) ReviewQueue(limit, offset int) ([]*entity.Article, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockAdminUseCase) FlaggedArticles(limit, offset int) ([]*entity.Article, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockAdminUseCase) GetArticle(articleID string) (*entity.Article, error) {
	args := m.Called(articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockAdminUseCase) ReviewArticle(adminID, articleID string, action entity.ArticleAction, reason string) (*entity.Article, error) {
	args := m.Called(adminID, articleID, action, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockAdminUseCase) ClearFlag(adminID, articleID string) (*entity.Article, error) {
	args := m.Called(adminID, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockAdminUseCase) ListReports(status string, limit, offset int) ([]*entity.Report, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Report), args.Error(1)
}

func (m *MockAdminUseCase) ResolveReport(adminID, reportID string, status entity.ReportStatus, note string) (*entity.Report, error) {
	args := m.Called(adminID, reportID, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockAdminUseCase) CreateEducator(adminID string, input usecase.CreateEducatorInput) (*usecase.EducatorAccount, error) {
	args := m.Called(adminID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.EducatorAccount), args.Error(1)
}

func (m *MockAdminUseCase) UpdateEducator(adminID, educatorID string, input usecase.UpdateEducatorInput) (*entity.EducatorProfile, error) {
	args := m.Called(adminID, educatorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EducatorProfile), args.Error(1)
}

func (m *MockAdminUseCase) DeactivateEducator(adminID, educatorID string) error {
	args := m.Called(adminID, educatorID)
	return args.Error(0)
}

func (m *MockAdminUseCase) ListEducators(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error) {
	args := m.Called(approved, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EducatorProfile), args.Error(1)
}

func (m *MockAdminUseCase) CreateSubject(adminID string, input usecase.CreateSubjectInput) (*entity.Subject, error) {
	args := m.Called(adminID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockAdminUseCase) UpdateSubject(adminID, subjectID string, input usecase.UpdateSubjectInput) (*entity.Subject, error) {
	args := m.Called(adminID, subjectID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockAdminUseCase) GetPlatformStats() (*usecase.PlatformStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PlatformStats), args.Error(1)
}

func (m *MockAdminUseCase) ReconcileEducatorStats(adminID, educatorID string) (*persistent.CounterAggregates, error) {
	args := m.Called(adminID, educatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.CounterAggregates), args.Error(1)
}

func (m *MockAdminUseCase) ReconcileSubjectCount(adminID, subjectID string) (int64, error) {
	args := m.Called(adminID, subjectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminUseCase) AuditLog(limit, offset int) ([]*entity.ModerationLog, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ModerationLog), args.Error(1)
}

var _ usecase.AdminUseCase = (*MockAdminUseCase)(nil)

func asAdmin(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "admin-1")
		c.Set("role", "admin")
		handler(c)
	}
}

func TestReviewArticle_Approved(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/articles/:id/review", asAdmin(handler.ReviewArticle))

	mockUseCase.On("ReviewArticle", "admin-1", "article-1", entity.ActionApprove, "").
		Return(&entity.Article{ID: "article-1", Status: entity.StatusPublished}, nil)

	body, _ := json.Marshal(map[string]string{"action": "approve"})
	req := httptest.NewRequest(http.MethodPost, "/admin/articles/article-1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.Article
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, entity.StatusPublished, resp.Status)
	mockUseCase.AssertExpectations(t)
}

func TestReviewArticle_InvalidAction(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/articles/:id/review", asAdmin(handler.ReviewArticle))

	body, _ := json.Marshal(map[string]string{"action": "publish"})
	req := httptest.NewRequest(http.MethodPost, "/admin/articles/article-1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "ReviewArticle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewArticle_WrongState(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/articles/:id/review", asAdmin(handler.ReviewArticle))

	mockUseCase.On("ReviewArticle", "admin-1", "article-1", entity.ActionApprove, "").
		Return(nil, apperr.InvalidState("cannot approve an article in status draft"))

	body, _ := json.Marshal(map[string]string{"action": "approve"})
	req := httptest.NewRequest(http.MethodPost, "/admin/articles/article-1/review", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateEducator_Response(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/educators", asAdmin(handler.CreateEducator))

	mockUseCase.On("CreateEducator", "admin-1", mock.MatchedBy(func(input usecase.CreateEducatorInput) bool {
		return input.Email == "new@edupress.io"
	})).Return(&usecase.EducatorAccount{
		User:            &entity.User{ID: "user-2", Email: "new@edupress.io", Role: entity.RoleEducator},
		Profile:         &entity.EducatorProfile{ID: "educator-2", IsApproved: true},
		InitialPassword: "s3cretPass!@#",
	}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"email":       "new@edupress.io",
		"name":        "New Educator",
		"subject_ids": []string{"subject-1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/educators", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp usecase.EducatorAccount
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s3cretPass!@#", resp.InitialPassword)
}

func TestListEducators_ApprovedFilter(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/educators", asAdmin(handler.ListEducators))

	mockUseCase.On("ListEducators", mock.MatchedBy(func(approved *bool) bool {
		return approved != nil && !*approved
	}), 20, 0).Return([]*entity.EducatorProfile{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/educators?approved=false", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPlatformStats_OK(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/admin/stats", asAdmin(handler.PlatformStats))

	mockUseCase.On("GetPlatformStats").Return(&usecase.PlatformStats{
		PublishedArticles: 48,
		PendingReports:    1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats usecase.PlatformStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(48), stats.PublishedArticles)
}

func TestReconcileEducatorStats_Response(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/admin/educators/:id/reconcile", asAdmin(handler.ReconcileEducatorStats))

	mockUseCase.On("ReconcileEducatorStats", "admin-1", "educator-1").
		Return(&persistent.CounterAggregates{Articles: 4, Views: 300, Likes: 20, Bookmarks: 7}, nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/educators/educator-1/reconcile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(300), resp["total_views"])
}

func TestResolveReport_Dismissed(t *testing.T) {
	mockUseCase := new(MockAdminUseCase)
	handler := NewAdminHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/admin/reports/:id", asAdmin(handler.ResolveReport))

	mockUseCase.On("ResolveReport", "admin-1", "report-1", entity.ReportDismissed, "not actionable").
		Return(&entity.Report{ID: "report-1", Status: entity.ReportDismissed}, nil)

	body, _ := json.Marshal(map[string]string{"status": "dismissed", "note": "not actionable"})
	req := httptest.NewRequest(http.MethodPut, "/admin/reports/report-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
