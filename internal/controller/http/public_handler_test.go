package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"edupress/internal/entity"
	"edupress/internal/usecase"
	"edupress/pkg/apperr"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublicUseCase is a mock implementation of PublicUseCase
type MockPublicUseCase struct {
	mock.Mock
}

func (m *MockPublicUseCase) ListPublished(input usecase.ListPublishedInput) ([]*entity.Article, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockPublicUseCase) GetPublished(idOrSlug, viewerID string) (*usecase.ArticleView, error) {
	args := m.Called(idOrSlug, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ArticleView), args.Error(1)
}

func (m *MockPublicUseCase) RelatedArticles(idOrSlug string, limit int) ([]*entity.Article, error) {
	args := m.Called(idOrSlug, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockPublicUseCase) GetEducator(educatorID string) (*entity.EducatorProfile, []*entity.Article, error) {
	args := m.Called(educatorID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.EducatorProfile), args.Get(1).([]*entity.Article), args.Error(2)
}

var _ usecase.PublicUseCase = (*MockPublicUseCase)(nil)

// MockSubjectUseCase is a mock implementation of SubjectUseCase
type MockSubjectUseCase struct {
	mock.Mock
}

func (m *MockSubjectUseCase) ListSubjects() ([]*entity.Subject, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subject), args.Error(1)
}

func (m *MockSubjectUseCase) GetSubject(idOrSlug string) (*entity.Subject, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

var _ usecase.SubjectUseCase = (*MockSubjectUseCase)(nil)

func newPublicRouter(publicUC *MockPublicUseCase, subjectUC *MockSubjectUseCase) (*gin.Engine, *PublicHandler) {
	handler := NewPublicHandler(publicUC, subjectUC, logger.New())
	return setupTestRouter(), handler
}

func TestGetArticle_Anonymous(t *testing.T) {
	publicUC := new(MockPublicUseCase)
	subjectUC := new(MockSubjectUseCase)
	router, handler := newPublicRouter(publicUC, subjectUC)
	router.GET("/articles/:id", handler.GetArticle)

	publicUC.On("GetPublished", "intro-to-algebra", "").Return(&usecase.ArticleView{
		Article: &entity.Article{ID: "article-1", Slug: "intro-to-algebra", ViewCount: 11},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/articles/intro-to-algebra", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp usecase.ArticleView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Article.ViewCount)
	assert.False(t, resp.IsLiked)
}

func TestGetArticle_NotFound(t *testing.T) {
	publicUC := new(MockPublicUseCase)
	subjectUC := new(MockSubjectUseCase)
	router, handler := newPublicRouter(publicUC, subjectUC)
	router.GET("/articles/:id", handler.GetArticle)

	publicUC.On("GetPublished", "ghost", "").Return(nil, apperr.NotFound("article not found"))

	req := httptest.NewRequest(http.MethodGet, "/articles/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListArticles_Filters(t *testing.T) {
	publicUC := new(MockPublicUseCase)
	subjectUC := new(MockSubjectUseCase)
	router, handler := newPublicRouter(publicUC, subjectUC)
	router.GET("/articles", handler.ListArticles)

	publicUC.On("ListPublished", usecase.ListPublishedInput{
		SubjectID: "mathematics",
		Search:    "algebra",
		Sort:      "trending",
		Limit:     10,
		Offset:    0,
	}).Return([]*entity.Article{{ID: "article-1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/articles?subject=mathematics&search=algebra&sort=trending&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	publicUC.AssertExpectations(t)
}

func TestListSubjects_OK(t *testing.T) {
	publicUC := new(MockPublicUseCase)
	subjectUC := new(MockSubjectUseCase)
	router, handler := newPublicRouter(publicUC, subjectUC)
	router.GET("/subjects", handler.ListSubjects)

	subjectUC.On("ListSubjects").Return([]*entity.Subject{
		{ID: "subject-1", Name: "Mathematics"},
		{ID: "subject-2", Name: "Physics"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/subjects", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
}
