package usecase

import (
	"edupress/internal/entity"
	"edupress/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *entity.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(id string) (*entity.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByIDOrSlug(idOrSlug string) (*entity.Article, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) SlugExists(slug string) (bool, error) {
	args := m.Called(slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) List(filter persistent.ArticleFilter) ([]*entity.Article, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) Related(articleID, subjectID string, tags []string, limit int) ([]*entity.Article, error) {
	args := m.Called(articleID, subjectID, tags, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *entity.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) AddViewCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockArticleRepository) AddLikeCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockArticleRepository) AddBookmarkCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockArticleRepository) CountByEducatorAndStatus(educatorID string, status entity.ArticleStatus) (int64, error) {
	args := m.Called(educatorID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) CountByStatus(status entity.ArticleStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) CountFlagged() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) SumPublishedViews() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) CountPublishedBySubject(subjectID string) (int64, error) {
	args := m.Called(subjectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) AggregateByEducator(educatorID string) (*persistent.CounterAggregates, error) {
	args := m.Called(educatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.CounterAggregates), args.Error(1)
}

var _ persistent.ArticleRepository = (*MockArticleRepository)(nil)

type MockEducatorRepository struct {
	mock.Mock
}

func (m *MockEducatorRepository) Create(profile *entity.EducatorProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockEducatorRepository) GetByID(id string) (*entity.EducatorProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EducatorProfile), args.Error(1)
}

func (m *MockEducatorRepository) GetByIDOrUserID(id string) (*entity.EducatorProfile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EducatorProfile), args.Error(1)
}

func (m *MockEducatorRepository) GetByUserID(userID string) (*entity.EducatorProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EducatorProfile), args.Error(1)
}

func (m *MockEducatorRepository) List(approved *bool, limit, offset int) ([]*entity.EducatorProfile, error) {
	args := m.Called(approved, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EducatorProfile), args.Error(1)
}

func (m *MockEducatorRepository) Update(profile *entity.EducatorProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockEducatorRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEducatorRepository) AddTotalArticles(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockEducatorRepository) AddTotalViews(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockEducatorRepository) AddTotalLikes(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockEducatorRepository) AddTotalBookmarks(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockEducatorRepository) SetTotals(id string, agg *persistent.CounterAggregates) error {
	args := m.Called(id, agg)
	return args.Error(0)
}

func (m *MockEducatorRepository) CountApproved() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEducatorRepository) CountUnapproved() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.EducatorRepository = (*MockEducatorRepository)(nil)

type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(subject *entity.Subject) error {
	args := m.Called(subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) GetByID(id string) (*entity.Subject, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetByIDOrSlug(idOrSlug string) (*entity.Subject, error) {
	args := m.Called(idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepository) List(activeOnly bool) ([]*entity.Subject, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subject), args.Error(1)
}

func (m *MockSubjectRepository) Update(subject *entity.Subject) error {
	args := m.Called(subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) AddArticleCount(id string, delta int) error {
	args := m.Called(id, delta)
	return args.Error(0)
}

func (m *MockSubjectRepository) SetArticleCount(id string, count int64) error {
	args := m.Called(id, count)
	return args.Error(0)
}

var _ persistent.SubjectRepository = (*MockSubjectRepository)(nil)

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) IsLiked(userID, articleID string) (bool, error) {
	args := m.Called(userID, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CreateLike(userID, articleID string) error {
	args := m.Called(userID, articleID)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteLike(userID, articleID string) error {
	args := m.Called(userID, articleID)
	return args.Error(0)
}

func (m *MockInteractionRepository) IsBookmarked(userID, articleID string) (bool, error) {
	args := m.Called(userID, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CreateBookmark(userID, articleID string) error {
	args := m.Called(userID, articleID)
	return args.Error(0)
}

func (m *MockInteractionRepository) DeleteBookmark(userID, articleID string) error {
	args := m.Called(userID, articleID)
	return args.Error(0)
}

func (m *MockInteractionRepository) CreateView(view *entity.View) error {
	args := m.Called(view)
	return args.Error(0)
}

func (m *MockInteractionRepository) LikedArticleIDs(userID string, limit, offset int) ([]string, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInteractionRepository) BookmarkedArticleIDs(userID string, limit, offset int) ([]string, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockInteractionRepository) ViewedArticleIDs(userID string, limit, offset int) ([]string, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(report *entity.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(id string) (*entity.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockReportRepository) Exists(reporterID, articleID string) (bool, error) {
	args := m.Called(reporterID, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportRepository) List(status entity.ReportStatus, limit, offset int) ([]*entity.Report, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Report), args.Error(1)
}

func (m *MockReportRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockReportRepository) CountByStatus(status entity.ReportStatus) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ReportRepository = (*MockReportRepository)(nil)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Deactivate(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(log *entity.ModerationLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockAuditRepository) List(limit, offset int) ([]*entity.ModerationLog, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ModerationLog), args.Error(1)
}

var _ persistent.AuditRepository = (*MockAuditRepository)(nil)
