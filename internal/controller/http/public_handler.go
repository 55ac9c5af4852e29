package http

import (
	"net/http"
	"strconv"

	"edupress/internal/usecase"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the anonymous reading surface. Routes sit behind the
// optional auth middleware so a logged-in reader gets their toggle state
// back, while anonymous traffic still counts views.
type PublicHandler struct {
	publicUseCase  usecase.PublicUseCase
	subjectUseCase usecase.SubjectUseCase
	logger         *logger.Logger
}

func NewPublicHandler(publicUseCase usecase.PublicUseCase, subjectUseCase usecase.SubjectUseCase, logger *logger.Logger) *PublicHandler {
	return &PublicHandler{
		publicUseCase:  publicUseCase,
		subjectUseCase: subjectUseCase,
		logger:         logger,
	}
}

// ListArticles godoc
// @Summary      List published articles
// @Tags         public
// @Produce      json
// @Param        subject query string false "Subject ID or slug"
// @Param        search query string false "Search in title, excerpt and tags"
// @Param        educator query string false "Filter by educator profile ID"
// @Param        sort query string false "Sort order" Enums(recent, trending, views, likes)
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /articles [get]
func (h *PublicHandler) ListArticles(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.publicUseCase.ListPublished(usecase.ListPublishedInput{
		SubjectID:  c.Query("subject"),
		EducatorID: c.Query("educator"),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle godoc
// @Summary      Read a published article
// @Description  Returns the article by ID or slug and records a view.
// @Tags         public
// @Produce      json
// @Param        id path string true "Article ID or slug"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *PublicHandler) GetArticle(c *gin.Context) {
	view, err := h.publicUseCase.GetPublished(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RelatedArticles godoc
// @Summary      Related published articles
// @Description  Articles sharing the subject or at least one tag, most liked first.
// @Tags         public
// @Produce      json
// @Param        id path string true "Article ID or slug"
// @Param        limit query int false "Maximum results"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id}/related [get]
func (h *PublicHandler) RelatedArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 || limit > 20 {
		limit = 5
	}

	articles, err := h.publicUseCase.RelatedArticles(c.Param("id"), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetEducator godoc
// @Summary      Public educator profile
// @Description  The educator's profile and their published articles.
// @Tags         public
// @Produce      json
// @Param        id path string true "Educator profile ID or user ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /educators/{id} [get]
func (h *PublicHandler) GetEducator(c *gin.Context) {
	profile, articles, err := h.publicUseCase.GetEducator(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"educator": profile, "articles": articles})
}

// ListSubjects godoc
// @Summary      List active subjects
// @Tags         public
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /subjects [get]
func (h *PublicHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectUseCase.ListSubjects()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects, "count": len(subjects)})
}

// GetSubject godoc
// @Summary      Get a subject
// @Tags         public
// @Produce      json
// @Param        id path string true "Subject ID or slug"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /subjects/{id} [get]
func (h *PublicHandler) GetSubject(c *gin.Context) {
	subject, err := h.subjectUseCase.GetSubject(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}
