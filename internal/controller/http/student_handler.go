package http

import (
	"net/http"

	"edupress/internal/entity"
	"edupress/internal/usecase"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
)

// StudentHandler covers the authenticated reader surface: likes, bookmarks,
// reading history and reporting.
type StudentHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewStudentHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *StudentHandler {
	return &StudentHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

// ToggleLike godoc
// @Summary      Like or unlike an article
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id}/like [post]
func (h *StudentHandler) ToggleLike(c *gin.Context) {
	liked, count, err := h.interactionUseCase.ToggleLike(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked, "like_count": count})
}

// ToggleBookmark godoc
// @Summary      Bookmark or unbookmark an article
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id}/bookmark [post]
func (h *StudentHandler) ToggleBookmark(c *gin.Context) {
	bookmarked, count, err := h.interactionUseCase.ToggleBookmark(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked, "bookmark_count": count})
}

// LikedArticles godoc
// @Summary      Articles the user has liked
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /me/likes [get]
func (h *StudentHandler) LikedArticles(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.interactionUseCase.LikedArticles(c.GetString("user_id"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// BookmarkedArticles godoc
// @Summary      Articles the user has bookmarked
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /me/bookmarks [get]
func (h *StudentHandler) BookmarkedArticles(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.interactionUseCase.BookmarkedArticles(c.GetString("user_id"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// ViewHistory godoc
// @Summary      Reading history, most recent first
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /me/history [get]
func (h *StudentHandler) ViewHistory(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.interactionUseCase.ViewHistory(c.GetString("user_id"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

type ReportArticleRequest struct {
	Reason      string `json:"reason" binding:"required,oneof=copyright abuse spam misinformation other"`
	Description string `json:"description" binding:"max=1000"`
}

// ReportArticle godoc
// @Summary      Report a published article
// @Description  One report per user per article; duplicates are rejected.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body ReportArticleRequest true "Report reason"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /articles/{id}/report [post]
func (h *StudentHandler) ReportArticle(c *gin.Context) {
	var req ReportArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.interactionUseCase.ReportArticle(
		c.GetString("user_id"), c.Param("id"), entity.ReportReason(req.Reason), req.Description)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}
