package http

import (
	"net/http"

	"edupress/internal/entity"
	"edupress/internal/usecase"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ArticleHandler is the educator-facing content surface: drafting,
// submitting for review and tracking article performance.
type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
	logger         *logger.Logger
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: articleUseCase,
		logger:         logger,
	}
}

type CreateArticleRequest struct {
	Title      string   `json:"title" binding:"required,min=3,max=200"`
	Content    string   `json:"content" binding:"required,min=10"`
	Excerpt    string   `json:"excerpt" binding:"max=500"`
	CoverImage string   `json:"cover_image"`
	SubjectID  string   `json:"subject_id" binding:"required"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status" binding:"omitempty,oneof=draft pending"`
}

// CreateArticle godoc
// @Summary      Create an article
// @Description  Creates an article as draft or submits it straight to review. Content is checked by the keyword moderation filter.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateArticleRequest true "Article data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /educator/articles [post]
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleUseCase.CreateArticle(c.GetString("user_id"), usecase.CreateArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		SubjectID:  req.SubjectID,
		Tags:       req.Tags,
		Status:     entity.ArticleStatus(req.Status),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, article)
}

type UpdateArticleRequest struct {
	Title      *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Content    *string  `json:"content" binding:"omitempty,min=10"`
	Excerpt    *string  `json:"excerpt" binding:"omitempty,max=500"`
	CoverImage *string  `json:"cover_image"`
	SubjectID  *string  `json:"subject_id"`
	Tags       []string `json:"tags"`
	Status     *string  `json:"status" binding:"omitempty,oneof=draft pending"`
}

// UpdateArticle godoc
// @Summary      Update an article
// @Description  Partial update of an owned article. Setting status moves the article between draft and pending. Published articles are immutable.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body UpdateArticleRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /educator/articles/{id} [put]
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateArticleInput{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		SubjectID:  req.SubjectID,
		Tags:       req.Tags,
	}
	if req.Status != nil {
		status := entity.ArticleStatus(*req.Status)
		input.Status = &status
	}

	article, err := h.articleUseCase.UpdateArticle(c.Param("id"), c.GetString("user_id"), input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary      Delete an article
// @Description  Deletes an owned draft, pending or rejected article. Published articles cannot be deleted.
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /educator/articles/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleUseCase.DeleteArticle(c.Param("id"), c.GetString("user_id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// GetMyArticle godoc
// @Summary      Get an owned article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /educator/articles/{id} [get]
func (h *ArticleHandler) GetMyArticle(c *gin.Context) {
	article, err := h.articleUseCase.GetMyArticle(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListMyArticles godoc
// @Summary      List the educator's own articles
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(draft, pending, published, rejected)
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}   map[string]interface{}
// @Router       /educator/articles [get]
func (h *ArticleHandler) ListMyArticles(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.articleUseCase.ListMyArticles(c.GetString("user_id"), c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// MyStats godoc
// @Summary      Educator dashboard stats
// @Description  Stored aggregate totals plus live per-status article counts.
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /educator/stats [get]
func (h *ArticleHandler) MyStats(c *gin.Context) {
	stats, err := h.articleUseCase.MyStats(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MyProfile godoc
// @Summary      Get my educator profile
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /educator/profile [get]
func (h *ArticleHandler) MyProfile(c *gin.Context) {
	profile, err := h.articleUseCase.MyProfile(c.GetString("user_id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type UpdateProfileRequest struct {
	Bio          *string `json:"bio" binding:"omitempty,max=2000"`
	ProfilePhoto *string `json:"profile_photo" binding:"omitempty,max=500"`
}

// UpdateMyProfile godoc
// @Summary      Update my educator profile
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Profile fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /educator/profile [put]
func (h *ArticleHandler) UpdateMyProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.articleUseCase.UpdateMyProfile(c.GetString("user_id"), usecase.UpdateProfileInput{
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UploadCoverImage godoc
// @Summary      Upload a cover image
// @Tags         articles
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Cover image (jpg/png/webp/gif)"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /educator/uploads/cover [post]
func (h *ArticleHandler) UploadCoverImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	url, err := h.articleUseCase.UploadCoverImage(c.GetString("user_id"), file)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
