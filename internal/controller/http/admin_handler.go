package http

import (
	"net/http"

	"edupress/internal/entity"
	"edupress/internal/usecase"
	"edupress/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// ReviewQueue godoc
// @Summary      Articles waiting for review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/articles/pending [get]
func (h *AdminHandler) ReviewQueue(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.adminUseCase.ReviewQueue(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// FlaggedArticles godoc
// @Summary      Articles flagged by the moderation filter
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/articles/flagged [get]
func (h *AdminHandler) FlaggedArticles(c *gin.Context) {
	limit, offset := pagination(c)
	articles, err := h.adminUseCase.FlaggedArticles(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle godoc
// @Summary      Inspect any article
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id} [get]
func (h *AdminHandler) GetArticle(c *gin.Context) {
	article, err := h.adminUseCase.GetArticle(c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

type ReviewArticleRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
	Reason string `json:"reason" binding:"max=1000"`
}

// ReviewArticle godoc
// @Summary      Approve or reject a pending article
// @Description  Approving publishes the article and notifies the author. Rejecting requires a reason.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body ReviewArticleRequest true "Review decision"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/articles/{id}/review [post]
func (h *AdminHandler) ReviewArticle(c *gin.Context) {
	var req ReviewArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.adminUseCase.ReviewArticle(
		c.GetString("user_id"), c.Param("id"), entity.ArticleAction(req.Action), req.Reason)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ClearFlag godoc
// @Summary      Clear a moderation flag
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/articles/{id}/flag [delete]
func (h *AdminHandler) ClearFlag(c *gin.Context) {
	article, err := h.adminUseCase.ClearFlag(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListReports godoc
// @Summary      List content reports
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(pending, resolved, dismissed)
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/reports [get]
func (h *AdminHandler) ListReports(c *gin.Context) {
	limit, offset := pagination(c)
	reports, err := h.adminUseCase.ListReports(c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

type ResolveReportRequest struct {
	Status string `json:"status" binding:"required,oneof=resolved dismissed"`
	Note   string `json:"note" binding:"max=1000"`
}

// ResolveReport godoc
// @Summary      Resolve or dismiss a report
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Report ID"
// @Param        request body ResolveReportRequest true "Resolution"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /admin/reports/{id} [put]
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.adminUseCase.ResolveReport(
		c.GetString("user_id"), c.Param("id"), entity.ReportStatus(req.Status), req.Note)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type CreateEducatorRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	Name         string   `json:"name" binding:"required"`
	Bio          string   `json:"bio" binding:"max=2000"`
	ProfilePhoto string   `json:"profile_photo"`
	SubjectIDs   []string `json:"subject_ids"`
}

// CreateEducator godoc
// @Summary      Provision an educator account
// @Description  Creates the user and profile, generates an initial password and mails the credentials.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateEducatorRequest true "Educator data"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /admin/educators [post]
func (h *AdminHandler) CreateEducator(c *gin.Context) {
	var req CreateEducatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.adminUseCase.CreateEducator(c.GetString("user_id"), usecase.CreateEducatorInput{
		Email:        req.Email,
		Name:         req.Name,
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
		SubjectIDs:   req.SubjectIDs,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

type UpdateEducatorRequest struct {
	Bio          *string  `json:"bio" binding:"omitempty,max=2000"`
	ProfilePhoto *string  `json:"profile_photo"`
	SubjectIDs   []string `json:"subject_ids"`
	IsApproved   *bool    `json:"is_approved"`
}

// UpdateEducator godoc
// @Summary      Update an educator profile
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Educator profile ID or user ID"
// @Param        request body UpdateEducatorRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/educators/{id} [put]
func (h *AdminHandler) UpdateEducator(c *gin.Context) {
	var req UpdateEducatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.adminUseCase.UpdateEducator(c.GetString("user_id"), c.Param("id"), usecase.UpdateEducatorInput{
		Bio:          req.Bio,
		ProfilePhoto: req.ProfilePhoto,
		SubjectIDs:   req.SubjectIDs,
		IsApproved:   req.IsApproved,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeactivateEducator godoc
// @Summary      Deactivate an educator
// @Description  Disables the login and withdraws authoring rights. Published articles stay up.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Educator profile ID or user ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/educators/{id} [delete]
func (h *AdminHandler) DeactivateEducator(c *gin.Context) {
	if err := h.adminUseCase.DeactivateEducator(c.GetString("user_id"), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "educator deactivated"})
}

// ListEducators godoc
// @Summary      List educators
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        approved query bool false "Filter by approval state"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/educators [get]
func (h *AdminHandler) ListEducators(c *gin.Context) {
	limit, offset := pagination(c)

	var approved *bool
	switch c.Query("approved") {
	case "true":
		v := true
		approved = &v
	case "false":
		v := false
		approved = &v
	}

	educators, err := h.adminUseCase.ListEducators(approved, limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"educators": educators, "count": len(educators)})
}

type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// CreateSubject godoc
// @Summary      Create a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateSubjectRequest true "Subject data"
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]string
// @Router       /admin/subjects [post]
func (h *AdminHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.adminUseCase.CreateSubject(c.GetString("user_id"), usecase.CreateSubjectInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, subject)
}

type UpdateSubjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateSubject godoc
// @Summary      Update a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID or slug"
// @Param        request body UpdateSubjectRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/subjects/{id} [put]
func (h *AdminHandler) UpdateSubject(c *gin.Context) {
	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.adminUseCase.UpdateSubject(c.GetString("user_id"), c.Param("id"), usecase.UpdateSubjectInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

// PlatformStats godoc
// @Summary      Platform-wide statistics
// @Description  Cached for five minutes.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/stats [get]
func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.adminUseCase.GetPlatformStats()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ReconcileEducatorStats godoc
// @Summary      Recompute an educator's aggregate totals
// @Description  Overwrites the stored totals with sums over the educator's article counters.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Educator profile ID or user ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/educators/{id}/reconcile [post]
func (h *AdminHandler) ReconcileEducatorStats(c *gin.Context) {
	agg, err := h.adminUseCase.ReconcileEducatorStats(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_articles":  agg.Articles,
		"total_views":     agg.Views,
		"total_likes":     agg.Likes,
		"total_bookmarks": agg.Bookmarks,
	})
}

// ReconcileSubjectCount godoc
// @Summary      Recount a subject's published articles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID or slug"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /admin/subjects/{id}/reconcile [post]
func (h *AdminHandler) ReconcileSubjectCount(c *gin.Context) {
	count, err := h.adminUseCase.ReconcileSubjectCount(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article_count": count})
}

// AuditLog godoc
// @Summary      Moderation audit trail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/logs [get]
func (h *AdminHandler) AuditLog(c *gin.Context) {
	limit, offset := pagination(c)
	logs, err := h.adminUseCase.AuditLog(limit, offset)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}
