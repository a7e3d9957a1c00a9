package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"game-tradein/internal/metrics"
	pricechartingService "game-tradein/internal/services/pricecharting"
	submissionService "game-tradein/internal/services/submission"
)

type APIHandler struct {
	pricingService    *pricechartingService.PriceChartingService
	submissionService *submissionService.SubmissionService
}

func SetupRoutes(r *gin.Engine, pricing *pricechartingService.PriceChartingService, submissions *submissionService.SubmissionService) {
	h := &APIHandler{
		pricingService:    pricing,
		submissionService: submissions,
	}

	r.GET("/", h.Index)
	r.GET("/sell", h.SellForm)
	r.POST("/sell", h.SubmitSell)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/search", h.Search)
		apiGroup.GET("/pricecharting", h.PriceLookup)
		apiGroup.GET("/submissions", h.ListSubmissions)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (h *APIHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Search proxies the catalog search. This endpoint always answers 200;
// an upstream failure shows up as an error field next to empty results.
func (h *APIHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.pricingService.Search(query)
	if results == nil {
		results = []pricechartingService.CatalogEntry{}
	}

	if err != nil {
		c.JSON(http.StatusOK, gin.H{"results": results, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *APIHandler) PriceLookup(c *gin.Context) {
	title := c.Query("title")
	platform := c.Query("platform")

	if title == "" || platform == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or platform"})
		return
	}

	entry, err := h.pricingService.Lookup(title, platform)
	if err != nil {
		switch {
		case errors.Is(err, pricechartingService.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, pricechartingService.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title or platform"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"prices": entry.Prices, "title": entry.Title})
}

func (h *APIHandler) SellForm(c *gin.Context) {
	c.HTML(http.StatusOK, "sell.html", gin.H{
		"Title":    c.Query("title"),
		"Platform": c.Query("platform"),
	})
}

type sellForm struct {
	Name      string `form:"name" binding:"required"`
	Email     string `form:"email" binding:"required"`
	GameTitle string `form:"game_title" binding:"required"`
	Platform  string `form:"platform" binding:"required"`
	Condition string `form:"condition" binding:"required,oneof=Loose Complete Sealed"`
	Price     string `form:"price" binding:"required"`
	Notes     string `form:"notes"`
}

func (h *APIHandler) SubmitSell(c *gin.Context) {
	var form sellForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	_, err := h.submissionService.Create(submissionService.CreateInput{
		Name:      form.Name,
		Email:     form.Email,
		GameTitle: form.GameTitle,
		Platform:  form.Platform,
		Condition: form.Condition,
		Price:     form.Price,
		Notes:     form.Notes,
	})
	if err != nil {
		if errors.Is(err, submissionService.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store submission"})
		return
	}

	metrics.SubmissionCounter.Inc()
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *APIHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func bindErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, strings.ToLower(fieldErr.Field()))
		}
		return "missing or invalid field: " + strings.Join(fields, ", ")
	}
	return err.Error()
}
