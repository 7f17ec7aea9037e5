package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmucenieks/store-poc/i18n"
	"github.com/rmucenieks/store-poc/models"
)

type LanguageHandler struct {
	manager *i18n.Manager
}

func NewLanguageHandler(manager *i18n.Manager) *LanguageHandler {
	return &LanguageHandler{manager: manager}
}

// GetLanguages handles GET /languages
func (h *LanguageHandler) GetLanguages(c *gin.Context) {
	current := h.manager.CurrentLanguage()

	languages := make([]models.LanguageInfo, 0, len(i18n.AllLanguages()))
	for _, lang := range i18n.AllLanguages() {
		languages = append(languages, models.LanguageInfo{
			Code:        string(lang),
			DisplayName: lang.DisplayName(),
			Selected:    lang == current,
		})
	}

	c.JSON(http.StatusOK, gin.H{"languages": languages})
}

// SetLanguage handles PUT /language. Switching notifies the catalog
// coordinator, which reloads localized data before this call returns.
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	var req models.SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	if err := h.manager.SetLanguage(c.Request.Context(), i18n.Language(req.Language)); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Unsupported language",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"language": h.manager.CurrentLanguageKey()})
}
