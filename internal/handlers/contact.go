package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fairwaydreams/fairway-backend/internal/services"
)

type ContactHandler struct {
	contactService   services.ContactService
	aiContentService services.AIContentService
	reportService    services.ReportService
}

func NewContactHandler(
	contactService services.ContactService,
	aiContentService services.AIContentService,
	reportService services.ReportService,
) *ContactHandler {
	return &ContactHandler{
		contactService:   contactService,
		aiContentService: aiContentService,
		reportService:    reportService,
	}
}

func (ch *ContactHandler) Create(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	contact, err := ch.contactService.Create(c.Request.Context(), in)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	RespondCreated(c, gin.H{"contact": contact})
}

func (ch *ContactHandler) List(c *gin.Context) {
	contacts, err := ch.contactService.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"contacts": contacts})
}

func (ch *ContactHandler) GetByID(c *gin.Context) {
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}
	contact, err := ch.contactService.GetByID(c.Request.Context(), contactID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	RespondOK(c, gin.H{"contact": contact})
}

func (ch *ContactHandler) Update(c *gin.Context) {
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}
	var in services.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	contact, err := ch.contactService.Update(c.Request.Context(), contactID, in)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": contact})
}

func (ch *ContactHandler) Delete(c *gin.Context) {
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}
	if err := ch.contactService.Delete(c.Request.Context(), contactID); err != nil {
		RespondError(c, http.StatusBadRequest, "delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": "deleted"})
}

// ImportCSV accepts either a multipart form with a "file" field or a raw
// text/csv body.
func (ch *ContactHandler) ImportCSV(c *gin.Context) {
	var result *services.ImportResult
	var err error

	if file, fhErr := c.FormFile("file"); fhErr == nil {
		opened, oErr := file.Open()
		if oErr != nil {
			RespondError(c, http.StatusBadRequest, "invalid_file", oErr)
			return
		}
		defer opened.Close()
		result, err = ch.contactService.ImportCSV(c.Request.Context(), opened)
	} else {
		result, err = ch.contactService.ImportCSV(c.Request.Context(), c.Request.Body)
	}
	if err != nil {
		RespondError(c, http.StatusBadRequest, "import_failed", err)
		return
	}
	RespondOK(c, gin.H{"imported": result.Imported, "skipped": result.Skipped})
}

func (ch *ContactHandler) GenerateAIContent(c *gin.Context) {
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}
	contact, err := ch.aiContentService.GenerateForContact(c.Request.Context(), contactID)
	if err != nil {
		RespondError(c, http.StatusBadGateway, "ai_generation_failed", err)
		return
	}
	RespondOK(c, gin.H{"contact": contact})
}

func (ch *ContactHandler) Report(c *gin.Context) {
	contactID, ok := parseContactID(c)
	if !ok {
		return
	}
	report, err := ch.reportService.BuildReport(c.Request.Context(), contactID)
	if err != nil {
		RespondError(c, http.StatusNotFound, "report_failed", err)
		return
	}
	RespondOK(c, gin.H{"report": report})
}

func parseContactID(c *gin.Context) (uuid.UUID, bool) {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return contactID, true
}
