package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"outreach_web/server/common/transport/httpresp"
	"outreach_web/server/web/domain"
	websvc "outreach_web/server/web/service"
)

// ---- contacts ----

func (h *Handler) listContacts(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	items, err := h.contacts.List(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(items))
}

func (h *Handler) createContact(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Company string `json:"company"`
		Title   string `json:"title"`
		Phone   string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.contacts.Create(c.Request.Context(), token, accountID, domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Title:   req.Title,
		Phone:   req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(created))
}

func (h *Handler) updateContact(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var contact domain.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	contact.ID = c.Param("id")
	updated, err := h.contacts.Update(c.Request.Context(), token, accountID, contact)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(updated))
}

func (h *Handler) deleteContact(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	if err := h.contacts.Delete(c.Request.Context(), token, accountID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewOKResponse())
}

func (h *Handler) importContacts(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse("a spreadsheet file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	summary, err := h.importer.Import(c.Request.Context(), token, accountID, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(summary))
}

// ---- templates ----

func (h *Handler) listTemplates(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	items, err := h.templates.List(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(items))
}

func (h *Handler) createTemplate(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var req struct {
		Name     string `json:"name" binding:"required"`
		Subject  string `json:"subject" binding:"required"`
		Body     string `json:"body" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.templates.Create(c.Request.Context(), token, accountID, domain.Template{
		Name:     req.Name,
		Subject:  req.Subject,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(created))
}

func (h *Handler) updateTemplate(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var tmpl domain.Template
	if err := c.ShouldBindJSON(&tmpl); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	tmpl.ID = c.Param("id")
	updated, err := h.templates.Update(c.Request.Context(), token, accountID, tmpl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(updated))
}

func (h *Handler) deleteTemplate(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	if err := h.templates.Delete(c.Request.Context(), token, accountID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewOKResponse())
}

// ---- sequences ----

func (h *Handler) listSequences(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	items, err := h.sequences.List(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(items))
}

func (h *Handler) createSequence(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var req struct {
		Name            string                `json:"name" binding:"required"`
		Description     string                `json:"description"`
		MaxEmailsPerDay int                   `json:"max_emails_per_day"`
		SendInterval    int                   `json:"send_interval"`
		Steps           []domain.SequenceStep `json:"steps" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.sequences.Create(c.Request.Context(), token, accountID, domain.Sequence{
		Name:            req.Name,
		Description:     req.Description,
		Status:          "draft",
		MaxEmailsPerDay: req.MaxEmailsPerDay,
		SendInterval:    req.SendInterval,
		Steps:           req.Steps,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(created))
}

func (h *Handler) updateSequence(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var seq domain.Sequence
	if err := c.ShouldBindJSON(&seq); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	seq.ID = c.Param("id")
	updated, err := h.sequences.Update(c.Request.Context(), token, accountID, seq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(updated))
}

// ---- calendar / inbox / meetings / reports / system ----

// calendar fetches the scheduled-email feed and windows it in-process; the
// backend does not paginate or filter this endpoint.
func (h *Handler) calendar(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}

	view := websvc.CalendarView(c.DefaultQuery("view", string(websvc.ViewWeek)))
	anchor := time.Now()
	if rawDate := c.Query("date"); rawDate != "" {
		parsed, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse("date must use YYYY-MM-DD format"))
			return
		}
		anchor = parsed
	}

	emails, err := h.inbox.ListScheduled(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	filtered, err := websvc.FilterScheduled(emails, view, anchor)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(filtered))
}

func (h *Handler) listThreads(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	items, err := h.inbox.ListThreads(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(items))
}

func (h *Handler) sendMessage(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var req struct {
		ThreadID string `json:"thread_id" binding:"required"`
		To       string `json:"to" binding:"required,email"`
		Body     string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	sent, err := h.inbox.SendMessage(c.Request.Context(), token, accountID, domain.Message{
		ThreadID:  req.ThreadID,
		Direction: "outbound",
		To:        req.To,
		Body:      req.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(sent))
}

func (h *Handler) listMeetings(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	items, err := h.meetings.List(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(items))
}

func (h *Handler) createMeeting(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	var req struct {
		Title        string `json:"title" binding:"required"`
		ContactEmail string `json:"contact_email" binding:"required,email"`
		Date         string `json:"date" binding:"required"`
		Time         string `json:"time" binding:"required"`
		DurationMin  int    `json:"duration_min"`
		Location     string `json:"location"`
		Notes        string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	created, err := h.meetings.Create(c.Request.Context(), token, accountID, domain.Meeting{
		Title:        req.Title,
		ContactEmail: req.ContactEmail,
		Date:         req.Date,
		Time:         req.Time,
		DurationMin:  req.DurationMin,
		Location:     req.Location,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(created))
}

func (h *Handler) getReport(c *gin.Context) {
	_, token, accountID, ok := h.accountContext(c)
	if !ok {
		return
	}
	report, err := h.system.GetReport(c.Request.Context(), token, accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(report))
}

func (h *Handler) systemHealth(c *gin.Context) {
	status, err := h.system.Health(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewDataResponse(gin.H{"status": status}))
}
