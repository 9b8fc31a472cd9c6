package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	commonauth "outreach_web/server/common/auth"
	"outreach_web/server/common/infra/outreach"
	"outreach_web/server/common/middleware"
	"outreach_web/server/common/transport/httpresp"
	websvc "outreach_web/server/web/service"
)

type Handler struct {
	sessions  *websvc.SessionService
	users     *websvc.UsersClient
	contacts  *websvc.ContactsClient
	templates *websvc.TemplatesClient
	sequences *websvc.SequencesClient
	inbox     *websvc.InboxClient
	meetings  *websvc.MeetingsClient
	system    *websvc.SystemClient
	importer  *websvc.ImportService
	auth      *commonauth.Service
}

func NewHandler(
	sessions *websvc.SessionService,
	users *websvc.UsersClient,
	contacts *websvc.ContactsClient,
	templates *websvc.TemplatesClient,
	sequences *websvc.SequencesClient,
	inbox *websvc.InboxClient,
	meetings *websvc.MeetingsClient,
	system *websvc.SystemClient,
	importer *websvc.ImportService,
	auth *commonauth.Service,
) *Handler {
	return &Handler{
		sessions:  sessions,
		users:     users,
		contacts:  contacts,
		templates: templates,
		sequences: sequences,
		inbox:     inbox,
		meetings:  meetings,
		system:    system,
		importer:  importer,
		auth:      auth,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.registerPages(r)

	authAPI := r.Group("/api/v1/auth")
	{
		authAPI.POST("/check-email", h.checkEmail)
		authAPI.POST("/login", h.login)
		authAPI.POST("/signup", h.signup)
		authAPI.POST("/verify/request", h.requestVerification)
		authAPI.POST("/verify/confirm", h.confirmVerification)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.SessionRequired(h.auth))
	{
		api.GET("/session", h.getSession)
		api.POST("/session/refresh-profile", h.refreshProfile)
		api.POST("/auth/logout", h.logout)

		api.GET("/contacts", h.listContacts)
		api.POST("/contacts", h.createContact)
		api.PUT("/contacts/:id", h.updateContact)
		api.DELETE("/contacts/:id", h.deleteContact)
		api.POST("/contacts/import", h.importContacts)

		api.GET("/templates", h.listTemplates)
		api.POST("/templates", h.createTemplate)
		api.PUT("/templates/:id", h.updateTemplate)
		api.DELETE("/templates/:id", h.deleteTemplate)

		api.GET("/sequences", h.listSequences)
		api.POST("/sequences", h.createSequence)
		api.PUT("/sequences/:id", h.updateSequence)

		api.GET("/calendar", h.calendar)
		api.GET("/threads", h.listThreads)
		api.POST("/messages", h.sendMessage)
		api.GET("/meetings", h.listMeetings)
		api.POST("/meetings", h.createMeeting)
		api.GET("/reports", h.getReport)
		api.GET("/system/health", h.systemHealth)
	}
}

// respondError maps service failures onto the uniform wire shape. Raw error
// text only passes through for normalized *APIError values and sentinels;
// anything else gets the generic message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, websvc.ErrMissingFields):
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
	case errors.Is(err, websvc.ErrEmailNotFound):
		c.JSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrEmailNotFound))
	case errors.Is(err, websvc.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, httpresp.NewErrorResponse(httpresp.ErrEmailExists))
	case errors.Is(err, websvc.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrUnauthorized))
	case errors.Is(err, websvc.ErrAccountNotResolved):
		c.JSON(http.StatusConflict, httpresp.NewErrorResponse(httpresp.ErrAccountUnresolved))
	default:
		var apiErr *outreach.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, httpresp.NewErrorResponse(apiErr.Message))
			return
		}
		c.JSON(http.StatusBadGateway, httpresp.NewErrorResponse(httpresp.ErrBackendUnavailable))
	}
}

// accountContext pulls the session from the request and resolves the backend
// token plus account id, writing the failure response itself.
func (h *Handler) accountContext(c *gin.Context) (sessionID, token, accountID string, ok bool) {
	sessionID, found := middleware.SessionFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrUnauthorized))
		return "", "", "", false
	}
	token, accountID, err := h.sessions.AccountContext(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return "", "", "", false
	}
	return sessionID, token, accountID, true
}
