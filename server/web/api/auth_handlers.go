package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach_web/server/common/middleware"
	"outreach_web/server/common/transport/httpresp"
	websvc "outreach_web/server/web/service"
)

func (h *Handler) checkEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	exists, _ := h.sessions.CheckEmailExists(c.Request.Context(), req.Email)
	c.JSON(http.StatusOK, httpresp.NewExistsResponse(exists))
}

func (h *Handler) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	result, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewTokenResponse(result.Token, result.Session.AccountID, result.Session.User))
}

func (h *Handler) signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Company  string `json:"company"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	user, err := h.sessions.Signup(c.Request.Context(), websvc.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Company:  req.Company,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpresp.NewDataResponse(user))
}

func (h *Handler) logout(c *gin.Context) {
	if sessionID, ok := middleware.SessionFromContext(c); ok {
		h.sessions.Logout(c.Request.Context(), sessionID)
	}
	c.JSON(http.StatusOK, httpresp.NewOKResponse())
}

func (h *Handler) getSession(c *gin.Context) {
	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrUnauthorized))
		return
	}
	sess := h.sessions.Hydrate(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, httpresp.NewDataResponse(sess))
}

// refreshProfile kicks the retrying background fetch and returns
// immediately; the dashboard re-reads the session later.
func (h *Handler) refreshProfile(c *gin.Context) {
	sessionID, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, httpresp.NewErrorResponse(httpresp.ErrUnauthorized))
		return
	}
	// detached from the request context so the retry schedule outlives the
	// 202 response
	go h.sessions.RefreshProfile(context.WithoutCancel(c.Request.Context()), sessionID)
	c.JSON(http.StatusAccepted, httpresp.NewOKResponse())
}

func (h *Handler) requestVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	if err := h.users.RequestVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpresp.NewOKResponse())
}

func (h *Handler) confirmVerification(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse(err.Error()))
		return
	}
	verified, err := h.users.ConfirmVerification(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, httpresp.NewErrorResponse("verification code is invalid or expired"))
		return
	}
	c.JSON(http.StatusOK, httpresp.NewOKResponse())
}
