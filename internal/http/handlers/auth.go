package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travely/internal/http/middleware"
)

type loginRequest struct {
	Username string `json:"username"`
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

// POST /api/auth/login
func (a API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sessionID := uuid.NewString()
	user, err := a.Identity.Login(c.Request.Context(), sessionID, req.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := middleware.IssueSessionToken(a.JWTSecret, sessionID, a.SessionTTL)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	a.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/register — registration implies immediate login.
func (a API) Register(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	sessionID := uuid.NewString()
	user, err := a.Identity.Register(c.Request.Context(), sessionID, req.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := middleware.IssueSessionToken(a.JWTSecret, sessionID, a.SessionTTL)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	a.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// GET /api/auth/me — absent identity is not an error, the user field is null.
func (a API) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

// POST /api/auth/logout — idempotent.
func (a API) Logout(c *gin.Context) {
	if err := a.Identity.Logout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to clear session", err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// PUT /api/auth/profile
func (a API) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		respondCoded(c, http.StatusUnauthorized, "unauthenticated", "authentication required", nil)
		return
	}

	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	updated, err := a.Identity.UpdateProfile(c.Request.Context(), middleware.SessionID(c), user.ID, req.Name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (a API) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(a.SessionTTL.Seconds()), "/", "", false, true)
}
