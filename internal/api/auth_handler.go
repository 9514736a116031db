package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

func (h *Handler) RegisterUser(c *gin.Context) {
	var body RegisterUserJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}
	logger := log.WithField("email", string(body.Email))

	u, err := h.users.Register(c.Request.Context(), body.Name, string(body.Email), body.Password, string(body.UserType))
	if err != nil {
		fail(c, logger, err, "failed to register user")
		return
	}

	logger.WithField("user_id", u.ID).Info("user registered")
	h.respondWithSession(c, http.StatusCreated, u)
}

func (h *Handler) LoginUser(c *gin.Context) {
	var body LoginUserJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), string(body.Email), body.Password)
	if err != nil {
		fail(c, log.WithField("email", string(body.Email)), err, "failed to authenticate user")
		return
	}

	h.respondWithSession(c, http.StatusOK, u)
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), callerID)
	if err != nil {
		// Reason: a valid token for a removed account is no longer a session
		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, Error{Message: "authentication required"})
			return
		}
		fail(c, log.WithField("caller_id", callerID), err, "failed to load current user")
		return
	}

	c.JSON(http.StatusOK, toUserSummary(users.ProfileOf(u)))
}

func (h *Handler) respondWithSession(c *gin.Context, status int, u *store.UserRecord) {
	token, exp, err := h.tokens.Issue(u.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", u.ID).Error("failed to issue session token")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	c.JSON(status, AuthResponse{
		Token:     token,
		ExpiresAt: exp.UTC(),
		User:      toUserSummary(users.ProfileOf(u)),
	})
}
