// Package admin serves operator endpoints for dumping and restoring state.
// It listens on its own port and is never exposed publicly.
package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

// AdminStore defines the store operations needed by the admin handler.
type AdminStore interface {
	GetAllMeetings(ctx context.Context) (map[string]store.MeetingRecord, error)
	ReplaceAllMeetings(ctx context.Context, meetings map[string]store.MeetingRecord) error
	ListUsers(ctx context.Context) ([]store.UserRecord, error)
}

type Handler struct {
	store AdminStore
}

func NewHandler(s AdminStore) *Handler {
	return &Handler{store: s}
}

var _ ServerInterface = (*Handler)(nil)

func (h *Handler) GetAdminMeetings(c *gin.Context) {
	meetings, err := h.store.GetAllMeetings(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to get all meetings")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, meetings)
}

func (h *Handler) PutAdminMeetings(c *gin.Context) {
	var meetings map[string]store.MeetingRecord
	if err := c.ShouldBindJSON(&meetings); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	for id, rec := range meetings {
		if id == "" {
			c.JSON(http.StatusBadRequest, Error{Message: "meeting id must not be empty"})
			return
		}
		if err := rec.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, Error{Message: fmt.Sprintf("meeting %s: %v", id, err)})
			return
		}
	}

	if err := h.store.ReplaceAllMeetings(c.Request.Context(), meetings); err != nil {
		log.WithError(err).Error("failed to replace meetings")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	stored, err := h.store.GetAllMeetings(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to read back meetings")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	log.WithField("count", len(stored)).Info("meetings replaced via admin")
	c.JSON(http.StatusOK, stored)
}

// GetAdminUsers lists every user without password hashes.
func (h *Handler) GetAdminUsers(c *gin.Context) {
	records, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to list users")
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
		return
	}

	out := make([]users.Profile, 0, len(records))
	for i := range records {
		out = append(out, users.ProfileOf(&records[i]))
	}
	c.JSON(http.StatusOK, out)
}
