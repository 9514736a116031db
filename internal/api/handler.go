package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/Khetesh-Deore/backend-Arthankur/internal/auth"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/meeting"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/store"
	"github.com/Khetesh-Deore/backend-Arthankur/internal/users"
)

// Handler implements the generated ServerInterface.
type Handler struct {
	meetings *meeting.Service
	users    *users.Service
	tokens   *auth.Issuer
}

func NewHandler(m *meeting.Service, u *users.Service, tokens *auth.Issuer) *Handler {
	return &Handler{meetings: m, users: u, tokens: tokens}
}

var _ ServerInterface = (*Handler)(nil)

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handler) ListMeetings(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithField("caller_id", callerID)

	list, err := h.meetings.ListForCaller(c.Request.Context(), callerID)
	if err != nil {
		fail(c, logger, err, "failed to list meetings")
		return
	}

	out := make([]Meeting, 0, len(list))
	for i := range list {
		out = append(out, toMeeting(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CreateMeeting(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithField("caller_id", callerID)

	var body CreateMeetingJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	m, err := h.meetings.Create(c.Request.Context(), callerID, meeting.CreateInput{
		TargetEmail: string(body.Email),
		Title:       body.Title,
		Description: body.Description,
		DateTime:    body.DateTime,
		Duration:    body.Duration,
	})
	if err != nil {
		fail(c, logger, err, "failed to create meeting")
		return
	}

	logger.WithField("meeting_id", m.ID).Info("meeting created")
	c.JSON(http.StatusCreated, toMeeting(m))
}

func (h *Handler) ListOtherUsers(c *gin.Context) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}

	list, err := h.meetings.ListOtherUsers(c.Request.Context(), callerID)
	if err != nil {
		fail(c, log.WithField("caller_id", callerID), err, "failed to list users")
		return
	}

	out := make([]UserSummary, 0, len(list))
	for _, p := range list {
		out = append(out, toUserSummary(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetMeeting(c *gin.Context, id MeetingID) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithFields(log.Fields{"caller_id": callerID, "meeting_id": id})

	m, err := h.meetings.Get(c.Request.Context(), callerID, id)
	if err != nil {
		fail(c, logger, err, "failed to get meeting")
		return
	}

	c.JSON(http.StatusOK, toMeeting(m))
}

func (h *Handler) UpdateMeetingLink(c *gin.Context, id MeetingID) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithFields(log.Fields{"caller_id": callerID, "meeting_id": id})

	var body UpdateMeetingLinkJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	var link string
	if body.MeetingLink != nil {
		link = *body.MeetingLink
	}

	m, err := h.meetings.UpdateLink(c.Request.Context(), callerID, id, link)
	if err != nil {
		fail(c, logger, err, "failed to update meeting link")
		return
	}

	if strings.TrimSpace(link) != "" {
		logger.Info("meeting link updated")
	}
	c.JSON(http.StatusOK, toMeeting(m))
}

func (h *Handler) UpdateMeetingStatus(c *gin.Context, id MeetingID) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithFields(log.Fields{"caller_id": callerID, "meeting_id": id})

	var body UpdateMeetingStatusJSONRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, Error{Message: "invalid request body"})
		return
	}

	m, err := h.meetings.SetStatus(c.Request.Context(), callerID, id, store.MeetingStatus(body.Status))
	if err != nil {
		fail(c, logger, err, "failed to update meeting status")
		return
	}

	logger.WithField("status", m.Status).Info("meeting status updated")
	c.JSON(http.StatusOK, toMeeting(m))
}

func (h *Handler) GetVirtualPitch(c *gin.Context, id MeetingID) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithFields(log.Fields{"caller_id": callerID, "meeting_id": id})

	room, err := h.meetings.PitchRoom(c.Request.Context(), callerID, id)
	if err != nil {
		fail(c, logger, err, "failed to get virtual pitch room")
		return
	}

	c.JSON(http.StatusOK, toPitchInfo(room))
}

func (h *Handler) RefreshVirtualPitch(c *gin.Context, id MeetingID) {
	callerID, ok := requireCaller(c)
	if !ok {
		return
	}
	logger := log.WithFields(log.Fields{"caller_id": callerID, "meeting_id": id})

	room, err := h.meetings.RefreshPitchRoom(c.Request.Context(), callerID, id)
	if err != nil {
		fail(c, logger, err, "failed to refresh virtual pitch room")
		return
	}

	logger.Info("virtual pitch room refreshed")
	c.JSON(http.StatusOK, toPitchInfo(room))
}

func requireCaller(c *gin.Context) (string, bool) {
	id, ok := auth.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, Error{Message: "authentication required"})
		return "", false
	}
	return id, true
}

// fail maps service errors to responses. Unknown errors are logged and
// reported as a generic 500.
func fail(c *gin.Context, logger *log.Entry, err error, msg string) {
	var (
		meetingErr *meeting.ValidationError
		userErr    *users.ValidationError
	)
	switch {
	case errors.As(err, &meetingErr):
		c.JSON(http.StatusBadRequest, Error{Message: meetingErr.Message})
	case errors.As(err, &userErr):
		c.JSON(http.StatusBadRequest, Error{Message: userErr.Message})
	case errors.Is(err, meeting.ErrMeetingNotFound):
		c.JSON(http.StatusNotFound, Error{Message: "meeting not found"})
	case errors.Is(err, users.ErrUserNotFound):
		c.JSON(http.StatusNotFound, Error{Message: "user not found"})
	case errors.Is(err, users.ErrEmailTaken):
		c.JSON(http.StatusConflict, Error{Message: "email already registered"})
	case errors.Is(err, users.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Error{Message: "invalid email or password"})
	default:
		logger.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, Error{Message: "internal error"})
	}
}

func toMeeting(m *meeting.Meeting) Meeting {
	out := Meeting{
		Id:          m.ID,
		RequestedBy: toParticipant(m.Requester),
		RequestedTo: toParticipant(m.Target),
		Title:       m.Title,
		Description: m.Description,
		DateTime:    m.DateTime,
		Duration:    m.Duration,
		Status:      MeetingStatus(m.Status),
		MeetingLink: m.MeetingLink,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.VirtualPitchRoomID != "" {
		room := m.VirtualPitchRoomID
		out.VirtualPitchRoomId = &room
	}
	return out
}

func toParticipant(p meeting.Participant) Participant {
	out := Participant{Id: p.ID}
	if p.Name != "" {
		name := p.Name
		out.Name = &name
	}
	if p.Email != "" {
		email := p.Email
		out.Email = &email
	}
	return out
}

func toPitchInfo(r *meeting.PitchRoom) VirtualPitchInfo {
	out := VirtualPitchInfo{MeetingId: r.MeetingID, Title: r.Title}
	if r.RoomID != "" {
		room, url := r.RoomID, r.URL
		out.VirtualPitchRoomId = &room
		out.VirtualPitchUrl = &url
	}
	return out
}

func toUserSummary(p users.Profile) UserSummary {
	return UserSummary{Id: p.ID, Name: p.Name, Email: p.Email, UserType: UserType(p.UserType)}
}
