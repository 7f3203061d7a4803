package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dto"
	apierrors "teamboard/internal/errors"
	"teamboard/internal/models"
	"teamboard/internal/services"
)

// AttendanceHandler coordinates attendance HTTP handlers.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
	authService       *services.AuthService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService, authService *services.AuthService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		authService:       authService,
	}
}

// ClockIn records the start of the user's work day.
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	record, err := h.attendanceService.ClockIn(user.ID)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceDTO(*record))
}

// ClockOut closes today's attendance record.
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	record, err := h.attendanceService.ClockOut(user.ID)
	if err != nil {
		respondAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTO(*record))
}

// ListAttendance returns attendance records. Admins see everyone's records
// and may scope to one user; employees only see their own.
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	var records []models.Attendance
	var err error

	if user.Role == models.RoleAdmin {
		if userID := c.Query("user_id"); userID != "" {
			records, err = h.attendanceService.ListForUser(userID)
		} else {
			records, err = h.attendanceService.ListAll()
		}
	} else {
		records, err = h.attendanceService.ListForUser(user.ID)
	}
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": dto.ToAttendanceDTOs(records)})
}

// GetSummary returns the user's derived attendance metrics.
func (h *AttendanceHandler) GetSummary(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	userID := user.ID
	if user.Role == models.RoleAdmin {
		if queried := c.Query("user_id"); queried != "" {
			userID = queried
		}
	}

	summary, err := h.attendanceService.SummaryForUser(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceSummaryDTO(summary))
}

func respondAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyClockedIn),
		errors.Is(err, services.ErrAlreadyClockedOut):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotClockedIn):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
