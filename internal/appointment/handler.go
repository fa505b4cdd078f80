package appointment

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitbook/internal/api"
	"fitbook/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func actor(c *gin.Context) (int, string, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return 0, "", false
	}
	role, _ := auth.GetUserRole(c)
	return id, role, true
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// @Summary      Book an appointment
// @Description  Members book for themselves (pending); admins may book for any member (confirmed)
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body appointment.CreateAppointmentRequest true "Booking payload"
// @Success      201 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /appointments [post]
func (h *Handler) Book(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	appt, err := h.service.Book(ctx, actorID, role, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrSlotTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrPastStart), errors.Is(err, ErrOutsideWorkingHours), errors.Is(err, ErrTrainerNotQualified):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to book appointment"})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// @Summary      List appointments
// @Description  Members see their own appointments; admins see all
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status" Enums(pending, confirmed, completed, cancelled)
// @Param        window query string false "Filter by time window" Enums(today, week, month, past, upcoming)
// @Param        search query string false "Free-text search over trainer, service, notes"
// @Success      200 {array} appointment.AppointmentDetails
// @Failure      400 {object} api.ErrorResponse
// @Router       /appointments [get]
func (h *Handler) List(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	appointments, err := h.service.List(ctx, actorID, role, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch appointments"})
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// @Summary      Cancel an appointment
// @Description  Owner or admin; completed appointments cannot be cancelled
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /appointments/{appointmentID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	actorID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "appointmentID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	appt, err := h.service.Cancel(ctx, actorID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Not allowed"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Completed appointments cannot be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, appt)
}

// @Summary      Approve a pending appointment
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	id, ok := pathID(c, "appointmentID")
	if !ok {
		return
	}

	h.finishTransition(c, id, h.service.Approve)
}

// @Summary      Mark a confirmed appointment completed
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointmentID path int true "Appointment ID"
// @Success      200 {object} appointment.Appointment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/appointments/{appointmentID}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id, ok := pathID(c, "appointmentID")
	if !ok {
		return
	}

	h.finishTransition(c, id, h.service.Complete)
}

func (h *Handler) finishTransition(c *gin.Context, id int, fn func(ctx context.Context, id int) (*Appointment, error)) {
	ctx := c.Request.Context()
	appt, err := fn(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Appointment not found"})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, appt)
}

// @Summary      Appointment statistics
// @Tags         admin,appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} appointment.Stats
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/appointments/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.service.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary      Available slots for a trainer
// @Description  "HH:MM" starts on the given date; unknown trainer or service yields an empty list
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        date query string true "Date (YYYY-MM-DD)"
// @Param        service_id query int true "Service ID"
// @Success      200 {array} string
// @Failure      400 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/slots [get]
func (h *Handler) GetSlots(c *gin.Context) {
	id, ok := pathID(c, "trainerID")
	if !ok {
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}
	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service_id"})
		return
	}

	ctx := c.Request.Context()
	slots, err := h.service.Slots(ctx, id, serviceID, date, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary      Trainers available at an instant
// @Description  Trainers qualified for the service and free at the given time; unknown service yields an empty list
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        service_id query int true "Service ID"
// @Param        at query string true "Start time (RFC 3339)"
// @Success      200 {array} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Router       /trainers/available [get]
func (h *Handler) GetAvailableTrainers(c *gin.Context) {
	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service_id"})
		return
	}
	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid at, expected RFC 3339"})
		return
	}

	ctx := c.Request.Context()
	trainers, err := h.service.AvailableTrainers(ctx, serviceID, at)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch available trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}
