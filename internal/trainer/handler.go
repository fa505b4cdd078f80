package trainer

import (
	"errors"
	"net/http"
	"strconv"

	"fitbook/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func trainerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return 0, false
	}
	return id, true
}

// @Summary      Create a trainer
// @Description  Admin-only: register a new trainer
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body trainer.CreateTrainerRequest true "Trainer payload"
// @Success      201 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/trainers [post]
func (h *Handler) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	t, err := h.service.Create(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create trainer"})
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      List trainers
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} trainer.Trainer
// @Failure      500 {object} api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	ctx := c.Request.Context()
	trainers, err := h.service.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainers"})
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// @Summary      Get a trainer with schedule and expertise
// @Tags         trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {object} trainer.TrainerDetails
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	details, err := h.service.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch trainer"})
		return
	}

	c.JSON(http.StatusOK, details)
}

// @Summary      Update a trainer
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.UpdateTrainerRequest true "Trainer payload"
// @Success      200 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID} [put]
func (h *Handler) UpdateTrainer(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	t, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update trainer"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a trainer
// @Tags         admin,trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID} [delete]
func (h *Handler) DeleteTrainer(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete trainer"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Trainer deleted"})
}

// @Summary      Set working hours for a day
// @Description  Admin-only: replaces the trainer's window for the given weekday
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.SetWorkingHoursRequest true "Working hours payload"
// @Success      200 {object} trainer.WorkingHoursRow
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID}/working-hours [put]
func (h *Handler) SetWorkingHours(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	var req SetWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	row, err := h.service.SetWorkingHours(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		case errors.Is(err, ErrInvalidWorkingHour):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid working hours"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to set working hours"})
		}
		return
	}

	c.JSON(http.StatusOK, row)
}

// @Summary      Remove working hours for a day
// @Tags         admin,trainers
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        day path int true "Day of week (0=Sunday)"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID}/working-hours/{day} [delete]
func (h *Handler) DeleteWorkingHours(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid day of week"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.DeleteWorkingHours(ctx, id, day); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete working hours"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Working hours removed"})
}

// @Summary      Replace a trainer's expertise set
// @Tags         admin,trainers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.SetExpertiseRequest true "Service IDs"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/trainers/{trainerID}/expertise [put]
func (h *Handler) SetExpertise(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	var req SetExpertiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.SetExpertise(ctx, id, req); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to set expertise"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Expertise updated"})
}
