package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"fitbook/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a service
// @Description  Admin-only: create a bookable service
// @Tags         admin,services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateServiceRequest true "Service payload"
// @Success      201 {object} catalog.Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/services [post]
func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc, err := h.service.Create(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// @Summary      List services
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} catalog.Service
// @Failure      500 {object} api.ErrorResponse
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()
	services, err := h.service.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} catalog.Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [get]
func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	ctx := c.Request.Context()
	svc, err := h.service.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// @Summary      Update a service
// @Tags         admin,services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Param        request body catalog.UpdateServiceRequest true "Service payload"
// @Success      200 {object} catalog.Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	svc, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// @Summary      Delete a service
// @Tags         admin,services
// @Produce      json
// @Security     BearerAuth
// @Param        serviceID path int true "Service ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/services/{serviceID} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("serviceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Service deleted"})
}
