package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelguestmodule/hotelchat-api/internal/model"
	"github.com/hotelguestmodule/hotelchat-api/internal/service"
)

// NotifyHandler handles push-notification endpoints
type NotifyHandler struct {
	notifyService *service.NotifyService
}

func NewNotifyHandler(notifyService *service.NotifyService) *NotifyHandler {
	return &NotifyHandler{notifyService: notifyService}
}

// NotifyAssistants godoc
// @Summary Notify hotel assistants of a new guest message
// @Tags Notifications
// @Accept json
// @Produce json
// @Param body body model.NotifyRequest true "Guest message"
// @Success 200 {object} model.NotifyResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notify-assistants [post]
func (h *NotifyHandler) NotifyAssistants(c *gin.Context) {
	var req model.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Missing guestEmail or message"})
		return
	}

	sent, err := h.notifyService.NotifyAssistants(c.Request.Context(), req.GuestEmail, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrHotelNotSet):
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrNoAssistantTokens):
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
		default:
			log.Printf("❌ Error notifying assistants: %v", err)
			c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, model.NotifyResponse{Success: true, Sent: sent})
}

// NotifyGuest godoc
// @Summary Notify a guest of an assistant's reply
// @Tags Notifications
// @Accept json
// @Produce json
// @Param body body model.NotifyRequest true "Assistant reply"
// @Success 200 {object} model.NotifyResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notify-guest [post]
func (h *NotifyHandler) NotifyGuest(c *gin.Context) {
	var req model.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Missing guestEmail or message"})
		return
	}

	sent, err := h.notifyService.NotifyGuest(c.Request.Context(), req.GuestEmail, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrNoGuestTokens) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("❌ Error notifying guest: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, model.NotifyResponse{Success: true, Sent: sent})
}
