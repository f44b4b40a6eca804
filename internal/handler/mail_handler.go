package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hotelguestmodule/hotelchat-api/internal/model"
)

// CheckInMailer delivers the check-in welcome email
type CheckInMailer interface {
	SendCheckIn(toEmail, name, room, hotel string) error
}

// MailHandler handles the check-in email endpoint
type MailHandler struct {
	mailer CheckInMailer
}

func NewMailHandler(mailer CheckInMailer) *MailHandler {
	return &MailHandler{mailer: mailer}
}

// SendEmail godoc
// @Summary Send a check-in email with a verification deep link
// @Tags Mail
// @Accept json
// @Produce json
// @Param body body model.SendEmailRequest true "Check-in details"
// @Success 200 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /send-email [post]
func (h *MailHandler) SendEmail(c *gin.Context) {
	var req model.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.mailer.SendCheckIn(req.Email, req.Name, req.Room, req.Hotel); err != nil {
		log.Printf("❌ Email send error: %v", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Email send failed"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Success: true})
}
