package handler

import (
	"net/http"

	"carparts/internal/app/dto"
	"carparts/internal/app/locale"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SendContactMessage пересылает сообщение формы обратной связи по почте
// @Summary Отправка сообщения
// @Description Собирает локализованное письмо и отправляет его через SMTP
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Сообщение"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /contact [post]
func (h *Handler) SendContactMessage(c *gin.Context) {
	var request dto.ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorHandler(c, http.StatusBadRequest, err)
		return
	}

	subject := locale.Localize(c, "contact.subject", nil)
	body := locale.Localize(c, "contact.body", map[string]any{
		"Name":    request.Name,
		"Phone":   request.Phone,
		"Comment": request.Comment,
	})

	if err := h.Mailer.Send(subject, body); err != nil {
		logrus.Error("error sending contact mail: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "contact.send_failed", nil)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: locale.Localize(c, "contact.sent", nil),
	})
}

// GetContactInfo возвращает контактную карточку, все подписи локализованы
// @Summary Контактная информация
// @Tags Contact
// @Produce json
// @Success 200 {object} dto.ContactInfoResponse
// @Router /contact [get]
func (h *Handler) GetContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ContactInfoResponse{
		Title:                 locale.Localize(c, "contact.title", nil),
		Contacts:              locale.Localize(c, "contact.contacts_label", nil),
		Description:           locale.Localize(c, "contact.description", nil),
		PhoneLabel:            locale.Localize(c, "contact.phone_label", nil),
		Phone:                 locale.Localize(c, "contact.phone", nil),
		Email:                 locale.Localize(c, "contact.email", nil),
		Address:               locale.Localize(c, "contact.address", nil),
		FormTitle:             locale.Localize(c, "contact.form_title", nil),
		NameLabel:             locale.Localize(c, "contact.name_label", nil),
		PhoneLabelForm:        locale.Localize(c, "contact.phone_label_form", nil),
		CommentLabel:          locale.Localize(c, "contact.comment_label", nil),
		SubmitButton:          locale.Localize(c, "contact.submit_button", nil),
		DataProcessingConsent: locale.Localize(c, "contact.consent", nil),
	})
}
