package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UpdateStatusRequest - тело PUT /bookings/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
	Locale string `json:"locale" binding:"omitempty,locale"`
}

func toBookingResponses(bookings []models.Booking) []models.BookingResponse {
	out := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].ToResponse())
	}
	return out
}

func bookingPayload(res services.BookingResult) gin.H {
	payload := gin.H{"booking": res.Booking.ToResponse()}
	if res.Notification != nil {
		payload["notification"] = res.Notification
	}
	return payload
}

// requestLocale: ?locale=, затем первый тег Accept-Language. Пустая строка - язык по умолчанию.
func requestLocale(c *gin.Context) string {
	if l := c.Query("locale"); l != "" {
		return strings.ToLower(l)
	}
	al := c.GetHeader("Accept-Language")
	if al == "" {
		return ""
	}
	tag := strings.TrimSpace(strings.Split(al, ",")[0])
	tag = strings.Split(tag, ";")[0]
	return strings.ToLower(strings.Split(tag, "-")[0])
}

func BookingList(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter models.BookingFilter
		if s := c.Query("status"); s != "" {
			status, err := models.ParseBookingStatus(s)
			if err != nil {
				respondError(c, err)
				return
			}
			filter.Status = status
		}

		bookings, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"bookings": toBookingResponses(bookings)})
	}
}

func BookingGet(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		booking, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"booking": booking.ToResponse()})
	}
}

// BookingMine - бронирования текущего клиента
func BookingMine(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.ListForUser(c.Request.Context(), middleware.AccountID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"bookings": toBookingResponses(bookings)})
	}
}

// BookingCreate: администратор сразу подтверждает бронирование, клиент создает заявку
func BookingCreate(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		actor := services.Actor{ID: middleware.AccountID(c), Role: middleware.Role(c)}
		res, err := svc.Create(c.Request.Context(), req, actor, requestLocale(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "Booking created", bookingPayload(res))
	}
}

func BookingReplace(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req models.BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		res, err := svc.Replace(c.Request.Context(), id, req, requestLocale(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Booking updated", bookingPayload(res))
	}
}

// BookingUpdateStatus переводит бронирование в новый статус и возвращает ссылку WhatsApp для клиента
func BookingUpdateStatus(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		target, err := models.ParseBookingStatus(req.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		locale := strings.ToLower(req.Locale)
		if locale == "" {
			locale = requestLocale(c)
		}

		res, err := svc.Transition(c.Request.Context(), id, target, locale)
		middleware.TrackBookingTransition(string(target), err)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Booking status updated", bookingPayload(res))
	}
}

// BookingContract отдает договор аренды в PDF; ?format=json возвращает разметку строк
func BookingContract(svc BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		layout, pdf, err := svc.Contract(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		middleware.ContractsGenerated.Inc()

		if c.Query("format") == "json" {
			respond(c, http.StatusOK, "", gin.H{"contract": layout})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, layout.FileName))
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
