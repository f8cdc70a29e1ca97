package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/handlers"
	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"
	"car-rental-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	handler_mocks "car-rental-backend/internal/handlers/mocks"
)

func bookingRouter(svc handlers.BookingService) *gin.Engine {
	r := gin.New()
	auth := r.Group("/api", middleware.JWTAuth(testSecret))
	auth.POST("/bookings", middleware.RequireRole(models.RoleAdmin, models.RoleClient), handlers.BookingCreate(svc))
	auth.GET("/bookings/mine", middleware.RequireRole(models.RoleClient), handlers.BookingMine(svc))

	admin := auth.Group("", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/bookings", handlers.BookingList(svc))
	admin.PUT("/bookings/:id/status", handlers.BookingUpdateStatus(svc))
	admin.GET("/bookings/:id/contract", handlers.BookingContract(svc))
	return r
}

func approvedResult() services.BookingResult {
	return services.BookingResult{
		Booking: models.Booking{
			ID:         7,
			UserID:     2,
			CarID:      3,
			StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			Status:     models.BookingStatusApproved,
			TotalPrice: 600,
		},
		Notification: &services.Notification{
			Kind:   services.NotificationApproved,
			Locale: "en",
			Phone:  "212612345678",
			Link:   "https://web.whatsapp.com/send?phone=212612345678&text=hi",
		},
	}
}

func TestBookingUpdateStatus(t *testing.T) {
	t.Parallel()

	type mockBehavior func(s *handler_mocks.MockBookingService)

	tests := []struct {
		name         string
		id           string
		body         string
		role         string
		mockBehavior mockBehavior
		wantStatus   int
		wantContains string
	}{
		{
			name: "approved with whatsapp link",
			id:   "7",
			body: `{"status":"approved","locale":"en"}`,
			role: models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {
				s.EXPECT().Transition(gomock.Any(), uint(7), models.BookingStatusApproved, "en").Return(approvedResult(), nil)
			},
			wantStatus:   http.StatusOK,
			wantContains: `"link":"https://web.whatsapp.com/send?phone=212612345678`,
		},
		{
			name: "illegal transition",
			id:   "7",
			body: `{"status":"pending"}`,
			role: models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {
				s.EXPECT().Transition(gomock.Any(), uint(7), models.BookingStatusPending, "").
					Return(services.BookingResult{}, errors.Wrap(errs.ErrInvalidTransition, "completed -> pending"))
			},
			wantStatus:   http.StatusConflict,
			wantContains: errs.ErrInvalidTransition.Error(),
		},
		{
			name: "incomplete booking",
			id:   "7",
			body: `{"status":"approved"}`,
			role: models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {
				s.EXPECT().Transition(gomock.Any(), uint(7), models.BookingStatusApproved, "").
					Return(services.BookingResult{}, errs.ErrIncompleteBooking)
			},
			wantStatus:   http.StatusBadRequest,
			wantContains: errs.ErrIncompleteBooking.Error(),
		},
		{
			name: "not found",
			id:   "70",
			body: `{"status":"cancelled"}`,
			role: models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {
				s.EXPECT().Transition(gomock.Any(), uint(70), models.BookingStatusCancelled, "").
					Return(services.BookingResult{}, errs.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "unknown status rejected by validation",
			id:           "7",
			body:         `{"status":"archived"}`,
			role:         models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "Invalid request data",
		},
		{
			name:         "unsupported locale",
			id:           "7",
			body:         `{"status":"approved","locale":"de"}`,
			role:         models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "bad id",
			id:           "abc",
			body:         `{"status":"approved"}`,
			role:         models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {},
			wantStatus:   http.StatusBadRequest,
			wantContains: "Invalid id",
		},
		{
			name:         "client forbidden",
			id:           "7",
			body:         `{"status":"approved"}`,
			role:         models.RoleClient,
			mockBehavior: func(s *handler_mocks.MockBookingService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name: "unexpected error hidden",
			id:   "7",
			body: `{"status":"completed"}`,
			role: models.RoleAdmin,
			mockBehavior: func(s *handler_mocks.MockBookingService) {
				s.EXPECT().Transition(gomock.Any(), uint(7), models.BookingStatusCompleted, "").
					Return(services.BookingResult{}, errors.New("connection reset"))
			},
			wantStatus:   http.StatusInternalServerError,
			wantContains: "Internal server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			svc := handler_mocks.NewMockBookingService(c)
			tt.mockBehavior(svc)

			w := doRequest(bookingRouter(svc), http.MethodPut, "/api/bookings/"+tt.id+"/status", tt.body, bearer(t, 1, tt.role))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantContains != "" {
				require.Contains(t, w.Body.String(), tt.wantContains)
			}
			require.NotContains(t, w.Body.String(), "connection reset")
		})
	}
}

func TestBookingCreate_ActorFromToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockBookingService(c)

	body := `{"user_id":99,"car_id":3,"start_date":"2024-06-01","end_date":"2024-06-03","total_price":1}`
	svc.EXPECT().
		Create(gomock.Any(), gomock.Any(), services.Actor{ID: 5, Role: models.RoleClient}, "ar").
		DoAndReturn(func(_ context.Context, req models.BookingRequest, _ services.Actor, _ string) (services.BookingResult, error) {
			require.Equal(t, uint(3), req.CarID)
			return services.BookingResult{Booking: models.Booking{ID: 11, Status: models.BookingStatusPending}}, nil
		})

	w := doRequest(bookingRouter(svc), http.MethodPost, "/api/bookings?locale=ar", body, bearer(t, 5, models.RoleClient))
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"status":"pending"`)
	require.NotContains(t, w.Body.String(), `"notification"`)
}

func TestBookingList_StatusFilter(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockBookingService(c)
	svc.EXPECT().List(gomock.Any(), models.BookingFilter{Status: models.BookingStatusPending}).
		Return([]models.Booking{{ID: 1, Status: models.BookingStatusPending}}, nil)

	r := bookingRouter(svc)
	w := doRequest(r, http.MethodGet, "/api/bookings?status=PENDING", "", bearer(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"bookings":[`)

	w = doRequest(r, http.MethodGet, "/api/bookings?status=lost", "", bearer(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingContract(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockBookingService(c)
	layout := services.ContractLayout{
		FileName: "contract_booking_7.pdf",
		Pages:    1,
		Lines:    []services.ContractLine{{Page: 1, X: 20, Y: 20, FontSize: 18, Text: "Contrat de Location"}},
	}
	svc.EXPECT().Contract(gomock.Any(), uint(7)).Return(layout, []byte("%PDF-1.3"), nil).Times(2)
	svc.EXPECT().Contract(gomock.Any(), uint(8)).Return(services.ContractLayout{}, nil, errs.ErrNotFound)

	r := bookingRouter(svc)
	auth := bearer(t, 1, models.RoleAdmin)

	w := doRequest(r, http.MethodGet, "/api/bookings/7/contract", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="contract_booking_7.pdf"`, w.Header().Get("Content-Disposition"))
	require.Equal(t, "%PDF-1.3", w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/bookings/7/contract?format=json", "", auth)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"text":"Contrat de Location"`)

	w = doRequest(r, http.MethodGet, "/api/bookings/8/contract", "", auth)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingMine(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockBookingService(c)
	svc.EXPECT().ListForUser(gomock.Any(), uint(5)).Return(nil, nil)

	r := bookingRouter(svc)
	w := doRequest(r, http.MethodGet, "/api/bookings/mine", "", bearer(t, 5, models.RoleClient))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"bookings":[]}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/api/bookings/mine", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingCreate_InvalidDate(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockBookingService(c)
	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(services.BookingResult{}, errors.Wrap(errs.ErrInvalidDateRange, "start_date"))

	body := `{"user_id":2,"car_id":3,"start_date":"not-a-date","end_date":"2024-06-03"}`
	w := doRequest(bookingRouter(svc), http.MethodPost, "/api/bookings", body, bearer(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"message":"invalid date range"}`, w.Body.String())
}
