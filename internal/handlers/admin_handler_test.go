package handlers_test

import (
	"net/http"
	"testing"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/handlers"
	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	handler_mocks "car-rental-backend/internal/handlers/mocks"
)

func adminRouter(svc handlers.AuthService) *gin.Engine {
	r := gin.New()
	r.POST("/api/admins/register", handlers.AdminRegister(svc))
	r.POST("/api/admins/verify", handlers.AdminVerify(svc))
	r.POST("/api/admins/login", handlers.AdminLogin(svc))
	r.GET("/api/admins/profile", middleware.JWTAuth(testSecret), middleware.RequireRole(models.RoleAdmin), handlers.AdminProfile(svc))
	return r
}

const registerBody = `{"lastName":"Alaoui","firstName":"Youssef","agencyName":"Atlas Cars","address":"12 rue Fes",` +
	`"phone":"0612345678","email":"admin@atlas.ma","city":"Rabat","password":"secret1"}`

func TestAdminRegister(t *testing.T) {
	t.Parallel()

	type mockBehavior func(s *handler_mocks.MockAuthService)

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name: "ok",
			body: registerBody,
			mockBehavior: func(s *handler_mocks.MockAuthService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uint(1), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"success":true,"message":"Verification code sent to email","tempUserId":1}`,
		},
		{
			name: "admin already exists",
			body: registerBody,
			mockBehavior: func(s *handler_mocks.MockAuthService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uint(0), errs.ErrAdminExists)
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"success":false,"message":"` + errs.ErrAdminExists.Error() + `"}`,
		},
		{
			name: "mail relay down",
			body: registerBody,
			mockBehavior: func(s *handler_mocks.MockAuthService) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(uint(0), errors.New("dial tcp: refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"message":"Internal server error"}`,
		},
		{
			name:         "short password",
			body:         `{"lastName":"A","firstName":"B","agencyName":"C","address":"D","phone":"1","email":"a@b.ma","city":"E","password":"123"}`,
			mockBehavior: func(s *handler_mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"success":false,"message":"Invalid request data"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			svc := handler_mocks.NewMockAuthService(c)
			tt.mockBehavior(svc)

			w := doRequest(adminRouter(svc), http.MethodPost, "/api/admins/register", tt.body, "")
			require.Equal(t, tt.wantStatus, w.Code)
			require.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAdminVerifyAndLogin(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockAuthService(c)
	admin := models.Admin{ID: 1, LastName: "Alaoui", FirstName: "Youssef", Email: "admin@atlas.ma", Password: "hash"}

	svc.EXPECT().Verify(gomock.Any(), uint(1), "123456").Return("tok", admin, nil)
	svc.EXPECT().Verify(gomock.Any(), uint(1), "000000").Return("", models.Admin{}, errs.ErrInvalidCode)
	svc.EXPECT().Login(gomock.Any(), "Alaoui", "secret1").Return("tok", admin, nil)
	svc.EXPECT().Login(gomock.Any(), "Alaoui", "wrong").Return("", models.Admin{}, errs.ErrInvalidCredentials)

	r := adminRouter(svc)

	w := doRequest(r, http.MethodPost, "/api/admins/verify", `{"userId":1,"code":"123456"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token":"tok"`)
	require.NotContains(t, w.Body.String(), "hash")

	w = doRequest(r, http.MethodPost, "/api/admins/verify", `{"userId":1,"code":"000000"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/admins/login", `{"login":"Alaoui","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"admin"`)

	w = doRequest(r, http.MethodPost, "/api/admins/login", `{"login":"Alaoui","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"success":false,"message":"`+errs.ErrInvalidCredentials.Error()+`"}`, w.Body.String())
}

func TestAdminProfile(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockAuthService(c)
	code := "123456"
	svc.EXPECT().Profile(gomock.Any(), uint(1)).
		Return(models.Admin{ID: 1, Email: "admin@atlas.ma", Password: "hash", VerificationCode: &code}, nil)

	r := adminRouter(svc)
	w := doRequest(r, http.MethodGet, "/api/admins/profile", "", bearer(t, 1, models.RoleAdmin))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"email":"admin@atlas.ma"`)
	require.NotContains(t, w.Body.String(), "hash")
	require.NotContains(t, w.Body.String(), code)

	w = doRequest(r, http.MethodGet, "/api/admins/profile", "", bearer(t, 9, models.RoleClient))
	require.Equal(t, http.StatusForbidden, w.Code)
}
