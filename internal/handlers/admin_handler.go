package handlers

import (
	"net/http"

	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminRegister создает администратора и отправляет код подтверждения на email.
func AdminRegister(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdminRegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		id, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		respond(c, http.StatusCreated, "Verification code sent to email", gin.H{"tempUserId": id})
	}
}

func AdminVerify(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdminVerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		token, admin, err := svc.Verify(c.Request.Context(), req.UserID, req.Code)
		if err != nil {
			respondError(c, err)
			return
		}

		respond(c, http.StatusOK, "Account verified", gin.H{
			"token": token,
			"admin": admin.ToResponse(),
		})
	}
}

func AdminLogin(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}

		token, admin, err := svc.Login(c.Request.Context(), req.Login, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		respond(c, http.StatusOK, "", gin.H{
			"token": token,
			"admin": admin.ToResponse(),
		})
	}
}

func AdminProfile(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := svc.Profile(c.Request.Context(), middleware.AccountID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"admin": admin})
	}
}
