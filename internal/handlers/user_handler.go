package handlers

import (
	"net/http"

	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func toUserResponses(users []models.User) []models.UserResponse {
	out := make([]models.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToResponse())
	}
	return out
}

func UserList(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"users": toUserResponses(users)})
	}
}

func UserGet(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		user, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"user": user.ToResponse()})
	}
}

func UserCreate(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		user, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "User created", gin.H{"user": user.ToResponse()})
	}
}

func UserUpdate(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req models.UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		user, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "User updated", gin.H{"user": user.ToResponse()})
	}
}

func UserDelete(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "User deleted", nil)
	}
}

// UserRegister - регистрация клиента на сайте
func UserRegister(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserRegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		token, user, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "", gin.H{"token": token, "user": user.ToResponse()})
	}
}

func UserLogin(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UserLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		token, user, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"token": token, "user": user.ToResponse()})
	}
}

// UserMe возвращает профиль клиента по токену
func UserMe(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.Get(c.Request.Context(), middleware.AccountID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"user": user.ToResponse()})
	}
}
