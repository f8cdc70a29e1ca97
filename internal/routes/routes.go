package routes

import (
	"car-rental-backend/internal/handlers"
	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Services - зависимости обработчиков API
type Services struct {
	Auth      handlers.AuthService
	Users     handlers.UserService
	Cars      handlers.CarService
	Bookings  handlers.BookingService
	Stats     handlers.StatsService
	JWTSecret string
	UploadDir string
}

// Частота запросов к эндпоинтам входа и регистрации с одного ip
const (
	authRPS   rate.Limit = 1
	authBurst            = 5
)

func SetupRoutes(api *gin.RouterGroup, s Services) {
	authLimit := middleware.NewRateLimiter(authRPS, authBurst).Middleware()
	jwtAuth := middleware.JWTAuth(s.JWTSecret)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Администратор агентства
	admins := api.Group("/admins")
	{
		admins.POST("/register", authLimit, handlers.AdminRegister(s.Auth))
		admins.POST("/verify", authLimit, handlers.AdminVerify(s.Auth))
		admins.POST("/login", authLimit, handlers.AdminLogin(s.Auth))
		admins.GET("/profile", jwtAuth, adminOnly, handlers.AdminProfile(s.Auth))
	}

	// Клиенты
	users := api.Group("/users")
	{
		users.POST("/register", authLimit, handlers.UserRegister(s.Users))
		users.POST("/login", authLimit, handlers.UserLogin(s.Users))
		users.GET("/me", jwtAuth, middleware.RequireRole(models.RoleClient), handlers.UserMe(s.Users))

		manage := users.Group("", jwtAuth, adminOnly)
		manage.GET("", handlers.UserList(s.Users))
		manage.POST("", handlers.UserCreate(s.Users))
		manage.GET("/:id", handlers.UserGet(s.Users))
		manage.PUT("/:id", handlers.UserUpdate(s.Users))
		manage.DELETE("/:id", handlers.UserDelete(s.Users))
	}

	// Каталог машин
	cars := api.Group("/cars")
	{
		cars.GET("", handlers.CarList(s.Cars))
		cars.GET("/:id", handlers.CarGet(s.Cars))

		manage := cars.Group("", jwtAuth, adminOnly)
		manage.POST("", handlers.CarCreate(s.Cars))
		manage.POST("/upload", handlers.UploadFile(s.UploadDir))
		manage.PUT("/:id", handlers.CarUpdate(s.Cars))
		manage.DELETE("/:id", handlers.CarDelete(s.Cars))
	}

	// Бронирования
	bookings := api.Group("/bookings", jwtAuth)
	{
		bookings.POST("", middleware.RequireRole(models.RoleAdmin, models.RoleClient), handlers.BookingCreate(s.Bookings))
		bookings.GET("/mine", middleware.RequireRole(models.RoleClient), handlers.BookingMine(s.Bookings))

		manage := bookings.Group("", adminOnly)
		manage.GET("", handlers.BookingList(s.Bookings))
		manage.GET("/:id", handlers.BookingGet(s.Bookings))
		manage.PUT("/:id", handlers.BookingReplace(s.Bookings))
		manage.PUT("/:id/status", handlers.BookingUpdateStatus(s.Bookings))
		manage.GET("/:id/contract", handlers.BookingContract(s.Bookings))
	}

	api.GET("/stats", jwtAuth, adminOnly, handlers.StatsDashboard(s.Stats))
}
