package handlers

import (
	"net/http"
	"strconv"

	"car-rental-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func toCarResponses(cars []models.Car) []models.CarResponse {
	out := make([]models.CarResponse, 0, len(cars))
	for i := range cars {
		out = append(out, cars[i].ToResponse())
	}
	return out
}

// CarList - публичный каталог, ?available=true оставляет только свободные машины
func CarList(svc CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		onlyAvailable, _ := strconv.ParseBool(c.Query("available"))
		cars, err := svc.List(c.Request.Context(), onlyAvailable)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"cars": toCarResponses(cars)})
	}
}

func CarGet(svc CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		car, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"car": car.ToResponse()})
	}
}

func CarCreate(svc CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CarRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		car, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, "Car created", gin.H{"car": car.ToResponse()})
	}
}

// CarUpdate принимает как полную машину, так и только {availability}
func CarUpdate(svc CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var patch models.CarPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondBindError(c, err)
			return
		}
		car, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Car updated", gin.H{"car": car.ToResponse()})
	}
}

func CarDelete(svc CarService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "Car deleted", nil)
	}
}
