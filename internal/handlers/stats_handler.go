package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func StatsDashboard(svc StatsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Dashboard(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "", gin.H{"stats": stats})
	}
}
