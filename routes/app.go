package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/controller"
	"github.com/Dheemanth-SM-07/Modern-App-Assignment/hub"
)

// AppRoute wires the landing, health and websocket notification endpoints.
func AppRoute(router *gin.Engine, hc *controller.HomeController, h *hub.Hub) {
	router.GET("/", hc.Index)
	router.GET("/healthz", hc.Health)
	router.GET("/hubs/notifications", h.Handler())
}
