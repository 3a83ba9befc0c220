package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dheemanth-SM-07/Modern-App-Assignment/service"
)

// HomeController serves the landing status and health endpoints.
type HomeController struct {
	svc *service.ProductService
}

func NewHomeController(svc *service.ProductService) *HomeController {
	return &HomeController{svc: svc}
}

// Index reports the product count. A store failure degrades to a
// placeholder instead of an error response.
func (hc *HomeController) Index(c *gin.Context) {
	count, err := hc.svc.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"productCount": "N/A (DB not connected)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"productCount": count})
}

func (hc *HomeController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
