package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router creates the gin engine with all routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(), gin.Recovery())
	if mw := CORS(s.cfg.AllowedOrigins); mw != nil {
		r.Use(mw)
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	r.GET("/", s.handleIndex)
	r.GET("/data.json", s.handleData)
	r.GET("/healthz", handleHealth)

	api := r.Group("/api")
	{
		api.GET("/status", s.handleStatus)
		api.GET("/days/:day", s.handleDay)
		api.GET("/budget", s.handleBudget)
		api.GET("/budget/:category", s.handleBudgetCategory)
	}

	return r
}
