package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/portkey-planner/assets"
)

// SetupAssets configures static asset serving and the planner page
func SetupAssets(r *gin.Engine) error {
	staticFiles, err := fs.Sub(assets.Assets, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/assets", http.FS(staticFiles))

	// http.FileServer redirects bare index.html requests, so the page bytes
	// are served directly.
	index, err := assets.Assets.ReadFile("static/index.html")
	if err != nil {
		return err
	}
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	return nil
}
