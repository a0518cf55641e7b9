package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles serves the local apartment gallery images referenced by
// recommendation cards, plus whatever else the frontend drops in the
// assets directory. Skipped when the directory does not exist.
func setupStaticFiles(router *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		log.Printf("⚠️  Static assets directory %s not found - gallery images will 404", dir)
		return
	}
	router.Static("/assets", dir)
	log.Printf("✅ Serving static assets from %s", dir)
}
