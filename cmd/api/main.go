package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"station-sizing/internal/api/handlers"
	"station-sizing/internal/api/middleware"
	"station-sizing/internal/api/stream"
	"station-sizing/internal/config"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	wd, err := os.Getwd()
	if err == nil {
		log.Printf("Working directory: %s", wd)
	}

	tables := config.DefaultTables()
	consts := config.DefaultConstants()

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	projectHandler := handlers.NewProjectHandler()
	sizingHandler := handlers.NewSizingHandler(tables, consts)
	v2gHandler := handlers.NewV2GHandler(consts, projectHandler)
	tableHandler := handlers.NewTableHandler(tables)
	rankHandler := handlers.NewRankHandler(projectHandler, tables, consts)
	streamHandler := stream.NewHandler(consts, 100*time.Millisecond)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/sizing", sizingHandler.RunSizing)
		api.POST("/load-curve", sizingHandler.RunLoadCurve)
		api.POST("/v2g", v2gHandler.RunV2G)
		api.POST("/v2g/compare", v2gHandler.RunV2GCompare)

		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id/v2g", v2gHandler.RunV2GForProject)
		api.GET("/countries", tableHandler.ListCountries)
		api.GET("/tables/:country/transformers", tableHandler.GetTransformerTable)
		api.GET("/tables/:country/ess-models", tableHandler.GetEssModelTable)

		api.GET("/rank", rankHandler.RankProjects)
		api.GET("/v2g/stream", streamHandler.StreamV2G)
	}

	// Serve static files from web/dist (if it exists), so the same binary
	// can host a bundled dashboard build.
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
