package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	apiconfig "station-sizing/internal/config"
)

// ProjectInfo summarizes one on-disk project file for the listing
// endpoint.
type ProjectInfo struct {
	ID      string `json:"id"`
	Country string `json:"country"`
	File    string `json:"file"`
}

// ProjectHandler lists the project YAML files available to load by ID.
type ProjectHandler struct {
	projectDir string
}

// NewProjectHandler resolves the project directory from PROJECT_DIR, or
// "./examples/projects" relative to the working directory.
func NewProjectHandler() *ProjectHandler {
	dir := os.Getenv("PROJECT_DIR")
	if dir == "" {
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "projects")
		} else {
			dir = "./examples/projects"
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &ProjectHandler{projectDir: dir}
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := []ProjectInfo{}

	entries, err := os.ReadDir(h.projectDir)
	if err != nil {
		log.Printf("ProjectHandler: failed to read project directory %s: %v", h.projectDir, err)
		c.JSON(http.StatusOK, gin.H{"projects": projects})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(h.projectDir, entry.Name())
		project, err := apiconfig.LoadUnchecked(path)
		if err != nil {
			log.Printf("ProjectHandler: skipping invalid project file %s: %v", path, err)
			continue
		}
		projects = append(projects, ProjectInfo{
			ID:      strings.TrimSuffix(entry.Name(), ".yaml"),
			Country: project.Station.Country,
			File:    path,
		})
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProjectPath resolves a project ID to its on-disk YAML path.
func (h *ProjectHandler) GetProjectPath(id string) string {
	return filepath.Join(h.projectDir, id+".yaml")
}
