package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the HTML pages
type PageController struct{}

// NewPageController creates a new PageController
func NewPageController() *PageController {
	return &PageController{}
}

// Index renders the landing page
func (c *PageController) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", gin.H{"title": "Student Roster"})
}

// Admin renders the roster administration page
func (c *PageController) Admin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "admin.html", gin.H{"title": "Student Roster Admin"})
}
