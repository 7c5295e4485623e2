package http

import "github.com/gin-gonic/gin"

// Register attaches the student project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.get)
	rg.POST("", h.save)
	rg.GET("/poster", h.renderPoster)
	rg.GET("/themes", h.themes)
}

// RegisterUpload attaches the poster publish route.
func (h *Handler) RegisterUpload(rg *gin.RouterGroup) {
	rg.POST("/upload", h.attachPoster)
}

// Register attaches the teacher routes to the given router group.
func (h *TeacherHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/export-spreadsheet", h.exportSpreadsheet)
}
