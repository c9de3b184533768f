package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cougcuts/internal/services"
	"cougcuts/pkg/utils"
)

type DocumentController struct {
	documentService services.RoutineDocumentService
}

func NewDocumentController(documentService services.RoutineDocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// Download godoc
// @Summary Download a routine guide
// @Description Serves the stored routine guide behind an expiring link
// @Tags Routines
// @Produce html
// @Param token path string true "Download token"
// @Success 200 {string} string "HTML document"
// @Failure 404 {object} utils.APIResponse
// @Router /routines/document/{token} [get]
func (d *DocumentController) Download(c *gin.Context) {
	doc, err := d.documentService.Open(c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename))
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc.Content)
}
