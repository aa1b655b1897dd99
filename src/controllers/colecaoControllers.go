package controllers

import (
	"net/http"
	"strconv"

	"github.com/colecionador/colecao-backend/src/dtos"
	"github.com/colecionador/colecao-backend/src/services"
	"github.com/colecionador/colecao-backend/src/utils"
	"github.com/colecionador/colecao-backend/src/validators"
	"github.com/gin-gonic/gin"
)

type ColecaoController struct {
	service *services.ColecaoService
}

func NewColecaoController(service *services.ColecaoService) *ColecaoController {
	return &ColecaoController{service: service}
}

// GetColecoes handles GET requests to retrieve all colecao records,
// optionally filtered by the titulo query parameter
func (c *ColecaoController) GetColecoes(ctx *gin.Context) {
	tituloFiltro := ctx.Query("titulo")
	if violations := validators.ValidateFiltroTitulo(tituloFiltro); len(violations) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	var titulo *string
	if tituloFiltro != "" {
		titulo = &tituloFiltro
	}

	colecoes, err := c.service.GetAllColecoes(titulo)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, colecoes)
}

// GetColecaoById handles GET requests to retrieve a single colecao record
func (c *ColecaoController) GetColecaoById(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	colecao, err := c.service.GetColecaoByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Colecao not found"})
		return
	}
	ctx.JSON(http.StatusOK, colecao)
}

// CreateColecao handles POST requests to create a new colecao record
func (c *ColecaoController) CreateColecao(ctx *gin.Context) {
	var dto dtos.ColecaoDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := validators.ValidateCreate(&dto); len(violations) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	colecao := dto.ToModel()
	createdColecao, err := c.service.CreateColecao(&colecao)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, createdColecao)
}

// UpdateColecao handles PUT requests to update an existing colecao record
func (c *ColecaoController) UpdateColecao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var dto dtos.ColecaoDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := validators.ValidateUpdate(&dto); len(violations) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	updatedData := dto.ToModel()
	updatedColecao, err := c.service.UpdateColecao(id, &updatedData)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, updatedColecao)
}

// DeleteColecao handles DELETE requests to remove a colecao record
func (c *ColecaoController) DeleteColecao(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	if err := c.service.DeleteColecao(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Colecao removida com sucesso!"})
}

// ExportColecoes handles GET requests to download all colecao records as xlsx
func (c *ColecaoController) ExportColecoes(ctx *gin.Context) {
	f, err := c.service.ExportColecoesToExcel()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Header("Content-Disposition", `attachment; filename="colecoes.xlsx"`)
	if err := f.Write(ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
}

// ImportColecoes handles POST requests with a multipart xlsx file of colecao rows
func (c *ColecaoController) ImportColecoes(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Arquivo 'file' é obrigatório"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := c.service.ImportColecoesFromExcel(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"imported": result.Imported,
		"errors":   result.Errors,
	})
}

// ServeImagem handles GET requests to stream the image of a colecao. Google
// Drive links are resolved and streamed through; other URLs are redirected.
func (c *ColecaoController) ServeImagem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	colecao, err := c.service.GetColecaoByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Colecao not found"})
		return
	}

	if colecao.Imagem == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Colecao has no image"})
		return
	}

	if !utils.IsGoogleDriveURL(colecao.Imagem) {
		ctx.Redirect(http.StatusFound, colecao.Imagem)
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(colecao.Imagem)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, contentType, err := utils.DownloadImageFromGoogleDrive(fileID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	// Cache for 1 day (images rarely change)
	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.DataFromReader(http.StatusOK, -1, contentType, body, nil)
}
