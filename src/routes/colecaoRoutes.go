package routes

import (
	"github.com/colecionador/colecao-backend/src/controllers"
	"github.com/colecionador/colecao-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupColecaoRoutes(router *gin.Engine, service *services.ColecaoService) {
	colecaoController := controllers.NewColecaoController(service)

	colecao := router.Group("/colecao")
	{
		colecao.GET("", colecaoController.GetColecoes)
		colecao.GET("/export", colecaoController.ExportColecoes)
		colecao.POST("/import", colecaoController.ImportColecoes)
		colecao.GET("/:id", colecaoController.GetColecaoById)
		colecao.GET("/:id/imagem", colecaoController.ServeImagem)
		colecao.POST("", colecaoController.CreateColecao)
		colecao.PUT("/:id", colecaoController.UpdateColecao)
		colecao.DELETE("/:id", colecaoController.DeleteColecao)
	}
}
