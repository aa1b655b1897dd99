package seed

import (
	"log"

	"github.com/colecionador/colecao-backend/src/models"
	"gorm.io/gorm"
)

func Seed(db *gorm.DB) {
	colecoes := []models.ColecaoModel{
		{Titulo: "Dom Casmurro", Autor: "Machado de Assis", Imagem: "https://drive.google.com/file/d/1a2b3c4d5e/view", Subtitulo: "Romance"},
		{Titulo: "Grande Sertão: Veredas", Autor: "João Guimarães Rosa", Imagem: "https://drive.google.com/file/d/2b3c4d5e6f/view"},
		{Titulo: "Vidas Secas", Autor: "Graciliano Ramos", Imagem: "https://drive.google.com/file/d/3c4d5e6f7g/view", Subtitulo: "Edição comemorativa"},
	}

	for _, colecao := range colecoes {
		var existing models.ColecaoModel
		result := db.Where("titulo = ?", colecao.Titulo).First(&existing)
		if result.Error == nil {
			log.Printf("Colecao '%s' already exists, skipping\n", colecao.Titulo)
			continue
		}
		if err := db.Create(&colecao).Error; err != nil {
			log.Printf("Failed to create colecao '%s': %v\n", colecao.Titulo, err)
		} else {
			log.Printf("Colecao '%s' created\n", colecao.Titulo)
		}
	}
}
