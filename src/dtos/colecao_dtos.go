package dtos

import "github.com/colecionador/colecao-backend/src/models"

// ColecaoDTO represents the write-request body for a Colecao. Fields are
// pointers so an absent field can be told apart from an empty string.
type ColecaoDTO struct {
	Titulo    *string `json:"titulo"`
	Autor     *string `json:"autor"`
	Imagem    *string `json:"imagem"`
	Subtitulo *string `json:"subtitulo"`
}

// ToModel maps the DTO onto a persistence model, treating absent fields as empty.
func (d *ColecaoDTO) ToModel() models.ColecaoModel {
	colecao := models.ColecaoModel{}
	if d.Titulo != nil {
		colecao.Titulo = *d.Titulo
	}
	if d.Autor != nil {
		colecao.Autor = *d.Autor
	}
	if d.Imagem != nil {
		colecao.Imagem = *d.Imagem
	}
	if d.Subtitulo != nil {
		colecao.Subtitulo = *d.Subtitulo
	}
	return colecao
}
