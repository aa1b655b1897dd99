package models

type ColecaoModel struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Titulo    string `json:"titulo" gorm:"column:titulo;type:varchar(255);not null"`
	Autor     string `json:"autor" gorm:"column:autor;type:varchar(255);not null"`
	Imagem    string `json:"imagem" gorm:"column:imagem;type:varchar(255)"`
	Subtitulo string `json:"subtitulo" gorm:"column:subtitulo;type:varchar(255)"`
}
