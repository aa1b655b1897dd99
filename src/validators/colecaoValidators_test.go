package validators

import (
	"strings"
	"testing"

	"github.com/colecionador/colecao-backend/src/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateFiltroTitulo(t *testing.T) {
	assert.Empty(t, ValidateFiltroTitulo(""))
	assert.Empty(t, ValidateFiltroTitulo(strings.Repeat("a", 255)))

	violations := ValidateFiltroTitulo(strings.Repeat("a", 256))
	require.Len(t, violations, 1)
	assert.Equal(t, "titulo", violations[0].Field)
}

func TestValidateCreateRequiredFields(t *testing.T) {
	violations := ValidateCreate(&dtos.ColecaoDTO{})
	require.Len(t, violations, 3)

	fields := []string{violations[0].Field, violations[1].Field, violations[2].Field}
	assert.Equal(t, []string{"titulo", "autor", "imagem"}, fields)
	assert.Equal(t, "O campo titulo é obrigatório", violations[0].Message)
}

func TestValidateCreateMissingSingleField(t *testing.T) {
	dto := dtos.ColecaoDTO{
		Titulo: strPtr("titulo"),
		Imagem: strPtr("imagem"),
	}

	violations := ValidateCreate(&dto)
	require.Len(t, violations, 1)
	assert.Equal(t, "autor", violations[0].Field)
}

func TestValidateCreateValid(t *testing.T) {
	dto := dtos.ColecaoDTO{
		Titulo:    strPtr("titulo"),
		Autor:     strPtr("autor"),
		Imagem:    strPtr("imagem"),
		Subtitulo: strPtr("subtitulo"),
	}
	assert.Empty(t, ValidateCreate(&dto))
}

func TestValidateCreateFieldTooLong(t *testing.T) {
	dto := dtos.ColecaoDTO{
		Titulo: strPtr(strings.Repeat("t", 256)),
		Autor:  strPtr("autor"),
		Imagem: strPtr("imagem"),
	}

	violations := ValidateCreate(&dto)
	require.Len(t, violations, 1)
	assert.Equal(t, "titulo", violations[0].Field)
	assert.Equal(t, "O campo titulo não pode exceder 255 caracteres", violations[0].Message)
}

func TestValidateUpdateChecksOnlyLength(t *testing.T) {
	// Absent fields are fine on update
	assert.Empty(t, ValidateUpdate(&dtos.ColecaoDTO{}))

	dto := dtos.ColecaoDTO{Subtitulo: strPtr(strings.Repeat("s", 300))}
	violations := ValidateUpdate(&dto)
	require.Len(t, violations, 1)
	assert.Equal(t, "subtitulo", violations[0].Field)
}

func TestValidateUpdateEveryFieldTooLong(t *testing.T) {
	long := strPtr(strings.Repeat("x", 256))
	dto := dtos.ColecaoDTO{Titulo: long, Autor: long, Imagem: long, Subtitulo: long}

	violations := ValidateUpdate(&dto)
	require.Len(t, violations, 4)
}

func TestValidateLengthCountsRunes(t *testing.T) {
	// 255 multibyte runes are still within the limit
	dto := dtos.ColecaoDTO{
		Titulo: strPtr(strings.Repeat("ã", 255)),
		Autor:  strPtr("autor"),
		Imagem: strPtr("imagem"),
	}
	assert.Empty(t, ValidateCreate(&dto))
}
