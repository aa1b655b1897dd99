package validators

import (
	"fmt"
	"unicode/utf8"

	"github.com/colecionador/colecao-backend/src/dtos"
)

// MaxFieldLength is the column limit shared by every Colecao string field.
const MaxFieldLength = 255

// Violation describes a single field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func requiredViolation(field string) Violation {
	return Violation{
		Field:   field,
		Message: fmt.Sprintf("O campo %s é obrigatório", field),
	}
}

func lengthViolation(field string) Violation {
	return Violation{
		Field:   field,
		Message: fmt.Sprintf("O campo %s não pode exceder %d caracteres", field, MaxFieldLength),
	}
}

func checkLength(field string, value *string, violations []Violation) []Violation {
	if value != nil && utf8.RuneCountInString(*value) > MaxFieldLength {
		violations = append(violations, lengthViolation(field))
	}
	return violations
}

// ValidateFiltroTitulo validates the optional titulo query filter of the list operation.
func ValidateFiltroTitulo(titulo string) []Violation {
	var violations []Violation
	return checkLength("titulo", &titulo, violations)
}

// ValidateCreate validates a create request: titulo, autor and imagem are
// mandatory and every present field must fit the column limit.
func ValidateCreate(dto *dtos.ColecaoDTO) []Violation {
	var violations []Violation
	if dto.Titulo == nil {
		violations = append(violations, requiredViolation("titulo"))
	}
	if dto.Autor == nil {
		violations = append(violations, requiredViolation("autor"))
	}
	if dto.Imagem == nil {
		violations = append(violations, requiredViolation("imagem"))
	}
	return appendLengthViolations(dto, violations)
}

// ValidateUpdate validates an update request: only present fields are checked,
// and only for length.
func ValidateUpdate(dto *dtos.ColecaoDTO) []Violation {
	return appendLengthViolations(dto, nil)
}

func appendLengthViolations(dto *dtos.ColecaoDTO, violations []Violation) []Violation {
	violations = checkLength("titulo", dto.Titulo, violations)
	violations = checkLength("autor", dto.Autor, violations)
	violations = checkLength("imagem", dto.Imagem, violations)
	violations = checkLength("subtitulo", dto.Subtitulo, violations)
	return violations
}
