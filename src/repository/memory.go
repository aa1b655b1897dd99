package repository

import (
	"sort"
	"strings"
	"sync"

	"github.com/colecionador/colecao-backend/src/models"
	"gorm.io/gorm"
)

// InMemoryColecaoRepository is the in-memory variant of ColecaoRepository,
// used as a test double and for running without a database.
type InMemoryColecaoRepository struct {
	mutex    sync.RWMutex
	colecoes map[int]models.ColecaoModel
	nextId   int
}

func NewInMemoryColecaoRepository() *InMemoryColecaoRepository {
	return &InMemoryColecaoRepository{
		colecoes: make(map[int]models.ColecaoModel),
		nextId:   1,
	}
}

func (r *InMemoryColecaoRepository) FindAll(titulo *string) ([]models.ColecaoModel, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	colecoes := make([]models.ColecaoModel, 0, len(r.colecoes))
	for _, colecao := range r.colecoes {
		if titulo != nil && !strings.Contains(colecao.Titulo, *titulo) {
			continue
		}
		colecoes = append(colecoes, colecao)
	}
	sort.Slice(colecoes, func(i, j int) bool { return colecoes[i].Id < colecoes[j].Id })
	return colecoes, nil
}

func (r *InMemoryColecaoRepository) FindByID(id int) (*models.ColecaoModel, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	colecao, found := r.colecoes[id]
	if !found {
		return nil, gorm.ErrRecordNotFound
	}
	return &colecao, nil
}

func (r *InMemoryColecaoRepository) Create(colecao *models.ColecaoModel) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if colecao.Id == 0 {
		colecao.Id = r.nextId
	}
	if colecao.Id >= r.nextId {
		r.nextId = colecao.Id + 1
	}
	r.colecoes[colecao.Id] = *colecao
	return nil
}

// Update mirrors gorm's Updates semantics: only non-zero fields overwrite.
func (r *InMemoryColecaoRepository) Update(id int, data *models.ColecaoModel) (*models.ColecaoModel, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	colecao, found := r.colecoes[id]
	if !found {
		return nil, gorm.ErrRecordNotFound
	}
	if data.Titulo != "" {
		colecao.Titulo = data.Titulo
	}
	if data.Autor != "" {
		colecao.Autor = data.Autor
	}
	if data.Imagem != "" {
		colecao.Imagem = data.Imagem
	}
	if data.Subtitulo != "" {
		colecao.Subtitulo = data.Subtitulo
	}
	r.colecoes[id] = colecao
	return &colecao, nil
}

func (r *InMemoryColecaoRepository) Delete(id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.colecoes, id)
	return nil
}
