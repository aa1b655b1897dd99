package services

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/colecionador/colecao-backend/src/dtos"
	"github.com/colecionador/colecao-backend/src/models"
	"github.com/colecionador/colecao-backend/src/repository"
	"github.com/colecionador/colecao-backend/src/validators"
	excelize "github.com/xuri/excelize/v2"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

type ColecaoService struct {
	repo  repository.ColecaoRepository
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewColecaoService(repo repository.ColecaoRepository) *ColecaoService {
	service := &ColecaoService{
		repo:  repo,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *ColecaoService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *ColecaoService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *ColecaoService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	entry, found := s.cache[key]
	if !found || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Data, true
}

func (s *ColecaoService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for key := range s.cache {
		if strings.Contains(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// GetAllColecoes retrieves all colecao records, optionally filtered by titulo
func (s *ColecaoService) GetAllColecoes(titulo *string) ([]models.ColecaoModel, error) {
	// Se há filtro por titulo, usar uma chave de cache específica
	var cacheKey string
	if titulo != nil {
		cacheKey = fmt.Sprintf("colecoes_titulo_%s", *titulo)
	} else {
		cacheKey = "all_colecoes"
	}

	// Try to get from cache
	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.ColecaoModel), nil
	}

	// If not in cache, query the repository
	colecoes, err := s.repo.FindAll(titulo)
	if err != nil {
		return nil, err
	}

	// Save to cache for 5 minutes
	s.setCache(cacheKey, colecoes, 5*time.Minute)

	return colecoes, nil
}

// GetColecaoByID retrieves a single colecao record by its id
func (s *ColecaoService) GetColecaoByID(id int) (*models.ColecaoModel, error) {
	cacheKey := fmt.Sprintf("colecao_%d", id)

	// Try to get from cache
	if cached, found := s.getCache(cacheKey); found {
		colecao := cached.(models.ColecaoModel)
		return &colecao, nil
	}

	colecao, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	s.setCache(cacheKey, *colecao, 5*time.Minute)

	return colecao, nil
}

// CreateColecao creates a new colecao record
func (s *ColecaoService) CreateColecao(colecao *models.ColecaoModel) (*models.ColecaoModel, error) {
	if err := s.repo.Create(colecao); err != nil {
		return nil, err
	}
	s.invalidateCache("colec")
	return colecao, nil
}

// UpdateColecao updates an existing colecao record
func (s *ColecaoService) UpdateColecao(id int, data *models.ColecaoModel) (*models.ColecaoModel, error) {
	colecao, err := s.repo.Update(id, data)
	if err != nil {
		return nil, err
	}
	s.invalidateCache("colec")
	return colecao, nil
}

// DeleteColecao removes a colecao record
func (s *ColecaoService) DeleteColecao(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache("colec")
	return nil
}

// ExportColecoesToExcel builds an xlsx workbook with every colecao record
func (s *ColecaoService) ExportColecoesToExcel() (*excelize.File, error) {
	colecoes, err := s.repo.FindAll(nil)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Colecoes"
	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Id", "Titulo", "Autor", "Imagem", "Subtitulo"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, colecao := range colecoes {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), colecao.Id)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), colecao.Titulo)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), colecao.Autor)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), colecao.Imagem)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), colecao.Subtitulo)
	}

	return f, nil
}

// ImportColecoesFromExcel reads colecao rows from an xlsx file and creates them.
// Expected columns: Titulo | Autor | Imagem | Subtitulo. The first row is
// treated as a header. Row-level failures are collected, not fatal.
func (s *ColecaoService) ImportColecoesFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("arquivo excel inválido: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler a planilha %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// Pular o cabeçalho e linhas vazias
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		cell := func(idx int) *string {
			if idx < len(row) {
				value := strings.TrimSpace(row[idx])
				if value != "" {
					return &value
				}
			}
			return nil
		}

		dto := dtos.ColecaoDTO{
			Titulo:    cell(0),
			Autor:     cell(1),
			Imagem:    cell(2),
			Subtitulo: cell(3),
		}

		if violations := validators.ValidateCreate(&dto); len(violations) > 0 {
			fields := make([]string, 0, len(violations))
			for _, v := range violations {
				fields = append(fields, v.Field)
			}
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: campos inválidos (%s)", i+1, strings.Join(fields, ", ")))
			continue
		}

		colecao := dto.ToModel()
		if err := s.repo.Create(&colecao); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	if result.Imported > 0 {
		s.invalidateCache("colec")
	}

	return result, nil
}
