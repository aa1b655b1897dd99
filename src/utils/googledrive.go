package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService inicializa o serviço do Google Drive usando Service Account.
// As credenciais vêm de GOOGLE_DRIVE_CREDENTIALS_PATH (arquivo) ou
// GOOGLE_DRIVE_CREDENTIALS_JSON (conteúdo JSON direto).
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		credsBytes, err := loadCredentials()
		if err != nil {
			initErr = err
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("erro carregando credenciais: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("erro criando serviço do Google Drive: %w", err)
			return
		}

		log.Printf("[GOOGLE_DRIVE] Serviço inicializado com sucesso")
	})
	return initErr
}

func loadCredentials() ([]byte, error) {
	if credentialsPath := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); credentialsPath != "" {
		credsBytes, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("erro lendo arquivo de credenciais: %w", err)
		}
		return credsBytes, nil
	}

	if credentialsJSON := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"); credentialsJSON != "" {
		return []byte(credentialsJSON), nil
	}

	return nil, fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH ou GOOGLE_DRIVE_CREDENTIALS_JSON deve estar configurado")
}

// GetGoogleDriveService retorna o serviço do Google Drive (inicializa se necessário)
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL extrai o ID do arquivo de uma URL do Google Drive
func ExtractFileIDFromURL(url string) (string, error) {
	// Padrões comuns de URLs do Google Drive
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,                     // /file/d/FILE_ID
		`id=([a-zA-Z0-9_-]+)`,                          // ?id=FILE_ID
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`, // open?id=FILE_ID
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("não foi possível extrair o ID do arquivo da URL: %s", url)
}

// DownloadImageFromGoogleDrive baixa a imagem de uma Colecao pelo ID do arquivo,
// retornando o conteúdo e seu content type.
func DownloadImageFromGoogleDrive(fileID string) (io.ReadCloser, string, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, "", fmt.Errorf("erro obtendo serviço do Google Drive: %w", err)
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, "", fmt.Errorf("erro obtendo informações do arquivo: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, "", fmt.Errorf("pastas do Google Drive não podem ser baixadas")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("erro baixando arquivo: %w", err)
	}

	log.Printf("[GOOGLE_DRIVE] Imagem baixada: %s (tipo: %s, tamanho: %d bytes)", file.Name, file.MimeType, file.Size)

	return resp.Body, file.MimeType, nil
}

// IsGoogleDriveURL verifica se uma URL é do Google Drive
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
