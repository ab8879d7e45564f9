//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

package importing

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/spreadsheet"
	"github.com/vfg2006/orders-backoffice-api/infrastructure/storage"
	"github.com/vfg2006/orders-backoffice-api/internal/config"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
	"github.com/vfg2006/orders-backoffice-api/pkg/log"
)

var acceptedExtensions = map[string]bool{".xls": true, ".xlsx": true, ".csv": true}

type SiteImporter interface {
	StageUpload(ctx context.Context, filename string, src io.Reader) (string, error)
	ImportSites(ctx context.Context, path string) (*domain.ImportResult, error)
}

type Service struct {
	tx      postgres.Transactor
	sites   repository.SiteRepository
	reader  spreadsheet.Reader
	storage storage.FileStorage
	tempDir string
}

func NewService(
	tx postgres.Transactor,
	sites repository.SiteRepository,
	reader spreadsheet.Reader,
	fileStorage storage.FileStorage,
	cfg *config.Config,
) SiteImporter {
	return &Service{
		tx:      tx,
		sites:   sites,
		reader:  reader,
		storage: fileStorage,
		tempDir: cfg.Upload.TempDir,
	}
}

// StageUpload guarda a planilha enviada na área temporária de importação
func (s *Service) StageUpload(ctx context.Context, filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !acceptedExtensions[ext] {
		return "", NewImportError(ErrFormat, apiErrors.ErrInvalidFormat, filename, "Only .xls, .xlsx and .csv files are accepted.")
	}

	stored, err := s.storage.Save(s.tempDir, filename, src)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gravar planilha de importação")
		return "", NewImportError(ErrIO, apiErrors.ErrStorageOperation, filename, "Uploaded file could not be stored.")
	}

	return stored, nil
}

// ImportSites lê a primeira planilha do arquivo e grava os sites em uma única
// transação. O arquivo é removido ao final, com ou sem sucesso.
func (s *Service) ImportSites(ctx context.Context, filePath string) (*domain.ImportResult, error) {
	logger := log.ForContext(ctx).WithField("file", filePath)
	defer s.cleanup(ctx, filePath)

	rows, err := s.readRows(ctx, filePath)
	if err != nil {
		return nil, err
	}

	upserts, rowErrors := buildUpserts(parseRows(rows[1:]))

	imported := 0
	err = s.tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		sites := s.sites.WithTx(tx)

		for _, upsert := range upserts {
			if err := ctx.Err(); err != nil {
				return err
			}

			if _, err := sites.UpsertSite(ctx, upsert.Name, upsert.Fields); err != nil {
				if errors.Is(err, repository.ErrTransactionAborted) {
					return err
				}
				rowErrors = append(rowErrors, rowError{
					row:     upsert.RowNumber,
					message: fmt.Sprintf("Row %d: Failed to import - %s", upsert.RowNumber, errors.Cause(err).Error()),
				})
				continue
			}
			imported++
		}

		return nil
	})
	if err != nil {
		logger.WithError(err).Error("Erro na transação de importação de sites")
		return nil, NewImportError(ErrTransaction, apiErrors.ErrImportTransaction, filePath, "The import could not be saved. No sites were changed.")
	}

	sort.SliceStable(rowErrors, func(i, j int) bool {
		return rowErrors[i].row < rowErrors[j].row
	})

	result := &domain.ImportResult{
		ImportedCount: imported,
		Errors:        make([]string, 0, len(rowErrors)),
	}
	for _, rowErr := range rowErrors {
		result.Errors = append(result.Errors, rowErr.message)
	}

	logger.WithFields(log.Fields{
		"import_count":  result.ImportedCount,
		"import_errors": len(result.Errors),
	}).Info("Importação de sites concluída")

	return result, nil
}

// readRows devolve as linhas da planilha, garantindo que exista um cabeçalho
func (s *Service) readRows(ctx context.Context, filePath string) ([][]string, error) {
	exists, err := s.storage.Exists(filePath)
	if err != nil || !exists {
		return nil, NewImportError(ErrIO, apiErrors.ErrImportFileUnavailable, filePath, "Uploaded file was not found. Please re-upload.")
	}

	f, err := s.storage.Open(filePath)
	if err != nil {
		return nil, NewImportError(ErrIO, apiErrors.ErrImportFileUnavailable, filePath, "File not accessible. Please re-upload.")
	}
	defer f.Close()

	rows, err := s.reader.Read(ctx, path.Base(filePath), f)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, NewImportError(ErrIO, apiErrors.ErrImportFileUnavailable, filePath, ctxErr.Error())
		}
		log.ForContext(ctx).WithError(err).Warn("Planilha ilegível")
		return nil, NewImportError(ErrFormat, apiErrors.ErrImportFileFormat, filePath, "The Excel file appears to be empty or corrupted.")
	}

	if len(rows) == 0 || isBlankRow(rows[0]) {
		return nil, NewImportError(ErrFormat, apiErrors.ErrImportFileFormat, filePath, "The Excel file appears to be empty or corrupted.")
	}

	return rows, nil
}

func (s *Service) cleanup(ctx context.Context, filePath string) {
	if err := s.storage.Delete(filePath); err != nil {
		log.ForContext(ctx).WithError(err).WithField("file", filePath).Warn("Erro ao remover arquivo temporário de importação")
	}
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
