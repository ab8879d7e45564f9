package importing

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/orders-backoffice-api/internal/domain"
)

const maxListedErrors = 10

// Summarize monta a notificação exibida ao final da importação
func Summarize(result *domain.ImportResult) domain.ImportSummary {
	summary := domain.ImportSummary{
		Success: result.ImportedCount > 0,
		Title:   "Import Failed",
		Message: "No sites were imported.",
	}

	if summary.Success {
		summary.Title = "Import Complete"
		summary.Message = fmt.Sprintf("%d sites imported successfully.", result.ImportedCount)
	}

	if len(result.Errors) > 0 {
		listed := result.Errors
		if len(listed) > maxListedErrors {
			listed = listed[:maxListedErrors]
		}

		summary.Message += "\n\nErrors encountered:\n" + strings.Join(listed, "\n")
		if remaining := len(result.Errors) - maxListedErrors; remaining > 0 {
			summary.Message += fmt.Sprintf("\n... and %d more errors.", remaining)
		}
	}

	return summary
}

// SummarizeFailure monta a notificação de uma importação interrompida
func SummarizeFailure(err error) domain.ImportSummary {
	message := err.Error()
	var importErr *ImportError
	if errors.As(err, &importErr) && importErr.Details != "" {
		message = importErr.Details
	}

	return domain.ImportSummary{
		Success: false,
		Title:   "Import Failed",
		Message: message,
	}
}
