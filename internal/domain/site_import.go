package domain

// SiteImportRow é uma linha da planilha de sites já separada em campos.
// RowNumber segue a numeração da planilha (a primeira linha de dados é a 2).
type SiteImportRow struct {
	RowNumber int
	Name      string
	AdminFee  string
}

// IsBlank indica linha de preenchimento, ignorada sem registrar erro
func (r SiteImportRow) IsBlank() bool {
	return r.Name == "" && r.AdminFee == ""
}

// SiteUpsert é a intenção de gravar um site validado, na ordem do arquivo
type SiteUpsert struct {
	RowNumber int
	Name      string
	Fields    SiteFields
}

type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	Errors        []string `json:"errors"`
}

// ImportSummary é o conteúdo da notificação exibida ao final da importação
type ImportSummary struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type SiteImportResponse struct {
	Result  *ImportResult `json:"result"`
	Summary ImportSummary `json:"summary"`
}
