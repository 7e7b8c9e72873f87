package dto

import "github.com/SscSPs/collections_reconciliation/internal/core/domain"

// ImportStatementResponse summarises a statement upload.
type ImportStatementResponse struct {
	Format     string `json:"format"`
	Files      int    `json:"files"`
	Total      int    `json:"total"`
	Inserted   int    `json:"inserted"`
	Duplicates int    `json:"duplicates"`
	Errors     int    `json:"errors"`
}

// ToImportStatementResponse converts an import summary for the given upload.
func ToImportStatementResponse(format domain.StatementFormat, files int, summary domain.ImportSummary) ImportStatementResponse {
	return ImportStatementResponse{
		Format:     string(format),
		Files:      files,
		Total:      summary.Total,
		Inserted:   summary.Inserted,
		Duplicates: summary.Duplicates,
		Errors:     summary.Errors,
	}
}
