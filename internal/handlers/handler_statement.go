package handlers

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/middleware"
	"github.com/SscSPs/collections_reconciliation/internal/statement"
	"github.com/SscSPs/collections_reconciliation/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	maxUploadSize     = 10 << 20 // 10MB per request
	maxFilesPerUpload = 12
)

// statementHandler handles statement uploads and imported transaction listings.
type statementHandler struct {
	statementService portssvc.StatementSvcFacade
	posthogClient    *utils.PosthogClientWrapper
}

func newStatementHandler(statementService portssvc.StatementSvcFacade, posthogClient *utils.PosthogClientWrapper) *statementHandler {
	return &statementHandler{
		statementService: statementService,
		posthogClient:    posthogClient,
	}
}

// registerStatementRoutes registers routes related to statements and bank transactions.
// importLimit guards the upload route only.
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade, posthogClient *utils.PosthogClientWrapper, importLimit gin.HandlerFunc) {
	h := newStatementHandler(statementService, posthogClient)

	rg.POST("/statements/import", importLimit, h.importStatements)
	rg.GET("/bank-transactions", h.listBankTransactions)
}

// importStatements godoc
// @Summary Import bank statement files
// @Description Parses one or more statement exports of the same bank format and stores their credits. Rows whose tracking key is already stored are skipped as duplicates.
// @Tags statements
// @Accept  multipart/form-data
// @Produce  json
// @Param   format formData string true "Statement format (SANTANDER, BANORTE)"
// @Param   files formData file true "Statement files (CSV)"
// @Success 200 {object} dto.ImportStatementResponse
// @Failure 400 {object} map[string]string "Invalid upload, unknown format or no income records"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to import statements"
// @Security BearerAuth
// @Router /statements/import [post]
func (h *statementHandler) importStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content-Type must be multipart/form-data"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	form, err := c.MultipartForm()
	if err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request too large or malformed. Max size is 10MB"})
		return
	}
	defer form.RemoveAll()

	format, err := statement.ParseFormat(firstValue(form.Value["format"]))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "supportedFormats": statement.SupportedFormats()})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one statement file is required"})
		return
	}
	if len(headers) > maxFilesPerUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Too many files in one upload"})
		return
	}

	raws := make([]statement.RawStatement, 0, len(headers))
	for _, fh := range headers {
		content, err := readUpload(fh)
		if err != nil {
			logger.Warn("Failed to read uploaded file", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file " + fh.Filename})
			return
		}
		raws = append(raws, statement.RawStatement{Name: fh.Filename, Content: content})
	}

	summary, err := h.statementService.ImportStatements(c.Request.Context(), format, raws, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to import statements")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "statement_imported", map[string]any{
		"format":     string(format),
		"files":      len(raws),
		"inserted":   summary.Inserted,
		"duplicates": summary.Duplicates,
		"errors":     summary.Errors,
	})
	c.JSON(http.StatusOK, dto.ToImportStatementResponse(format, len(raws), summary))
}

// listBankTransactions godoc
// @Summary List unreconciled bank transactions
// @Description Retrieves imported transactions not yet linked to a ticket, newest first, with token based pagination
// @Tags statements
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 200)"
// @Param   nextToken query string false "Token returned by the previous page"
// @Success 200 {object} dto.ListBankTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list bank transactions"
// @Security BearerAuth
// @Router /bank-transactions [get]
func (h *statementHandler) listBankTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBankTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	resp, err := h.statementService.ListUnreconciledTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list bank transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
