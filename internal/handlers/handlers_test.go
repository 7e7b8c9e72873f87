package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	portssvc "github.com/SscSPs/collections_reconciliation/internal/core/ports/services"
	"github.com/SscSPs/collections_reconciliation/internal/core/services"
	"github.com/SscSPs/collections_reconciliation/internal/dto"
	"github.com/SscSPs/collections_reconciliation/internal/handlers"
	"github.com/SscSPs/collections_reconciliation/internal/platform/config"
	"github.com/SscSPs/collections_reconciliation/internal/statement"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testImportRateLimit = 3

type HandlersTestSuite struct {
	suite.Suite
	router                    *gin.Engine
	mockStatementService      *MockStatementService
	mockMatchingService       *MockMatchingService
	mockReconciliationService *MockReconciliationService
	mockDiscrepancyService    *MockDiscrepancyService
	jwtSecret                 string
	userID                    string
}

// generateTestToken creates a signed JWT for the given subject.
func (suite *HandlersTestSuite) generateTestToken(userID string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "recon-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockStatementService = new(MockStatementService)
	suite.mockMatchingService = new(MockMatchingService)
	suite.mockReconciliationService = new(MockReconciliationService)
	suite.mockDiscrepancyService = new(MockDiscrepancyService)

	cfg := &config.Config{
		JWTSecret:       suite.jwtSecret,
		IsProduction:    true,
		ImportRateLimit: fmt.Sprintf("%d-M", testImportRateLimit),
	}
	container := &portssvc.ServiceContainer{
		Statement:      suite.mockStatementService,
		Matching:       suite.mockMatchingService,
		Reconciliation: suite.mockReconciliationService,
		Discrepancy:    suite.mockDiscrepancyService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *HandlersTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, time.Hour))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// uploadRequest builds a multipart statement upload.
func (suite *HandlersTestSuite) uploadRequest(format string, files map[string]string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if format != "" {
		suite.Require().NoError(writer.WriteField("format", format))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		suite.Require().NoError(err)
		_, err = part.Write([]byte(content))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/statements/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody[T any](suite *HandlersTestSuite, w *httptest.ResponseRecorder) T {
	var out T
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// --- Routing and auth ---

func (suite *HandlersTestSuite) TestHealth_IsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestAPI_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMatchingService.AssertNotCalled(suite.T(), "SuggestMatches", mock.Anything)
}

func (suite *HandlersTestSuite) TestAPI_RejectsExpiredToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, -time.Minute))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

// --- Statements ---

func (suite *HandlersTestSuite) TestImportStatements_Success() {
	content := "01/03/2024,\"SPEI RECIBIDO\",,\"1,500.00\",\"10,000.00\"\n"
	summary := domain.ImportSummary{Total: 1, Inserted: 1}

	suite.mockStatementService.On("ImportStatements",
		mock.Anything,
		domain.FormatSantander,
		mock.MatchedBy(func(raws []statement.RawStatement) bool {
			return len(raws) == 1 && raws[0].Name == "march.csv" && raws[0].Content == content
		}),
		suite.userID,
	).Return(summary, nil).Once()

	w := suite.do(suite.uploadRequest("santander", map[string]string{"march.csv": content}))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.ImportStatementResponse](suite, w)
	suite.Equal("SANTANDER", resp.Format)
	suite.Equal(1, resp.Files)
	suite.Equal(1, resp.Inserted)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestImportStatements_UnknownFormat() {
	w := suite.do(suite.uploadRequest("HSBC", map[string]string{"a.csv": "x"}))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "supportedFormats")
	suite.mockStatementService.AssertNotCalled(suite.T(), "ImportStatements", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestImportStatements_NoFiles() {
	w := suite.do(suite.uploadRequest("BANORTE", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "At least one statement file")
}

func (suite *HandlersTestSuite) TestImportStatements_RequiresMultipart() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/statements/import", strings.NewReader(`{"format":"SANTANDER"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestImportStatements_NoIncomeRecords() {
	suite.mockStatementService.On("ImportStatements", mock.Anything, domain.FormatBanorte, mock.Anything, suite.userID).
		Return(domain.ImportSummary{}, services.ErrNoIncomeRecords).Once()

	w := suite.do(suite.uploadRequest("BANORTE", map[string]string{"empty.csv": "header only\n"}))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "no income records found")
}

func (suite *HandlersTestSuite) TestImportStatements_RateLimited() {
	suite.mockStatementService.On("ImportStatements", mock.Anything, domain.FormatSantander, mock.Anything, suite.userID).
		Return(domain.ImportSummary{}, nil).Times(testImportRateLimit)

	for i := 0; i < testImportRateLimit; i++ {
		w := suite.do(suite.uploadRequest("SANTANDER", map[string]string{"a.csv": "x"}))
		suite.Equal(http.StatusOK, w.Code)
	}
	w := suite.do(suite.uploadRequest("SANTANDER", map[string]string{"a.csv": "x"}))

	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListBankTransactions_Success() {
	next := "token-2"
	expected := &dto.ListBankTransactionsResponse{
		Transactions: []dto.BankTransactionResponse{{TransactionID: uuid.NewString()}},
		NextToken:    &next,
	}
	suite.mockStatementService.On("ListUnreconciledTransactions",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListBankTransactionsParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "token-1"
		}),
	).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bank-transactions?limit=5&nextToken=token-1", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ListBankTransactionsResponse](suite, w)
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
	suite.mockStatementService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestListBankTransactions_LimitTooLarge() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bank-transactions?limit=500", nil)
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "max")
}

func (suite *HandlersTestSuite) TestListBankTransactions_BadToken() {
	suite.mockStatementService.On("ListUnreconciledTransactions", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("invalid pagination token")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bank-transactions?nextToken=garbage", nil)
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Matching ---

func (suite *HandlersTestSuite) TestSuggestMatches_Success() {
	folio := "F-100"
	suggestions := []domain.MatchSuggestion{{
		Ticket:      domain.Ticket{TicketID: "t-1", Amount: decimal.RequireFromString("1500.00"), Folio: &folio},
		Transaction: domain.BankTransaction{TransactionID: "b-1", OperationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		Priority:    domain.PriorityFolio,
		Reason:      "folio",
	}}
	suite.mockMatchingService.On("SuggestMatches", mock.Anything).Return(suggestions, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ListMatchSuggestionsResponse](suite, w)
	suite.Equal(1, resp.Count)
	suite.Equal("t-1", resp.Suggestions[0].TicketID)
	suite.Equal("b-1", resp.Suggestions[0].TransactionID)
	suite.Equal(int(domain.PriorityFolio), resp.Suggestions[0].Priority)
	suite.Equal("2024-03-01", resp.Suggestions[0].OperationDate)
}

func (suite *HandlersTestSuite) TestSuggestMatches_EmptyListIsNotNull() {
	suite.mockMatchingService.On("SuggestMatches", mock.Anything).Return([]domain.MatchSuggestion{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"suggestions":[]`)
}

func (suite *HandlersTestSuite) TestSuggestMatches_ServiceError() {
	suite.mockMatchingService.On("SuggestMatches", mock.Anything).Return(nil, fmt.Errorf("db down")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	w := suite.do(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to suggest matches")
	suite.NotContains(w.Body.String(), "db down")
}

func (suite *HandlersTestSuite) TestSuggestMatchesForTicket_NotFound() {
	suite.mockMatchingService.On("SuggestMatchesForTicket", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/tickets/missing/matches", nil)
	w := suite.do(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestAutoReconcile_Success() {
	result := domain.AutoAcceptResult{Suggested: 3, Confirmed: 2, Skipped: 1}
	suite.mockMatchingService.On("AutoReconcile", mock.Anything, suite.userID).Return(result, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/matches/auto", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.AutoReconcileResponse](suite, w)
	suite.Equal(2, resp.Confirmed)
	suite.Equal(1, resp.Skipped)
}

// --- Reconciliation ---

func (suite *HandlersTestSuite) TestConfirmMatch_Success() {
	suite.mockReconciliationService.On("ConfirmMatch", mock.Anything, "t-1", "b-1", suite.userID).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reconciliations", strings.NewReader(`{"ticketID":"t-1","transactionID":"b-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ConfirmMatchResponse](suite, w)
	suite.True(resp.Reconciled)
	suite.mockReconciliationService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestConfirmMatch_MissingField() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reconciliations", strings.NewReader(`{"ticketID":"t-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "TransactionID")
	suite.mockReconciliationService.AssertNotCalled(suite.T(), "ConfirmMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestConfirmMatch_ErrorStatuses() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"already linked", fmt.Errorf("%w: %w", services.ErrLinkRejected, apperrors.ErrConflict), http.StatusConflict},
		{"unknown record", fmt.Errorf("%w: %w", services.ErrLinkRejected, apperrors.ErrNotFound), http.StatusNotFound},
		{"storage failure", fmt.Errorf("%w: %w", services.ErrLinkRejected, fmt.Errorf("connection reset")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			ticketID := uuid.NewString()
			suite.mockReconciliationService.On("ConfirmMatch", mock.Anything, ticketID, "b-1", suite.userID).Return(tc.err).Once()

			body := fmt.Sprintf(`{"ticketID":%q,"transactionID":"b-1"}`, ticketID)
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/reconciliations", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := suite.do(req)

			suite.Equal(tc.status, w.Code)
		})
	}
}

// --- Discrepancies ---

func (suite *HandlersTestSuite) TestGetDiscrepancies_DayBoundsAreInclusive() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	report := &domain.DiscrepancyReport{Window: domain.DateWindow{From: from, To: to}}

	suite.mockDiscrepancyService.On("GetDiscrepancies",
		mock.Anything,
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(from) }),
		mock.MatchedBy(func(t *time.Time) bool {
			return t != nil && t.Equal(to.Add(24*time.Hour-time.Nanosecond))
		}),
	).Return(report, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/discrepancies?from=2024-01-01&to=2024-01-31", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.DiscrepancyResponse](suite, w)
	suite.Equal("2024-01-01", resp.FromDate)
	suite.NotNil(resp.TicketsWithoutBank)
	suite.NotNil(resp.OrphanPayments)
	suite.mockDiscrepancyService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetDiscrepancies_DefaultsWindow() {
	suite.mockDiscrepancyService.On("GetDiscrepancies", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).
		Return(&domain.DiscrepancyReport{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/discrepancies", nil)
	w := suite.do(req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDiscrepancyService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetDiscrepancies_InvalidDate() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/discrepancies?from=2024-13-01", nil)
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDiscrepancyService.AssertNotCalled(suite.T(), "GetDiscrepancies", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetDiscrepancies_InvertedWindow() {
	suite.mockDiscrepancyService.On("GetDiscrepancies", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("from must not be after to")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/discrepancies?from=2024-02-01&to=2024-01-01", nil)
	w := suite.do(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
