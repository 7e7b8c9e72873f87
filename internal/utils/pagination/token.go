package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor is the position after the last row of a page ordered by
// (operation date DESC, created at DESC, id DESC).
type Cursor struct {
	OperationDate time.Time
	CreatedAt     time.Time
	ID            string
}

// EncodeToken creates an opaque, URL-safe token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := strings.Join([]string{
		c.OperationDate.UTC().Format(timeFormat),
		c.CreatedAt.UTC().Format(timeFormat),
		c.ID,
	}, "|")
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
// Malformed tokens are reported as apperrors.ErrValidation.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	operationDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (operation date parse): %v", apperrors.ErrValidation, err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (created_at parse): %v", apperrors.ErrValidation, err)
	}

	return Cursor{OperationDate: operationDate, CreatedAt: createdAt, ID: parts[2]}, nil
}

// After reports whether a row at position c sorts after the cursor position in
// (operation date DESC, created at DESC, id DESC) order, i.e. belongs on a later page.
func (c Cursor) After(cursor Cursor) bool {
	if !c.OperationDate.Equal(cursor.OperationDate) {
		return c.OperationDate.Before(cursor.OperationDate)
	}
	if !c.CreatedAt.Equal(cursor.CreatedAt) {
		return c.CreatedAt.Before(cursor.CreatedAt)
	}
	return c.ID < cursor.ID
}
