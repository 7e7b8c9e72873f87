// Package statement turns bank statement exports into canonical transaction inputs.
//
// Every supported layout is a pure row parser registered against a domain.StatementFormat.
// Rows that are not credits, have too few columns, or carry an unparseable date are dropped
// silently; callers judge an empty result.
package statement

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/collections_reconciliation/internal/apperrors"
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// RowParser converts the fields of one line into a transaction input.
// ok is false when the row must be skipped.
type RowParser func(fields []string) (entry domain.BankTransactionInput, ok bool)

var rowParsers = map[domain.StatementFormat]RowParser{
	domain.FormatSantander: parseSantanderRow,
	domain.FormatBanorte:   parseBanorteRow,
}

// ParseFormat resolves a caller supplied format identifier.
func ParseFormat(id string) (domain.StatementFormat, error) {
	format := domain.StatementFormat(strings.ToUpper(strings.TrimSpace(id)))
	if _, ok := rowParsers[format]; !ok {
		return "", fmt.Errorf("%w: unsupported statement format %q", apperrors.ErrValidation, id)
	}
	return format, nil
}

// SupportedFormats lists the registered formats in name order.
func SupportedFormats() []domain.StatementFormat {
	formats := make([]domain.StatementFormat, 0, len(rowParsers))
	for f := range rowParsers {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Parse runs the parser for format over raw. The result keeps file order.
// An unknown format is the only error; empty or headerless input yields no entries.
func Parse(raw string, format domain.StatementFormat) ([]domain.BankTransactionInput, error) {
	parseRow, ok := rowParsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported statement format %q", apperrors.ErrValidation, format)
	}

	lines := splitLines(raw)
	entries := make([]domain.BankTransactionInput, 0, len(lines))
	for _, line := range lines {
		entry, ok := parseRow(SplitLine(line))
		if !ok {
			continue
		}
		entry.SourceFormat = format
		entries = append(entries, entry)
	}
	return entries, nil
}
