package statement

import (
	"context"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// RawStatement is the decoded content of one uploaded statement file.
type RawStatement struct {
	Name    string
	Content string
}

// ParseAll parses several statements of the same format concurrently.
// Results are concatenated in the order the statements were given.
func ParseAll(ctx context.Context, format domain.StatementFormat, statements []RawStatement) ([]domain.BankTransactionInput, error) {
	results := make([][]domain.BankTransactionInput, len(statements))

	g, gctx := errgroup.WithContext(ctx)
	for i, st := range statements {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries, err := Parse(st.Content, format)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]domain.BankTransactionInput, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
