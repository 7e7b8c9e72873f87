package services

import (
	"context"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// DiscrepancySvc defines the read-only discrepancy report
type DiscrepancySvc interface {
	// GetDiscrepancies reports the three discrepancy buckets for the window.
	// Nil bounds default to the configured trailing window ending now.
	GetDiscrepancies(ctx context.Context, from, to *time.Time) (*domain.DiscrepancyReport, error)
}
