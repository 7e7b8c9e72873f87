package mapping

import (
	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/SscSPs/collections_reconciliation/internal/models"
)

// ToModelBankTransaction converts a domain BankTransaction to a model BankTransaction
func ToModelBankTransaction(d domain.BankTransaction) models.BankTransaction {
	return models.BankTransaction{
		TransactionID:       d.TransactionID,
		OriginBank:          d.OriginBank,
		OperationDate:       d.OperationDate,
		OperationTime:       d.OperationTime,
		Description:         d.Description,
		Concept:             d.Concept,
		DetailedDescription: d.DetailedDescription,
		Debit:               d.Debit,
		Credit:              d.Credit,
		Balance:             d.Balance,
		Reference:           d.Reference,
		TrackingKey:         d.TrackingKey,
		SourceFormat:        string(d.SourceFormat),
		TicketID:            d.TicketID,
		IdentifiedAt:        d.IdentifiedAt,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankTransaction converts a model BankTransaction to a domain BankTransaction
func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID:       m.TransactionID,
		OriginBank:          m.OriginBank,
		OperationDate:       m.OperationDate,
		OperationTime:       m.OperationTime,
		Description:         m.Description,
		Concept:             m.Concept,
		DetailedDescription: m.DetailedDescription,
		Debit:               m.Debit,
		Credit:              m.Credit,
		Balance:             m.Balance,
		Reference:           m.Reference,
		TrackingKey:         m.TrackingKey,
		SourceFormat:        domain.StatementFormat(m.SourceFormat),
		TicketID:            m.TicketID,
		IdentifiedAt:        m.IdentifiedAt,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankTransactionSlice converts a slice of model BankTransaction to a slice of domain BankTransaction
func ToDomainBankTransactionSlice(ms []models.BankTransaction) []domain.BankTransaction {
	ds := make([]domain.BankTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankTransaction(m)
	}
	return ds
}
