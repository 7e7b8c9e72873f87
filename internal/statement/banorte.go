package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
)

// Banorte layout, positional:
//
//	0 account | 1 date DD/MM/YYYY | 2 value date | 3 reference | 4 description | 5 code
//	6 branch | 7 deposit | 8 withdrawal | 9 balance | 10 movement | 11 detailed description
const (
	banorteColDate        = 1
	banorteColReference   = 3
	banorteColDescription = 4
	banorteColDeposit     = 7
	banorteColWithdrawal  = 8
	banorteColBalance     = 9
	banorteColMovement    = 10
	banorteColDetail      = 11

	banorteMinColumns  = banorteColMovement + 1
	banorteDateLayout  = "2/1/2006"
	banorteDefaultBank = "BANORTE"
)

var (
	banorteTrackingRe = regexp.MustCompile(`(?i)CVE\s+RAST:\s*([A-Z0-9]+)`)
	banorteBankRe     = regexp.MustCompile(`(?i)\bBCO:\s*\d*\s*([A-Z]+(?:\s+[A-Z]+)*)`)
	banorteTimeRe     = regexp.MustCompile(`(?i)HR\s+LIQ:\s*(\d{2}:\d{2}:\d{2})`)
)

func parseBanorteRow(fields []string) (domain.BankTransactionInput, bool) {
	if len(fields) < banorteMinColumns {
		return domain.BankTransactionInput{}, false
	}
	deposit := ParseAmount(fields[banorteColDeposit])
	if !deposit.IsPositive() {
		return domain.BankTransactionInput{}, false
	}
	date, err := time.Parse(banorteDateLayout, strings.TrimSpace(fields[banorteColDate]))
	if err != nil {
		return domain.BankTransactionInput{}, false
	}

	description := fields[banorteColDescription]
	concept := fields[banorteColMovement]
	detail := field(fields, banorteColDetail)

	bank := bankLabel(banorteBankRe, detail)
	if bank == "" {
		bank = banorteDefaultBank
	}

	return domain.BankTransactionInput{
		OriginBank:    bank,
		OperationDate: date,
		OperationTime: optional(firstSubmatch(banorteTimeRe, detail)),
		Description:   description,
		Concept:       concept,
		DetailedDescription: describe(detail,
			[2]string{"DESCRIPCION", description},
			[2]string{"CONCEPTO", concept},
			[2]string{"BANCO", bank},
		),
		Debit:       ParseAmount(fields[banorteColWithdrawal]),
		Credit:      deposit,
		Balance:     ParseAmount(fields[banorteColBalance]),
		Reference:   optional(fields[banorteColReference]),
		TrackingKey: optional(firstSubmatch(banorteTrackingRe, detail)),
	}, true
}
