package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/collections_reconciliation/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Santander layout, positional:
//
//	0 account | 1 date DDMMYYYY | 2 time | 3 branch | 4 description | 5 sign (+/-)
//	6 amount | 7 balance | 8 reference | 9 concept | 10 origin detail | ... | 20 tracking key
const (
	santanderColDate        = 1
	santanderColTime        = 2
	santanderColDescription = 4
	santanderColSign        = 5
	santanderColAmount      = 6
	santanderColBalance     = 7
	santanderColReference   = 8
	santanderColConcept     = 9
	santanderColOrigin      = 10
	santanderColTrackingKey = 20

	santanderMinColumns  = santanderColConcept + 1
	santanderDateLayout  = "02012006"
	santanderDefaultBank = "SANTANDER"
)

var (
	santanderTrackingRe = regexp.MustCompile(`(?i)(?:CLAVE DE RASTREO|CVE RASTREO|RASTREO)[:\s]+([A-Z0-9]+)`)
	santanderBankRe     = regexp.MustCompile(`(?i)\bBANCO(?:\s+ORDENANTE)?[:\s]+([A-Z]+(?:\s+[A-Z]+)*)`)
	santanderTimeRe     = regexp.MustCompile(`\b(\d{2}:\d{2}(?::\d{2})?)\b`)
)

func parseSantanderRow(fields []string) (domain.BankTransactionInput, bool) {
	if len(fields) < santanderMinColumns {
		return domain.BankTransactionInput{}, false
	}
	if strings.TrimSpace(fields[santanderColSign]) != "+" {
		return domain.BankTransactionInput{}, false
	}
	date, err := time.Parse(santanderDateLayout, strings.TrimSpace(fields[santanderColDate]))
	if err != nil {
		return domain.BankTransactionInput{}, false
	}

	description := fields[santanderColDescription]
	concept := fields[santanderColConcept]
	origin := field(fields, santanderColOrigin)

	trackingKey := field(fields, santanderColTrackingKey)
	if trackingKey == "" {
		trackingKey = firstSubmatch(santanderTrackingRe, concept, origin, description)
	}

	bank := bankLabel(santanderBankRe, origin, concept, description)
	if bank == "" {
		bank = santanderDefaultBank
	}

	opTime := firstSubmatch(santanderTimeRe, fields[santanderColTime], concept)

	return domain.BankTransactionInput{
		OriginBank:    bank,
		OperationDate: date,
		OperationTime: optional(opTime),
		Description:   description,
		Concept:       concept,
		DetailedDescription: describe(description,
			[2]string{"CONCEPTO", concept},
			[2]string{"ORIGEN", origin},
			[2]string{"BANCO", bank},
		),
		Debit:       decimal.Zero,
		Credit:      ParseAmount(fields[santanderColAmount]),
		Balance:     ParseAmount(fields[santanderColBalance]),
		Reference:   optional(fields[santanderColReference]),
		TrackingKey: optional(trackingKey),
	}, true
}
