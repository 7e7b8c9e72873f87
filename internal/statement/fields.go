package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// SplitLine splits one comma-delimited line. A double quote toggles the quoted state and
// is dropped from the output; commas inside quotes are kept as data. Doubled quotes ("")
// are not treated as an escaped quote.
func SplitLine(line string) []string {
	fields := make([]string, 0, 24)
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}

var amountNoise = strings.NewReplacer("$", "", ",", "", "\"", "", " ", "")

// ParseAmount parses a currency-formatted amount such as "$10,000.50".
// Blank or unparseable input yields zero.
func ParseAmount(raw string) decimal.Decimal {
	cleaned := amountNoise.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// splitLines breaks raw statement text into non-blank lines.
func splitLines(raw string) []string {
	raw = strings.TrimPrefix(raw, "\uFEFF")
	lines := strings.Split(raw, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func field(fields []string, idx int) string {
	if idx >= len(fields) {
		return ""
	}
	return fields[idx]
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// describe builds the searchable detailed description from the raw text and labelled extras.
func describe(raw string, labelled ...[2]string) string {
	parts := make([]string, 0, len(labelled)+1)
	if raw = strings.TrimSpace(raw); raw != "" {
		parts = append(parts, raw)
	}
	for _, kv := range labelled {
		if v := strings.TrimSpace(kv[1]); v != "" {
			parts = append(parts, kv[0]+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}

// firstSubmatch returns the first capture group of re in any of the texts.
func firstSubmatch(re *regexp.Regexp, texts ...string) string {
	for _, text := range texts {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

const maxBankLabelWords = 2

// bankLabelStopWords introduce the next labelled value in a statement detail line.
var bankLabelStopWords = map[string]bool{
	"CLAVE": true, "CVE": true, "RASTREO": true, "RAST": true,
	"REF": true, "REFERENCIA": true, "HR": true, "HORA": true,
	"CONCEPTO": true, "PAGO": true, "SPEI": true,
}

// bankLabel extracts a bank name with re from the first text it matches.
// The label is uppercased, ends at the first stop word and keeps at most two words.
func bankLabel(re *regexp.Regexp, texts ...string) string {
	words := strings.Fields(strings.ToUpper(firstSubmatch(re, texts...)))
	label := make([]string, 0, maxBankLabelWords)
	for _, w := range words {
		if bankLabelStopWords[w] || len(label) == maxBankLabelWords {
			break
		}
		label = append(label, w)
	}
	return strings.Join(label, " ")
}
