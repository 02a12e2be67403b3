package aggregate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

var dottedDate = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

var amountTolerance = decimal.New(1, -2)

// Matcher decides whether a transaction matches free-text search input such
// as "czynsz", "19zł", "21.06.2024" or "czerwiec".
type Matcher struct {
	query      string
	amount     decimal.Decimal
	hasAmount  bool
	amountOnly bool
}

func NewMatcher(input string, cfg Config) Matcher {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return Matcher{}
	}

	for i, name := range cfg.MonthNames {
		if name == "" {
			continue
		}

		query = strings.ReplaceAll(query, strings.ToLower(name), fmt.Sprintf("%02d", i+1))
	}

	if loc := dottedDate.FindStringSubmatchIndex(query); loc != nil {
		d, _ := strconv.Atoi(query[loc[2]:loc[3]])
		m, _ := strconv.Atoi(query[loc[4]:loc[5]])
		iso := fmt.Sprintf("%s-%02d-%02d", query[loc[6]:loc[7]], m, d)
		query = query[:loc[0]] + iso + query[loc[1]:]
	}

	m := Matcher{query: query}

	clean := query
	if cfg.CurrencyMarker != "" {
		clean = strings.ReplaceAll(clean, strings.ToLower(cfg.CurrencyMarker), "")
	}

	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	if clean != "" {
		if amount, err := decimal.NewFromString(clean); err == nil {
			m.amount = amount
			m.hasAmount = true
		}
	}

	marker := strings.ToLower(cfg.CurrencyMarker)
	m.amountOnly = m.hasAmount && marker != "" && strings.Contains(strings.ToLower(input), marker)

	return m
}

// Active reports whether there is anything to search for.
func (m Matcher) Active() bool { return m.query != "" }

func (m Matcher) Match(tx *ledger.Transaction) bool {
	if !m.Active() {
		return true
	}

	amountMatch := m.matchAmount(tx)
	if m.amountOnly {
		return amountMatch
	}

	return amountMatch || m.matchText(tx)
}

// matchAmount compares integer parts for a whole-number query and allows a
// one-grosz tolerance otherwise.
func (m Matcher) matchAmount(tx *ledger.Transaction) bool {
	if !m.hasAmount {
		return false
	}

	if m.amount.IsInteger() {
		return tx.Amount.IntPart() == m.amount.IntPart()
	}

	return tx.Amount.Sub(m.amount).Abs().LessThan(amountTolerance)
}

func (m Matcher) matchText(tx *ledger.Transaction) bool {
	return strings.Contains(tx.Date.Format(ledger.DateLayout), m.query) ||
		strings.Contains(strings.ToLower(tx.Category), m.query) ||
		strings.Contains(strings.ToLower(tx.Description), m.query) ||
		strings.Contains(ledger.FormatAmount(tx.Amount), m.query)
}
