package bankcsv

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSingle means one signed column (e.g. "Kwota" with value "-10,00").
	amountSingle amountMode = iota
	// amountSplit means separate debit and credit columns (e.g. "Obciążenia"/"Uznania").
	amountSplit
)

// Profile describes the column layout of a bank CSV export. Column names are
// matched case-insensitively after stripping a leading '#'.
// Adding a new format is just adding a new Profile to the profiles slice.
type Profile struct {
	Name     string
	DateCol  string
	DescCols []string // joined with a space, empty cells skipped
	// AmountMode selects between AmountCol and DebitCol/CreditCol.
	AmountMode amountMode
	AmountCol  string
	DebitCol   string
	CreditCol  string
}

// requiredCols returns the column names that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := append([]string{p.DateCol}, p.DescCols...)

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of export formats to try during auto-detection.
// More specific profiles should come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "millennium",
		DateCol:    "data transakcji",
		DescCols:   []string{"odbiorca/zleceniodawca", "opis"},
		AmountMode: amountSplit,
		DebitCol:   "obciążenia",
		CreditCol:  "uznania",
	},
	{
		Name:       "ing",
		DateCol:    "data transakcji",
		DescCols:   []string{"dane kontrahenta", "tytuł"},
		AmountMode: amountSingle,
		AmountCol:  "kwota transakcji (waluta rachunku)",
	},
	{
		Name:       "mbank",
		DateCol:    "data operacji",
		DescCols:   []string{"opis operacji"},
		AmountMode: amountSingle,
		AmountCol:  "kwota",
	},
	{
		Name:       "pko",
		DateCol:    "data operacji",
		DescCols:   []string{"opis transakcji"},
		AmountMode: amountSingle,
		AmountCol:  "kwota",
	},
	{
		Name:       "generic",
		DateCol:    "data",
		DescCols:   []string{"opis"},
		AmountMode: amountSingle,
		AmountCol:  "kwota",
	},
}
