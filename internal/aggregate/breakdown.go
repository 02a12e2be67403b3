package aggregate

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

type Entry struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown is an ordered label → amount association list. Labels keep the
// order in which they were first added. Copies are independent: Add never
// writes into storage another copy can see.
type Breakdown struct {
	entries []Entry
}

func (b *Breakdown) Add(label string, amount decimal.Decimal) {
	i := b.find(label)
	if i < 0 {
		b.entries = append(slices.Clip(b.entries), Entry{Label: label, Amount: amount})
		return
	}

	entries := slices.Clone(b.entries)
	entries[i].Amount = entries[i].Amount.Add(amount)
	b.entries = entries
}

func (b Breakdown) find(label string) int {
	return slices.IndexFunc(b.entries, func(e Entry) bool { return e.Label == label })
}

func (b Breakdown) Get(label string) (decimal.Decimal, bool) {
	i := b.find(label)
	if i < 0 {
		return decimal.Zero, false
	}

	return b.entries[i].Amount, true
}

func (b Breakdown) Len() int { return len(b.entries) }

// Entries returns a copy of the entries in insertion order.
func (b Breakdown) Entries() []Entry {
	return slices.Clone(b.entries)
}

func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range b.entries {
		total = total.Add(e.Amount)
	}

	return total
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	entries := b.Entries()
	if entries == nil {
		entries = []Entry{}
	}

	return json.Marshal(entries)
}
