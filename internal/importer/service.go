package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/budzet/internal/importer/bankcsv"
	"github.com/MrJamesThe3rd/budzet/internal/importer/ledgercsv"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
)

// Suggestions hands out a snapshot of the learned description mappings.
type Suggestions interface {
	Suggester(ctx context.Context) (*matching.Suggester, error)
}

// Defaults are the categories assigned to rows that arrive without one.
type Defaults struct {
	ExpenseCategory string
	IncomePerson    string
}

type Service struct {
	importers   map[Format]Importer
	suggestions Suggestions
	defaults    Defaults
}

func NewService(suggestions Suggestions, defaults Defaults) *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatBank:   bankcsv.NewParser(),
			FormatLedger: ledgercsv.NewParser(),
		},
		suggestions: suggestions,
		defaults:    defaults,
	}
}

// Import parses r and fills in missing categories: expenses from the learned
// mappings or the fallback category, incomes with the default person.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) ([]ledger.CreateParams, error) {
	importer, ok := s.importers[format]
	if !ok {
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	params, err := importer.Parse(r)
	if err != nil {
		return nil, err
	}

	suggester, err := s.suggestions.Suggester(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading mappings: %w", err)
	}

	for i := range params {
		if params[i].Category != "" {
			continue
		}

		switch params[i].Kind {
		case ledger.KindExpense:
			params[i].Category = suggester.Suggest(params[i].Description)
			if params[i].Category == "" {
				params[i].Category = s.defaults.ExpenseCategory
			}
		case ledger.KindIncome:
			params[i].Category = s.defaults.IncomePerson
		}
	}

	return params, nil
}
