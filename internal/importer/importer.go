package importer

import (
	"io"

	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type Format string

const (
	// FormatBank is a Polish bank statement export, detected by its headers.
	FormatBank Format = "bank"
	// FormatLedger is this application's own CSV export.
	FormatLedger Format = "ledger"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.CreateParams, error)
}
