package transaction

import (
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

type transactionResponse struct {
	ID                int64       `json:"id"`
	Date              string      `json:"date"`
	Kind              ledger.Kind `json:"kind"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	Amount            string      `json:"amount"`
	Currency          string      `json:"currency"`
	ExcludeFromWeekly bool        `json:"exclude_from_weekly"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:                tx.ID,
		Date:              tx.Date.Format(ledger.DateLayout),
		Kind:              tx.Kind,
		Category:          tx.Category,
		Description:       tx.Description,
		Amount:            ledger.FormatAmount(tx.Amount),
		Currency:          tx.Currency,
		ExcludeFromWeekly: tx.ExcludeFromWeekly,
	}
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
