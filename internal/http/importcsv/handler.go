package importcsv

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budzet/internal/http/respond"
	"github.com/MrJamesThe3rd/budzet/internal/importer"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	ledger    *ledger.Service
}

func NewHandler(importSvc *importer.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		ledger:    ledgerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type transactionResponse struct {
	ID          int64       `json:"id"`
	Date        string      `json:"date"`
	Kind        ledger.Kind `json:"kind"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Amount      string      `json:"amount"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

type createParamsDTO struct {
	Date              string      `json:"date"`
	Kind              ledger.Kind `json:"kind"`
	Category          string      `json:"category"`
	Description       string      `json:"description"`
	Amount            string      `json:"amount"`
	ExcludeFromWeekly bool        `json:"exclude_from_weekly"`
}

type conflictDTO struct {
	Incoming createParamsDTO     `json:"incoming"`
	Existing transactionResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	Params []createParamsDTO `json:"params"`
}

// importCSV parses an uploaded statement. When any row duplicates an existing
// transaction nothing is written and the split is returned with 409 so the
// client can confirm the rows it wants.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatBank
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(r.Context(), format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ledger.ImportBatch(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toTxResponse(c.Existing),
			})
		}

		respond.JSON(w, http.StatusConflict, resp)

		return
	}

	respond.JSON(w, http.StatusCreated, toSuccessResponse(result.Imported))
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	params := make([]ledger.CreateParams, 0, len(req.Params))

	for _, p := range req.Params {
		date, err := ledger.ParseDate(p.Date)
		if err != nil {
			http.Error(w, "invalid date: "+p.Date, http.StatusBadRequest)
			return
		}

		amount, err := ledger.ParseAmount(p.Amount)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		params = append(params, ledger.CreateParams{
			Date:              date,
			Kind:              p.Kind,
			Category:          p.Category,
			Description:       p.Description,
			Amount:            amount,
			ExcludeFromWeekly: p.ExcludeFromWeekly,
		})
	}

	txs, err := h.ledger.CreateBatch(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSuccessResponse(txs))
}

func toSuccessResponse(txs []*ledger.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toTxResponse(tx))
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}

func toTxResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(ledger.DateLayout),
		Kind:        tx.Kind,
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      ledger.FormatAmount(tx.Amount),
	}
}

func toParamsDTO(p ledger.CreateParams) createParamsDTO {
	return createParamsDTO{
		Date:              p.Date.Format(ledger.DateLayout),
		Kind:              p.Kind,
		Category:          p.Category,
		Description:       p.Description,
		Amount:            ledger.FormatAmount(p.Amount),
		ExcludeFromWeekly: p.ExcludeFromWeekly,
	}
}
