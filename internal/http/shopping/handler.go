package shopping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budzet/internal/export"
	"github.com/MrJamesThe3rd/budzet/internal/http/respond"
	"github.com/MrJamesThe3rd/budzet/internal/shopping"
)

type Handler struct {
	svc    *shopping.Service
	export *export.Service
}

func NewHandler(svc *shopping.Service, exportSvc *export.Service) *Handler {
	return &Handler{svc: svc, export: exportSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.lists)
	r.Post("/", h.create)

	r.Route("/items/{itemID}", func(r chi.Router) {
		r.Put("/", h.updateItem)
		r.Post("/toggle", h.toggleItem)
		r.Delete("/", h.deleteItem)
	})

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.delete)
		r.Post("/close", h.close)
		r.Post("/reopen", h.reopen)
		r.Post("/items", h.addItem)
		r.Get("/text", h.text)
		r.Get("/pdf", h.pdf)
	})
}

type listResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Status    shopping.Status `json:"status"`
}

type itemResponse struct {
	ID       int64  `json:"id"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	Store    string `json:"store"`
	Checked  bool   `json:"checked"`
}

type groupResponse struct {
	Store string         `json:"store"`
	Items []itemResponse `json:"items"`
}

type listDetailResponse struct {
	listResponse
	Groups []groupResponse `json:"groups"`
}

func toListResponse(l shopping.List) listResponse {
	return listResponse{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt, Status: l.Status}
}

func toItemResponse(i shopping.Item) itemResponse {
	return itemResponse{ID: i.ID, Product: i.Product, Quantity: i.Quantity, Store: i.Store, Checked: i.Checked}
}

func (h *Handler) lists(w http.ResponseWriter, r *http.Request) {
	status := shopping.Status(r.URL.Query().Get("status"))
	if status != "" && status != shopping.StatusOpen && status != shopping.StatusClosed {
		http.Error(w, "status must be open or closed", http.StatusBadRequest)
		return
	}

	lists, err := h.svc.Lists(r.Context(), status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]listResponse, 0, len(lists))
	for _, l := range lists {
		resp = append(resp, toListResponse(l))
	}

	respond.JSON(w, http.StatusOK, resp)
}

type createRequest struct {
	Name string `json:"name"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toListResponse(*list))
}

// get returns the list with its items grouped by store.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	list, items, ok := h.load(w, r)
	if !ok {
		return
	}

	resp := listDetailResponse{listResponse: toListResponse(*list), Groups: []groupResponse{}}

	for _, g := range shopping.GroupByStore(items, export.UnassignedStore) {
		group := groupResponse{Store: g.Store, Items: make([]itemResponse, 0, len(g.Items))}
		for _, item := range g.Items {
			group.Items = append(group.Items, toItemResponse(item))
		}

		resp.Groups = append(resp.Groups, group)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	h.listAction(w, r, h.svc.Delete)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	h.listAction(w, r, h.svc.Close)
}

func (h *Handler) reopen(w http.ResponseWriter, r *http.Request) {
	h.listAction(w, r, h.svc.Reopen)
}

type itemRequest struct {
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	Store    string `json:"store"`
}

func (req itemRequest) params() shopping.ItemParams {
	return shopping.ItemParams{Product: req.Product, Quantity: req.Quantity, Store: req.Store}
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.AddItem(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toItemResponse(*item))
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "itemID")
	if !ok {
		return
	}

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateItem(r.Context(), id, req.params()); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.ToggleItem(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) text(w http.ResponseWriter, r *http.Request) {
	list, items, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := w.Write([]byte(shopping.Text(*list, items, export.UnassignedStore))); err != nil {
		slog.Error("failed to write shopping list", "error", err)
	}
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	list, items, ok := h.load(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.export.ShoppingList(*list, items, &buf); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ShoppingListName(*list)))

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write shopping list", "error", err)
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*shopping.List, []shopping.Item, bool) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return nil, nil, false
	}

	list, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return nil, nil, false
	}

	items, err := h.svc.Items(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return nil, nil, false
	}

	return list, items, true
}

func (h *Handler) listAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) error) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := action(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
