package shopping_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/aggregate"
	"github.com/MrJamesThe3rd/budzet/internal/export"
	httpshopping "github.com/MrJamesThe3rd/budzet/internal/http/shopping"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	"github.com/MrJamesThe3rd/budzet/internal/shopping"
)

var created = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func openList() *shopping.List {
	return &shopping.List{ID: 1, Name: "Sobota", CreatedAt: created, Status: shopping.StatusOpen}
}

var items = []shopping.Item{
	{ID: 1, ListID: 1, Product: "MLEKO", Quantity: "2 szt.", Store: "Lidl"},
	{ID: 2, ListID: 1, Product: "GWOŹDZIE", Quantity: "1 szt.", Checked: true},
}

func TestHandler(t *testing.T) {
	type testCase struct {
		name      string
		method    string
		path      string
		body      string
		setupMock func(repo *shopping.MockRepository, shops *shopping.MockShopRegistry)
		wantCode  int
		wantType  string
		wantBody  string
	}

	tests := []testCase{
		{
			name:   "ListOpen",
			method: http.MethodGet,
			path:   "/?status=open",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().Lists(gomock.Any(), shopping.StatusOpen).Return([]shopping.List{*openList()}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"name":"Sobota"`,
		},
		{
			name:      "ListBadStatus",
			method:    http.MethodGet,
			path:      "/?status=archived",
			setupMock: func(*shopping.MockRepository, *shopping.MockShopRegistry) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "Create",
			method: http.MethodPost,
			path:   "/",
			body:   `{"name":"Sobota"}`,
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().CreateList(gomock.Any(), "Sobota", gomock.Any()).Return(int64(1), nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"status":"open"`,
		},
		{
			name:   "GetGroupsUnassignedLast",
			method: http.MethodGet,
			path:   "/1",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().GetList(gomock.Any(), int64(1)).Return(openList(), nil).Times(2)
				repo.EXPECT().Items(gomock.Any(), int64(1)).Return(items, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"groups":[{"store":"Lidl","items":[{"id":1,"product":"MLEKO","quantity":"2 szt.","store":"Lidl","checked":false}]},{"store":"POZOSTAŁE"`,
		},
		{
			name:   "GetMissing",
			method: http.MethodGet,
			path:   "/7",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().GetList(gomock.Any(), int64(7)).Return(nil, shopping.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "AddItemRegistersShop",
			method: http.MethodPost,
			path:   "/1/items",
			body:   `{"product":"chleb","quantity":"","store":"Biedronka"}`,
			setupMock: func(repo *shopping.MockRepository, shops *shopping.MockShopRegistry) {
				repo.EXPECT().GetList(gomock.Any(), int64(1)).Return(openList(), nil)
				shops.EXPECT().AddShop(gomock.Any(), "Biedronka").Return(nil)
				repo.EXPECT().AddItem(gomock.Any(), int64(1), gomock.Any()).Return(int64(3), nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":3`,
		},
		{
			name:   "AddItemToClosedList",
			method: http.MethodPost,
			path:   "/1/items",
			body:   `{"product":"chleb"}`,
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				closed := openList()
				closed.Status = shopping.StatusClosed
				repo.EXPECT().GetList(gomock.Any(), int64(1)).Return(closed, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "AddItemEmptyProduct",
			method:    http.MethodPost,
			path:      "/1/items",
			body:      `{"product":"  "}`,
			setupMock: func(*shopping.MockRepository, *shopping.MockShopRegistry) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "ToggleItem",
			method: http.MethodPost,
			path:   "/items/2/toggle",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().ToggleItem(gomock.Any(), int64(2)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "DeleteItem",
			method: http.MethodDelete,
			path:   "/items/2",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().DeleteItem(gomock.Any(), int64(2)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "Close",
			method: http.MethodPost,
			path:   "/1/close",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().SetListStatus(gomock.Any(), int64(1), shopping.StatusClosed).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:   "Text",
			method: http.MethodGet,
			path:   "/1/text",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().GetList(gomock.Any(), int64(1)).Return(openList(), nil).Times(2)
				repo.EXPECT().Items(gomock.Any(), int64(1)).Return(items, nil)
			},
			wantCode: http.StatusOK,
			wantType: "text/plain; charset=utf-8",
			wantBody: "[x] GWOŹDZIE (1 szt.)",
		},
		{
			name:   "PDF",
			method: http.MethodGet,
			path:   "/1/pdf",
			setupMock: func(repo *shopping.MockRepository, _ *shopping.MockShopRegistry) {
				repo.EXPECT().GetList(gomock.Any(), int64(1)).Return(openList(), nil).Times(2)
				repo.EXPECT().Items(gomock.Any(), int64(1)).Return(items, nil)
			},
			wantCode: http.StatusOK,
			wantType: "application/pdf",
			wantBody: "%PDF-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shopping.NewMockRepository(ctrl)
			shops := shopping.NewMockShopRegistry(ctrl)
			tt.setupMock(repo, shops)

			exportSvc := export.NewService(
				ledger.NewService(ledger.NewMockRepository(ctrl), ledger.Labels{Fallback: "Inne"}),
				export.Meta{AppName: "Budżet Domowy", Version: "0.9.5", MonthNames: aggregate.PolishMonthNames},
			)

			r := chi.NewRouter()
			httpshopping.NewHandler(shopping.NewService(repo, shops), exportSvc).Routes(r)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, rec.Header().Get("Content-Type"))
			}

			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
