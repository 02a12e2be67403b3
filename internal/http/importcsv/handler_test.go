package importcsv_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budzet/internal/http/importcsv"
	"github.com/MrJamesThe3rd/budzet/internal/importer"
	"github.com/MrJamesThe3rd/budzet/internal/ledger"
	"github.com/MrJamesThe3rd/budzet/internal/matching"
)

const statement = `Data;Opis;Kwota
03.06.2024;ORLEN STACJA 12;-210,00
05.06.2024;Wynagrodzenie;4 200,00
`

func upload(t *testing.T, format, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	if format != "" {
		require.NoError(t, mw.WriteField("format", format))
	}

	if content != "" {
		fw, err := mw.CreateFormFile("file", "wyciag.csv")
		require.NoError(t, err)

		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestHandler_Import(t *testing.T) {
	june3 := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		req       func(t *testing.T) *http.Request
		setupMock func(repo *ledger.MockRepository, itx *ledger.MockImportTx, mappings *matching.MockRepository)
		wantCode  int
		wantBody  []string
	}

	tests := []testCase{
		{
			name: "ImportsWithSuggestedCategories",
			req:  func(t *testing.T) *http.Request { return upload(t, "bank", statement) },
			setupMock: func(repo *ledger.MockRepository, itx *ledger.MockImportTx, mappings *matching.MockRepository) {
				mappings.EXPECT().Mappings(gomock.Any()).Return([]matching.Mapping{{ID: 1, RawPattern: "orlen", Category: "Samochód"}}, nil)
				repo.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(false, nil)
				repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
				itx.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return(nil, nil)
				itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params []ledger.CreateParams) ([]*ledger.Transaction, error) {
					require.Len(t, params, 2)
					assert.Equal(t, "Samochód", params[0].Category)
					assert.Equal(t, "Mąż", params[1].Category)

					txs := make([]*ledger.Transaction, len(params))
					for i, p := range params {
						txs[i] = &ledger.Transaction{ID: int64(i + 1), Date: p.Date, Kind: p.Kind, Category: p.Category, Description: p.Description, Amount: p.Amount}
					}

					return txs, nil
				})
				itx.EXPECT().Commit().Return(nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantCode: http.StatusCreated,
			wantBody: []string{`"imported":2`, `"amount":"210.00"`},
		},
		{
			name: "ConflictsReturnedForReview",
			req:  func(t *testing.T) *http.Request { return upload(t, "", statement) },
			setupMock: func(repo *ledger.MockRepository, itx *ledger.MockImportTx, mappings *matching.MockRepository) {
				mappings.EXPECT().Mappings(gomock.Any()).Return(nil, nil)
				repo.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(false, nil)
				repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
				itx.EXPECT().FindDuplicates(gomock.Any(), gomock.Any()).Return([]*ledger.Transaction{
					{ID: 9, Date: june3, Kind: ledger.KindExpense, Category: "Inne", Description: "ORLEN STACJA 12", Amount: decimal.NewFromInt(210)},
				}, nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantCode: http.StatusConflict,
			wantBody: []string{`"conflicts":[{"incoming"`, `"existing":{"id":9`, `"description":"Wynagrodzenie"`},
		},
		{
			name: "LockedMonth",
			req:  func(t *testing.T) *http.Request { return upload(t, "bank", statement) },
			setupMock: func(repo *ledger.MockRepository, itx *ledger.MockImportTx, mappings *matching.MockRepository) {
				mappings.EXPECT().Mappings(gomock.Any()).Return(nil, nil)
				repo.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(true, nil)
			},
			wantCode: http.StatusLocked,
		},
		{
			name:      "MissingFile",
			req:       func(t *testing.T) *http.Request { return upload(t, "bank", "") },
			setupMock: func(*ledger.MockRepository, *ledger.MockImportTx, *matching.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "UnknownFormat",
			req:       func(t *testing.T) *http.Request { return upload(t, "qif", statement) },
			setupMock: func(*ledger.MockRepository, *ledger.MockImportTx, *matching.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "UnrecognisedHeaders",
			req:       func(t *testing.T) *http.Request { return upload(t, "bank", "a;b;c\n1;2;3\n") },
			setupMock: func(*ledger.MockRepository, *ledger.MockImportTx, *matching.MockRepository) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			itx := ledger.NewMockImportTx(ctrl)
			mappings := matching.NewMockRepository(ctrl)
			tt.setupMock(repo, itx, mappings)

			importSvc := importer.NewService(matching.NewService(mappings), importer.Defaults{ExpenseCategory: "Inne", IncomePerson: "Mąż"})
			ledgerSvc := ledger.NewService(repo, ledger.Labels{Fallback: "Inne"})

			r := chi.NewRouter()
			importcsv.NewHandler(importSvc, ledgerSvc).Routes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, tt.req(t))

			assert.Equal(t, tt.wantCode, rec.Code)

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestHandler_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	itx := ledger.NewMockImportTx(ctrl)

	repo.EXPECT().IsMonthLocked(gomock.Any(), "2024-06").Return(false, nil)
	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params []ledger.CreateParams) ([]*ledger.Transaction, error) {
		require.Len(t, params, 1)
		assert.True(t, decimal.NewFromInt(210).Equal(params[0].Amount))

		return []*ledger.Transaction{{ID: 10, Date: params[0].Date, Kind: params[0].Kind, Amount: params[0].Amount}}, nil
	})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	importSvc := importer.NewService(matching.NewService(matching.NewMockRepository(ctrl)), importer.Defaults{})

	r := chi.NewRouter()
	importcsv.NewHandler(importSvc, ledger.NewService(repo, ledger.Labels{Fallback: "Inne"})).Routes(r)

	body := `{"params":[{"date":"2024-06-03","kind":"expense","category":"Samochód","description":"ORLEN","amount":"210.00"}]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/confirm", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":1`)
}
