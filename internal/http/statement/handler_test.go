package statement_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/auth"
	statementHandler "github.com/MrJamesThe3rd/khata/internal/http/statement"
	"github.com/MrJamesThe3rd/khata/internal/statement"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
	"github.com/MrJamesThe3rd/khata/internal/transaction/store"
)

const statementCSV = `Acme Bank Ltd.,,,
Statement of Account,,,
Date,Narration,Type,Amount
24/12/2025,Payment via UPI to John Doe,CR,"1,500.00"
25/12/2025,ATM Cash Withdrawal Mumbai,DR,"2,000.00"
`

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newTestServer(t *testing.T) (http.Handler, string, uuid.UUID, *transaction.Service) {
	t.Helper()

	tokens := auth.NewService([]byte("test-secret"), time.Hour)
	userID := uuid.New()

	token, err := tokens.IssueToken(userID, "john@example.com")
	require.NoError(t, err)

	txSvc := transaction.NewService(store.New())
	handler := statementHandler.NewHandler(statement.NewParser(), txSvc, 1<<20)

	r := chi.NewRouter()
	r.Route("/api/v1/transactions", func(r chi.Router) {
		r.Use(tokens.Middleware)
		handler.Routes(r)
	})

	return r, token, userID, txSvc
}

func TestHandler_Upload(t *testing.T) {
	srv, token, userID, txSvc := newTestServer(t)

	body, contentType := multipartBody(t, "statement.csv", statementCSV)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/upload", body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Imported     int `json:"imported"`
		Transactions []struct {
			Date     string  `json:"date"`
			Type     string  `json:"type"`
			Amount   float64 `json:"amount"`
			Category string  `json:"category"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Imported)
	assert.Equal(t, "2025-12-24", resp.Transactions[0].Date)
	assert.Equal(t, "credit", resp.Transactions[0].Type)
	assert.InDelta(t, 1500.00, resp.Transactions[0].Amount, 0.001)
	assert.Equal(t, "UPI Payment", resp.Transactions[0].Category)
	assert.Equal(t, "Cash Withdrawal", resp.Transactions[1].Category)

	// The parsed batch must actually land in the store.
	stored, err := txSvc.List(req.Context(), userID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestHandler_Upload_ReplacesPreviousBatch(t *testing.T) {
	srv, token, userID, txSvc := newTestServer(t)

	for i := 0; i < 2; i++ {
		body, contentType := multipartBody(t, "statement.csv", statementCSV)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/upload", body)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	stored, err := txSvc.List(httptest.NewRequest(http.MethodGet, "/", nil).Context(), userID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestHandler_Upload_Rejections(t *testing.T) {
	type testCase struct {
		name     string
		filename string
		content  string
		wantBody string
	}

	tests := []testCase{
		{
			name:     "UnsupportedExtension",
			filename: "statement.pdf",
			content:  statementCSV,
			wantBody: "only .xls, .xlsx, and .csv statements are accepted",
		},
		{
			name:     "NoTransactions",
			filename: "statement.csv",
			content:  "Date,Narration,Type,Amount\n",
			wantBody: "no transactions found in the file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, token, _, _ := newTestServer(t)

			body, contentType := multipartBody(t, tt.filename, tt.content)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/upload", body)
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", contentType)

			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Upload_MissingFileField(t *testing.T) {
	srv, token, _, _ := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("notes", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/upload", body)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file field is required")
}

func TestHandler_Upload_RequiresToken(t *testing.T) {
	srv, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/upload", strings.NewReader(""))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
