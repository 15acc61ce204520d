package statement

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/auth"
	"github.com/MrJamesThe3rd/khata/internal/category"
	"github.com/MrJamesThe3rd/khata/internal/statement"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

// allowedExts is the statement upload allow-list, checked before any
// parsing happens.
var allowedExts = map[string]bool{
	".xls":  true,
	".xlsx": true,
	".csv":  true,
}

type Handler struct {
	parser   *statement.Parser
	txSvc    *transaction.Service
	maxBytes int64
}

func NewHandler(parser *statement.Parser, txSvc *transaction.Service, maxBytes int64) *Handler {
	return &Handler{
		parser:   parser,
		txSvc:    txSvc,
		maxBytes: maxBytes,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/upload", h.upload)
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Type        transaction.Type `json:"type"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
}

type uploadSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "access token required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExts[ext] {
		http.Error(w, "only .xls, .xlsx, and .csv statements are accepted", http.StatusBadRequest)
		return
	}

	result, err := h.parser.Parse(file, header.Filename)
	if err != nil {
		// The file itself could not be read; nothing was stored.
		http.Error(w, "failed to parse statement: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(result.Transactions) == 0 {
		http.Error(w, "no transactions found in the file", http.StatusBadRequest)
		return
	}

	if len(result.Skipped) > 0 {
		slog.Info("skipped statement rows",
			"count", len(result.Skipped),
			"accepted", len(result.Transactions),
		)
	}

	params := make([]transaction.CreateParams, len(result.Transactions))
	for i, p := range result.Transactions {
		params[i] = transaction.CreateParams{
			Date:        p.Date,
			Description: p.Description,
			Type:        p.Type,
			Amount:      p.Amount,
			Category:    category.Categorize(p.Description),
		}
	}

	txs, err := h.txSvc.ReplaceBatch(r.Context(), userID, params)
	if err != nil {
		http.Error(w, "failed to store transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toSuccessResponse(txs []*transaction.Transaction) uploadSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Type:        tx.Type,
			Amount:      rupees(tx.Amount),
			Category:    tx.Category,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return uploadSuccessResponse{
		Imported:     len(responses),
		Transactions: responses,
	}
}

// rupees renders a paise amount as the rupee value API clients expect.
func rupees(paise int64) float64 {
	f, _ := decimal.New(paise, -2).Float64()
	return f
}
