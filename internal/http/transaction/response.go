package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/report"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Type        transaction.Type `json:"type"`
	Amount      float64          `json:"amount"`
	Category    string           `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
}

type seriesPointResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type categoryTotalResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type chartsResponse struct {
	Credits  []seriesPointResponse   `json:"credits"`
	Debits   []seriesPointResponse   `json:"debits"`
	Expenses []categoryTotalResponse `json:"expenses"`
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = transactionResponse{
			ID:          tx.ID,
			Date:        tx.Date,
			Description: tx.Description,
			Type:        tx.Type,
			Amount:      rupees(tx.Amount),
			Category:    tx.Category,
			CreatedAt:   tx.CreatedAt,
		}
	}

	return resp
}

func toChartsResponse(charts report.Charts) chartsResponse {
	resp := chartsResponse{
		Credits:  make([]seriesPointResponse, 0, len(charts.Credits)),
		Debits:   make([]seriesPointResponse, 0, len(charts.Debits)),
		Expenses: make([]categoryTotalResponse, 0, len(charts.Expenses)),
	}

	for _, p := range charts.Credits {
		resp.Credits = append(resp.Credits, seriesPointResponse{Date: p.Date, Amount: rupees(p.Amount)})
	}

	for _, p := range charts.Debits {
		resp.Debits = append(resp.Debits, seriesPointResponse{Date: p.Date, Amount: rupees(p.Amount)})
	}

	for _, c := range charts.Expenses {
		resp.Expenses = append(resp.Expenses, categoryTotalResponse{Category: c.Category, Amount: rupees(c.Amount)})
	}

	return resp
}

// rupees renders a paise amount as the rupee value API clients expect.
func rupees(paise int64) float64 {
	f, _ := decimal.New(paise, -2).Float64()
	return f
}
