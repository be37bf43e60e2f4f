package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	Id        int             `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Transaction struct {
	Id        int             `json:"id"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"createdAt"`
}

type MoneyRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type AccountResponse struct {
	Account Account `json:"account"`
}

type AccountMovementResponse struct {
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}

type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Metadata     Metadata      `json:"metadata"`
}
