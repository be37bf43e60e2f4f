package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "accountId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	account, err := app.accountService.Get(r.Context(), id, app.contextGetUserId(r))
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, api.AccountResponse{Account: toApiAccount(account)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Deposit(w http.ResponseWriter, r *http.Request) {
	app.moveMoney(w, r, app.accountService.Deposit)
}

func (app *Application) Withdraw(w http.ResponseWriter, r *http.Request) {
	app.moveMoney(w, r, app.accountService.Withdraw)
}

type movement func(
	ctx context.Context,
	accountID, userID int,
	amount decimal.Decimal) (*domain.Account, *domain.Transaction, error)

func (app *Application) moveMoney(w http.ResponseWriter, r *http.Request, move movement) {
	id, err := readIDParam(r, "accountId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var input api.MoneyRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	account, transaction, err := move(r.Context(), id, app.contextGetUserId(r), input.Amount)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("account balance changed",
		"accountId", account.ID,
		"kind", transaction.Kind,
		"reference", transaction.Reference,
	)

	resp := api.AccountMovementResponse{
		Account:     toApiAccount(account),
		Transaction: toApiTransaction(transaction),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "accountId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	params, err := readPaginationParams(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	transactions, metadata, err := app.accountService.Transactions(
		r.Context(), id, app.contextGetUserId(r), toPagination(params))
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}

	resp := api.TransactionListResponse{
		Transactions: make([]api.Transaction, len(transactions)),
		Metadata:     toApiMetadata(metadata),
	}

	for i := range transactions {
		resp.Transactions[i] = toApiTransaction(&transactions[i])
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiAccount(account *domain.Account) api.Account {
	return api.Account{
		Id:        account.ID,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}

func toApiTransaction(transaction *domain.Transaction) api.Transaction {
	return api.Transaction{
		Id:        transaction.ID,
		Reference: transaction.Reference.String(),
		Amount:    transaction.Amount,
		Kind:      string(transaction.Kind),
		CreatedAt: transaction.CreatedAt,
	}
}
