package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/casaflow/property-service/internal/dtos"
	"github.com/casaflow/property-service/internal/services"
	"github.com/casaflow/property-service/internal/utils"
)

var transactionValidate = validator.New()

type TransactionController struct {
	transactions *services.TransactionService
}

func NewTransactionController(transactions *services.TransactionService) *TransactionController {
	return &TransactionController{transactions: transactions}
}

// GET /api/v1/properties/{id}/transactions
func (c *TransactionController) ListByPropertyHandler(w http.ResponseWriter, r *http.Request) {
	propID, ok := pathID(w, r)
	if !ok {
		return
	}
	txs := c.transactions.ListByProperty(r.Context(), propID)
	utils.RespondWithJSON(w, http.StatusOK, txs)
}

// POST /api/v1/transactions
func (c *TransactionController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := transactionValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid transaction payload", nil, err)
		return
	}

	created := c.transactions.Create(r.Context(), req.ToModel())
	if created == nil {
		utils.RespondErrorWithCode(w, http.StatusBadGateway, utils.ErrCodeRemoteWrite, "Failed to record transaction", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// DELETE /api/v1/transactions/{id}
func (c *TransactionController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if !c.transactions.Delete(r.Context(), id) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Transaction not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
