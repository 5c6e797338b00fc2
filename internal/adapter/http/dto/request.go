package dto

import "github.com/iho/fintrack/internal/usecase"

// TransactionRequest carries the raw transaction fields as entered in the
// presentation layer. Parsing and validation happen in the use case, so the
// fields travel as strings.
type TransactionRequest struct {
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *TransactionRequest) ToUseCaseInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		Kind:        r.Kind,
		Amount:      r.Amount,
		Date:        r.Date,
		Description: r.Description,
	}
}

// SetBalanceRequest represents a request to replace the tracked balance.
type SetBalanceRequest struct {
	Balance string `json:"balance"`
}
