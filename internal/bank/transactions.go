package bank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/storage"
)

const titleCreateTransaction = "Error al crear la transacción"

// TransactionInput is the raw transaction form state. ConfirmPassword is
// the re-entered password of the identity confirmation step.
type TransactionInput struct {
	Type            domain.TransactionType `json:"transactionType"`
	IncomeType      domain.IncomeType      `json:"transactionIncomeType"`
	Amount          decimal.Decimal        `json:"transactionAmount"`
	AccountNumber   string                 `json:"transactionAccountNumber"`
	Description     string                 `json:"transactionDescription"`
	ConfirmPassword string                 `json:"confirmPassword"`
}

// Transactions returns the user's stored transactions.
func (s *Service) Transactions(userID int) ([]domain.Transaction, error) {
	return storage.Load[domain.Transaction](s.kv, storage.KindTransactions, userID)
}

// CreateTransaction posts a transaction for the authenticated user. The
// re-entered password must match the user's stored password before any
// validation or persistence happens; on any rejection the stored
// collection stays unchanged.
func (s *Service) CreateTransaction(ctx context.Context, user domain.User, in TransactionInput) (domain.Transaction, error) {
	if in.ConfirmPassword == "" {
		return domain.Transaction{}, s.reject(titleCreateTransaction, domain.NewReject(
			domain.RejectAuth, "Debe ingresar su contraseña para verificar su identidad."))
	}
	if in.ConfirmPassword != user.Password {
		return domain.Transaction{}, s.reject(titleCreateTransaction, domain.NewReject(
			domain.RejectAuth, "La contraseña ingresada no coincide con la registrada en su cuenta."))
	}

	if !in.Type.Valid() || !in.IncomeType.Valid() || in.Amount.IsZero() || in.AccountNumber == "" {
		return domain.Transaction{}, s.reject(titleCreateTransaction, domain.NewReject(
			domain.RejectMissingField, msgMissingFields))
	}
	if in.Amount.LessThan(minAmount) {
		return domain.Transaction{}, s.reject(titleCreateTransaction, domain.NewReject(
			domain.RejectConstraint, "El valor de la transacción debe ser mayor a $50.000."))
	}

	description, r := descriptionOrPlaceholder(in.Description, "La descripción debe tener entre 10 y 500 caracteres")
	if r != nil {
		return domain.Transaction{}, s.reject(titleCreateTransaction, r)
	}

	accounts, err := s.Accounts(user.ID)
	if err != nil {
		return domain.Transaction{}, err
	}
	if !accountExists(accounts, in.AccountNumber) {
		return domain.Transaction{}, s.reject(titleCreateTransaction, domain.NewReject(
			domain.RejectReference, "La cuenta bancaria seleccionada no existe"))
	}

	transactions, err := s.Transactions(user.ID)
	if err != nil {
		return domain.Transaction{}, err
	}

	transaction := domain.Transaction{
		TransactionID: nextID(transactions, func(t domain.Transaction) int { return t.TransactionID }),
		Type:          in.Type,
		IncomeType:    in.IncomeType,
		Amount:        in.Amount,
		Date:          time.Now(),
		AccountNumber: in.AccountNumber,
		Description:   description,
		UserID:        user.ID,
	}
	transactions = append(transactions, transaction)

	if err := storage.Save(s.kv, storage.KindTransactions, user.ID, transactions); err != nil {
		return domain.Transaction{}, err
	}

	s.log.Info().
		Int("user_id", user.ID).
		Int("transaction_id", transaction.TransactionID).
		Str("account_number", transaction.AccountNumber).
		Str("amount", transaction.Amount.String()).
		Msg("Transaction posted")
	s.notify.Success(ctx, "Transacción realizada correctamente.")
	return transaction, nil
}

func accountExists(accounts []domain.BankAccount, number string) bool {
	for _, a := range accounts {
		if a.AccountNumber == number {
			return true
		}
	}
	return false
}
