package bank

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/storage"
)

const accountNumberLength = 16

const (
	titleCreateAccount = "Error al inscribir la cuenta bancaria"
	titleEditAccount   = "Error al editar la cuenta bancaria"
)

// AccountInput is the raw account form state.
type AccountInput struct {
	AccountType    domain.AccountType  `json:"accountType"`
	AccountState   domain.AccountState `json:"accountState"`
	AccountNumber  string              `json:"accountNumber"`
	Bank           domain.Bank         `json:"bank"`
	IncomeType     domain.IncomeType   `json:"incomeType"`
	CurrentBalance decimal.Decimal     `json:"currentBalance"`
}

// Accounts returns the user's stored bank accounts.
func (s *Service) Accounts(userID int) ([]domain.BankAccount, error) {
	return storage.Load[domain.BankAccount](s.kv, storage.KindAccounts, userID)
}

// CreateAccount validates and registers a new bank account for the user.
func (s *Service) CreateAccount(ctx context.Context, userID int, in AccountInput) (domain.BankAccount, error) {
	accounts, err := s.Accounts(userID)
	if err != nil {
		return domain.BankAccount{}, err
	}

	if r := validateAccountFields(in); r != nil {
		return domain.BankAccount{}, s.reject(titleCreateAccount, r)
	}
	for _, existing := range accounts {
		if existing.AccountNumber == in.AccountNumber {
			return domain.BankAccount{}, s.reject(titleCreateAccount, domain.NewReject(
				domain.RejectDuplicateKey, "Ya existe una cuenta bancaria con ese número de cuenta"))
		}
	}

	account := domain.BankAccount{
		AccountType:    in.AccountType,
		AccountState:   in.AccountState,
		AccountNumber:  in.AccountNumber,
		Bank:           in.Bank,
		IncomeType:     in.IncomeType,
		CurrentBalance: in.CurrentBalance,
		UserID:         userID,
	}
	accounts = append(accounts, account)

	if err := storage.Save(s.kv, storage.KindAccounts, userID, accounts); err != nil {
		return domain.BankAccount{}, err
	}

	s.log.Info().Int("user_id", userID).Str("account_number", account.AccountNumber).Msg("Bank account created")
	s.notify.Success(ctx, "Cuenta bancaria inscrita exitosamente")
	return account, nil
}

// UpdateAccount edits the account identified by its immutable account
// number, replacing the stored record in place. At least one field must
// differ from the stored record.
func (s *Service) UpdateAccount(ctx context.Context, userID int, accountNumber string, in AccountInput) (domain.BankAccount, error) {
	accounts, err := s.Accounts(userID)
	if err != nil {
		return domain.BankAccount{}, err
	}

	idx := -1
	for i, existing := range accounts {
		if existing.AccountNumber == accountNumber {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.BankAccount{}, s.reject(titleEditAccount, domain.NewReject(
			domain.RejectReference, "No existe una cuenta bancaria con ese número de cuenta"))
	}

	// The account number cannot be edited; the form keeps the field disabled.
	if in.AccountNumber != "" && in.AccountNumber != accountNumber {
		return domain.BankAccount{}, s.reject(titleEditAccount, domain.NewReject(
			domain.RejectConstraint, "El número de cuenta no se puede modificar"))
	}
	in.AccountNumber = accountNumber

	if r := validateAccountFields(in); r != nil {
		return domain.BankAccount{}, s.reject(titleEditAccount, r)
	}

	stored := accounts[idx]
	if in.AccountType == stored.AccountType &&
		in.AccountState == stored.AccountState &&
		in.IncomeType == stored.IncomeType &&
		in.Bank == stored.Bank &&
		in.CurrentBalance.Equal(stored.CurrentBalance) {
		return domain.BankAccount{}, s.reject(titleEditAccount, domain.NewReject(
			domain.RejectNoChange, "Por favor, modifique al menos un campo"))
	}

	accounts[idx] = domain.BankAccount{
		AccountType:    in.AccountType,
		AccountState:   in.AccountState,
		AccountNumber:  accountNumber,
		Bank:           in.Bank,
		IncomeType:     in.IncomeType,
		CurrentBalance: in.CurrentBalance,
		UserID:         userID,
	}

	if err := storage.Save(s.kv, storage.KindAccounts, userID, accounts); err != nil {
		return domain.BankAccount{}, err
	}

	s.log.Info().Int("user_id", userID).Str("account_number", accountNumber).Msg("Bank account updated")
	s.notify.Success(ctx, "Cuenta bancaria editada exitosamente")
	return accounts[idx], nil
}

// RequestDeleteAccount raises the confirm modal for deleting the account.
// The deletion runs when the modal is accepted.
func (s *Service) RequestDeleteAccount(userID int, accountNumber string) {
	s.modals.ShowConfirm(
		fmt.Sprintf("¿Estás seguro/a de que deseas eliminar la cuenta bancaria %s?", accountNumber),
		func() {
			if err := s.DeleteAccount(userID, accountNumber); err != nil {
				s.log.Error().Err(err).Str("account_number", accountNumber).Msg("Failed to delete account")
			}
		},
	)
}

// DeleteAccount removes the account from the user's collection.
func (s *Service) DeleteAccount(userID int, accountNumber string) error {
	accounts, err := s.Accounts(userID)
	if err != nil {
		return err
	}

	kept := accounts[:0]
	found := false
	for _, existing := range accounts {
		if existing.AccountNumber == accountNumber {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return domain.NewReject(domain.RejectReference, "No existe una cuenta bancaria con ese número de cuenta")
	}

	if err := storage.Save(s.kv, storage.KindAccounts, userID, kept); err != nil {
		return err
	}

	s.log.Info().Int("user_id", userID).Str("account_number", accountNumber).Msg("Bank account deleted")
	return nil
}

// validateAccountFields applies the create/edit field rules shared by both
// mutators: all fields present, a 16 digit account number and the minimum
// balance.
func validateAccountFields(in AccountInput) *domain.Reject {
	if !in.AccountType.Valid() || !in.AccountState.Valid() || !in.IncomeType.Valid() ||
		!in.Bank.Valid() || in.AccountNumber == "" || in.CurrentBalance.IsZero() {
		return domain.NewReject(domain.RejectMissingField, msgMissingFields)
	}
	if !isAccountNumber(in.AccountNumber) {
		return domain.NewReject(domain.RejectConstraint, "El número de cuenta debe tener 16 dígitos")
	}
	if in.CurrentBalance.LessThan(minAmount) {
		return domain.NewReject(domain.RejectConstraint, "Por favor, ingrese un saldo mayor a $50.000")
	}
	return nil
}

func isAccountNumber(number string) bool {
	if len(number) != accountNumberLength {
		return false
	}
	for _, c := range number {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
