package bank

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/storage"
)

const titleCreateIncome = "Error al crear el ingreso/egreso"

// IncomeInput is the raw income/expense form state.
type IncomeInput struct {
	Code        string              `json:"code"`
	Type        domain.MovementType `json:"type"`
	IncomeName  string              `json:"incomeName"`
	IncomeType  domain.IncomeType   `json:"incomeType"`
	Description string              `json:"description"`
}

// Incomes returns the user's stored income and expense records.
func (s *Service) Incomes(userID int) ([]domain.Income, error) {
	return storage.Load[domain.Income](s.kv, storage.KindIncomes, userID)
}

// CreateIncome validates and registers a new income or expense record.
// The duplicate-code check always runs, including when the description was
// left empty.
func (s *Service) CreateIncome(ctx context.Context, userID int, in IncomeInput) (domain.Income, error) {
	incomes, err := s.Incomes(userID)
	if err != nil {
		return domain.Income{}, err
	}

	if in.Code == "" || in.IncomeName == "" || !in.IncomeType.Valid() || !in.Type.Valid() {
		return domain.Income{}, s.reject(titleCreateIncome, domain.NewReject(
			domain.RejectMissingField, msgMissingFields))
	}
	if utf8.RuneCountInString(in.Code) < 3 || utf8.RuneCountInString(in.IncomeName) < 3 {
		return domain.Income{}, s.reject(titleCreateIncome, domain.NewReject(
			domain.RejectConstraint, "El código y el nombre del ingreso deben tener al menos 3 caracteres"))
	}

	description, r := descriptionOrPlaceholder(in.Description, "La descripción debe tener entre 10 y 500 caracteres")
	if r != nil {
		return domain.Income{}, s.reject(titleCreateIncome, r)
	}

	for _, existing := range incomes {
		if existing.Code == in.Code {
			return domain.Income{}, s.reject(titleCreateIncome, domain.NewReject(
				domain.RejectDuplicateKey, "Ya existe un ingreso o egreso con el código ingresado"))
		}
	}

	income := domain.Income{
		Code:        in.Code,
		Type:        in.Type,
		IncomeName:  in.IncomeName,
		IncomeType:  in.IncomeType,
		Description: description,
		UserID:      userID,
	}
	incomes = append(incomes, income)

	if err := storage.Save(s.kv, storage.KindIncomes, userID, incomes); err != nil {
		return domain.Income{}, err
	}

	s.log.Info().Int("user_id", userID).Str("code", income.Code).Str("type", string(income.Type)).Msg("Income record created")
	s.notify.Success(ctx, fmt.Sprintf("%s creado correctamente", income.Type))
	return income, nil
}
