package bank

import (
	"context"
	"testing"

	"github.com/jdgomez/homebank/internal/domain"
	"github.com/jdgomez/homebank/internal/modal"
)

func validIncomeInput() IncomeInput {
	return IncomeInput{
		Code:       "H05K3",
		Type:       domain.MovementIngreso,
		IncomeName: "Salario",
		IncomeType: domain.IncomeActivo,
	}
}

func TestCreateIncome(t *testing.T) {
	s, center, _ := newService(t)

	income, err := s.CreateIncome(context.Background(), 1, validIncomeInput())
	if err != nil {
		t.Fatalf("CreateIncome failed: %v", err)
	}
	if income.Description != domain.NoDescription {
		t.Errorf("empty description = %q, want placeholder", income.Description)
	}

	r, ok := center.Pending(modal.VariantSuccess)
	if !ok {
		t.Fatal("no pending success modal")
	}
	if r.Message != "ingreso creado correctamente" {
		t.Errorf("success message = %q", r.Message)
	}
}

func TestCreateIncomeValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IncomeInput)
		kind   domain.RejectKind
	}{
		{"missing code", func(in *IncomeInput) { in.Code = "" }, domain.RejectMissingField},
		{"missing type", func(in *IncomeInput) { in.Type = "" }, domain.RejectMissingField},
		{"short code", func(in *IncomeInput) { in.Code = "AB" }, domain.RejectConstraint},
		{"short name", func(in *IncomeInput) { in.IncomeName = "Ab" }, domain.RejectConstraint},
		{"short description", func(in *IncomeInput) { in.Description = "corta" }, domain.RejectConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newService(t)
			in := validIncomeInput()
			tt.mutate(&in)

			_, err := s.CreateIncome(context.Background(), 1, in)
			wantKind(t, err, tt.kind)
		})
	}
}

func TestCreateIncomeDuplicateCode(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	if _, err := s.CreateIncome(ctx, 1, validIncomeInput()); err != nil {
		t.Fatalf("first CreateIncome failed: %v", err)
	}

	// Same code, same user: rejected even with an empty description.
	dup := validIncomeInput()
	dup.IncomeName = "Otro nombre"
	_, err := s.CreateIncome(ctx, 1, dup)
	wantKind(t, err, domain.RejectDuplicateKey)

	// Same code, different user: allowed.
	if _, err := s.CreateIncome(ctx, 2, validIncomeInput()); err != nil {
		t.Fatalf("CreateIncome for another user failed: %v", err)
	}
}

func TestCreateExpense(t *testing.T) {
	s, center, _ := newService(t)

	in := validIncomeInput()
	in.Type = domain.MovementEgreso
	in.Description = "Compra semanal de alimentos"

	income, err := s.CreateIncome(context.Background(), 1, in)
	if err != nil {
		t.Fatalf("CreateIncome failed: %v", err)
	}
	if income.Description != in.Description {
		t.Errorf("description = %q, want %q", income.Description, in.Description)
	}

	r, _ := center.Pending(modal.VariantSuccess)
	if r.Message != "egreso creado correctamente" {
		t.Errorf("success message = %q", r.Message)
	}
}
