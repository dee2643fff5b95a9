package domain

// AccountType distinguishes checking from savings accounts.
type AccountType string

const (
	AccountCorriente AccountType = "corriente"
	AccountAhorro    AccountType = "ahorro"
)

// Valid reports whether the value is one of the known account types.
func (a AccountType) Valid() bool {
	return a == AccountCorriente || a == AccountAhorro
}

// AccountState is the lifecycle state of a bank account.
type AccountState string

const (
	StateActiva   AccountState = "activa"
	StateInactiva AccountState = "inactiva"
	StateCerrada  AccountState = "cerrada"
)

func (s AccountState) Valid() bool {
	return s == StateActiva || s == StateInactiva || s == StateCerrada
}

// IncomeType classifies the accounting nature of a record.
type IncomeType string

const (
	IncomePasivo     IncomeType = "pasivo"
	IncomeActivo     IncomeType = "activo"
	IncomePatrimonio IncomeType = "patrimonio"
	IncomeCorriente  IncomeType = "corriente"
	IncomeCapital    IncomeType = "capital"
)

func (i IncomeType) Valid() bool {
	switch i {
	case IncomePasivo, IncomeActivo, IncomePatrimonio, IncomeCorriente, IncomeCapital:
		return true
	}
	return false
}

// MovementType marks an income record as income or expense.
type MovementType string

const (
	MovementIngreso MovementType = "ingreso"
	MovementEgreso  MovementType = "egreso"
)

func (m MovementType) Valid() bool {
	return m == MovementIngreso || m == MovementEgreso
}

// TransactionType is the payment concept of a transaction.
type TransactionType string

const (
	TransactionNomina      TransactionType = "Pago de nómina"
	TransactionServicios   TransactionType = "Pago de servicios"
	TransactionImpuestos   TransactionType = "Pago de impuestos"
	TransactionProveedores TransactionType = "Pago de proveedores"
	TransactionPrestamo    TransactionType = "Pago de préstamo"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionNomina, TransactionServicios, TransactionImpuestos,
		TransactionProveedores, TransactionPrestamo:
		return true
	}
	return false
}

// AlertType is the severity of a scheduled alert.
type AlertType string

const (
	AlertRecordatorio AlertType = "Recordatorio"
	AlertUrgente      AlertType = "Urgente"
	AlertImportante   AlertType = "Importante"
)

func (a AlertType) Valid() bool {
	return a == AlertRecordatorio || a == AlertUrgente || a == AlertImportante
}

// Bank identifies the institution holding an account.
type Bank string

// Banks is the fixed institution directory offered to account forms.
var Banks = []Bank{
	"Bancolombia",
	"Davivienda",
	"BBVA",
	"Banco de Bogotá",
	"Banco Popular",
	"Colpatria",
	"Banco AV Villas",
	"Bancoomeva",
}

func (b Bank) Valid() bool {
	for _, known := range Banks {
		if b == known {
			return true
		}
	}
	return false
}
