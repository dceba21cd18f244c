package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPaymentMethod_IsValid(t *testing.T) {
	tests := []struct {
		method PaymentMethod
		want   bool
	}{
		{PaymentMethodCash, true},
		{PaymentMethodCard, true},
		{PaymentMethodTransfer, true},
		{PaymentMethod("Transfer"), false},
		{PaymentMethod("crypto"), false},
		{PaymentMethod(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			if got := tt.method.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpenseCategory_IsValid(t *testing.T) {
	for _, c := range []ExpenseCategory{
		ExpenseCategorySupplies, ExpenseCategoryUtilities, ExpenseCategoryMaintenance,
		ExpenseCategoryFuel, ExpenseCategoryElectricity, ExpenseCategoryOther,
	} {
		if !c.IsValid() {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if ExpenseCategory("rent").IsValid() {
		t.Error("expected rent to be invalid")
	}
}

func TestServiceRecord_ToTransaction(t *testing.T) {
	customerID := uuid.New()
	date := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)
	record := NewServiceRecord(customerID, "Haircut", "Tunde", decimal.NewFromInt(40), PaymentMethodCash, date, "admin")

	var txn Transaction = record.ToTransaction()

	svc, ok := txn.(ServiceTransaction)
	if !ok {
		t.Fatalf("expected ServiceTransaction, got %T", txn)
	}
	if svc.ID != record.ID || svc.CustomerID != customerID {
		t.Error("expected identifiers to be carried over")
	}
	if !svc.AmountPaid.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected amount 40, got %s", svc.AmountPaid)
	}
	if !txn.TransactionDate().Equal(date) {
		t.Errorf("expected date %s, got %s", date, txn.TransactionDate())
	}
}

func TestExpense_ToTransaction(t *testing.T) {
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	expense := NewExpense(ExpenseCategoryFuel, decimal.NewFromInt(25), "Generator", date, "admin")

	txn := expense.ToTransaction()

	if txn.Category != ExpenseCategoryFuel {
		t.Errorf("expected category fuel, got %s", txn.Category)
	}
	if !txn.TransactionDate().Equal(date) {
		t.Errorf("expected date %s, got %s", date, txn.TransactionDate())
	}
}
