package persistence

import (
	"context"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/application/usecase/report"
	"github.com/barbershop/backend/internal/domain/entity"
)

// reportSource implements the report.TransactionSource interface on top of
// the record repositories.
type reportSource struct {
	services  adapter.ServiceRecordRepository
	expenses  adapter.ExpenseRepository
	customers adapter.CustomerRepository
}

// NewReportSource creates a new report transaction source.
func NewReportSource(
	services adapter.ServiceRecordRepository,
	expenses adapter.ExpenseRepository,
	customers adapter.CustomerRepository,
) report.TransactionSource {
	return &reportSource{
		services:  services,
		expenses:  expenses,
		customers: customers,
	}
}

// LoadServiceTransactions returns every service record as a reporting transaction.
func (s *reportSource) LoadServiceTransactions(ctx context.Context) ([]entity.ServiceTransaction, error) {
	records, err := s.services.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	txns := make([]entity.ServiceTransaction, len(records))
	for i, record := range records {
		txns[i] = record.ToTransaction()
	}
	return txns, nil
}

// LoadExpenseTransactions returns every expense as a reporting transaction.
func (s *reportSource) LoadExpenseTransactions(ctx context.Context) ([]entity.ExpenseTransaction, error) {
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	txns := make([]entity.ExpenseTransaction, len(expenses))
	for i, expense := range expenses {
		txns[i] = expense.ToTransaction()
	}
	return txns, nil
}

// CountCustomers returns the number of registered customers.
func (s *reportSource) CountCustomers(ctx context.Context) (int64, error) {
	return s.customers.Count(ctx)
}
