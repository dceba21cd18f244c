package dto

import (
	"time"

	"github.com/barbershop/backend/internal/application/usecase/servicerecord"
)

// RecordServiceRequest represents the request body for recording a service.
// Field rules are enforced by the use case so clients get domain error codes.
type RecordServiceRequest struct {
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	ServiceType   string   `json:"service_type"`
	BarberName    string   `json:"barber_name"`
	AmountPaid    *float64 `json:"amount_paid" binding:"required"`
	PaymentMethod string   `json:"payment_method"`
	ServiceDate   string   `json:"service_date,omitempty"`
	RecordedBy    string   `json:"recorded_by,omitempty" binding:"omitempty,max=100"`
}

// ServiceRecordResponse represents a recorded service in API responses.
type ServiceRecordResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerCreated bool   `json:"customer_created"`
	ServiceType     string `json:"service_type"`
	BarberName      string `json:"barber_name"`
	AmountPaid      string `json:"amount_paid"`
	PaymentMethod   string `json:"payment_method"`
	ServiceDate     string `json:"service_date"`
	RecordedBy      string `json:"recorded_by,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// SaleResponse represents one row of the sales history.
type SaleResponse struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	ServiceType   string `json:"service_type"`
	BarberName    string `json:"barber_name"`
	AmountPaid    string `json:"amount_paid"`
	PaymentMethod string `json:"payment_method"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ServiceDate   string `json:"service_date"`
}

// ListSalesResponse represents a page of the sales history.
type ListSalesResponse struct {
	Sales      []SaleResponse     `json:"sales"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToServiceRecordResponse converts a RecordServiceOutput to its response DTO.
func ToServiceRecordResponse(output *servicerecord.RecordServiceOutput) ServiceRecordResponse {
	r := output.Record
	response := ServiceRecordResponse{
		ID:              r.ID.String(),
		CustomerID:      r.CustomerID.String(),
		CustomerCreated: output.CustomerCreated,
		ServiceType:     r.ServiceType,
		BarberName:      r.BarberName,
		AmountPaid:      money(r.AmountPaid),
		PaymentMethod:   string(r.PaymentMethod),
		ServiceDate:     r.ServiceDate.UTC().Format(time.RFC3339),
		RecordedBy:      r.RecordedBy,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if output.Customer != nil {
		response.CustomerName = output.Customer.Name
		response.CustomerPhone = output.Customer.Phone
	}
	return response
}

// ToListSalesResponse converts a ListSalesOutput to its response DTO.
func ToListSalesResponse(output *servicerecord.ListSalesOutput) ListSalesResponse {
	sales := make([]SaleResponse, len(output.Sales))
	for i, s := range output.Sales {
		sales[i] = SaleResponse{
			ID:            s.ID.String(),
			CustomerName:  s.CustomerName,
			CustomerPhone: s.CustomerPhone,
			ServiceType:   s.ServiceType,
			BarberName:    s.BarberName,
			AmountPaid:    money(s.AmountPaid),
			PaymentMethod: string(s.PaymentMethod),
			Date:          s.Date,
			Time:          s.Time,
			ServiceDate:   s.ServiceDate.UTC().Format(time.RFC3339),
		}
	}
	return ListSalesResponse{
		Sales: sales,
		Pagination: PaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
	}
}
