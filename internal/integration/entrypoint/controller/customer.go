package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barbershop/backend/internal/application/usecase/customer"
	"github.com/barbershop/backend/internal/integration/entrypoint/dto"
)

// CustomerController handles customer endpoints.
type CustomerController struct {
	listUseCase *customer.ListCustomersUseCase
}

// NewCustomerController creates a new customer controller instance.
func NewCustomerController(listUseCase *customer.ListCustomersUseCase) *CustomerController {
	return &CustomerController{listUseCase: listUseCase}
}

// List handles GET /customers requests.
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListCustomersResponse(customers))
}
