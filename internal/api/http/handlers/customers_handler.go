package handlers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/icconsult/customer-service/internal/api/dto"
	"github.com/icconsult/customer-service/internal/auth"
	"github.com/icconsult/customer-service/internal/domain"
	"github.com/icconsult/customer-service/internal/service"
	apperrors "github.com/icconsult/customer-service/pkg/util/errorutil"
)

const customerIDTag = "customerid"

// CustomersHandler exposes the customer resource.
type CustomersHandler struct {
	customers *service.CustomerService
	extractor *auth.Extractor
	validate  *validator.Validate
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService, extractor *auth.Extractor) *CustomersHandler {
	validate := validator.New()
	_ = validate.RegisterValidation(customerIDTag, func(fl validator.FieldLevel) bool {
		return domain.ValidCustomerID(fl.Field().String())
	})
	return &CustomersHandler{customers: customers, extractor: extractor, validate: validate}
}

// Get handles GET /api/v1/customer/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	if _, err := h.extractor.Extract(auth.CredentialFromContext(c), auth.OperationRead); err != nil {
		return err
	}
	id, err := h.customerID(c)
	if err != nil {
		return err
	}

	customer, err := h.customers.GetCustomer(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// Put handles PUT /api/v1/customer/:id.
func (h *CustomersHandler) Put(c *fiber.Ctx) error {
	caller, err := h.extractor.Extract(auth.CredentialFromContext(c), auth.OperationWrite)
	if err != nil {
		return err
	}
	id, err := h.customerID(c)
	if err != nil {
		return err
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.customers.UpdateCustomer(c.UserContext(), id, caller, req.Fields())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewCustomerResponse(customer))
}

// customerID returns a copy of the path id; fiber reuses the underlying buffer.
func (h *CustomersHandler) customerID(c *fiber.Ctx) (string, error) {
	id := strings.Clone(c.Params("id"))
	if err := h.validate.Var(id, customerIDTag); err != nil {
		return "", apperrors.NewValidationError("invalid customer id", map[string]any{
			"id": "must match ^[a-z0-9-]*$",
		})
	}
	return id, nil
}
