package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/icconsult/customer-service/internal/domain"
	"github.com/icconsult/customer-service/internal/events"
	"github.com/icconsult/customer-service/internal/repository"
	apperrors "github.com/icconsult/customer-service/pkg/util/errorutil"
	"github.com/icconsult/customer-service/pkg/util/masking"
)

// CustomerService reads and overwrites customer records.
type CustomerService struct {
	customers  repository.CustomerRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CustomerDependencies bundles collaborators for the customer service.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customers:  deps.CustomerRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// GetCustomer returns the record stored under id.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Successfully retrieved customer from: " + maskedFields(customer) + ".")
	return customer, nil
}

// UpdateCustomer overwrites all mutable fields of the record stored under id.
// caller is recorded in logs and events only.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id, caller string, fields domain.CustomerFields) (*domain.Customer, error) {
	customer, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := customer.Fields()
	customer.Overwrite(fields)

	if err := s.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, s.notFound(id)
		}
		s.logger.Error("Error while trying to update customer ["+err.Error()+"]",
			zap.String("customer_id", masking.Mask(id)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Customer update successful, new values: "+maskedFields(customer)+".",
		zap.String("caller", caller))

	s.publish(ctx, events.NewEvent(events.EventCustomerUpdated, customer.ID, caller, events.CustomerUpdatedPayload{
		ChangedFields: changedFields(previous, fields),
	}))
	return customer, nil
}

func (s *CustomerService) lookup(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, s.notFound(id)
		}
		return nil, err
	}
	return customer, nil
}

// notFound logs the masked id; the returned message carries the raw id.
func (s *CustomerService) notFound(id string) error {
	s.logger.Info(domain.CustomerNotFoundMessage(masking.Mask(id)))
	return apperrors.NewNotFound(domain.CustomerNotFoundMessage(id))
}

func (s *CustomerService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

func maskedFields(c *domain.Customer) string {
	return "[givenName=" + masking.Mask(c.GivenName) +
		", familyName=" + masking.Mask(c.FamilyName) +
		", email=" + masking.Mask(c.Email) + "]"
}

func changedFields(before, after domain.CustomerFields) []string {
	changed := make([]string, 0, 3)
	if before.GivenName != after.GivenName {
		changed = append(changed, "givenName")
	}
	if before.FamilyName != after.FamilyName {
		changed = append(changed, "familyName")
	}
	if before.Email != after.Email {
		changed = append(changed, "email")
	}
	return changed
}
