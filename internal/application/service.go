package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/bnema/merchant-cli/internal/ports"
	"github.com/charmbracelet/log"
)

type Service struct {
	backend     ports.Backend
	credentials Credentials
	logger      *log.Logger
}

func NewService(backend ports.Backend, credentials Credentials, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		backend:     backend,
		credentials: credentials,
		logger:      logger,
	}
}

func (s *Service) CustomerStats(ctx context.Context, req domain.CustomerStatsRequest, headers http.Header) (CustomerStatsView, error) {
	headers, err := s.credentials.Headers(ctx, headers)
	if err != nil {
		return CustomerStatsView{}, err
	}

	resp, err := s.backend.GetCustomerStats(ctx, req, headers)
	if err != nil {
		return CustomerStatsView{}, fmt.Errorf("get customer stats: %w", err)
	}
	if err := checkAccepted(resp.Success, resp.Message); err != nil {
		return CustomerStatsView{}, fmt.Errorf("get customer stats: %w", err)
	}

	customers := domain.ToCustomerMetaModelList(resp.Data.Customers)
	s.logger.Info("customer stats loaded", "user_id", req.UserID, "customers", len(customers))

	return CustomerStatsView{
		UserID:         req.UserID,
		TotalCustomers: resp.Data.TotalCustomers,
		NewCustomers:   resp.Data.NewCustomers,
		Customers:      customers,
		Message:        resp.Message,
	}, nil
}

func (s *Service) CreateOffering(ctx context.Context, offering domain.ServiceModel, headers http.Header) (Result[domain.ServiceModel], error) {
	headers, err := s.credentials.Headers(ctx, headers)
	if err != nil {
		return Result[domain.ServiceModel]{}, err
	}

	resp, err := s.backend.AddNewService(ctx, offering, headers)
	if err != nil {
		return Result[domain.ServiceModel]{}, fmt.Errorf("create offering: %w", err)
	}
	if err := checkAccepted(resp.Success, resp.Message); err != nil {
		return Result[domain.ServiceModel]{}, fmt.Errorf("create offering: %w", err)
	}

	s.logger.Info("offering created", "user_id", offering.UserID, "name", offering.Name, "id", resp.Data.ID)

	return Result[domain.ServiceModel]{Data: resp.Data, Message: resp.Message}, nil
}

func (s *Service) CreatePaymentLink(ctx context.Context, req domain.PaymentRequestModel, headers http.Header) (Result[domain.PaymentLink], error) {
	headers, err := s.credentials.Headers(ctx, headers)
	if err != nil {
		return Result[domain.PaymentLink]{}, err
	}

	resp, err := s.backend.GeneratePaymentLink(ctx, req, headers)
	if err != nil {
		return Result[domain.PaymentLink]{}, fmt.Errorf("create payment link: %w", err)
	}
	if err := checkAccepted(resp.Success, resp.Message); err != nil {
		return Result[domain.PaymentLink]{}, fmt.Errorf("create payment link: %w", err)
	}

	s.logger.Info("payment link created", "user_id", req.UserID, "amount", req.Amount, "currency", req.Currency, "link_id", resp.Data.LinkID)

	return Result[domain.PaymentLink]{Data: resp.Data, Message: resp.Message}, nil
}

func (s *Service) CreateNotification(ctx context.Context, req domain.NotificationRequest, headers http.Header) (Result[domain.Notification], error) {
	headers, err := s.credentials.Headers(ctx, headers)
	if err != nil {
		return Result[domain.Notification]{}, err
	}

	resp, err := s.backend.CreateNewNotification(ctx, req, headers)
	if err != nil {
		return Result[domain.Notification]{}, fmt.Errorf("create notification: %w", err)
	}
	if err := checkAccepted(resp.Success, resp.Message); err != nil {
		return Result[domain.Notification]{}, fmt.Errorf("create notification: %w", err)
	}

	s.logger.Info("notification created", "user_id", req.UserID, "type", req.Type, "id", resp.Data.ID)

	return Result[domain.Notification]{Data: resp.Data, Message: resp.Message}, nil
}

func checkAccepted(success bool, message string) error {
	if success {
		return nil
	}
	if message == "" {
		return domain.ErrRequestRejected
	}

	return fmt.Errorf("%w: %s", domain.ErrRequestRejected, message)
}
