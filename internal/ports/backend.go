package ports

import (
	"context"
	"net/http"

	"github.com/bnema/merchant-cli/internal/domain"
)

type Backend interface {
	GetCustomerStats(ctx context.Context, req domain.CustomerStatsRequest, headers http.Header) (domain.APIResponse[domain.CustomerStats], error)
	AddNewService(ctx context.Context, service domain.ServiceModel, headers http.Header) (domain.APIResponse[domain.ServiceModel], error)
	GeneratePaymentLink(ctx context.Context, req domain.PaymentRequestModel, headers http.Header) (domain.APIResponse[domain.PaymentLink], error)
	CreateNewNotification(ctx context.Context, req domain.NotificationRequest, headers http.Header) (domain.APIResponse[domain.Notification], error)
}
