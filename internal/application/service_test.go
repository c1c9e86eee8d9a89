package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/bnema/merchant-cli/internal/logging"
	"github.com/bnema/merchant-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func newTestService(t *testing.T) (*Service, *mocks.MockBackend, *mocks.MockSecretStore) {
	t.Helper()

	backend := mocks.NewMockBackend(t)
	store := mocks.NewMockSecretStore(t)
	return NewService(backend, NewCredentials(store), logging.Discard()), backend, store
}

func TestServiceCustomerStatsMapsCustomersToMeta(t *testing.T) {
	service, backend, store := newTestService(t)

	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("tok_123", nil)
	backend.EXPECT().GetCustomerStats(mockAnyContext(), domain.CustomerStatsRequest{UserID: "usr-1"}, http.Header{
		"Authorization": {"Bearer tok_123"},
	}).Return(domain.APIResponse[domain.CustomerStats]{
		Success: true,
		Data: domain.CustomerStats{
			TotalCustomers: 2,
			NewCustomers:   1,
			Customers: []domain.CustomerModel{
				{CustomerID: "cus-1", UserID: "usr-1", BasicInfo: &domain.CustomerBasicInfo{Name: "Asha", Email: "asha@example.com"}},
				{CustomerID: "cus-2", UserID: "usr-1"},
			},
		},
	}, nil)

	view, err := service.CustomerStats(context.Background(), domain.CustomerStatsRequest{UserID: "usr-1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, CustomerStatsView{
		UserID:         "usr-1",
		TotalCustomers: 2,
		NewCustomers:   1,
		Customers: []domain.CustomerMetaModel{
			{CustomerID: "cus-1", UserID: "usr-1", Name: "Asha", Email: "asha@example.com"},
			{CustomerID: "cus-2", UserID: "usr-1"},
		},
	}, view)
}

func TestServiceCustomerStatsEmptyListIsNotNil(t *testing.T) {
	service, backend, store := newTestService(t)

	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)
	backend.EXPECT().GetCustomerStats(mockAnyContext(), mock.Anything, http.Header{}).
		Return(domain.APIResponse[domain.CustomerStats]{Success: true}, nil)

	view, err := service.CustomerStats(context.Background(), domain.CustomerStatsRequest{UserID: "usr-1"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, view.Customers)
	assert.Empty(t, view.Customers)
}

func TestServiceRejectedEnvelopeBecomesError(t *testing.T) {
	service, backend, store := newTestService(t)

	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)
	backend.EXPECT().AddNewService(mockAnyContext(), mock.Anything, mock.Anything).
		Return(domain.APIResponse[domain.ServiceModel]{Success: false, Message: "duplicate offering"}, nil)

	_, err := service.CreateOffering(context.Background(), domain.ServiceModel{Name: "Yoga"}, nil)
	require.ErrorIs(t, err, domain.ErrRequestRejected)
	assert.Contains(t, err.Error(), "duplicate offering")
}

func TestServicePropagatesBackendError(t *testing.T) {
	service, backend, store := newTestService(t)

	timeoutErr := errors.New("request timed out")
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)
	backend.EXPECT().GeneratePaymentLink(mockAnyContext(), mock.Anything, mock.Anything).
		Return(domain.APIResponse[domain.PaymentLink]{}, timeoutErr)

	_, err := service.CreatePaymentLink(context.Background(), domain.PaymentRequestModel{Amount: 10}, nil)
	require.ErrorIs(t, err, timeoutErr)
	assert.Contains(t, err.Error(), "create payment link")
}

func TestServiceCreatePaymentLinkReturnsLink(t *testing.T) {
	service, backend, store := newTestService(t)

	req := domain.PaymentRequestModel{UserID: "usr-1", Amount: 499, Currency: "INR"}
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)
	backend.EXPECT().GeneratePaymentLink(mockAnyContext(), req, http.Header{"X-Shop-Id": {"shop-42"}}).
		Return(domain.APIResponse[domain.PaymentLink]{
			Success: true,
			Data:    domain.PaymentLink{LinkID: "pl_1", LinkURL: "https://pay.example.com/pl_1"},
			Message: "link created",
		}, nil)

	result, err := service.CreatePaymentLink(context.Background(), req, http.Header{"X-Shop-Id": {"shop-42"}})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/pl_1", result.Data.LinkURL)
	assert.Equal(t, "link created", result.Message)
}

func TestServiceCreateNotification(t *testing.T) {
	service, backend, store := newTestService(t)

	req := domain.NotificationRequest{UserID: "usr-1", Title: "Payment received", Message: "INR 499", Type: domain.ActivityTypeSuccess}
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)
	backend.EXPECT().CreateNewNotification(mockAnyContext(), req, http.Header{}).
		Return(domain.APIResponse[domain.Notification]{Success: true, Data: domain.Notification{ID: "ntf-1"}}, nil)

	result, err := service.CreateNotification(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, "ntf-1", result.Data.ID)
}

func TestServiceSecretStoreFailureStopsRequest(t *testing.T) {
	service, _, store := newTestService(t)

	storeErr := errors.New("permission denied")
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", storeErr)

	_, err := service.CreateNotification(context.Background(), domain.NotificationRequest{}, nil)
	require.ErrorIs(t, err, storeErr)
}
