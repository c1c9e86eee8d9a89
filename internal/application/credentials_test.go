package application

import (
	"context"
	"net/http"
	"testing"

	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/bnema/merchant-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsSetTokenTrimsAndStores(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Put(mockAnyContext(), TokenSecretKey, "tok_123").Return(nil)

	require.NoError(t, NewCredentials(store).SetToken(context.Background(), "  tok_123\n"))
}

func TestCredentialsSetTokenRejectsEmpty(t *testing.T) {
	store := mocks.NewMockSecretStore(t)

	require.ErrorIs(t, NewCredentials(store).SetToken(context.Background(), "   "), ErrEmptyToken)
}

func TestCredentialsClearToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Delete(mockAnyContext(), TokenSecretKey).Return(nil)

	require.NoError(t, NewCredentials(store).ClearToken(context.Background()))
}

func TestCredentialsHeadersKeepsCallerAuthorization(t *testing.T) {
	store := mocks.NewMockSecretStore(t)

	extra := http.Header{"Authorization": {"Bearer caller"}}
	headers, err := NewCredentials(store).Headers(context.Background(), extra)
	require.NoError(t, err)
	assert.Equal(t, "Bearer caller", headers.Get("Authorization"))
}

func TestCredentialsHeadersDoesNotMutateInput(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("tok_123", nil)

	extra := http.Header{"X-Shop-Id": {"shop-42"}}
	headers, err := NewCredentials(store).Headers(context.Background(), extra)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok_123", headers.Get("Authorization"))
	assert.Equal(t, "shop-42", headers.Get("X-Shop-Id"))
	assert.Empty(t, extra.Get("Authorization"))
}

func TestCredentialsHeadersWithoutStoredToken(t *testing.T) {
	store := mocks.NewMockSecretStore(t)
	store.EXPECT().Get(mockAnyContext(), TokenSecretKey).Return("", domain.ErrSecretNotFound)

	headers, err := NewCredentials(store).Headers(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.Header{}, headers)
}
