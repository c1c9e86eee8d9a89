package report

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/merchant-cli/internal/application"
	"github.com/bnema/merchant-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCustomerStats(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := RenderCustomerStats(application.CustomerStatsView{
		UserID:         "usr-1",
		TotalCustomers: 4,
		NewCustomers:   1,
		Customers: []domain.CustomerMetaModel{
			{CustomerID: "cus-1", Name: "Asha Rao", Mobile: "+919800000001", Email: "asha@example.com", CreatedAt: now.Add(-3 * 24 * time.Hour).Format(time.RFC3339)},
			{CustomerID: "cus-2", Name: "Vikram", CreatedAt: now.Add(-2 * time.Hour).Format(time.RFC3339)},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Customer Stats")
	assert.Contains(t, output, "user: usr-1  customers: 4  new: 1")
	assert.Contains(t, output, "25%")
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Asha Rao")
	assert.Contains(t, output, "asha@example.com")
	assert.Contains(t, output, "3 days ago")
	assert.Contains(t, output, "2 hours ago")
}

func TestRenderCustomerStatsEmpty(t *testing.T) {
	output, err := RenderCustomerStats(application.CustomerStatsView{UserID: "usr-1"}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "customers: 0")
	assert.Contains(t, output, "No customers to show.")
	assert.NotContains(t, output, "new share")
}

func TestRenderCustomerStatsMaxRows(t *testing.T) {
	customers := []domain.CustomerMetaModel{
		{Name: "First"}, {Name: "Second"}, {Name: "Third"},
	}

	output, err := RenderCustomerStats(application.CustomerStatsView{
		TotalCustomers: 3,
		Customers:      customers,
	}, RenderOptions{MaxRows: 2})

	require.NoError(t, err)
	assert.Contains(t, output, "First")
	assert.Contains(t, output, "Second")
	assert.NotContains(t, output, "Third")
	assert.Contains(t, output, "... 1 more")
}

func TestRenderResult(t *testing.T) {
	output := RenderResult("Payment link created", "link ready", []Field{
		{Key: "link", Value: "https://pay.example.com/pl_1"},
		{Key: "expires", Value: ""},
	})

	assert.Contains(t, output, "Payment link created")
	assert.Contains(t, output, "link ready")
	assert.Contains(t, output, "link:")
	assert.Contains(t, output, "https://pay.example.com/pl_1")

	var expiresLine string
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "expires:") {
			expiresLine = line
		}
	}
	assert.Contains(t, expiresLine, missingValue)
}

func TestFormatJoined(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt string
		want      string
	}{
		{name: "empty", createdAt: "", want: "-"},
		{name: "unparseable kept verbatim", createdAt: "1739530800", want: "1739530800"},
		{name: "minutes", createdAt: now.Add(-10 * time.Minute).Format(time.RFC3339), want: "just now"},
		{name: "one hour", createdAt: now.Add(-time.Hour).Format(time.RFC3339), want: "1 hour ago"},
		{name: "one day", createdAt: now.Add(-25 * time.Hour).Format(time.RFC3339), want: "1 day ago"},
		{name: "old", createdAt: "2025-01-05T10:00:00Z", want: "05 Jan 2025"},
		{name: "future", createdAt: "2026-03-01T10:00:00Z", want: "01 Mar 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatJoined(tt.createdAt, now))
		})
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[====]", renderProgressBar(150, 4, s))
	assert.Equal(t, "[----]", renderProgressBar(-5, 4, s))
	assert.Equal(t, "[==--]", renderProgressBar(50, 4, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}
