package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelgen/config"
	"hotelgen/infras/otel/mocks"
	"hotelgen/internal/domains/customer/model"
	"hotelgen/internal/domains/customer/service"
	"hotelgen/shared"
	"hotelgen/shared/random"
)

func TestCustomerService_Generate(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generator.NumCustomers = 15000

	svc := service.New(cfg, random.New(8), mocks.NewOtel())

	customers, err := svc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 15000)

	names := map[string]bool{}
	for i, c := range customers {
		require.Equal(t, shared.FormatID("C", i+1), c.ID)

		parts := strings.Split(c.Name, " ")
		require.Len(t, parts, 2)
		assert.Contains(t, model.FirstNames, parts[0])
		assert.Contains(t, model.Surnames, parts[1])

		assert.Equal(t, service.Email(c.Name), c.Email)
		assert.Len(t, c.Phone, 10)
		assert.True(t, strings.HasPrefix(c.Phone, "9"))
		assert.Contains(t, model.Cities, c.City)
		assert.Contains(t, model.States, c.State)
		assert.Equal(t, "Indian", c.Nationality)
		assert.Contains(t, model.LoyaltyTiers, c.LoyaltyTier)
		assert.Contains(t, model.AgeGroups, c.AgeGroup)
		assert.Contains(t, model.Genders, c.Gender)

		names[c.Name] = true
	}

	assert.LessOrEqual(t, len(names), len(model.FirstNames)*len(model.Surnames))
}

func TestCustomerService_Generate_Empty(t *testing.T) {
	cfg := &config.Config{}

	customers, err := service.New(cfg, random.New(1), mocks.NewOtel()).Generate(context.Background())

	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "two part name", input: "Neha Kapoor", expected: "neha.kapoor@example.com"},
		{name: "already lower", input: "rohan sethi", expected: "rohan.sethi@example.com"},
		{name: "single word", input: "Priya", expected: "priya@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Email(tt.input))
		})
	}
}
