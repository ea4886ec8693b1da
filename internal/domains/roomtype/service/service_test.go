package service_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelgen/config"
	"hotelgen/infras/otel/mocks"
	"hotelgen/internal/domains/roomtype/model"
	"hotelgen/internal/domains/roomtype/service"
	"hotelgen/shared/random"
)

func TestRoomTypeService_Generate(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{name: "default catalog", count: 6},
		{name: "single entry", count: 1},
		{name: "large catalog", count: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Generator.NumRoomTypes = tt.count

			svc := service.New(cfg, random.New(11), mocks.NewOtel())

			roomTypes, err := svc.Generate(context.Background())
			require.NoError(t, err)
			require.Len(t, roomTypes, tt.count)

			for i, rt := range roomTypes {
				assert.Equal(t, "RT"+strconv.Itoa(i+1), rt.ID)
				assert.Contains(t, model.Categories, rt.Category)
				assert.GreaterOrEqual(t, rt.Price, model.MinPrice)
				assert.LessOrEqual(t, rt.Price, model.MaxPrice)
				assert.Contains(t, model.Occupancies, rt.MaxOccupancy)
				assert.Contains(t, model.AmenityBundles, rt.Amenities)
			}
		})
	}
}

func TestRoomTypeService_Generate_Deterministic(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generator.NumRoomTypes = 6

	a, err := service.New(cfg, random.New(99), mocks.NewOtel()).Generate(context.Background())
	require.NoError(t, err)

	b, err := service.New(cfg, random.New(99), mocks.NewOtel()).Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRoomType_Values(t *testing.T) {
	rt := model.RoomType{
		ID:           "RT1",
		Category:     "Suite",
		Price:        8500,
		MaxOccupancy: 4,
		Amenities:    "WiFi,TV,MiniBar",
		IsAC:         true,
		IsSeaFacing:  false,
	}

	values := rt.Values()

	require.Len(t, values, len(model.Columns))
	assert.Equal(t, []any{"RT1", "Suite", 8500, 4, "WiFi,TV,MiniBar", true, false}, values)
}
