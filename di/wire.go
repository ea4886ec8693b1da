//go:build wireinject
// +build wireinject

package di

import (
	"hotelgen/config"
	"hotelgen/infras/excel"
	"hotelgen/infras/otel"
	"hotelgen/infras/s3"
	"hotelgen/internal/handlers/generate"
	"hotelgen/shared/random"

	"github.com/google/wire"

	bookingService "hotelgen/internal/domains/booking/service"
	branchService "hotelgen/internal/domains/branch/service"
	customerService "hotelgen/internal/domains/customer/service"
	dateService "hotelgen/internal/domains/date/service"
	roomTypeService "hotelgen/internal/domains/roomtype/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	excel.New,
	s3.New,
)

var sharedHelpers = wire.NewSet(
	random.NewFromConfig,
)

var domains = wire.NewSet(
	dateService.New,
	roomTypeService.New,
	branchService.New,
	customerService.New,
	bookingService.New,
)

func InitializeGenerator() *generate.Handler {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		generate.New,
	)

	return &generate.Handler{}
}
