package service

import (
	"context"
	"strings"

	"hotelgen/config"
	"hotelgen/infras/otel"
	"hotelgen/internal/domains/customer/model"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/random"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	Generate(ctx context.Context) ([]model.Customer, error)
}

type serviceImpl struct {
	cfg  *config.Config
	rnd  *random.Random
	otel otel.Otel
}

func New(cfg *config.Config, rnd *random.Random, otel otel.Otel) Customer {
	return &serviceImpl{
		cfg:  cfg,
		rnd:  rnd,
		otel: otel,
	}
}

func (s *serviceImpl) Generate(ctx context.Context) (res []model.Customer, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Customer.Generate")
	defer scope.End()

	n := s.cfg.Generator.NumCustomers
	res = make([]model.Customer, n)

	for i := range n {
		name := random.Choice(s.rnd, model.FirstNames) + constant.Space + random.Choice(s.rnd, model.Surnames)

		res[i] = model.Customer{
			ID:          shared.FormatID(constant.PrefixCustomer, i+1),
			Name:        name,
			Email:       Email(name),
			Phone:       constant.PhonePrefix + s.rnd.Digits(constant.PhoneDigits),
			City:        random.Choice(s.rnd, model.Cities),
			State:       random.Choice(s.rnd, model.States),
			Nationality: constant.NationalityDflt,
			LoyaltyTier: random.Choice(s.rnd, model.LoyaltyTiers),
			AgeGroup:    random.Choice(s.rnd, model.AgeGroups),
			Gender:      random.Choice(s.rnd, model.Genders),
		}
	}

	scope.SetAttribute(constant.OtelAttrRows, n)
	log.Debug().Str(constant.OtelAttrEntity, model.EntityName).Int(constant.OtelAttrRows, n).Msg("customers generated")

	return res, nil
}

// Email derives the address from a full name: "Neha Kapoor" -> "neha.kapoor@example.com".
func Email(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, constant.Space, constant.Dot)) + constant.EmailDomain
}
