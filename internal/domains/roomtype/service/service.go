package service

import (
	"context"

	"hotelgen/config"
	"hotelgen/infras/otel"
	"hotelgen/internal/domains/roomtype/model"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/random"

	"github.com/rs/zerolog/log"
)

type RoomType interface {
	Generate(ctx context.Context) ([]model.RoomType, error)
}

type serviceImpl struct {
	cfg  *config.Config
	rnd  *random.Random
	otel otel.Otel
}

func New(cfg *config.Config, rnd *random.Random, otel otel.Otel) RoomType {
	return &serviceImpl{
		cfg:  cfg,
		rnd:  rnd,
		otel: otel,
	}
}

// Generate draws every attribute independently per row, so categories repeat.
func (s *serviceImpl) Generate(ctx context.Context) (res []model.RoomType, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomType.Generate")
	defer scope.End()

	n := s.cfg.Generator.NumRoomTypes
	res = make([]model.RoomType, n)

	for i := range n {
		res[i] = model.RoomType{
			ID:           shared.FormatID(constant.PrefixRoomType, i+1),
			Category:     random.Choice(s.rnd, model.Categories),
			Price:        s.rnd.IntRange(model.MinPrice, model.MaxPrice),
			MaxOccupancy: random.Choice(s.rnd, model.Occupancies),
			Amenities:    random.Choice(s.rnd, model.AmenityBundles),
			IsAC:         s.rnd.Bool(),
			IsSeaFacing:  s.rnd.Bool(),
		}
	}

	scope.SetAttribute(constant.OtelAttrRows, n)
	log.Debug().Str(constant.OtelAttrEntity, model.EntityName).Int(constant.OtelAttrRows, n).Msg("room types generated")

	return res, nil
}
