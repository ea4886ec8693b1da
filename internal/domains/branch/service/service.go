package service

import (
	"context"

	"hotelgen/config"
	"hotelgen/infras/otel"
	"hotelgen/internal/domains/branch/model"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/random"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Branch interface {
	Generate(ctx context.Context) ([]model.Branch, error)
}

type serviceImpl struct {
	cfg  *config.Config
	rnd  *random.Random
	otel otel.Otel
}

func New(cfg *config.Config, rnd *random.Random, otel otel.Otel) Branch {
	return &serviceImpl{
		cfg:  cfg,
		rnd:  rnd,
		otel: otel,
	}
}

func (s *serviceImpl) Generate(ctx context.Context) (res []model.Branch, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Branch.Generate")
	defer scope.End()

	n := s.cfg.Generator.NumBranches
	counts := AllocateRooms(s.rnd, n, s.cfg.Generator.MaxTotalRooms)
	res = make([]model.Branch, n)

	for i := range n {
		location := random.Choice(s.rnd, model.Locations)

		res[i] = model.Branch{
			ID:                shared.FormatID(constant.PrefixBranch, i+1),
			Name:              model.NamePrefix + location.City,
			City:              location.City,
			State:             location.State,
			ManagerName:       model.ManagerPrefix + random.Choice(s.rnd, model.ManagerNames),
			Phone:             constant.PhonePrefix + s.rnd.Digits(constant.PhoneDigits),
			StarRating:        s.rnd.IntRange(model.MinStarRating, model.MaxStarRating),
			RoomCount:         counts[i],
			RevenueScore:      s.revenueScore(),
			HasPool:           s.rnd.Bool(),
			HasConferenceRoom: s.rnd.Bool(),
		}
	}

	scope.SetAttributes(map[string]any{
		constant.OtelAttrRows: n,
		"total_rooms":         shared.Sum(counts...),
	})
	log.Debug().Str(constant.OtelAttrEntity, model.EntityName).Int(constant.OtelAttrRows, n).Msg("branches generated")

	return res, nil
}

func (s *serviceImpl) revenueScore() float64 {
	score := decimal.NewFromFloat(s.rnd.FloatRange(model.MinRevenueScore, model.MaxRevenueScore))

	return score.Round(model.RevenueScorePlaces).InexactFloat64()
}

// AllocateRooms splits capacity across n branches. Every branch but the last
// draws from [10, max(10, remaining/branchesLeft)]; the last takes whatever
// remains, so the counts always sum to capacity.
func AllocateRooms(rnd *random.Random, n, capacity int) []int {
	counts := make([]int, n)
	allocated := 0

	for i := range n {
		remainingBranches := n - i
		remainingCapacity := capacity - allocated

		if remainingBranches > 1 {
			fairShare := max(constant.MinRoomsPerBranch, remainingCapacity/remainingBranches)
			counts[i] = rnd.IntRange(constant.MinRoomsPerBranch, fairShare)
		} else {
			counts[i] = remainingCapacity
		}

		allocated += counts[i]
	}

	return counts
}
