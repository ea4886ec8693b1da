package service

import (
	"context"
	"fmt"
	"time"

	"hotelgen/config"
	"hotelgen/infras/otel"
	"hotelgen/internal/domains/date/model"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/failure"

	"github.com/rs/zerolog/log"
)

type Date interface {
	Generate(ctx context.Context) ([]model.Date, error)
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Date {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
	}
}

// Generate returns one row per calendar day between the configured start and
// end dates, both inclusive.
func (s *serviceImpl) Generate(ctx context.Context) (res []model.Date, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Date.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start := civil(s.cfg.Generator.StartDate.Time)
	end := civil(s.cfg.Generator.EndDate.Time)

	if end.Before(start) {
		return nil, failure.InvalidConfigFromString(fmt.Sprintf(
			"end date %s is before start date %s",
			end.Format(constant.DateFormat), start.Format(constant.DateFormat),
		))
	}

	n := Days(start, end)
	res = make([]model.Date, n)

	for i := range n {
		current := start.AddDate(0, 0, i)

		res[i] = model.Date{
			ID:       shared.FormatID(constant.PrefixDate, i+1),
			FullDate: current.Format(constant.DateFormat),
			Day:      current.Day(),
			Month:    int(current.Month()),
			Year:     current.Year(),
			Weekday:  current.Weekday().String(),
		}
	}

	scope.SetAttribute(constant.OtelAttrRows, n)
	log.Debug().Str(constant.OtelAttrEntity, model.EntityName).Int(constant.OtelAttrRows, n).Msg("date dimension generated")

	return res, nil
}

// Days counts calendar days in [start, end]. It is zero or negative when end
// precedes start.
func Days(start, end time.Time) int {
	start, end = civil(start), civil(end)

	return int(end.Sub(start).Hours()/24) + 1
}

func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
