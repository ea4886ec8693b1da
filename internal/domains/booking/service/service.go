package service

import (
	"context"
	"fmt"

	"hotelgen/config"
	"hotelgen/infras/otel"
	"hotelgen/internal/domains/booking/model"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/failure"
	"hotelgen/shared/random"

	branchModel "hotelgen/internal/domains/branch/model"
	customerModel "hotelgen/internal/domains/customer/model"
	dateModel "hotelgen/internal/domains/date/model"
	roomTypeModel "hotelgen/internal/domains/roomtype/model"

	"github.com/rs/zerolog/log"
)

// Dimensions are the already generated tables bookings point into.
type Dimensions struct {
	Dates     []dateModel.Date
	RoomTypes []roomTypeModel.RoomType
	Branches  []branchModel.Branch
	Customers []customerModel.Customer
}

type Booking interface {
	Generate(ctx context.Context, dims Dimensions) ([]model.Booking, error)
}

type serviceImpl struct {
	cfg  *config.Config
	rnd  *random.Random
	otel otel.Otel
}

func New(cfg *config.Config, rnd *random.Random, otel otel.Otel) Booking {
	return &serviceImpl{
		cfg:  cfg,
		rnd:  rnd,
		otel: otel,
	}
}

// Generate samples each reference independently per booking. There is no
// availability tracking: any branch, room type and date may be booked any
// number of times.
func (s *serviceImpl) Generate(ctx context.Context, dims Dimensions) (res []model.Booking, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Generate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	n := s.cfg.Generator.NumBookings
	if n == 0 {
		return []model.Booking{}, nil
	}

	if len(dims.Customers) == 0 || len(dims.RoomTypes) == 0 || len(dims.Branches) == 0 {
		return nil, failure.EmptyDimension
	}

	if len(dims.Dates) < constant.MinDateRows {
		return nil, failure.EmptyDateTable
	}

	lastCheckIn := len(dims.Dates) - constant.MinDateRows
	res = make([]model.Booking, n)

	for i := range n {
		customer := random.Choice(s.rnd, dims.Customers)
		roomType := random.Choice(s.rnd, dims.RoomTypes)
		branch := random.Choice(s.rnd, dims.Branches)

		checkIn := s.rnd.IntRange(0, lastCheckIn)
		stay := s.rnd.IntRange(constant.MinStay, constant.MaxStay)

		checkInDate, checkOutDate, err := Stay(dims.Dates, checkIn, stay)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", i+1, err)
		}

		status := random.Choice(s.rnd, model.Statuses)
		reason := constant.Empty
		if status == model.StatusCancelled {
			reason = random.Choice(s.rnd, model.CancellationReasons)
		}

		res[i] = model.Booking{
			ID:                 shared.FormatID(constant.PrefixBooking, i+1),
			CustomerID:         customer.ID,
			RoomTypeID:         roomType.ID,
			BranchID:           branch.ID,
			CheckInDate:        checkInDate,
			CheckOutDate:       checkOutDate,
			Duration:           stay,
			Revenue:            Revenue(roomType.Price, stay),
			Status:             status,
			CancellationReason: reason,
			LeadTime:           s.rnd.IntRange(model.MinLeadTime, model.MaxLeadTime),
			PaymentMethod:      random.Choice(s.rnd, model.PaymentMethods),
			DiscountApplied:    random.Choice(s.rnd, model.Discounts),
			BookingChannel:     random.Choice(s.rnd, model.Channels),
			Purpose:            random.Choice(s.rnd, model.Purposes),
		}
	}

	scope.SetAttribute(constant.OtelAttrRows, n)
	log.Debug().Str(constant.OtelAttrEntity, model.EntityName).Int(constant.OtelAttrRows, n).Msg("bookings generated")

	return res, nil
}

// Stay resolves check-in and check-out dates for a stay of length nights
// starting at the checkIn row of dates.
func Stay(dates []dateModel.Date, checkIn, length int) (checkInDate, checkOutDate string, err error) {
	if length < constant.MinStay || length > constant.MaxStay {
		return "", "", failure.OutOfRange(fmt.Sprintf("stay length %d outside [%d,%d]", length, constant.MinStay, constant.MaxStay))
	}

	if checkIn < 0 || checkIn > len(dates)-constant.MinDateRows {
		return "", "", failure.OutOfRange(fmt.Sprintf("check-in index %d outside [0,%d]", checkIn, len(dates)-constant.MinDateRows))
	}

	checkOut := checkIn + length

	return dates[checkIn].FullDate, dates[checkOut].FullDate, nil
}

// Revenue is the undiscounted room price times the number of nights.
func Revenue(price, nights int) int {
	return price * nights
}
