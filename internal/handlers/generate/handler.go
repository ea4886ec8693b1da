package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotelgen/config"
	"hotelgen/infras/excel"
	"hotelgen/infras/otel"
	"hotelgen/infras/s3"
	"hotelgen/shared"
	"hotelgen/shared/constant"
	"hotelgen/shared/failure"
	"hotelgen/shared/timezone"

	bookingModel "hotelgen/internal/domains/booking/model"
	bookingService "hotelgen/internal/domains/booking/service"
	branchModel "hotelgen/internal/domains/branch/model"
	branchService "hotelgen/internal/domains/branch/service"
	customerModel "hotelgen/internal/domains/customer/model"
	customerService "hotelgen/internal/domains/customer/service"
	dateModel "hotelgen/internal/domains/date/model"
	dateService "hotelgen/internal/domains/date/service"
	roomTypeModel "hotelgen/internal/domains/roomtype/model"
	roomTypeService "hotelgen/internal/domains/roomtype/service"
)

const workbookTitle = "Hotel chain sample dataset"

// Dataset is one generated run held in memory until export.
type Dataset struct {
	RunID      string
	Dates      []dateModel.Date
	RoomTypes  []roomTypeModel.RoomType
	Branches   []branchModel.Branch
	Customers  []customerModel.Customer
	Bookings   []bookingModel.Booking
	TotalRooms int
}

// Sheets returns the tables in workbook order.
func (d Dataset) Sheets() []excel.Sheet {
	return []excel.Sheet{
		{Name: constant.SheetCustomer, Headers: customerModel.Columns, Rows: shared.Rows(d.Customers)},
		{Name: constant.SheetBranch, Headers: branchModel.Columns, Rows: shared.Rows(d.Branches)},
		{Name: constant.SheetRoomType, Headers: roomTypeModel.Columns, Rows: shared.Rows(d.RoomTypes)},
		{Name: constant.SheetDate, Headers: dateModel.Columns, Rows: shared.Rows(d.Dates)},
		{Name: constant.SheetBooking, Headers: bookingModel.Columns, Rows: shared.Rows(d.Bookings)},
	}
}

type Handler struct {
	cfg      *config.Config
	otel     otel.Otel
	date     dateService.Date
	roomType roomTypeService.RoomType
	branch   branchService.Branch
	customer customerService.Customer
	booking  bookingService.Booking
	excel    excel.Excel
	s3       s3.S3
}

func New(
	cfg *config.Config,
	otel otel.Otel,
	date dateService.Date,
	roomType roomTypeService.RoomType,
	branch branchService.Branch,
	customer customerService.Customer,
	booking bookingService.Booking,
	excel excel.Excel,
	s3 s3.S3,
) *Handler {
	return &Handler{
		cfg:      cfg,
		otel:     otel,
		date:     date,
		roomType: roomType,
		branch:   branch,
		customer: customer,
		booking:  booking,
		excel:    excel,
		s3:       s3,
	}
}

// Run generates every table, writes the workbook and, when enabled, uploads it.
func (h *Handler) Run(ctx context.Context) (ds Dataset, err error) {
	ds.RunID = uuid.NewString()

	ctx, scope := h.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Generate.Run")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("run_id", ds.RunID)

	if err = h.generate(ctx, &ds); err != nil {
		return ds, err
	}

	path := h.cfg.Export.Path
	created := timezone.Now()

	err = h.excel.Write(ctx, path, excel.Properties{
		Title:      workbookTitle,
		Creator:    h.cfg.App.Name,
		Identifier: ds.RunID,
		Created:    created,
	}, ds.Sheets()...)
	if err != nil {
		return ds, fmt.Errorf("failed to export workbook: %w", err)
	}

	if h.cfg.External.S3.Enable {
		if err = h.upload(ctx, path); err != nil {
			return ds, err
		}
	}

	log.Info().
		Str("path", path).
		Str("run_id", ds.RunID).
		Str("created", timezone.Format(created, constant.TimestampFormat)).
		Int("customers", len(ds.Customers)).
		Int("branches", len(ds.Branches)).
		Int("room_types", len(ds.RoomTypes)).
		Int("dates", len(ds.Dates)).
		Int("bookings", len(ds.Bookings)).
		Int("total_rooms", ds.TotalRooms).
		Msg("Workbook created successfully with all five sheets")

	return ds, nil
}

// Close flushes tracing.
func (h *Handler) Close(ctx context.Context) error {
	return h.otel.Shutdown(ctx)
}

func (h *Handler) generate(ctx context.Context, ds *Dataset) (err error) {
	if ds.Dates, err = h.date.Generate(ctx); err != nil {
		return fmt.Errorf("failed to generate dates: %w", err)
	}

	if ds.RoomTypes, err = h.roomType.Generate(ctx); err != nil {
		return fmt.Errorf("failed to generate room types: %w", err)
	}

	if ds.Branches, err = h.branch.Generate(ctx); err != nil {
		return fmt.Errorf("failed to generate branches: %w", err)
	}

	for _, b := range ds.Branches {
		ds.TotalRooms += b.RoomCount
	}

	log.Info().Int("total_rooms", ds.TotalRooms).Msg("Total rooms across branches")

	if ds.Customers, err = h.customer.Generate(ctx); err != nil {
		return fmt.Errorf("failed to generate customers: %w", err)
	}

	ds.Bookings, err = h.booking.Generate(ctx, bookingService.Dimensions{
		Dates:     ds.Dates,
		RoomTypes: ds.RoomTypes,
		Branches:  ds.Branches,
		Customers: ds.Customers,
	})
	if err != nil {
		return fmt.Errorf("failed to generate bookings: %w", err)
	}

	return nil
}

func (h *Handler) upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return failure.UploadError(fmt.Errorf("failed to read workbook for upload: %w", err))
	}

	url, err := h.s3.UploadFileBytes(ctx, h.cfg.External.S3.BucketName, h.cfg.External.S3.Directory, filepath.Base(path), constant.ContentTypeXLSX, data)
	if err != nil {
		return failure.UploadError(err)
	}

	log.Info().Str("url", url).Msg("Workbook uploaded")

	return nil
}
