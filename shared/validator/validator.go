package validator

import (
	"hotelgen/config"
	"hotelgen/shared/constant"
	"hotelgen/shared/failure"

	val "github.com/go-playground/validator/v10"
)

const (
	tagDateRange = "daterange"
	tagRoomFloor = "roomfloor"
)

var validate *val.Validate

// validateGenerator checks rules spanning several generator fields.
func validateGenerator(sl val.StructLevel) {
	cfg, ok := sl.Current().Interface().(config.Config)
	if !ok {
		return
	}

	gen := cfg.Generator

	lastCheckIn := gen.StartDate.AddDate(0, 0, constant.MinDateRows-1)
	if gen.EndDate.Before(lastCheckIn) {
		sl.ReportError(gen.EndDate, "EndDate", "EndDate", tagDateRange, "")
	}

	if gen.NumBranches > 0 && gen.MaxTotalRooms < constant.MinRoomsPerBranch*gen.NumBranches {
		sl.ReportError(gen.MaxTotalRooms, "MaxTotalRooms", "MaxTotalRooms", tagRoomFloor, "")
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateGenerator, config.Config{})
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.InvalidConfigFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateConfig rejects configuration that cannot produce a consistent dataset.
func ValidateConfig(cfg *config.Config) error {
	return ValidateStruct(cfg)
}
