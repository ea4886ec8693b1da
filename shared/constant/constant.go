package constant

import (
	"time"
)

const (
	SheetCustomer = "Customer"
	SheetBranch   = "Branch"
	SheetRoomType = "RoomType"
	SheetDate     = "Date"
	SheetBooking  = "Booking"
)

const (
	PrefixDate     = "D"
	PrefixRoomType = "RT"
	PrefixBranch   = "B"
	PrefixCustomer = "C"
	PrefixBooking  = "BK"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339
)

const (
	// MinDateRows keeps check-in index + longest stay + margin inside the date table.
	MinDateRows = 10
	MinStay     = 1
	MaxStay     = 7

	MinRoomsPerBranch = 10
)

const (
	PhonePrefix     = "9"
	PhoneDigits     = 9
	EmailDomain     = "@example.com"
	NationalityDflt = "Indian"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelExcelScopeName   = "excel"
	OtelS3ScopeName      = "s3"

	OtelAttrRows   = "rows"
	OtelAttrPath   = "path"
	OtelAttrEntity = "entity"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

const (
	Empty = ""
	Space = " "
	Dot   = "."
)
