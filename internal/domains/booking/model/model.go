package model

const (
	EntityName = "booking"

	FieldID                 = "BookingID"
	FieldCustomerID         = "CustomerID"
	FieldRoomTypeID         = "RoomTypeID"
	FieldBranchID           = "BranchID"
	FieldCheckInDate        = "CheckInDate"
	FieldCheckOutDate       = "CheckOutDate"
	FieldDuration           = "Duration"
	FieldRevenue            = "Revenue"
	FieldBookingStatus      = "BookingStatus"
	FieldCancellationReason = "CancellationReason"
	FieldLeadTime           = "LeadTime"
	FieldPaymentMethod      = "PaymentMethod"
	FieldDiscountApplied    = "DiscountApplied"
	FieldBookingChannel     = "BookingChannel"
	FieldPurpose            = "Purpose"
)

const (
	StatusCancelled = "Cancelled"
	StatusCheckedIn = "Checked-in"
	StatusNoShow    = "No-show"

	MinLeadTime = 0
	MaxLeadTime = 60
)

var Columns = []string{
	FieldID,
	FieldCustomerID,
	FieldRoomTypeID,
	FieldBranchID,
	FieldCheckInDate,
	FieldCheckOutDate,
	FieldDuration,
	FieldRevenue,
	FieldBookingStatus,
	FieldCancellationReason,
	FieldLeadTime,
	FieldPaymentMethod,
	FieldDiscountApplied,
	FieldBookingChannel,
	FieldPurpose,
}

var (
	Statuses            = []string{StatusCancelled, StatusCheckedIn, StatusNoShow}
	CancellationReasons = []string{"Price", "Change of plans", "Weather", "Other"}
	PaymentMethods      = []string{"Credit Card", "UPI", "Cash", "Corporate Account"}
	Discounts           = []int{0, 5, 10, 15, 20}
	Channels            = []string{"Website", "Mobile App", "Travel Agent", "Call Center"}
	// An empty purpose is a valid draw.
	Purposes = []string{"Business", "Vacation", "Conference", "Holiday", ""}
)

type Booking struct {
	ID                 string
	CustomerID         string
	RoomTypeID         string
	BranchID           string
	CheckInDate        string
	CheckOutDate       string
	Duration           int
	Revenue            int
	Status             string
	CancellationReason string
	LeadTime           int
	PaymentMethod      string
	DiscountApplied    int
	BookingChannel     string
	Purpose            string
}

func (b Booking) Values() []any {
	return []any{
		b.ID,
		b.CustomerID,
		b.RoomTypeID,
		b.BranchID,
		b.CheckInDate,
		b.CheckOutDate,
		b.Duration,
		b.Revenue,
		b.Status,
		b.CancellationReason,
		b.LeadTime,
		b.PaymentMethod,
		b.DiscountApplied,
		b.BookingChannel,
		b.Purpose,
	}
}
