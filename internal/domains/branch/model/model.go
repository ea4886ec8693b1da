package model

const (
	EntityName = "branch"

	FieldID                = "BranchID"
	FieldName              = "BranchName"
	FieldCity              = "City"
	FieldState             = "State"
	FieldManagerName       = "ManagerName"
	FieldPhone             = "Phone"
	FieldStarRating        = "StarRating"
	FieldRoomCount         = "RoomCount"
	FieldRevenueScore      = "RevenueScore"
	FieldHasPool           = "HasPool"
	FieldHasConferenceRoom = "HasConferenceRoom"
)

const (
	NamePrefix    = "HotelRev "
	ManagerPrefix = "Mr./Ms. "

	MinStarRating = 3
	MaxStarRating = 5

	MinRevenueScore    = 60.0
	MaxRevenueScore    = 95.0
	RevenueScorePlaces = 2
)

var Columns = []string{
	FieldID,
	FieldName,
	FieldCity,
	FieldState,
	FieldManagerName,
	FieldPhone,
	FieldStarRating,
	FieldRoomCount,
	FieldRevenueScore,
	FieldHasPool,
	FieldHasConferenceRoom,
}

type Location struct {
	City  string
	State string
}

var Locations = []Location{
	{City: "Theni", State: "Tamil Nadu"},
	{City: "Delhi", State: "Delhi"},
	{City: "Mumbai", State: "Maharashtra"},
	{City: "Jaipur", State: "Rajasthan"},
	{City: "Chennai", State: "Tamil Nadu"},
	{City: "Kochi", State: "Kerala"},
	{City: "Goa", State: "Goa"},
	{City: "Ahmedabad", State: "Gujarat"},
	{City: "Pune", State: "Maharashtra"},
	{City: "Lucknow", State: "Uttar Pradesh"},
}

var ManagerNames = []string{"Rajan", "Kavya", "Mehta", "Anita", "Singh", "Verma"}

type Branch struct {
	ID                string
	Name              string
	City              string
	State             string
	ManagerName       string
	Phone             string
	StarRating        int
	RoomCount         int
	RevenueScore      float64
	HasPool           bool
	HasConferenceRoom bool
}

func (b Branch) Values() []any {
	return []any{
		b.ID,
		b.Name,
		b.City,
		b.State,
		b.ManagerName,
		b.Phone,
		b.StarRating,
		b.RoomCount,
		b.RevenueScore,
		b.HasPool,
		b.HasConferenceRoom,
	}
}
