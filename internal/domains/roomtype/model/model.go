package model

const (
	EntityName = "room_type"

	FieldID           = "RoomTypeID"
	FieldCategory     = "RoomType"
	FieldPrice        = "Price"
	FieldMaxOccupancy = "MaxOccupancy"
	FieldAmenities    = "Amenities"
	FieldIsAC         = "IsAC"
	FieldIsSeaFacing  = "IsSeaFacing"
)

const (
	MinPrice = 2000
	MaxPrice = 10000
)

var Columns = []string{
	FieldID,
	FieldCategory,
	FieldPrice,
	FieldMaxOccupancy,
	FieldAmenities,
	FieldIsAC,
	FieldIsSeaFacing,
}

var (
	Categories     = []string{"Single", "Double", "Suite"}
	Occupancies    = []int{1, 2, 4}
	AmenityBundles = []string{"WiFi,TV", "WiFi,TV,MiniBar", "WiFi,TV,AC"}
)

type RoomType struct {
	ID           string
	Category     string
	Price        int
	MaxOccupancy int
	Amenities    string
	IsAC         bool
	IsSeaFacing  bool
}

func (r RoomType) Values() []any {
	return []any{r.ID, r.Category, r.Price, r.MaxOccupancy, r.Amenities, r.IsAC, r.IsSeaFacing}
}
