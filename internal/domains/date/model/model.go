package model

const (
	EntityName = "date"

	FieldID       = "DateID"
	FieldFullDate = "FullDate"
	FieldDay      = "Day"
	FieldMonth    = "Month"
	FieldYear     = "Year"
	FieldWeekday  = "Weekday"
)

// Columns is the sheet header order.
var Columns = []string{
	FieldID,
	FieldFullDate,
	FieldDay,
	FieldMonth,
	FieldYear,
	FieldWeekday,
}

type Date struct {
	ID       string
	FullDate string
	Day      int
	Month    int
	Year     int
	Weekday  string
}

func (d Date) Values() []any {
	return []any{d.ID, d.FullDate, d.Day, d.Month, d.Year, d.Weekday}
}
