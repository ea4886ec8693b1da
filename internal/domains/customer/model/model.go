package model

const (
	EntityName = "customer"

	FieldID          = "CustomerID"
	FieldName        = "Name"
	FieldEmail       = "Email"
	FieldPhone       = "Phone"
	FieldCity        = "City"
	FieldState       = "State"
	FieldNationality = "Nationality"
	FieldLoyaltyTier = "LoyaltyTier"
	FieldAgeGroup    = "AgeGroup"
	FieldGender      = "Gender"
)

var Columns = []string{
	FieldID,
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldCity,
	FieldState,
	FieldNationality,
	FieldLoyaltyTier,
	FieldAgeGroup,
	FieldGender,
}

var (
	FirstNames = []string{"Aarav", "Kavya", "Rohan", "Simran", "Ishaan", "Tanya", "Aditya", "Neha", "Rajat", "Priya"}
	Surnames   = []string{"Sharma", "Verma", "Kapoor", "Bhatia", "Sethi"}

	// Cities and States are drawn independently; a row may pair Delhi with Tamil Nadu.
	Cities = []string{"Delhi", "Mumbai", "Chennai", "Jaipur", "Kolkata"}
	States = []string{"Delhi", "Maharashtra", "Tamil Nadu", "Rajasthan", "West Bengal"}

	LoyaltyTiers = []string{"Bronze", "Silver", "Gold", "Platinum"}
	AgeGroups    = []string{"18-25", "26-35", "36-50", "51+"}
	Genders      = []string{"Male", "Female", "Other"}
)

type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	City        string
	State       string
	Nationality string
	LoyaltyTier string
	AgeGroup    string
	Gender      string
}

func (c Customer) Values() []any {
	return []any{
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.City,
		c.State,
		c.Nationality,
		c.LoyaltyTier,
		c.AgeGroup,
		c.Gender,
	}
}
