package entity

// Category is an activity preference
type Category string

const (
	CategoryMuseums         Category = "museums"
	CategoryEntertainment   Category = "entertainment"
	CategoryDining          Category = "dining"
	CategoryShopping        Category = "shopping"
	CategoryParks           Category = "parks"
	CategoryHikes           Category = "hikes"
	CategoryAttractions     Category = "attractions"
	CategoryWaterActivities Category = "water_activities"
)

// DefaultCategories is used when no preference is given
var DefaultCategories = []Category{CategoryMuseums, CategoryParks, CategoryDining, CategoryAttractions}

// DayPlan is built per request and never persisted
type DayPlan struct {
	Location          string   `json:"location"`
	Date              string   `json:"date"`
	IsOutdoorPriority bool     `json:"is_outdoor_priority"`
	Morning           []string `json:"morning"`
	Afternoon         []string `json:"afternoon"`
	Evening           []string `json:"evening"`
}
