package objects

import "reflect"

// Booking is identified by the customer's email, which is what the
// bookings API deletes by.
type Booking struct {
	ID           int    `json:"id" bson:"id"`
	TourID       int    `json:"tour_id" bson:"tour_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Phone        string `json:"phone" bson:"phone"`
	Days         int    `json:"days,omitempty" bson:"days,omitempty"`
	Adults       int    `json:"adults" bson:"adults"`
	Children     int    `json:"children" bson:"children"`
	ChildAges    []int  `json:"child_ages,omitempty" bson:"child_ages,omitempty"`
	HotelRating  string `json:"hotel_rating" bson:"hotel_rating"`
	MealPlan     string `json:"meal_plan" bson:"meal_plan"`
	FlightOption string `json:"flight_option,omitempty" bson:"flight_option,omitempty"`
	FlightNumber string `json:"flight_number,omitempty" bson:"flight_number,omitempty"`
	TravelDate   string `json:"travel_date" bson:"travel_date"`
	CreatedAt    string `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

func (b Booking) GetID() string {
	return b.Email
}

func (b Booking) IsNil() bool {
	return reflect.ValueOf(b).IsZero()
}
