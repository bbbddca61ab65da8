package objects

import (
	"reflect"
	"strconv"
)

type TripLead struct {
	ID               int    `json:"id" bson:"id"`
	FullName         string `json:"full_name" bson:"full_name"`
	Email            string `json:"email" bson:"email"`
	PhoneNumber      string `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	PreferredCountry string `json:"preferred_country,omitempty" bson:"preferred_country,omitempty"`
	PreferredCity    string `json:"preferred_city,omitempty" bson:"preferred_city,omitempty"`
	DepartureDate    string `json:"departure_date,omitempty" bson:"departure_date,omitempty"`
	ReturnDate       string `json:"return_date,omitempty" bson:"return_date,omitempty"`
	NumberOfDays     int    `json:"number_of_days,omitempty" bson:"number_of_days,omitempty"`
	NumberOfAdults   int    `json:"number_of_adults,omitempty" bson:"number_of_adults,omitempty"`
	NumberOfChildren int    `json:"number_of_children,omitempty" bson:"number_of_children,omitempty"`
	NumberOfMale     int    `json:"number_of_male,omitempty" bson:"number_of_male,omitempty"`
	NumberOfFemale   int    `json:"number_of_female,omitempty" bson:"number_of_female,omitempty"`
	NumberOfOther    int    `json:"number_of_other,omitempty" bson:"number_of_other,omitempty"`
	AgedPersons      []int  `json:"aged_persons" bson:"aged_persons"`
	HotelRating      string `json:"hotel_rating,omitempty" bson:"hotel_rating,omitempty"`
	MealPlan         string `json:"meal_plan,omitempty" bson:"meal_plan,omitempty"`
	RoomType         string `json:"room_type,omitempty" bson:"room_type,omitempty"`
	NeedFlight       bool   `json:"need_flight" bson:"need_flight"`
	DepartureAirport string `json:"departure_airport,omitempty" bson:"departure_airport,omitempty"`
	TripType         string `json:"trip_type,omitempty" bson:"trip_type,omitempty"`
	EstimateRange    string `json:"estimate_range,omitempty" bson:"estimate_range,omitempty"`
}

func (l TripLead) GetID() string {
	return strconv.Itoa(l.ID)
}

func (l TripLead) IsNil() bool {
	return reflect.ValueOf(l).IsZero()
}
