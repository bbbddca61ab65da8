package objects

import (
	"reflect"
	"strconv"
)

type Enquiry struct {
	ID          int    `json:"id" bson:"id"`
	TourID      string `json:"tour_id" bson:"tour_id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
}

func (e Enquiry) GetID() string {
	return strconv.Itoa(e.ID)
}

func (e Enquiry) IsNil() bool {
	return reflect.ValueOf(e).IsZero()
}
