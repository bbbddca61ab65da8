package objects

import "reflect"

type Contact struct {
	ID          string `json:"id" bson:"id"`
	ContactID   string `json:"contact_id" bson:"contact_id"`
	FirstName   string `json:"first_name" bson:"first_name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phone_number" bson:"phone_number"`
	Subject     string `json:"subject" bson:"subject"`
	Message     string `json:"message" bson:"message"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
	Status      string `json:"status" bson:"status"`
}

func (c Contact) GetID() string {
	return c.ID
}

func (c Contact) IsNil() bool {
	return reflect.ValueOf(c).IsZero()
}
