package objects

import (
	"reflect"
	"strconv"
)

type User struct {
	ID           int    `json:"id" bson:"id"`
	Email        string `json:"email" bson:"email,omitempty"`
	GoogleID     string `json:"googleId,omitempty" bson:"google_id,omitempty"`
	TruecallerID string `json:"truecallerId,omitempty" bson:"truecaller_id,omitempty"`
	Role         string `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty" bson:"created_at,omitempty"`
}

func (u User) GetID() string {
	return strconv.Itoa(u.ID)
}

func (u User) IsNil() bool {
	return reflect.ValueOf(u).IsZero()
}
