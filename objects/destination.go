package objects

import (
	"reflect"
	"strconv"
)

type Destination struct {
	ID              int    `json:"id" bson:"id"`
	ParentID        *int   `json:"parent_id" bson:"parent_id"`
	Title           string `json:"title" bson:"title"`
	ImageURL        string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	BestTimeToVisit string `json:"best_time_to_visit,omitempty" bson:"best_time_to_visit,omitempty"`
	Weather         string `json:"weather,omitempty" bson:"weather,omitempty"`
	Currency        string `json:"currency,omitempty" bson:"currency,omitempty"`
	Language        string `json:"language,omitempty" bson:"language,omitempty"`
	TimeZone        string `json:"time_zone,omitempty" bson:"time_zone,omitempty"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
}

func (d Destination) GetID() string {
	return strconv.Itoa(d.ID)
}

func (d Destination) IsNil() bool {
	return reflect.ValueOf(d).IsZero()
}
