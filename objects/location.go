package objects

import (
	"reflect"
	"strconv"
)

type Location struct {
	ID              int    `json:"id" bson:"id"`
	DestinationID   int    `json:"destination_id,omitempty" bson:"destination_id,omitempty"`
	DestinationIDs  []int  `json:"destination_ids,omitempty" bson:"destination_ids,omitempty"`
	DestinationName string `json:"destination_name,omitempty" bson:"destination_name,omitempty"`
	Name            string `json:"name,omitempty" bson:"name,omitempty"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Iframe360       string `json:"iframe_360,omitempty" bson:"iframe_360,omitempty"`
}

func (l Location) GetID() string {
	return strconv.Itoa(l.ID)
}

func (l Location) IsNil() bool {
	return reflect.ValueOf(l).IsZero()
}
