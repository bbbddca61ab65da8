package models

import (
	"strconv"

	serverError "github.com/supakorn-kn/travel-admin/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// EqualMatchBson creates BSON for equal search (Case-sensitive)
func EqualMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: value}}
}

// IDValue converts an identity from its text form into what is stored
// under the identity key.
func IDValue(itemID string, numeric bool) (any, error) {

	if !numeric {
		return itemID, nil
	}

	value, err := strconv.Atoi(itemID)
	if err != nil {
		return nil, serverError.ObjectIDNotFoundError.Wrap(err, itemID)
	}

	return value, nil
}
