package objects

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Tour struct {
	ID                int        `json:"id" bson:"id"`
	DestinationID     int        `json:"destination_id" bson:"destination_id"`
	DestinationIDs    []int      `json:"destination_ids,omitempty" bson:"destination_ids,omitempty"`
	DestinationTitles StringList `json:"destination_titles,omitempty" bson:"destination_titles,omitempty"`
	LocationIDs       []int      `json:"location_ids,omitempty" bson:"location_ids,omitempty"`
	LocationNames     StringList `json:"location_names,omitempty" bson:"location_names,omitempty"`
	Title             string     `json:"title" bson:"title"`
	Slug              string     `json:"slug" bson:"slug"`
	Description       string     `json:"description" bson:"description"`
	// Itinerary is either free text or a list of itinerary days.
	Itinerary       any        `json:"itinerary,omitempty" bson:"itinerary,omitempty"`
	Price           string     `json:"price" bson:"price"`
	PricePerPerson  string     `json:"price_per_person" bson:"price_per_person"`
	PriceCurrency   string     `json:"price_currency,omitempty" bson:"price_currency,omitempty"`
	ImageURL        string     `json:"image_url" bson:"image_url"`
	DurationDays    int        `json:"duration_days" bson:"duration_days"`
	AvailableFrom   string     `json:"available_from" bson:"available_from"`
	AvailableTo     string     `json:"available_to" bson:"available_to"`
	Category        string     `json:"category" bson:"category"`
	DifficultyLevel string     `json:"difficulty_level,omitempty" bson:"difficulty_level,omitempty"`
	MaxGroupSize    int        `json:"max_group_size,omitempty" bson:"max_group_size,omitempty"`
	MinGroupSize    int        `json:"min_group_size,omitempty" bson:"min_group_size,omitempty"`
	Inclusions      StringList `json:"inclusions,omitempty" bson:"inclusions,omitempty"`
	Exclusions      StringList `json:"exclusions,omitempty" bson:"exclusions,omitempty"`
	Highlights      StringList `json:"highlights,omitempty" bson:"highlights,omitempty"`
	IsActive        bool       `json:"is_active,omitempty" bson:"is_active,omitempty"`
	IsFeatured      bool       `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
	CreatedAt       string     `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt       string     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

func (t Tour) GetID() string {
	return strconv.Itoa(t.ID)
}

func (t Tour) IsNil() bool {
	return reflect.ValueOf(t).IsZero()
}

// PriceValue parses the listed price, which the API sends as text.
func (t Tour) PriceValue() (decimal.Decimal, bool) {

	price := strings.ReplaceAll(strings.TrimSpace(t.Price), ",", "")
	if price == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

// IsListed reports whether the tour is complete enough to show in the
// admin list.
func (t Tour) IsListed() bool {
	return t.Title != "" && t.Slug != ""
}
