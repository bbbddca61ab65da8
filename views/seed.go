package views

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/supakorn-kn/travel-admin/listview"
	"github.com/supakorn-kn/travel-admin/objects"
)

// SeedData is a fixture file of records keyed by list name.
type SeedData struct {
	Bookings     []objects.Booking     `json:"bookings"`
	Contacts     []objects.Contact     `json:"contacts"`
	Enquiries    []objects.Enquiry     `json:"enquiries"`
	TripLeads    []objects.TripLead    `json:"trip-leads"`
	Users        []objects.User        `json:"users"`
	Destinations []objects.Destination `json:"destinations"`
	Locations    []objects.Location    `json:"locations"`
	Tours        []objects.Tour        `json:"tours"`
}

func LoadSeedFile(path string) (SeedData, error) {

	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, err
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return SeedData{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return data, nil
}

type seeder[T listview.Item] interface {
	Seed(ctx context.Context, items []T) (int, error)
}

func seed[T listview.Item](ctx context.Context, list string, model seeder[T], items []T) error {

	if len(items) == 0 {
		return nil
	}

	inserted, err := model.Seed(ctx, items)
	if err != nil {
		return fmt.Errorf("seed %s: %w", list, err)
	}

	slog.Info("List seeded", "list", list, "inserted", inserted, "skipped", len(items)-inserted)
	return nil
}

// Seed stores the fixture records that are not stored yet.
func (m *MongoModels) Seed(ctx context.Context, data SeedData) error {

	steps := []func() error{
		func() error { return seed(ctx, BookingsList, m.Bookings, data.Bookings) },
		func() error { return seed(ctx, ContactsList, m.Contacts, data.Contacts) },
		func() error { return seed(ctx, EnquiriesList, m.Enquiries, data.Enquiries) },
		func() error { return seed(ctx, TripLeadsList, m.TripLeads, data.TripLeads) },
		func() error { return seed(ctx, UsersList, m.Users, data.Users) },
		func() error { return seed(ctx, DestinationsList, m.Destinations, data.Destinations) },
		func() error { return seed(ctx, LocationsList, m.Locations, data.Locations) },
		func() error { return seed(ctx, ToursList, m.Tours, data.Tours) },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}
