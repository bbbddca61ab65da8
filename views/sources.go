package views

import (
	"context"
	"log/slog"
	"slices"

	"github.com/supakorn-kn/travel-admin/listview"
	"github.com/supakorn-kn/travel-admin/models"
	"github.com/supakorn-kn/travel-admin/mongodb"
	"github.com/supakorn-kn/travel-admin/objects"
	"github.com/supakorn-kn/travel-admin/remote"
	"golang.org/x/sync/errgroup"
)

// UnknownDestination is shown for a location whose destination is missing.
const UnknownDestination = "Unknown"

// Sources holds where each list reads and deletes its records.
type Sources struct {
	Bookings     listview.Source[objects.Booking]
	Contacts     listview.Source[objects.Contact]
	Enquiries    listview.Source[objects.Enquiry]
	TripLeads    listview.Source[objects.TripLead]
	Users        listview.Source[objects.User]
	Destinations listview.Source[objects.Destination]
	Locations    listview.Source[objects.Location]
	Tours        listview.Source[objects.Tour]
}

// keepSource drops records that keep rejects after every fetch.
type keepSource[T listview.Item] struct {
	listview.Source[T]
	keep func(item T) bool
}

func (s keepSource[T]) FetchAll(ctx context.Context) ([]T, error) {

	items, err := s.Source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(items, func(item T) bool { return !s.keep(item) }), nil
}

func listedTours(source listview.Source[objects.Tour]) listview.Source[objects.Tour] {
	return keepSource[objects.Tour]{Source: source, keep: objects.Tour.IsListed}
}

// locationSource fills each location's destination name from the
// destination list fetched alongside it.
type locationSource struct {
	listview.Source[objects.Location]
	destinations func(ctx context.Context) ([]objects.Destination, error)
}

func (s locationSource) FetchAll(ctx context.Context) ([]objects.Location, error) {

	var locations []objects.Location
	var destinations []objects.Destination

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		locations, err = s.Source.FetchAll(gctx)
		return
	})
	g.Go(func() error {

		fetched, err := s.destinations(gctx)
		if err != nil {
			slog.Warn("Loading destination names failed", "error", err)
			return nil
		}

		destinations = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	titles := make(map[int]string, len(destinations))
	for _, destination := range destinations {
		titles[destination.ID] = destination.Title
	}

	for i := range locations {

		title := titles[locations[i].DestinationID]
		if title == "" {
			title = UnknownDestination
		}

		locations[i].DestinationName = title
	}

	return locations, nil
}

func RemoteSources(client *remote.Client) Sources {

	destinationNames := remote.NewSource[objects.Destination](client, remote.DestinationNamesEndpoint)

	return Sources{
		Bookings:     remote.NewSource[objects.Booking](client, remote.BookingsEndpoint),
		Contacts:     remote.NewSource[objects.Contact](client, remote.ContactsEndpoint),
		Enquiries:    remote.NewSource[objects.Enquiry](client, remote.EnquiriesEndpoint),
		TripLeads:    remote.NewSource[objects.TripLead](client, remote.TripLeadsEndpoint),
		Users:        remote.NewSource[objects.User](client, remote.UsersEndpoint),
		Destinations: remote.NewSource[objects.Destination](client, remote.DestinationsEndpoint),
		Locations: locationSource{
			Source:       remote.NewSource[objects.Location](client, remote.LocationsEndpoint),
			destinations: destinationNames.FetchAll,
		},
		Tours: listedTours(remote.NewSource[objects.Tour](client, remote.ToursEndpoint)),
	}
}

// MongoModels holds one model per list collection.
type MongoModels struct {
	Bookings     *models.BaseModel[objects.Booking]
	Contacts     *models.BaseModel[objects.Contact]
	Enquiries    *models.BaseModel[objects.Enquiry]
	TripLeads    *models.BaseModel[objects.TripLead]
	Users        *models.BaseModel[objects.User]
	Destinations *models.BaseModel[objects.Destination]
	Locations    *models.BaseModel[objects.Location]
	Tours        *models.BaseModel[objects.Tour]
}

func NewMongoModels(ctx context.Context, conn *mongodb.MongoDBConn) (m *MongoModels, err error) {

	m = new(MongoModels)

	if m.Bookings, err = models.NewModel[objects.Booking](ctx, conn, models.BookingsCollection); err != nil {
		return nil, err
	}
	if m.Contacts, err = models.NewModel[objects.Contact](ctx, conn, models.ContactsCollection); err != nil {
		return nil, err
	}
	if m.Enquiries, err = models.NewModel[objects.Enquiry](ctx, conn, models.EnquiriesCollection); err != nil {
		return nil, err
	}
	if m.TripLeads, err = models.NewModel[objects.TripLead](ctx, conn, models.TripLeadsCollection); err != nil {
		return nil, err
	}
	if m.Users, err = models.NewModel[objects.User](ctx, conn, models.UsersCollection); err != nil {
		return nil, err
	}
	if m.Destinations, err = models.NewModel[objects.Destination](ctx, conn, models.DestinationsCollection); err != nil {
		return nil, err
	}
	if m.Locations, err = models.NewModel[objects.Location](ctx, conn, models.LocationsCollection); err != nil {
		return nil, err
	}
	if m.Tours, err = models.NewModel[objects.Tour](ctx, conn, models.ToursCollection); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MongoModels) Sources() Sources {
	return Sources{
		Bookings:     m.Bookings,
		Contacts:     m.Contacts,
		Enquiries:    m.Enquiries,
		TripLeads:    m.TripLeads,
		Users:        m.Users,
		Destinations: m.Destinations,
		Locations: locationSource{
			Source:       m.Locations,
			destinations: m.Destinations.FetchAll,
		},
		Tours: listedTours(m.Tours),
	}
}
