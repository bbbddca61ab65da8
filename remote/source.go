package remote

import (
	"context"
	"net/http"

	serverError "github.com/supakorn-kn/travel-admin/errors"
	"github.com/supakorn-kn/travel-admin/listview"
)

// Endpoint names the paths of one list. Delete holds an {id} placeholder.
type Endpoint struct {
	List   string
	Delete string
}

var (
	BookingsEndpoint     = Endpoint{List: "/Contact/GetAllBookings", Delete: "/Contact/deleteBooking/{id}"}
	EnquiriesEndpoint    = Endpoint{List: "/Contact/GetAllEnquiries", Delete: "/Contact/deleteEnquiry/{id}"}
	ContactsEndpoint     = Endpoint{List: "/Contact/GetAllContacts", Delete: "/Contact/deleteContact/{id}"}
	TripLeadsEndpoint    = Endpoint{List: "/trip-leads", Delete: "/trip-leads/{id}"}
	UsersEndpoint        = Endpoint{List: "/users", Delete: "/users/{id}"}
	DestinationsEndpoint = Endpoint{List: "/Destination", Delete: "/Destination/{id}"}
	LocationsEndpoint    = Endpoint{List: "/Location", Delete: "/Location/{id}"}
	ToursEndpoint        = Endpoint{List: "/Tours", Delete: "/Tours/{id}"}

	// DestinationNamesEndpoint lists destination ids and titles only.
	DestinationNamesEndpoint = Endpoint{List: "/Destination/destinationNames"}
)

// Source is a listview.Source backed by one API endpoint pair.
type Source[T listview.Item] struct {
	client   *Client
	endpoint Endpoint
}

func NewSource[T listview.Item](client *Client, endpoint Endpoint) *Source[T] {
	return &Source[T]{client: client, endpoint: endpoint}
}

func (s *Source[T]) FetchAll(ctx context.Context) ([]T, error) {

	var items []T
	resp, err := s.client.client.R().
		SetContext(ctx).
		SetResult(&items).
		SetError(&apiError{}).
		Get(s.endpoint.List)
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, responseError(resp)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

func (s *Source[T]) DeleteOne(ctx context.Context, itemID string) error {

	resp, err := s.client.client.R().
		SetContext(ctx).
		SetPathParam("id", itemID).
		SetError(&apiError{}).
		Delete(s.endpoint.Delete)
	if err != nil {
		return err
	}

	if resp.StatusCode() == http.StatusNotFound {
		return serverError.ObjectIDNotFoundError.Wrap(responseError(resp), itemID)
	}

	if resp.IsError() {
		return responseError(resp)
	}

	return nil
}
