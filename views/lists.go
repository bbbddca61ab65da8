package views

import (
	"strings"

	"github.com/supakorn-kn/travel-admin/listview"
	"github.com/supakorn-kn/travel-admin/objects"
)

const (
	BookingsList     = "bookings"
	ContactsList     = "contacts"
	EnquiriesList    = "enquiries"
	TripLeadsList    = "trip-leads"
	UsersList        = "users"
	DestinationsList = "destinations"
	LocationsList    = "locations"
	ToursList        = "tours"
)

func yesNo(value bool) string {

	if value {
		return "Yes"
	}

	return "No"
}

func BookingsConfig() listview.Config[objects.Booking] {
	return listview.Config[objects.Booking]{
		Name: BookingsList,
		Fields: []listview.Field[objects.Booking]{
			listview.Text("email", func(b objects.Booking) string { return b.Email }),
			listview.Text("name", func(b objects.Booking) string { return b.Name }),
			listview.Text("phone", func(b objects.Booking) string { return b.Phone }),
			listview.Number("tour_id", func(b objects.Booking) float64 { return float64(b.TourID) }),
			listview.Date("travel_date", func(b objects.Booking) string { return b.TravelDate }),
			listview.Number("days", func(b objects.Booking) float64 { return float64(b.Days) }),
			listview.Number("adults", func(b objects.Booking) float64 { return float64(b.Adults) }),
			listview.Number("children", func(b objects.Booking) float64 { return float64(b.Children) }),
			listview.List("child_ages", func(b objects.Booking) []int { return b.ChildAges }),
			listview.Text("hotel_rating", func(b objects.Booking) string { return b.HotelRating }),
			listview.Text("meal_plan", func(b objects.Booking) string { return b.MealPlan }),
			listview.Text("flight_option", func(b objects.Booking) string { return b.FlightOption }),
			listview.Text("flight_number", func(b objects.Booking) string { return b.FlightNumber }),
			listview.Date("created_at", func(b objects.Booking) string { return b.CreatedAt }),
		},
		SearchFields:     []string{"name", "email"},
		DefaultSortField: "travel_date",
		DefaultSortOrder: listview.SortDesc,
	}
}

func ContactsConfig() listview.Config[objects.Contact] {
	return listview.Config[objects.Contact]{
		Name: ContactsList,
		Fields: []listview.Field[objects.Contact]{
			listview.Text("id", func(c objects.Contact) string { return c.ID }),
			listview.Text("contact_id", func(c objects.Contact) string { return c.ContactID }),
			listview.Text("first_name", func(c objects.Contact) string { return c.FirstName }),
			listview.Text("email", func(c objects.Contact) string { return c.Email }),
			listview.Text("phone_number", func(c objects.Contact) string { return c.PhoneNumber }),
			listview.Text("subject", func(c objects.Contact) string { return c.Subject }),
			listview.Text("message", func(c objects.Contact) string { return c.Message }),
			listview.Date("created_at", func(c objects.Contact) string { return c.CreatedAt }),
			listview.Text("status", func(c objects.Contact) string { return c.Status }),
		},
		SearchFields:     []string{"first_name", "email", "contact_id"},
		DefaultSortField: "created_at",
		DefaultSortOrder: listview.SortDesc,
	}
}

func EnquiriesConfig() listview.Config[objects.Enquiry] {
	return listview.Config[objects.Enquiry]{
		Name: EnquiriesList,
		Fields: []listview.Field[objects.Enquiry]{
			listview.Number("id", func(e objects.Enquiry) float64 { return float64(e.ID) }),
			listview.Text("tour_id", func(e objects.Enquiry) string { return e.TourID }),
			listview.Text("name", func(e objects.Enquiry) string { return e.Name }),
			listview.Text("email", func(e objects.Enquiry) string { return e.Email }),
			listview.Text("phone", func(e objects.Enquiry) string { return e.Phone }),
			listview.Text("description", func(e objects.Enquiry) string { return e.Description }),
			listview.Date("created_at", func(e objects.Enquiry) string { return e.CreatedAt }),
		},
		SearchFields:     []string{"name", "email", "tour_id"},
		DefaultSortField: "created_at",
		DefaultSortOrder: listview.SortDesc,
	}
}

func TripLeadsConfig() listview.Config[objects.TripLead] {
	return listview.Config[objects.TripLead]{
		Name: TripLeadsList,
		Fields: []listview.Field[objects.TripLead]{
			listview.Number("id", func(l objects.TripLead) float64 { return float64(l.ID) }),
			listview.Text("full_name", func(l objects.TripLead) string { return l.FullName }),
			listview.Text("email", func(l objects.TripLead) string { return l.Email }),
			listview.Text("phone_number", func(l objects.TripLead) string { return l.PhoneNumber }),
			listview.Text("preferred_country", func(l objects.TripLead) string { return l.PreferredCountry }),
			listview.Text("preferred_city", func(l objects.TripLead) string { return l.PreferredCity }),
			listview.Date("departure_date", func(l objects.TripLead) string { return l.DepartureDate }),
			listview.Date("return_date", func(l objects.TripLead) string { return l.ReturnDate }),
			listview.Number("number_of_days", func(l objects.TripLead) float64 { return float64(l.NumberOfDays) }),
			listview.Number("number_of_adults", func(l objects.TripLead) float64 { return float64(l.NumberOfAdults) }),
			listview.Number("number_of_children", func(l objects.TripLead) float64 { return float64(l.NumberOfChildren) }),
			listview.Number("number_of_male", func(l objects.TripLead) float64 { return float64(l.NumberOfMale) }),
			listview.Number("number_of_female", func(l objects.TripLead) float64 { return float64(l.NumberOfFemale) }),
			listview.Number("number_of_other", func(l objects.TripLead) float64 { return float64(l.NumberOfOther) }),
			listview.List("aged_persons", func(l objects.TripLead) []int { return l.AgedPersons }),
			listview.Text("hotel_rating", func(l objects.TripLead) string { return l.HotelRating }),
			listview.Text("meal_plan", func(l objects.TripLead) string { return l.MealPlan }),
			listview.Text("room_type", func(l objects.TripLead) string { return l.RoomType }),
			listview.Bool("need_flight", func(l objects.TripLead) bool { return l.NeedFlight }).
				WithExport(func(l objects.TripLead) string { return yesNo(l.NeedFlight) }),
			listview.Text("departure_airport", func(l objects.TripLead) string { return l.DepartureAirport }),
			listview.Text("trip_type", func(l objects.TripLead) string { return l.TripType }),
			listview.Text("estimate_range", func(l objects.TripLead) string { return l.EstimateRange }),
		},
		SearchFields:     []string{"full_name", "email", "preferred_country"},
		DefaultSortField: "departure_date",
		DefaultSortOrder: listview.SortDesc,
	}
}

func UsersConfig() listview.Config[objects.User] {
	return listview.Config[objects.User]{
		Name: UsersList,
		Fields: []listview.Field[objects.User]{
			listview.Number("id", func(u objects.User) float64 { return float64(u.ID) }),
			listview.Text("email", func(u objects.User) string { return u.Email }),
			listview.Text("role", func(u objects.User) string { return u.Role }),
			listview.Text("google_id", func(u objects.User) string { return u.GoogleID }),
			listview.Text("truecaller_id", func(u objects.User) string { return u.TruecallerID }),
			listview.Date("created_at", func(u objects.User) string { return u.CreatedAt }),
		},
		SearchFields:     []string{"email"},
		DefaultSortField: "email",
		DefaultSortOrder: listview.SortAsc,
	}
}

func DestinationsConfig() listview.Config[objects.Destination] {
	return listview.Config[objects.Destination]{
		Name: DestinationsList,
		Fields: []listview.Field[objects.Destination]{
			listview.Number("id", func(d objects.Destination) float64 { return float64(d.ID) }),
			{
				Name: "parent_id",
				Type: listview.NumberField,
				Value: func(d objects.Destination) any {
					if d.ParentID == nil {
						return nil
					}
					return float64(*d.ParentID)
				},
			},
			listview.Text("title", func(d objects.Destination) string { return d.Title }),
			listview.Text("best_time_to_visit", func(d objects.Destination) string { return d.BestTimeToVisit }),
			listview.Text("weather", func(d objects.Destination) string { return d.Weather }),
			listview.Text("currency", func(d objects.Destination) string { return d.Currency }),
			listview.Text("language", func(d objects.Destination) string { return d.Language }),
			listview.Text("time_zone", func(d objects.Destination) string { return d.TimeZone }),
			listview.Text("description", func(d objects.Destination) string { return d.Description }),
			listview.Text("image_url", func(d objects.Destination) string { return d.ImageURL }),
		},
		SearchFields:     []string{"title", "description"},
		DefaultSortField: "title",
		DefaultSortOrder: listview.SortAsc,
	}
}

func LocationsConfig() listview.Config[objects.Location] {
	return listview.Config[objects.Location]{
		Name: LocationsList,
		Fields: []listview.Field[objects.Location]{
			listview.Number("id", func(l objects.Location) float64 { return float64(l.ID) }),
			listview.Text("name", func(l objects.Location) string { return l.Name }),
			listview.Text("destination_name", func(l objects.Location) string { return l.DestinationName }),
			listview.List("destination_ids", func(l objects.Location) []int { return l.DestinationIDs }),
			listview.Text("description", func(l objects.Location) string { return l.Description }),
			listview.Text("image_url", func(l objects.Location) string { return l.ImageURL }),
			listview.Text("iframe_360", func(l objects.Location) string { return l.Iframe360 }),
		},
		SearchFields:     []string{"name", "description", "destination_name"},
		DefaultSortField: "name",
		DefaultSortOrder: listview.SortAsc,
	}
}

func ToursConfig() listview.Config[objects.Tour] {
	return listview.Config[objects.Tour]{
		Name: ToursList,
		Fields: []listview.Field[objects.Tour]{
			listview.Number("id", func(t objects.Tour) float64 { return float64(t.ID) }),
			listview.Text("title", func(t objects.Tour) string { return t.Title }),
			listview.Text("destination", func(t objects.Tour) string { return strings.Join(t.DestinationTitles, ", ") }),
			listview.List("destination_titles", func(t objects.Tour) []string { return t.DestinationTitles }),
			listview.List("location_names", func(t objects.Tour) []string { return t.LocationNames }),
			listview.Text("category", func(t objects.Tour) string { return t.Category }),
			listview.Text("description", func(t objects.Tour) string { return t.Description }),
			{
				Name: "price_per_person",
				Type: listview.NumberField,
				Value: func(t objects.Tour) any {
					price, ok := t.PriceValue()
					if !ok {
						return nil
					}
					return price.InexactFloat64()
				},
				Export: func(t objects.Tour) string { return t.Price },
			},
			listview.Text("price_currency", func(t objects.Tour) string { return t.PriceCurrency }),
			listview.Number("duration_days", func(t objects.Tour) float64 { return float64(t.DurationDays) }),
			listview.Date("available_from", func(t objects.Tour) string { return t.AvailableFrom }),
			listview.Date("available_to", func(t objects.Tour) string { return t.AvailableTo }),
			listview.Text("difficulty_level", func(t objects.Tour) string { return t.DifficultyLevel }),
			listview.Bool("is_active", func(t objects.Tour) bool { return t.IsActive }).
				WithExport(func(t objects.Tour) string { return yesNo(t.IsActive) }),
			listview.Bool("is_featured", func(t objects.Tour) bool { return t.IsFeatured }).
				WithExport(func(t objects.Tour) string { return yesNo(t.IsFeatured) }),
			listview.Object("itinerary", func(t objects.Tour) any { return t.Itinerary }),
		},
		SearchFields:     []string{"title", "destination_titles", "location_names", "category", "description"},
		SortFields:       []string{"title", "destination", "price_per_person", "duration_days", "category"},
		ExportFields:     []string{"id", "title", "destination", "category", "price_per_person", "price_currency", "duration_days", "available_from", "available_to", "is_active"},
		DefaultSortField: "title",
		DefaultSortOrder: listview.SortAsc,
	}
}
