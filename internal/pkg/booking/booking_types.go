package booking

import "strconv"

const (
	// DefaultPassengers is used when a booking does not name a passenger count
	DefaultPassengers = 2
	// PricePerPassenger is the default fare multiplier
	PricePerPassenger = 100
)

// Booking represents a single flight booking
type Booking struct {
	FlightNum     string `json:"flight_num"`
	NumPassengers int    `json:"num_passengers"`
	Price         int    `json:"price"`
}

// Passenger represents a traveller presenting at check-in
type Passenger struct {
	Name     string `json:"name"`
	Passport int    `json:"passport"`
}

// Reservation represents a seat reserved with an airline
type Reservation struct {
	Flight string `json:"flight"`
	Name   string `json:"name"`
}

// Args bundles the arguments of Airline.Book so they can be passed as one value
type Args struct {
	FlightNum int
	Name      string
}

// flightCode joins an IATA code and a flight number, e.g. LH239
func flightCode(iata string, flightNum int) string {
	return iata + strconv.Itoa(flightNum)
}
