package booking

import (
	"fmt"
	"sync"
)

// Airline takes reservations on its own flights
type Airline struct {
	Name     string
	IATACode string

	mu           sync.RWMutex
	reservations []Reservation
}

// NewAirline creates an airline with no reservations
func NewAirline(name, iataCode string) *Airline {
	return &Airline{
		Name:     name,
		IATACode: iataCode,
	}
}

// Book reserves a seat for name on the airline's flightNum
func (a *Airline) Book(flightNum int, name string) Reservation {
	r := Reservation{
		Flight: flightCode(a.IATACode, flightNum),
		Name:   name,
	}

	a.mu.Lock()
	a.reservations = append(a.reservations, r)
	a.mu.Unlock()

	return r
}

// Reservations returns a copy of the airline's reservations
func (a *Airline) Reservations() []Reservation {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Reservation, len(a.reservations))
	copy(out, a.reservations)
	return out
}

// Announce formats the confirmation line for a reservation made with a
func (r Reservation) Announce(a *Airline) string {
	return fmt.Sprintf("%s booked a seat on %s flight %s", r.Name, a.Name, r.Flight)
}

// BookFunc is a booking operation with its airline already fixed
type BookFunc func(flightNum int, name string) Reservation

// BookArgs books on a with arguments supplied as one value
func BookArgs(a *Airline, args Args) Reservation {
	return a.Book(args.FlightNum, args.Name)
}

// Bind fixes a as the airline for every later call
func Bind(a *Airline) BookFunc {
	return a.Book
}
