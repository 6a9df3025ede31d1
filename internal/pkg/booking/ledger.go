package booking

import "sync"

// Option overrides one of the booking defaults
type Option func(*options)

// options holds the resolved passenger count and whether a price was given
type options struct {
	passengers int
	price      int
	priceSet   bool
}

// WithPassengers sets the passenger count
func WithPassengers(n int) Option {
	return func(o *options) {
		o.passengers = n
	}
}

// WithPrice sets the price explicitly instead of deriving it from the passenger count
func WithPrice(price int) Option {
	return func(o *options) {
		o.price = price
		o.priceSet = true
	}
}

// Ledger keeps every booking created through it, in creation order
type Ledger struct {
	mu       sync.RWMutex
	bookings []Booking
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Create builds a booking for flightNum, applies opts and records it.
//
// Only omitted fields take defaults. An omitted passenger count is
// DefaultPassengers, and an omitted price is PricePerPassenger times the
// resolved passenger count. Explicit values, zero or negative included, are
// recorded as given.
func (l *Ledger) Create(flightNum string, opts ...Option) Booking {
	o := options{
		passengers: DefaultPassengers,
	}
	for _, opt := range opts {
		opt(&o)
	}

	b := Booking{
		FlightNum:     flightNum,
		NumPassengers: o.passengers,
		Price:         PricePerPassenger * o.passengers,
	}
	if o.priceSet {
		b.Price = o.price
	}

	l.mu.Lock()
	l.bookings = append(l.bookings, b)
	l.mu.Unlock()

	return b
}

// Bookings returns a copy of the recorded bookings
func (l *Ledger) Bookings() []Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}
