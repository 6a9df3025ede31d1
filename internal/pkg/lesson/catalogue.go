package lesson

import (
	"context"

	"go.uber.org/zap"

	"go-functions/internal/pkg/booking"
	"go-functions/internal/pkg/counter"
	"go-functions/internal/pkg/event"
	"go-functions/internal/pkg/greeting"
)

// Catalogue returns every lesson in the order it is taught
func Catalogue() []Lesson {
	return []Lesson{
		{Name: "default-parameters", Title: "Default Parameters", Run: defaultParameters},
		{Name: "value-vs-pointer", Title: "Passing Values And Pointers", Run: valueVsPointer},
		{Name: "first-class-functions", Title: "First-Class Functions", Run: firstClassFunctions},
		{Name: "higher-order-functions", Title: "Higher-Order Functions", Run: higherOrderFunctions},
		{Name: "call-apply-bind", Title: "Explicit Receivers", Run: callApplyBind},
		{Name: "iife", Title: "Immediately Invoked Functions", Run: iife},
		{Name: "lexical-scope", Title: "Lexical Scope", Run: lexicalScope},
		{Name: "closures", Title: "Closures", Run: closures},
		{Name: "data-privacy", Title: "Data Privacy", Run: dataPrivacy},
	}
}

func defaultParameters(_ context.Context, env *Env) error {
	ledger := booking.NewLedger()

	b := ledger.Create("LH123")
	env.recordBooking(true)
	env.Printf("%+v\n", b)

	b = ledger.Create("A320", booking.WithPrice(500))
	env.recordBooking(true)
	env.Printf("%+v\n", b)

	env.Printf("%+v\n", ledger.Bookings())
	return nil
}

func valueVsPointer(_ context.Context, env *Env) error {
	flight := "LH234"
	gaurav := booking.Passenger{
		Name:     "Gaurav jaiswal",
		Passport: 123456789,
	}

	if booking.CheckIn(flight, &gaurav) {
		env.Println("checked in")
	} else {
		env.Println("wrong passport")
	}

	// flight was copied into CheckIn, gaurav was shared through a pointer
	env.Println(flight)
	env.Printf("%+v\n", gaurav)
	return nil
}

func firstClassFunctions(_ context.Context, env *Env) error {
	sayHello := greeting.SayHello
	env.Println(sayHello())
	return nil
}

func higherOrderFunctions(_ context.Context, env *Env) error {
	// Callback handed to another function
	target := event.NewTarget()
	greet := func() {
		env.Println("Hello Gaurav")
	}
	target.AddEventListener("click", greet)
	n := target.Dispatch("click")
	env.Logger().Debug("Dispatched event", zap.String("event", "click"), zap.Int("listeners", n))

	// Function returned from another function
	env.Println(greeting.Greeting("Hello")("Gaurav"))
	env.Println(greeting.Greeting("Hey")("Shiva"))
	return nil
}

func callApplyBind(_ context.Context, env *Env) error {
	lufthansa := booking.NewAirline("Lufthansa", "LH")
	eurowings := booking.NewAirline("Eurowings", "EW")
	swiss := booking.NewAirline("Swiss Air Lines", "LX")

	announce := func(a *booking.Airline, r booking.Reservation) {
		env.recordReservation(a.IATACode)
		env.Println(r.Announce(a))
	}

	announce(lufthansa, lufthansa.Book(239, "Gaurav"))

	// Method expression: the receiver is an ordinary first argument
	book := (*booking.Airline).Book
	announce(eurowings, book(eurowings, 23, "Aman"))
	announce(swiss, book(swiss, 583, "Shiva"))

	// Arguments supplied as one value
	flightData := booking.Args{FlightNum: 583, Name: "Piyush"}
	announce(swiss, booking.BookArgs(swiss, flightData))

	// Method values keep their receiver
	bookLH := booking.Bind(lufthansa)
	bookEW := booking.Bind(eurowings)
	bookLX := swiss.Book

	announce(lufthansa, bookLH(999, "Andrew"))
	announce(eurowings, bookEW(777, "Amisha"))
	announce(swiss, bookLX(111, "Tristan"))

	env.Logger().Debug("Reservations",
		zap.Int("lufthansa", len(lufthansa.Reservations())),
		zap.Int("eurowings", len(eurowings.Reservations())),
		zap.Int("swiss", len(swiss.Reservations())),
	)
	return nil
}

func iife(_ context.Context, env *Env) error {
	func() {
		env.Println("Hello Gj")
	}()
	return nil
}

func lexicalScope(_ context.Context, env *Env) error {
	env.Println(greeting.GreetNested("Gaurav"))
	return nil
}

func closures(_ context.Context, env *Env) error {
	myClosure := greeting.OuterFunction()
	env.Println(myClosure())
	return nil
}

func dataPrivacy(_ context.Context, env *Env) error {
	myCounter := counter.New()

	steps := []struct {
		op string
		fn func() int64
	}{
		{"increment", myCounter.Increment},
		{"increment", myCounter.Increment},
		{"decrement", myCounter.Decrement},
		{"decrement", myCounter.Decrement},
	}
	for _, s := range steps {
		env.recordCounterOperation(s.op)
		env.Println(s.fn())
	}
	return nil
}
