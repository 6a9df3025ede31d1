package booking

// ExpectedPassport is the only passport number the check-in desk accepts
const ExpectedPassport = 123456789

// ReassignedFlight is what CheckIn assigns to its own copy of the flight number
const ReassignedFlight = "LH999"

// CheckIn rewrites its flightNum argument and the passenger's name, then
// reports whether the passport matches.
//
// flightNum is a string value, so the caller's variable keeps its value.
// passenger is a pointer, so the caller sees the prefixed name.
func CheckIn(flightNum string, passenger *Passenger) bool {
	// Only the local copy changes.
	flightNum = ReassignedFlight

	passenger.Name = "Mr. " + passenger.Name
	return passenger.Passport == ExpectedPassport
}
