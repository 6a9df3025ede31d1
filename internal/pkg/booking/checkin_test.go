package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIn(t *testing.T) {
	tests := []struct {
		name      string
		passenger Passenger
		wantOK    bool
		wantName  string
	}{
		{
			name:      "matching passport",
			passenger: Passenger{Name: "Gaurav jaiswal", Passport: ExpectedPassport},
			wantOK:    true,
			wantName:  "Mr. Gaurav jaiswal",
		},
		{
			name:      "wrong passport",
			passenger: Passenger{Name: "Aman", Passport: 42},
			wantOK:    false,
			wantName:  "Mr. Aman",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight := "LH234"
			p := tt.passenger

			ok := CheckIn(flight, &p)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, "LH234", flight)
			assert.Equal(t, tt.wantName, p.Name)
		})
	}
}

func TestCheckIn_PrefixesEachTime(t *testing.T) {
	p := Passenger{Name: "Shiva", Passport: ExpectedPassport}

	CheckIn("LH234", &p)
	CheckIn("LH234", &p)

	assert.Equal(t, "Mr. Mr. Shiva", p.Name)
}
