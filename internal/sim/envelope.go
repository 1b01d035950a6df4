package sim

import "fmt"

// Envelope bounds the randomized outdoor temperature for a location.
type Envelope struct {
	Name     string
	MinTempC float64
	MaxTempC float64
}

// DefaultLocation is used when no persisted location is found.
const DefaultLocation = "Cebu, PH"

// envelopes is the fixed location table. Outdoor draws never leave
// [MinTempC, MaxTempC].
var envelopes = map[string]Envelope{
	"Cebu, PH":    {Name: "Cebu, PH", MinTempC: 25, MaxTempC: 33},
	"Berlin, DE":  {Name: "Berlin, DE", MinTempC: -2, MaxTempC: 14},
	"Oslo, NO":    {Name: "Oslo, NO", MinTempC: -8, MaxTempC: 8},
	"Sydney, AU":  {Name: "Sydney, AU", MinTempC: 12, MaxTempC: 26},
	"Nairobi, KE": {Name: "Nairobi, KE", MinTempC: 13, MaxTempC: 27},
}

// LookupEnvelope returns the climate envelope for a known location name.
func LookupEnvelope(name string) (Envelope, error) {
	env, ok := envelopes[name]
	if !ok {
		return Envelope{}, fmt.Errorf("unknown location %q", name)
	}
	return env, nil
}

// Locations lists the known location names.
func Locations() []string {
	out := make([]string, 0, len(envelopes))
	for name := range envelopes {
		out = append(out, name)
	}
	return out
}
