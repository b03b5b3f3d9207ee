package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenue_Published(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"published venue", VenueStatusPublished, true},
		{"pending venue", VenueStatusPending, false},
		{"rejected venue", VenueStatusRejected, false},
		{"empty status", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Venue{Status: tt.status}
			assert.Equal(t, tt.expected, v.Published())
		})
	}
}

func TestRoute_Signature(t *testing.T) {
	a := &Route{Distance: 4200, Duration: 600}
	b := &Route{Distance: 4200, Duration: 600, Geometry: [][]float64{{-4.02, 5.32}}}
	c := &Route{Distance: 4200, Duration: 601}

	aDist, aDur := a.Signature()
	bDist, bDur := b.Signature()
	cDist, cDur := c.Signature()

	assert.Equal(t, aDist, bDist)
	assert.Equal(t, aDur, bDur)
	assert.False(t, aDist == cDist && aDur == cDur)
}

func TestVenueImportEvent_JSONRoundtrip(t *testing.T) {
	phone := "+2250700000000"
	event := VenueImportEvent{
		Provider:        "google",
		ProviderPlaceID: "place-1",
		Name:            "Maquis Le Bon Coin",
		Category:        "maquis",
		Commune:         "Cocody",
		Phone:           &phone,
		Lat:             5.3261,
		Lng:             -4.0200,
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded VenueImportEvent
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, event, decoded)
}
