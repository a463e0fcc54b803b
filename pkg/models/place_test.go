package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindLandmark, ParseKind("landmark"))
	assert.Equal(t, KindCity, ParseKind("city"))
	assert.Equal(t, KindTown, ParseKind("town"))
	assert.Equal(t, KindTown, ParseKind("hamlet"))
	assert.Equal(t, KindTown, ParseKind(""))
}

func TestDisplayStringWithAdmin(t *testing.T) {
	p := Place{Name: "London", Country: "UK", Admin: "Greater London", Kind: KindCity}
	assert.Equal(t, "London, Greater London, UK", p.DisplayString())
}

func TestDisplayStringWithoutAdmin(t *testing.T) {
	p := Place{Name: "London", Country: "UK", Kind: KindCity}
	assert.Equal(t, "London, UK", p.DisplayString())
}

func TestHasPosition(t *testing.T) {
	lat, lon := 51.5074, -0.1278

	assert.False(t, ExtractedMetadata{}.HasPosition())
	assert.True(t, ExtractedMetadata{Lat: &lat, Lon: &lon}.HasPosition())

	// A single axis is not a position.
	assert.False(t, ExtractedMetadata{Lat: &lat}.HasPosition())
	assert.False(t, ExtractedMetadata{Lon: &lon}.HasPosition())
}
