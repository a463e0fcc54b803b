package models

import "fmt"

// Kind categorizes a place record in the store.
type Kind string

const (
	KindLandmark Kind = "landmark"
	KindCity     Kind = "city"
	KindTown     Kind = "town"
)

// ParseKind maps a stored kind string onto a Kind. Unrecognized
// values default to KindTown.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindLandmark, KindCity, KindTown:
		return Kind(s)
	default:
		return KindTown
	}
}

// ExtractedMetadata is the result of one extraction call. Timestamp
// is RFC 3339 in UTC when present. Lat and Lon are either both set
// or both nil; a GPS fix with only one axis is meaningless.
type ExtractedMetadata struct {
	Timestamp *string  `json:"timestamp"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
}

// HasPosition reports whether the metadata carries a GPS fix.
func (m ExtractedMetadata) HasPosition() bool {
	return m.Lat != nil && m.Lon != nil
}

// Candidate is a place row pulled from the store for scoring.
// Constructed fresh per query, never persisted.
type Candidate struct {
	Name       string
	Country    string
	Admin      string // empty when the store has no admin region
	Lat        float64
	Lon        float64
	Kind       Kind
	Importance float64
}

// Place is a resolved answer. It carries no coordinates or score;
// the caller already has the query point.
type Place struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Admin   string `json:"admin,omitempty"`
	Kind    Kind   `json:"kind"`
}

// DisplayString formats a place for presentation: "name, admin,
// country" when an admin region is known, otherwise "name, country".
func (p Place) DisplayString() string {
	if p.Admin != "" {
		return fmt.Sprintf("%s, %s, %s", p.Name, p.Admin, p.Country)
	}
	return fmt.Sprintf("%s, %s", p.Name, p.Country)
}
