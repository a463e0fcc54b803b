// Package exif extracts capture time and GPS position from an
// image's embedded metadata. Extraction never fails: unreadable
// files, absent EXIF containers, and malformed tags all degrade to
// absent fields, since images without metadata are the common case.
package exif

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/bstardust/photoplace/internal/geomath"
	"github.com/bstardust/photoplace/pkg/models"
)

// Timestamp layouts accepted from the container: the normalized form
// and the raw EXIF colon-date convention, tried in that order.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006:01:02 15:04:05",
}

// Extract reads timestamp and GPS metadata from the image at path.
func Extract(path string) models.ExtractedMetadata {
	f, err := os.Open(path)
	if err != nil {
		return models.ExtractedMetadata{}
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// No recognizable metadata container.
		return models.ExtractedMetadata{}
	}

	meta := models.ExtractedMetadata{
		Timestamp: extractTimestamp(x),
	}
	if lat, lon, ok := extractPosition(x); ok {
		meta.Lat = &lat
		meta.Lon = &lon
	}
	return meta
}

// extractTimestamp prefers the original-capture tag and falls back
// to the generic modification tag. A tag that is present but
// unparsable drops the timestamp without touching GPS extraction.
func extractTimestamp(x *exif.Exif) *string {
	raw, ok := tagString(x, exif.DateTimeOriginal)
	if !ok {
		raw, ok = tagString(x, exif.DateTime)
	}
	if !ok {
		return nil
	}

	t, ok := ParseTimestamp(raw)
	if !ok {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ParseTimestamp parses an EXIF date/time string, trying the
// normalized layout before the raw colon-separated one. The result
// is in UTC. Semantically invalid dates (month 13, Feb 29 outside a
// leap year) fail.
func ParseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// extractPosition reads both GPS axes. The axes are validated
// independently, but the result is all-or-nothing: a fix with only
// one usable axis is reported as no fix at all.
func extractPosition(x *exif.Exif) (float64, float64, bool) {
	lat, ok := extractCoordinate(x, exif.GPSLatitude, exif.GPSLatitudeRef)
	if !ok {
		return 0, 0, false
	}
	lon, ok := extractCoordinate(x, exif.GPSLongitude, exif.GPSLongitudeRef)
	if !ok {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return 0, 0, false
	}
	return lat, lon, true
}

func extractCoordinate(x *exif.Exif, tag, refTag exif.FieldName) (float64, bool) {
	field, err := x.Get(tag)
	if err != nil {
		return 0, false
	}

	parts, ok := rationals(field)
	if !ok {
		return 0, false
	}
	value, ok := geomath.DMSToDecimal(parts)
	if !ok {
		return 0, false
	}

	if ref, ok := tagString(x, refTag); ok {
		value = geomath.ApplyHemisphere(value, ref)
	}
	return value, true
}

// rationals converts a rational EXIF field into float components.
// A zero denominator invalidates the whole field.
func rationals(field *tiff.Tag) ([]float64, bool) {
	parts := make([]float64, 0, field.Count)
	for i := 0; i < int(field.Count); i++ {
		num, den, err := field.Rat2(i)
		if err != nil || den == 0 {
			return nil, false
		}
		parts = append(parts, float64(num)/float64(den))
	}
	return parts, true
}

func tagString(x *exif.Exif, name exif.FieldName) (string, bool) {
	field, err := x.Get(name)
	if err != nil {
		return "", false
	}
	s, err := field.StringVal()
	if err != nil {
		return "", false
	}
	return s, true
}
