package idgen

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// CrashDateLayout is the canonical timestamp rendering hashed into a crash
// record ID: local time, second precision, no zone suffix.
const CrashDateLayout = "2006-01-02 15:04:05"

// PersonIDPattern matches well-formed person display IDs.
var PersonIDPattern = regexp.MustCompile(`^Q[0-9]{7}$`)

// MaxPersonSeq is the largest sequence number representable in a person ID.
const MaxPersonSeq = 9999999

// ErrIdentifierSpaceExhausted is returned when the next person ID would
// exceed Q9999999.
var ErrIdentifierSpaceExhausted = errors.New("person identifier space exhausted (Q9999999)")

// TruncateCoordinate truncates a coordinate toward zero at six decimal
// places. The int64 cast truncates toward zero for negative values too, not
// toward negative infinity; changing that would change every generated crash
// ID for southern/western-hemisphere coordinates.
func TruncateCoordinate(v float64) float64 {
	return float64(int64(v*1e6)) / 1e6
}

// FormatCoordinate renders a coordinate as fixed-point with exactly six
// fractional digits, after truncation.
func FormatCoordinate(v float64) string {
	return fmt.Sprintf("%.6f", TruncateCoordinate(v))
}

// CrashRecordID derives the content-addressed primary key for a crash:
// SHA-512 over date || lat || lon || street_no || street_name, rendered as
// 128 lowercase hex characters. A nil streetNo contributes "0" and a nil
// streetName contributes the empty string.
func CrashRecordID(incidentDate time.Time, latitude, longitude float64, streetNo *int64, streetName *string) string {
	no := int64(0)
	if streetNo != nil {
		no = *streetNo
	}
	name := ""
	if streetName != nil {
		name = *streetName
	}

	payload := incidentDate.Format(CrashDateLayout) +
		FormatCoordinate(latitude) +
		FormatCoordinate(longitude) +
		fmt.Sprintf("%d", no) +
		name

	sum := sha512.Sum512([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// FormatPersonID renders a sequence number as a display ID (Q + 7 zero-padded
// digits). Returns ErrIdentifierSpaceExhausted when seq exceeds MaxPersonSeq.
func FormatPersonID(seq int64) (string, error) {
	if seq > MaxPersonSeq {
		return "", ErrIdentifierSpaceExhausted
	}
	return fmt.Sprintf("Q%07d", seq), nil
}
