package hotel

import (
	"errors"
	"time"
)

// DateLayout is the only accepted form for check-in and check-out dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat       = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrRoomUnavailable         = errors.New("room is already booked for the selected dates")
)

// Stay is the interval of an existing booking.
type Stay struct {
	CheckIn  time.Time `db:"check_in"`
	CheckOut time.Time `db:"check_out"`
}

// Quote is the outcome of an accepted booking evaluation.
type Quote struct {
	CheckIn     time.Time
	CheckOut    time.Time
	Nights      int
	TotalAmount float64
}

// ParseStay parses both dates and checks that check-out falls strictly
// after check-in.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	// Year 0 parses but is not a calendar date the store can hold.
	if in.Year() < 1 || out.Year() < 1 {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrCheckOutNotAfterCheckIn
	}
	return in, out, nil
}

// Overlaps reports whether s shares at least one day with [in, out].
// Both ends are inclusive, so a stay starting on the day another one
// checks out still overlaps it.
func (s Stay) Overlaps(in, out time.Time) bool {
	return !s.CheckIn.After(out) && !s.CheckOut.Before(in)
}

const secondsPerDay = 24 * 60 * 60

// Nights returns the number of whole days between check-in and check-out.
// It works on Unix seconds since time.Duration overflows past ~292 years.
func Nights(in, out time.Time) int {
	return int((out.Unix() - in.Unix()) / secondsPerDay)
}

// Evaluate decides whether room can be booked from checkIn to checkOut
// given the room's existing stays. Checks run in order and stop at the
// first failure: date format, date order, overlap. The returned error is
// one of ErrInvalidDateFormat, ErrCheckOutNotAfterCheckIn or
// ErrRoomUnavailable.
func Evaluate(room Room, checkIn, checkOut string, existing []Stay) (Quote, error) {
	in, out, err := ParseStay(checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	for _, s := range existing {
		if s.Overlaps(in, out) {
			return Quote{}, ErrRoomUnavailable
		}
	}

	nights := Nights(in, out)
	return Quote{
		CheckIn:     in,
		CheckOut:    out,
		Nights:      nights,
		TotalAmount: float64(nights) * room.PricePerNight,
	}, nil
}
