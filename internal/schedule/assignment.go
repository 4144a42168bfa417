package schedule

import (
	"errors"

	"github.com/tableset/catering-api/internal/models"
)

// Assignment guard outcomes. ErrKeepCurrent is not a failure: it tells
// the caller the booking already has the requested chef and no write is
// needed.
var (
	ErrKeepCurrent    = errors.New("booking already assigned to this chef")
	ErrNotAssigned    = errors.New("booking has no chef to unassign")
	ErrEmptyCandidate = errors.New("candidate chef id is empty")
)

// ValidateAssignment checks whether assigning candidateChefID (nil =
// unassign) to the booking is a legal transition. It mutates nothing;
// persistence belongs to the booking store behind it.
func ValidateAssignment(booking models.Booking, candidateChefID *string) error {
	if candidateChefID == nil {
		if booking.ChefID == nil || *booking.ChefID == "" {
			return ErrNotAssigned
		}
		return nil
	}
	if *candidateChefID == "" {
		return ErrEmptyCandidate
	}
	if booking.ChefID != nil && *booking.ChefID == *candidateChefID {
		return ErrKeepCurrent
	}
	return nil
}
