package calendar

// IsAvailable reports whether none of the candidate days is already booked.
// Both ends of a stay are occupied, so a check-out day equal to another
// stay's check-in day conflicts.
func IsAvailable(booked DateSet, candidate []Date) bool {
	return !booked.Overlaps(candidate)
}
