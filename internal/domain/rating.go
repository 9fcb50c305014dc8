package domain

type RatingRole string

const (
	RatingRoleRenter RatingRole = "RENTER"
	RatingRoleOwner  RatingRole = "OWNER"
)

// Rating is a 1-5 score left by one party of a rental. Keyed by
// (rental_id, role): each side rates at most once, re-rating overwrites.
type Rating struct {
	RentalID  uint64     `json:"rental_id"`
	Role      RatingRole `json:"role"`
	Rater     string     `json:"rater"`
	Score     uint8      `json:"score"`
	Review    string     `json:"review,omitempty"`
	CreatedOn string     `json:"created_on"`
}
