package domain

type RentalStatus string

const (
	// RentalStatusAvailable means the asset is listed but nobody occupies
	// it. DurationUnits holds the requested rental length; StartTime and
	// EndTime are not meaningful in this state.
	RentalStatusAvailable RentalStatus = "AVAILABLE"
	// RentalStatusActive means a renter occupies the asset. StartTime and
	// EndTime hold the absolute rental window; DurationUnits is no longer
	// consulted.
	RentalStatusActive RentalStatus = "ACTIVE"
)

// Rental binds a unique asset to its owner, an optional renter, a time
// window and a price. Which time fields are meaningful depends on Status:
// never read EndTime while AVAILABLE or DurationUnits while ACTIVE.
type Rental struct {
	ID      uint64       `json:"id"`
	AssetID uint64       `json:"asset_id"`
	Owner   string       `json:"owner"`
	Renter  *string      `json:"renter,omitempty"`
	Status  RentalStatus `json:"status"`
	// DurationUnits is the rental length requested at listing time, in
	// logical time units. Meaningful only while AVAILABLE.
	DurationUnits uint64 `json:"duration_units"`
	// StartTime and EndTime are absolute logical times. Meaningful only
	// while ACTIVE.
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
	Price     uint64 `json:"price"`
}

// Active reports whether the rental currently has a renter.
func (r *Rental) Active() bool {
	return r.Status == RentalStatusActive && r.Renter != nil
}
