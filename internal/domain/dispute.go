package domain

type DisputeStatus string

const (
	// Disputes are filed PENDING and resolved off-platform; no transition
	// out of PENDING exists in the ledger itself.
	DisputeStatusPending DisputeStatus = "PENDING"
)

// Dispute is an unresolved complaint attached to a rental. At most one
// dispute is kept per rental; filing again overwrites the previous one.
type Dispute struct {
	RentalID  uint64        `json:"rental_id"`
	Filer     string        `json:"filer"`
	Reason    string        `json:"reason"`
	Status    DisputeStatus `json:"status"`
	CreatedOn string        `json:"created_on"`
}
