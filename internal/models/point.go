package models

// Point record lifecycle statuses.
const (
	PointStatusAvailable = "AVAILABLE"
	PointStatusUsed      = "USED"
	PointStatusExpired   = "EXPIRED"
	PointStatusCanceled  = "CANCELED"
)

// PointRecord is a grant of reward points to a user from a specific roulette
// run. A still-available record can be administratively reclaimed.
type PointRecord struct {
	ID             int64   `json:"id"`
	GrantedPoint   int64   `json:"grantedPoint"`
	RemainingPoint int64   `json:"remainingPoint"`
	Status         string  `json:"status"`
	ExpiresAt      string  `json:"expiresAt"`
	UserID         int64   `json:"userId"`
	Nickname       string  `json:"nickname,omitempty"`
	RouletteDate   string  `json:"rouletteDate"`
	DeletedAt      *string `json:"deletedAt"`
}
