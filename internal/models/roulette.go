package models

// TodayRoulette is the current day's roulette run. UsedBudget and
// ParticipantCount are server-computed and read-only; TotalBudget is mutated
// only by increase, which the server enforces beyond the client's >= 1 floor.
type TodayRoulette struct {
	ID               int64   `json:"id"`
	RouletteDate     string  `json:"rouletteDate"`
	TotalBudget      int64   `json:"totalBudget"`
	UsedBudget       int64   `json:"usedBudget"`
	ParticipantCount int64   `json:"participantCount"`
	DeletedAt        *string `json:"deletedAt"`
}

// RouletteHistoryItem is one past (or current) roulette run in the history
// listing.
type RouletteHistoryItem struct {
	ID               int64   `json:"id"`
	RouletteDate     string  `json:"rouletteDate"`
	TotalBudget      int64   `json:"totalBudget"`
	UsedBudget       int64   `json:"usedBudget"`
	ParticipantCount int64   `json:"participantCount"`
	DeletedAt        *string `json:"deletedAt"`
}

// FutureBudget is an administrator-set total budget for a specific upcoming
// date. The server stores these sparsely; dates without an override fall back
// to the system default.
type FutureBudget struct {
	SettingDate string `json:"settingDate"`
	TotalBudget int64  `json:"totalBudget"`
}
