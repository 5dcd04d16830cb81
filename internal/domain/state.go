package domain

// FlowState represents user's current interaction state
type FlowState string

const (
	StateIdle                  FlowState = "idle"
	StateAwaitingCredential    FlowState = "awaiting_credential"
	StateAwaitingSearchTerm    FlowState = "awaiting_search_term"
	StateAwaitingPriceUpdate   FlowState = "awaiting_price_update"
	StateAwaitingBlockTarget   FlowState = "awaiting_block_target"
	StateAwaitingUnblockTarget FlowState = "awaiting_unblock_target"
)

// StateData holds the active flow for one user. At most one flow is
// active per user; starting a new one replaces the previous slot.
type StateData struct {
	State FlowState

	// ShopID scopes the search and price-update flows; zero otherwise.
	ShopID int64
}
