package model

// Scope carries the identity of the user a request acts for. Deliveries build
// it (from the Telegram sender or an HTTP header) and pass it through every
// usecase call.
type Scope struct {
	UserID   string
	Username string
}
