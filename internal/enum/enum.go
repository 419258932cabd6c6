package enum

// ── Terminal roles (carried in bearer tokens) ──

const (
	RoleTerminal = "TERMINAL"
	RoleManager  = "MANAGER"
)

// ── Price board events (websocket) ──

const (
	EventQuoteCreated = "quote.created"
	EventBatchCreated = "batch.created"
)

// ── Metric result labels ──

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)
