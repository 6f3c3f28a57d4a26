package constants

// NATS Subjects
const (
	// Escrow settlement events
	SubjectEscrowReleased = "escrow.released"

	// Queue group for the payout executor so each released event is handled
	// by exactly one instance
	QueuePayoutExecutor = "payout-executor"
)
