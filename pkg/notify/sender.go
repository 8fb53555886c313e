package notify

import "context"

// Sender is the single-operation contract every delivery channel implements.
//
// Send attempts one delivery and returns an Outcome describing it, or an
// error when the channel could not deliver at all (no recipients configured,
// provider rejection). Implementations must:
//   - accept an empty subject and an empty message independently, never
//     requiring both to be set;
//   - be safe for repeated and concurrent calls, keeping no mutable
//     send-time state beyond their construction-time configuration;
//   - mint a fresh, globally distinguishable ProviderID on every call.
type Sender interface {
	Send(ctx context.Context, subject, message string) (Outcome, error)
}

// SenderFunc adapts a plain function to the Sender interface.
type SenderFunc func(ctx context.Context, subject, message string) (Outcome, error)

func (f SenderFunc) Send(ctx context.Context, subject, message string) (Outcome, error) {
	return f(ctx, subject, message)
}
