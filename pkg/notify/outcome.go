package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome is the immutable result of one delivery attempt, created exactly
// once by the sender that performed it.
type Outcome struct {
	Success     bool      `json:"success"`
	ProviderID  string    `json:"provider_id"`
	Message     string    `json:"message"`
	ErrorDetail string    `json:"error_detail,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewOutcome creates a successful outcome stamped with the current time.
func NewOutcome(providerID, message string) Outcome {
	return Outcome{
		Success:    true,
		ProviderID: providerID,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// NewFailure creates a failed outcome carrying the failure detail.
func NewFailure(providerID, message, detail string) Outcome {
	return Outcome{
		Success:     false,
		ProviderID:  providerID,
		Message:     message,
		ErrorDetail: detail,
		Timestamp:   time.Now(),
	}
}

// CompositeOutcome aggregates the per-channel outcomes of one Dispatcher.Send
// call. Outcomes preserves sender registration order, never completion order.
//
// Success is true only when every registered sender produced an outcome and
// every outcome reports success. Delivered and Attempted expose the raw
// counts so callers that consider a partial broadcast good enough can apply
// their own threshold.
type CompositeOutcome struct {
	Success   bool      `json:"success"`
	Outcomes  []Outcome `json:"outcomes,omitempty"`
	Summary   string    `json:"summary"`
	Delivered int       `json:"delivered"`
	Attempted int       `json:"attempted"`
}

// Outcome flattens the composite into a single Outcome so a Dispatcher can
// stand in for an individual sender inside another Dispatcher.
func (c CompositeOutcome) Outcome() Outcome {
	out := Outcome{
		Success:    c.Success,
		ProviderID: "group-" + uuid.New().String(),
		Message:    c.Summary,
		Timestamp:  time.Now(),
	}
	if details := c.failureDetails(); len(details) > 0 {
		out.ErrorDetail = strings.Join(details, "; ")
	}
	return out
}

func (c CompositeOutcome) failureDetails() []string {
	var details []string
	for _, o := range c.Outcomes {
		if o.Success {
			continue
		}
		if o.ErrorDetail != "" {
			details = append(details, o.ErrorDetail)
		} else if o.Message != "" {
			details = append(details, o.Message)
		}
	}
	return details
}

func summarize(delivered, attempted int) string {
	return fmt.Sprintf("sent to %d/%d channels", delivered, attempted)
}
