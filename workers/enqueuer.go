package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Enqueuer queues background tasks. It satisfies the booking service's
// InvoiceEnqueuer interface.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates an Enqueuer bound to the task queue.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpts())}
}

// EnqueueInvoiceCreate queues invoice creation for the given bookings.
func (e *Enqueuer) EnqueueInvoiceCreate(ctx context.Context, bookingIDs []string) error {
	payload, err := json.Marshal(InvoiceCreatePayload{BookingIDs: bookingIDs})
	if err != nil {
		return fmt.Errorf("failed to marshal invoice payload: %w", err)
	}
	task := asynq.NewTask(TypeInvoiceCreate, payload)
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue invoice task: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
