package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"complyhub/config"
	"complyhub/services/compliance"
	"complyhub/services/invoice"

	"github.com/hibiken/asynq"
)

const (
	TypeInvoiceCreate       = "invoice:create"
	TypeComplianceRecompute = "compliance:recompute"
)

// InvoiceCreatePayload names the bookings to invoice.
type InvoiceCreatePayload struct {
	BookingIDs []string `json:"bookingIds"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitWorker runs the async worker and the nightly score recompute
// schedule in the background.
func InitWorker(invoiceSvc invoice.InvoiceService, complianceSvc compliance.ComplianceService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInvoiceCreate, handleInvoiceCreate(invoiceSvc))
	mux.HandleFunc(TypeComplianceRecompute, handleComplianceRecompute(complianceSvc))

	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler()
}

// runScheduler queues the nightly compliance score recompute.
func runScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{})
	task := asynq.NewTask(TypeComplianceRecompute, nil)
	if _, err := scheduler.Register("@every 24h", task); err != nil {
		log.Printf("[Worker] failed to register recompute schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] scheduler stopped: %v", err)
	}
}

// handleInvoiceCreate bills the named bookings. Business failures are
// logged inside the service and not retried; only a malformed payload
// is treated as a task error.
func handleInvoiceCreate(invoiceSvc invoice.InvoiceService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p InvoiceCreatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvoiceWorker] invalid payload: %v", err)
			return err
		}
		return invoiceSvc.CreateForBookings(ctx, p.BookingIDs)
	}
}

func handleComplianceRecompute(complianceSvc compliance.ComplianceService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		return complianceSvc.RecomputeScores(ctx)
	}
}
