package queue

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/leasemagnets/leadintake-backend/internal/integration"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
)

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue is an in-memory pub/sub queue. Handlers run in their own
// goroutine per published message, so publishers never block on slow
// subscribers.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error

	// MaxRetries above zero re-runs a failed handler with backoff.
	// Lead dispatch runs with zero: outbound attempts are at-most-once.
	MaxRetries int
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// JobPayload wraps a message payload with retry info
type JobPayload struct {
	Payload    any
	RetryCount int
	MaxRetries int
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	job := JobPayload{
		Payload:    payload,
		RetryCount: 0,
		MaxRetries: q.MaxRetries,
	}

	for _, handler := range handlers {
		go q.processJob(handler, job)
	}

	return nil
}

// processJob handles retries and errors
func (q *InMemoryQueue) processJob(handler func(payload any) error, job JobPayload) {
	for {
		err := handler(job.Payload)
		if err == nil {
			return // ACK
		}

		job.RetryCount++
		log.Printf("Job failed (attempt %d/%d): %+v, error: %v\n", job.RetryCount, job.MaxRetries, job.Payload, err)

		if job.RetryCount > job.MaxRetries {
			log.Printf("Job permanently failed after %d attempts: %+v\n", job.RetryCount, job.Payload)
			return // No requeue
		}

		// Exponential backoff before retry
		time.Sleep(time.Duration(job.RetryCount*500) * time.Millisecond)
	}
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// DispatchTopic carries one job per accepted (non-test) lead submission.
const DispatchTopic = "lead_dispatches"

// DispatchJob identifies a persisted lead to fan out.
type DispatchJob struct {
	FormID string `json:"form_id"`
	Email  string `json:"email"`
}

// StartLeadDispatchSubscriber wires the fan-out dispatcher behind the
// queue. Dispatch outcomes are terminal: the handler always returns nil
// so a failed integration is never re-attempted.
func StartLeadDispatchSubscriber(q Queue, dispatcher *integration.Dispatcher, leadRepo repository.LeadRepositoryInterface) {
	go func() {
		err := q.Subscribe(DispatchTopic, func(payload any) error {
			job, ok := payload.(DispatchJob)
			if !ok {
				log.Println("⚠️ Invalid payload type, expected DispatchJob")
				return nil
			}

			log.Println("📩 Processing queued lead dispatch:", job.FormID, job.Email)

			lead, err := leadRepo.GetByEmail(job.FormID, job.Email)
			if err != nil {
				log.Println("⚠️ Failed to fetch lead:", err)
				return nil
			}
			if lead == nil {
				log.Println("⚠️ Lead not found:", job.FormID, job.Email)
				return nil
			}

			outcomes, err := dispatcher.Dispatch(context.Background(), lead)
			if err != nil {
				log.Println("⚠️ Failed to dispatch lead:", err)
				return nil
			}

			log.Printf("✅ Lead dispatch finished: %d integration(s) attempted\n", len(outcomes))
			return nil
		})

		if err != nil {
			log.Println("⚠️ Failed to start subscriber for", DispatchTopic, ":", err)
		}
	}()
}
