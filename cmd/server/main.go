// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/leasemagnets/leadintake-backend/internal/backend"
	"github.com/leasemagnets/leadintake-backend/internal/controller"
	"github.com/leasemagnets/leadintake-backend/internal/db"
	"github.com/leasemagnets/leadintake-backend/internal/integration"
	"github.com/leasemagnets/leadintake-backend/internal/queue"
	"github.com/leasemagnets/leadintake-backend/internal/repository"
	"github.com/leasemagnets/leadintake-backend/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	// Init DB
	db.Init()

	leadRepo := &repository.LeadRepository{DB: db.DB}
	customerRepo := &repository.CustomerRepository{DB: db.DB}
	integrationRepo := &repository.IntegrationRepository{DB: db.DB}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:8080"
	}
	backendClient := backend.NewHTTPClient(backendURL)

	dispatcher := &integration.Dispatcher{
		Backend:      backendClient,
		CustomerRepo: customerRepo,
		Integrations: integrationRepo,
		Registry:     integration.NewDefaultRegistry(leadRepo),
	}

	// Dispatch jobs go to RabbitMQ when AMQP_URL is set (consumed by
	// cmd/worker), otherwise to the in-process subscriber.
	var q queue.Queue
	if amqpURL := os.Getenv("AMQP_URL"); amqpURL != "" {
		amqpQueue, err := queue.NewAMQPQueue(amqpURL)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ:", err)
		}
		q = amqpQueue
	} else {
		memQueue := queue.NewInMemoryQueue()
		queue.StartLeadDispatchSubscriber(memQueue, dispatcher, leadRepo)
		q = memQueue
	}

	leadService := &service.LeadService{
		LeadRepo:     leadRepo,
		CustomerRepo: customerRepo,
		Queue:        q,
	}

	leadController := &controller.LeadController{
		LeadService: leadService,
	}

	r := chi.NewRouter()

	// Lead routes
	r.Post("/leads", leadController.InsertNewLead)
	r.Get("/leads", leadController.GetLeads)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
