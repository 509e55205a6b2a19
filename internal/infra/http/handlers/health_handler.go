package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

type BackendProbe interface {
	Health(ctx context.Context) (*backend.HealthResponse, error)
}

// StoragePinger is implemented by token stores that talk to a server.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	Backend       BackendProbe
	Storage       any
	StorageDriver string
	RabbitMQ      *amqp091.Connection
	StartTime     time.Time
	Timeout       time.Duration
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

const Version = "1.0.0"

func NewHealthHandler(api BackendProbe, storage any, driver string, rabbitMQ *amqp091.Connection) *HealthHandler {
	return &HealthHandler{
		Backend:       api,
		Storage:       storage,
		StorageDriver: driver,
		RabbitMQ:      rabbitMQ,
		StartTime:     time.Now(),
		Timeout:       3 * time.Second,
	}
}

// Handle reports the console as degraded when storage or the queue is
// down. An unreachable backend is reported but the console itself keeps
// serving.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	deps := make(map[string]string)

	if h.Backend != nil {
		if resp, err := h.Backend.Health(ctx); err != nil {
			deps["backend"] = fmt.Sprintf("unreachable: %v", err)
		} else {
			deps["backend"] = resp.Status
		}
	} else {
		deps["backend"] = "not configured"
	}

	storageKey := "storage"
	if h.StorageDriver != "" {
		storageKey = "storage_" + h.StorageDriver
	}
	if p, ok := h.Storage.(StoragePinger); ok {
		if err := p.Ping(ctx); err != nil {
			deps[storageKey] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps[storageKey] = "healthy"
		}
	} else if h.Storage != nil {
		deps[storageKey] = "configured"
	} else {
		deps[storageKey] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := "healthy"
	for name, v := range deps {
		if name == "backend" {
			continue
		}
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
