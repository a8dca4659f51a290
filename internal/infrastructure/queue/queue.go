package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

// SendEmailQueue nombre de la cola de correos.
const SendEmailQueue = "send-email"

// NewClient inicializa el cliente Redis para la cola de trabajos.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		MaxRetries: 3,
	})
}

// Options opciones de reintento por trabajo.
type Options struct {
	Attempts     int
	BackoffDelay time.Duration
}

// defaultOptions 3 intentos con backoff fijo de 5s.
var defaultOptions = Options{
	Attempts:     3,
	BackoffDelay: 5 * time.Second,
}

// job envoltura serializada que consume el worker.
type job struct {
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	BackoffMs  int64           `json:"backoffMs"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

// Queue cola de trabajos respaldada en una lista Redis.
type Queue struct {
	client *redis.Client
	name   string
	opts   Options
}

// New construye la cola sobre el cliente Redis. Las opciones de reintento se
// fijan por cola; sin opciones aplica defaultOptions.
func New(client *redis.Client, name string, opts ...Options) *Queue {
	o := defaultOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return &Queue{client: client, name: name, opts: o}
}

// Enqueue serializa el trabajo y lo empuja a la lista de la cola.
func (q *Queue) Enqueue(ctx context.Context, jobName string, payload any) error {
	o := q.opts

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("queue: serializar payload: %w", err)
	}
	data, err := json.Marshal(job{
		Name:       jobName,
		Payload:    raw,
		Attempts:   o.Attempts,
		BackoffMs:  o.BackoffDelay.Milliseconds(),
		EnqueuedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("queue: serializar job: %w", err)
	}

	if err := q.client.LPush(ctx, "queue:"+q.name, data).Err(); err != nil {
		return fmt.Errorf("queue: encolar en %s: %w", q.name, err)
	}
	return nil
}
