package worker

import (
	"context"
	"encoding/json"

	"sponlink-api/core/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer is the narrow interface modules use to queue background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error
}

type Worker struct {
	client *asynq.Client
	server *asynq.Server
	mux    *asynq.ServeMux
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg RedisConfig) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	return &Worker{
		client: asynq.NewClient(redisOpt),
		server: asynq.NewServer(redisOpt, asynq.Config{
			Concurrency: 5,
		}),
		mux: asynq.NewServeMux(),
	}
}

// HandleFunc registers a handler for a task type. Must be called before Start.
func (w *Worker) HandleFunc(taskType string, handler func(context.Context, *asynq.Task) error) {
	w.mux.HandleFunc(taskType, handler)
}

// Start runs the asynq server in a background goroutine.
func (w *Worker) Start() {
	go func() {
		if err := w.server.Run(w.mux); err != nil {
			logger.Error("Worker:Start:Run", err)
		}
	}()
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
	if err := w.client.Close(); err != nil {
		logger.Error("Worker:Shutdown:CloseClient", err)
	}
}

func (w *Worker) Enqueue(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(taskType, data)
	info, err := w.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		logger.Error("Worker:Enqueue", "task_type", taskType, "error", err)
		return err
	}

	logger.Info("Worker:Enqueue:Queued", "task_type", taskType, "task_id", info.ID, "queue", info.Queue)
	return nil
}
