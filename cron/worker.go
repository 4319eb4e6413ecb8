package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"slotify/config"
	serviceRepo "slotify/database/repository/service"
	"slotify/services/availability"
)

const TypeAvailabilityPrewarm = "availability:prewarm"

// prewarmPayload identifies one service whose upcoming availability should be
// computed ahead of demand.
type prewarmPayload struct {
	ServiceID string `json:"serviceId"`
}

// InitPrewarmWorker runs the async worker in background. Each task computes
// the next PREWARM_HORIZON_DAYS of availability for one service, priming the
// redis response cache.
func InitPrewarmWorker(engine *availability.Engine) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrewarmDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityPrewarm, handlePrewarmTask(engine))

	// Start async worker with retry logic
	go func() {
		log.Println("[PrewarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PrewarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PrewarmWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePrewarmTask(engine *availability.Engine) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p prewarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PrewarmHandler] invalid payload: %v", err)
			return err
		}

		horizon := config.AppConfig.PrewarmHorizonDays
		if horizon <= 0 {
			horizon = 7
		}
		from := time.Now()
		to := from.AddDate(0, 0, horizon)

		// Rides the engine's read-through cache: a fresh entry makes this a
		// no-op, an expired one is recomputed and stored. The slots themselves
		// are discarded here.
		_, err := engine.GetAvailability(ctx, availability.Query{
			ServiceID: p.ServiceID,
			From:      from,
			To:        to,
		})
		if err != nil {
			log.Printf("[PrewarmHandler] failed to prewarm service %s: %v", p.ServiceID, err)
		}
		return err
	}
}

// StartPrewarmScheduler periodically enqueues one prewarm task per bookable
// service.
func StartPrewarmScheduler(services serviceRepo.ServiceRepository) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrewarmDB,
	})

	interval := time.Duration(config.AppConfig.PrewarmIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			enqueuePrewarmTasks(client, services)
			<-ticker.C
		}
	}()
}

func enqueuePrewarmTasks(client *asynq.Client, services serviceRepo.ServiceRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := services.ListActive(ctx)
	if err != nil {
		log.Printf("[PrewarmScheduler] failed to list services: %v", err)
		return
	}

	for _, svc := range list {
		payload, err := json.Marshal(prewarmPayload{ServiceID: svc.ID})
		if err != nil {
			continue
		}
		task := asynq.NewTask(TypeAvailabilityPrewarm, payload)
		if _, err := client.Enqueue(task, asynq.MaxRetry(2), asynq.Timeout(30*time.Second)); err != nil {
			log.Printf("[PrewarmScheduler] failed to enqueue service %s: %v", svc.ID, err)
		}
	}
	log.Printf("[PrewarmScheduler] enqueued %d prewarm task(s)", len(list))
}
