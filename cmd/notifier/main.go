package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/h9rms/wanderlust-grid-bloom/pkg/config"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/logger"
	"github.com/h9rms/wanderlust-grid-bloom/pkg/queue"
)

// The notifier drains the notification queue and logs each event. It is
// the delivery seam: swapping the handler for mail or push delivery does
// not touch the publishers.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.ConsumeNotificationTasks(func(task map[string]interface{}) error {
		switch task["type"] {
		case "like":
			log.Info("User %v liked post %v (owner %v)", task["liker_id"], task["post_id"], task["user_id"])
		case "new_post":
			log.Info("User %v published post %v: %v", task["user_id"], task["post_id"], task["title"])
		default:
			log.Warn("Unknown notification task type: %v", task["type"])
		}
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Notifier running, waiting for tasks...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Notifier exited")
}
