package config

import (
	"fmt"
	"time"
)

type Notifications struct {
	RabbitMQURL     string
	ShutdownTimeout time.Duration
}

func LoadNotifications() (Notifications, error) {
	v := newEnv(nil)

	cfg := Notifications{
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifications{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
