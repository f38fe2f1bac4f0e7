package main

import "time"

type Webhook struct {
	Messages []InboundSMS `json:"messages"`
}

type InboundSMS struct {
	Sender    string `json:"sender"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

type SimulateRequest struct {
	Body string `json:"body"`
}

type Config struct {
	PostgresConnectionString string        `env:"POSTGRES_CONNECTION_STRING,required"`
	ListenAddr               string        `env:"LISTEN_ADDR" envDefault:":8080"`
	ApiKey                   string        `env:"API_KEY,required"`
	AllowedSender            string        `env:"ALLOWED_SENDER" envDefault:"M-Money"`
	CollectorURL             string        `env:"COLLECTOR_URL"`
	CollectorApiKey          string        `env:"COLLECTOR_API_KEY"`
	SyncInterval             time.Duration `env:"SYNC_INTERVAL" envDefault:"5m"`
}
