package main

import (
	"encoding/json"
	"fmt"
	"net/smtp"
	"os"
	"os/signal"
	"syscall"

	"edupress/pkg/config"
	"edupress/pkg/logger"
	"edupress/pkg/queue"
)

type mailTask struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	deliveries, err := queueClient.ConsumeMailTasks()
	if err != nil {
		log.Error("Failed to start consuming mail tasks: %v", err)
		panic(err)
	}

	if cfg.SMTPHost == "" {
		log.Warn("SMTP_HOST not set, mails will be logged instead of delivered")
	}

	log.Info("Mail worker started, waiting for tasks...")

	go func() {
		for d := range deliveries {
			if err := handleDelivery(cfg, log, d.Body); err != nil {
				log.Error("Failed to process mail task: %v", err)
				// Drop rather than requeue: a malformed or undeliverable task
				// would otherwise loop forever.
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down mail worker...")
}

func handleDelivery(cfg *config.Config, log *logger.Logger, body []byte) error {
	var task mailTask
	if err := json.Unmarshal(body, &task); err != nil {
		return fmt.Errorf("failed to decode mail task: %w", err)
	}
	if task.To == "" {
		return fmt.Errorf("mail task has no recipient")
	}

	if cfg.SMTPHost == "" {
		log.Info("Mail to %s: %s", task.To, task.Subject)
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		task.From, task.To, task.Subject, task.Body,
	))

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, task.From, []string{task.To}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", task.To, err)
	}

	log.Info("Delivered mail to %s: %s", task.To, task.Subject)
	return nil
}
