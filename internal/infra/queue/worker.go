package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/coachflow/coachflow-backend/internal/entity"
)

// MailSender is the outbound side of the worker; satisfied by mail.EmailSender.
type MailSender interface {
	SendAutomation(to, name, subject, body string) error
}

// Worker drains the email queue: one SMTP send per job, then the email_queue
// row is marked sent or failed.
type Worker struct {
	Channel *amqp.Channel
	Sender  MailSender
	Emails  entity.EmailQueueRepositoryInterface
	Log     *zap.Logger
}

func NewWorker(ch *amqp.Channel, sender MailSender, emails entity.EmailQueueRepositoryInterface, log *zap.Logger) *Worker {
	return &Worker{Channel: ch, Sender: sender, Emails: emails, Log: log}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatal("registering RabbitMQ consumer failed", zap.Error(err))
	}

	w.Log.Info("email worker waiting for jobs", zap.String("queue", queueName))

	for d := range msgs {
		var job EmailJob
		if err := json.Unmarshal(d.Body, &job); err != nil {
			w.Log.Error("dropping malformed email job", zap.Error(err))
			// Malformed payload: reject without requeue so the queue keeps moving.
			d.Nack(false, false)
			continue
		}

		if err := w.process(context.Background(), job); err != nil {
			w.Log.Error("email dispatch failed",
				zap.String("email_id", job.EmailID),
				zap.Error(err))
			d.Nack(false, false)
			continue
		}

		w.Log.Info("email dispatched",
			zap.String("email_id", job.EmailID),
			zap.String("to", job.To))
		d.Ack(false)
	}
}

func (w *Worker) process(ctx context.Context, job EmailJob) error {
	if err := w.Sender.SendAutomation(job.To, job.Name, job.Subject, job.Body); err != nil {
		if markErr := w.Emails.MarkStatus(ctx, job.EmailID, entity.EmailStatusFailed); markErr != nil {
			w.Log.Error("marking email failed", zap.String("email_id", job.EmailID), zap.Error(markErr))
		}
		return err
	}

	return w.Emails.MarkStatus(ctx, job.EmailID, entity.EmailStatusSent)
}
