package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"hotel-booking/pkg/cache"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Sender delivers one mail. Split out so the worker can be tested without
// a live SMTP server.
type Sender interface {
	Send(mail Mail) error
}

type smtpSender struct {
	config utils.EmailConfig
}

func NewSMTPSender(config utils.EmailConfig) Sender {
	return &smtpSender{config: config}
}

func (s *smtpSender) Send(mail Mail) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		s.config.From, mail.To, mail.Subject, mail.Body)

	var auth smtp.Auth
	if s.config.User != "" {
		auth = smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	}

	if err := smtp.SendMail(addr, auth, s.config.From, []string{mail.To}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", mail.To, err)
	}

	return nil
}

// Worker drains the email queue and delivers mails one at a time. Delivery
// failures are logged and the job is dropped, not retried.
type Worker struct {
	cache  *cache.Cache
	sender Sender
	log    *zap.Logger
}

func NewWorker(c *cache.Cache, sender Sender, log *zap.Logger) *Worker {
	return &Worker{
		cache:  c,
		sender: sender,
		log:    log.With(zap.String("component", "notify_worker")),
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info("notify worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("notify worker stopped")
			return
		default:
		}

		payload, err := w.cache.PopJob(ctx, emailQueue, 5*time.Second)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			w.log.Error("failed to pop mail job", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		if payload == nil {
			continue
		}

		var mail Mail
		if err := json.Unmarshal(payload, &mail); err != nil {
			w.log.Error("failed to decode mail job", zap.Error(err))
			continue
		}

		if err := w.sender.Send(mail); err != nil {
			w.log.Error("failed to send mail", zap.String("to", mail.To), zap.Error(err))
			continue
		}

		w.log.Info("mail sent", zap.String("to", mail.To), zap.String("subject", mail.Subject))
	}
}
