package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"supplement_keep/internal/config"
	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
)

// NotificationPayload はユーザーへの通知の内容です。
// Tag が同じ通知はクライアント側で置き換えられます（重複表示の抑制）。
type NotificationPayload struct {
	Title string
	Body  string
	Tag   string
	Data  map[string]string
}

// Notifier はユーザーへの通知送信を抽象化します。
// 戻り値は実際に配信できた通知の件数です（失敗時は 0）。
type Notifier interface {
	Send(ctx context.Context, user *model.User, payload NotificationPayload) (int, error)
}

// --- LogNotifier ---
// 送信せずログに出すだけの実装。開発環境のデフォルト。
type LogNotifier struct{}

func (n *LogNotifier) Send(ctx context.Context, user *model.User, payload NotificationPayload) (int, error) {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Notification (LogNotifier) ---",
		"to", user.Email,
		"title", payload.Title,
		"body", payload.Body,
		"tag", payload.Tag,
	)
	return 1, nil
}

// --- SmtpNotifier ---
// 通知をそのままメールとして送る実装。
type SmtpNotifier struct {
	cfg *config.SMTPConfig
}

func (n *SmtpNotifier) Send(ctx context.Context, user *model.User, payload NotificationPayload) (int, error) {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	logger.Debug("Attempting to send notification via SMTP",
		"smtp_addr", addr,
		"from", n.cfg.From,
		"to", user.Email,
	)

	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return 0, err
	}
	defer c.Close()

	if err = c.Mail(n.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", n.cfg.From)
		return 0, err
	}
	if err = c.Rcpt(user.Email); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", user.Email)
		return 0, err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return 0, err
	}
	defer wc.Close()

	msg := "To: " + user.Email + "\r\n" +
		"Subject: " + payload.Title + "\r\n" +
		"\r\n" +
		payload.Body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write notification data", "error", err)
		return 0, err
	}

	logger.Info("Notification sent successfully via SMTP", "to", user.Email, "title", payload.Title)
	return 1, nil
}

// --- NewNotifier ファクトリ関数 ---
func NewNotifier(cfg *config.Config) Notifier {
	logger := slog.Default()
	switch cfg.Notifier.Type {
	case "ses":
		logger.Info("Initializing SES notifier...")
		return NewSESNotifier(cfg)
	case "smtp":
		logger.Info("Initializing SMTP notifier...")
		return &SmtpNotifier{cfg: &cfg.SMTP}
	case "log":
		logger.Info("Initializing Log notifier...")
		return &LogNotifier{}
	default:
		logger.Warn("Unknown notifier type, defaulting to LogNotifier", "type", cfg.Notifier.Type)
		return &LogNotifier{}
	}
}
