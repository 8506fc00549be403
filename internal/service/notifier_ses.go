package service

import (
	"context"
	"log/slog"

	"supplement_keep/internal/config"
	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESNotifier は AWS SES 経由で通知メールを送る実装です
type SESNotifier struct {
	client *sesv2.Client
	cfg    *config.SESConfig
}

// NewSESNotifier は設定に応じて認証方法を切り替えてSESクライアントを生成します
func NewSESNotifier(cfg *config.Config) Notifier {
	var awsCfgOpts []func(*awsconfig.LoadOptions) error
	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.SES.Region))

	switch cfg.SES.AuthType {
	case "static_credentials":
		slog.Info("Configuring SES with static credentials.")
		if cfg.SES.AccessKeyID == "" || cfg.SES.SecretAccessKey == "" {
			slog.Error("SES auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 設定ミスは起動時に落とす
			panic("missing static credentials for SES")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.SES.AccessKeyID,
			cfg.SES.SecretAccessKey,
			"",
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		slog.Info("Configuring SES with IAM Role credentials.")

	default:
		slog.Warn("Unknown SES auth_type specified, defaulting to IAM Role.", "type", cfg.SES.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for SES", "error", err)
		panic(err)
	}

	return &SESNotifier{
		client: sesv2.NewFromConfig(awsCfg),
		cfg:    &cfg.SES,
	}
}

// Send は AWS SES を使用して通知メールを送信します
func (n *SESNotifier) Send(ctx context.Context, user *model.User, payload NotificationPayload) (int, error) {
	logger := middleware.GetLogger(ctx)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.cfg.From),
		Destination: &types.Destination{
			ToAddresses: []string{user.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(payload.Title),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(payload.Body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	_, err := n.client.SendEmail(context.Background(), input)
	if err != nil {
		logger.Error("Failed to send notification via SES", "error", err, "to", user.Email)
		return 0, err
	}

	logger.Info("Notification sent successfully via SES", "to", user.Email, "title", payload.Title)
	return 1, nil
}
