package email

import (
	"context"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the subset of *ses.Client used here.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesTransport struct {
	client  sesAPI
	source  string
	timeout time.Duration
}

// NewSESTransport creates an EmailTransport backed by Amazon SES. Credentials
// come from the default AWS chain.
func NewSESTransport(ctx context.Context, cfg *config.EmailConfig) (service.EmailTransport, error) {
	if cfg == nil || cfg.SES.Region == "" {
		return nil, errors.New("ses region is required")
	}
	if cfg.FromAddress == "" {
		return nil, errors.New("email from address is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SES.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return newSESTransport(ses.NewFromConfig(awsCfg), cfg), nil
}

func newSESTransport(client sesAPI, cfg *config.EmailConfig) *sesTransport {
	source := cfg.FromAddress
	if cfg.FromName != "" {
		source = cfg.FromName + " <" + cfg.FromAddress + ">"
	}

	return &sesTransport{
		client:  client,
		source:  source,
		timeout: cfg.SES.Timeout,
	}
}

func (t *sesTransport) Send(ctx context.Context, msg service.EmailMessage) error {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	body := &types.Body{}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String(charsetUTF8)}
	}
	if msg.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String(charsetUTF8)}
	}

	_, err := t.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(t.source),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String(charsetUTF8)},
			Body:    body,
		},
	})
	if err != nil {
		return errors.Wrap(err, "ses send email failed")
	}

	return nil
}
