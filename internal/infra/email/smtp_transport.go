package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"hyperlocal/config"
	"hyperlocal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// smtpTransport sends mail through an SMTP relay. Each send opens its own
// connection so one slow recipient never holds a shared session.
type smtpTransport struct {
	cfg         config.SMTPConfig
	fromAddress string
	fromName    string
}

// NewSMTPTransport creates an EmailTransport backed by an SMTP relay.
func NewSMTPTransport(cfg *config.EmailConfig) (service.EmailTransport, error) {
	if cfg == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.FromAddress == "" {
		return nil, errors.New("email from address is required")
	}

	return &smtpTransport{
		cfg:         cfg.SMTP,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

func (t *smtpTransport) Send(ctx context.Context, msg service.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before sending email")
	}

	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))

	dialer := &net.Dialer{Timeout: t.cfg.ConnectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "failed to connect to SMTP server")
	}
	defer conn.Close()

	// The greeting is read inside smtp.NewClient.
	if err := conn.SetDeadline(time.Now().Add(t.cfg.GreetingTimeout)); err != nil {
		return errors.WithStack(err)
	}
	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return errors.Wrap(err, "SMTP greeting failed")
	}
	defer client.Close()

	deadline := time.Now().Add(t.cfg.SocketTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return errors.WithStack(err)
	}

	if t.cfg.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return errors.New("SMTP server does not support STARTTLS")
		}
		if err := client.StartTLS(&tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "failed to start TLS")
		}
	}

	if t.cfg.Username != "" && t.cfg.Password != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "SMTP authentication failed")
		}
	}

	if err := client.Mail(t.fromAddress); err != nil {
		return errors.Wrap(err, "failed to set sender")
	}
	if err := client.Rcpt(msg.To); err != nil {
		return errors.Wrapf(err, "failed to set recipient %s", msg.To)
	}

	body, err := buildMIMEMessage(t.fromName, t.fromAddress, msg)
	if err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "failed to open data writer")
	}
	if _, err := w.Write(body); err != nil {
		return errors.Wrap(err, "failed to write message")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "failed to close data writer")
	}

	return errors.WithStack(client.Quit())
}

// buildMIMEMessage renders a multipart/alternative message with text and HTML parts.
func buildMIMEMessage(fromName, fromAddress string, msg service.EmailMessage) ([]byte, error) {
	var buf bytes.Buffer

	from := fromAddress
	if fromName != "" {
		from = mime.QEncoding.Encode("utf-8", fromName) + " <" + fromAddress + ">"
	}

	writer := multipart.NewWriter(&buf)

	headers := []string{
		"From: " + from,
		"To: " + msg.To,
		"Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject),
		"Date: " + time.Now().UTC().Format(time.RFC1123Z),
		fmt.Sprintf("Message-ID: <%s@%s>", uuid.NewString(), domainOf(fromAddress)),
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=" + writer.Boundary(),
	}
	buf.WriteString(strings.Join(headers, "\r\n"))
	buf.WriteString("\r\n\r\n")

	parts := []struct {
		contentType string
		body        string
	}{
		{contentType: "text/plain; charset=UTF-8", body: msg.TextBody},
		{contentType: "text/html; charset=UTF-8", body: msg.HTMLBody},
	}
	for _, part := range parts {
		if part.body == "" {
			continue
		}
		pw, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := pw.Write([]byte(part.body)); err != nil {
			return nil, errors.WithStack(err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	return buf.Bytes(), nil
}

func domainOf(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		return address[at+1:]
	}

	return "localhost"
}
