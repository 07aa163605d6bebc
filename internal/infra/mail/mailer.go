// Package mail delivers account emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"

	"dnotes/config"
	"dnotes/internal/domain/constants"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"

	"github.com/jordan-wright/email"
	"go.uber.org/fx"
)

// Params holds dependencies for the mailer, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer returns the SMTP mailer, or a logging no-op when mail is disabled.
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderNoop {
		params.Logger.Info("SMTP not configured, using no-op mailer")

		return &noopMailer{logger: params.Logger}, nil
	}

	if cfg.Provider != constants.MailProviderSMTP {
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return nil, errors.New("smtp host, port and from address are required")
	}

	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return newSMTPMailer(cfg.From, params.Logger, func(e *email.Email) error {
		return e.Send(addr, auth)
	}), nil
}

type smtpMailer struct {
	from   string
	logger *slog.Logger
	send   func(e *email.Email) error
}

func newSMTPMailer(from string, logger *slog.Logger, send func(e *email.Email) error) *smtpMailer {
	return &smtpMailer{from: from, logger: logger, send: send}
}

func (m *smtpMailer) SendValidationCode(ctx context.Context, to, code string) error {
	e := m.newEmail(to, "Validate your email address")
	e.Text = fmt.Appendf(nil, "Your validation code is %s.\n\nEnter it in the application to activate your account.\n", code)
	e.HTML = fmt.Appendf(nil, "<p>Your validation code is <strong>%s</strong>.</p><p>Enter it in the application to activate your account.</p>", code)

	return m.deliver(ctx, e, "validation_code")
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, resetToken string) error {
	e := m.newEmail(to, "Reset your password")
	e.Text = fmt.Appendf(nil, "Use this token to set a new password. It expires in a few minutes.\n\n%s\n", resetToken)

	return m.deliver(ctx, e, "password_reset")
}

func (m *smtpMailer) newEmail(to, subject string) *email.Email {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject

	return e
}

func (m *smtpMailer) deliver(ctx context.Context, e *email.Email, kind string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := m.send(e); err != nil {
		return errors.Wrapf(err, "mailer: send %s", kind)
	}

	m.logger.DebugContext(ctx, "Email sent", slog.String("kind", kind))

	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendValidationCode(ctx context.Context, to, _ string) error {
	m.logger.DebugContext(ctx, "[NoopMailer] Skipping validation code email", slog.String("to", to))

	return nil
}

func (m *noopMailer) SendPasswordReset(ctx context.Context, to, _ string) error {
	m.logger.DebugContext(ctx, "[NoopMailer] Skipping password reset email", slog.String("to", to))

	return nil
}
