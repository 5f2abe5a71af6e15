package services

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Sandeshj458/JobPortal/internal/config"
	"github.com/Sandeshj458/JobPortal/internal/utils"
)

// ---------------------------------------------------------------------
// Notifier interface
// ---------------------------------------------------------------------

// Email is a single outbound message handed to the notifier.
type Email struct {
	To        string
	Subject   string
	PlainText string
	HTML      string
}

// Notifier delivers emails off the request path. Enqueue never blocks
// and delivery failures are logged, not surfaced to callers.
type Notifier interface {
	Enqueue(e Email)
	Close()
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type sendgridNotifier struct {
	cfg    *config.Config
	client *sendgrid.Client
	queue  chan Email
	done   chan struct{}
}

func NewSendgridNotifier(cfg *config.Config) Notifier {
	n := &sendgridNotifier{
		cfg:    cfg,
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		queue:  make(chan Email, cfg.NotifierQueueSize),
		done:   make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *sendgridNotifier) Enqueue(e Email) {
	select {
	case n.queue <- e:
	default:
		utils.Logger.Warnf("Notification queue full, dropping email to %s (%s)", e.To, e.Subject)
	}
}

// Close drains the queue and stops the delivery worker.
func (n *sendgridNotifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *sendgridNotifier) run() {
	defer close(n.done)
	for e := range n.queue {
		n.send(e)
	}
}

func (n *sendgridNotifier) send(e Email) {
	from := mail.NewEmail(n.cfg.OrganizationName, n.cfg.LDFlag_SendgridFromEmail)
	to := mail.NewEmail("", e.To)
	message := mail.NewSingleEmail(from, e.Subject, to, e.PlainText, e.HTML)

	if n.cfg.LDFlag_SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	if _, err := n.client.Send(message); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send email to %s via SendGrid", e.To)
	}
}
