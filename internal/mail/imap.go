package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"erpapi/internal/config"
	"erpapi/internal/model"
)

// Inbox lists the newest messages of a mailbox.
type Inbox interface {
	Latest(ctx context.Context, limit int) ([]model.InboxMessage, error)
}

// IMAPInbox reads envelopes over IMAPS. Each call opens its own session.
type IMAPInbox struct {
	cfg     config.IMAPConfig
	timeout time.Duration
}

// NewIMAPInbox returns an inbox reader for cfg.
func NewIMAPInbox(cfg config.IMAPConfig) (*IMAPInbox, error) {
	if cfg.Addr == "" || cfg.Username == "" {
		return nil, ErrNotConfigured
	}
	return &IMAPInbox{cfg: cfg, timeout: 15 * time.Second}, nil
}

// Latest returns up to limit envelopes, newest first. The mailbox is opened
// read-only so fetched messages are not flagged as seen.
func (b *IMAPInbox) Latest(ctx context.Context, limit int) ([]model.InboxMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := client.DialTLS(b.cfg.Addr, nil)
	if err != nil {
		return nil, fmt.Errorf("imap dial: %w", err)
	}
	c.Timeout = b.timeout
	defer c.Logout()

	if err := c.Login(b.cfg.Username, b.cfg.Password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	mbox, err := c.Select(b.cfg.Mailbox, true)
	if err != nil {
		return nil, fmt.Errorf("imap select %s: %w", b.cfg.Mailbox, err)
	}

	seqset, ok := latestRange(mbox.Messages, limit)
	if !ok {
		return []model.InboxMessage{}, nil
	}

	ch := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid}, ch)
	}()

	out := make([]model.InboxMessage, 0, limit)
	for msg := range ch {
		out = append(out, toInboxMessage(msg))
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	// Fetch yields ascending sequence numbers.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// latestRange selects the last limit sequence numbers of a mailbox holding total messages.
func latestRange(total uint32, limit int) (*imap.SeqSet, bool) {
	if total == 0 || limit <= 0 {
		return nil, false
	}
	from := uint32(1)
	if total > uint32(limit) {
		from = total - uint32(limit) + 1
	}
	seqset := new(imap.SeqSet)
	seqset.AddRange(from, total)
	return seqset, true
}

func toInboxMessage(msg *imap.Message) model.InboxMessage {
	out := model.InboxMessage{UID: msg.Uid, To: []string{}}
	for _, f := range msg.Flags {
		if f == imap.SeenFlag {
			out.Seen = true
		}
	}
	env := msg.Envelope
	if env == nil {
		return out
	}
	out.Subject = env.Subject
	out.Date = env.Date.UTC()
	if len(env.From) > 0 {
		out.From = env.From[0].Address()
	}
	for _, addr := range env.To {
		out.To = append(out.To, addr.Address())
	}
	return out
}
