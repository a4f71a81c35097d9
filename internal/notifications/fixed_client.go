package notifications

import (
	"github.com/zeebo/errs"

	"github.com/Philanthropists/daily-briefing/internal/notifications/twilio"
)

type smsSender interface {
	SendMessage(from, to, msg string) ([]byte, error)
}

type fixedClient struct {
	Client smsSender
	From   string
	To     string
}

// CreateFixedClient binds an SMS sender to a fixed from/to number pair.
func CreateFixedClient(client *twilio.Client, from, to string) (Client, error) {
	if client == nil {
		return nil, errs.New("client cannot be nil")
	}

	if from == "" || to == "" {
		return nil, errs.New("from or to locations cannot be zero-values")
	}

	return &fixedClient{
		Client: client,
		From:   from,
		To:     to,
	}, nil
}

func (c fixedClient) SendMessage(msg string) ([]byte, error) {
	return c.Client.SendMessage(c.From, c.To, msg)
}
