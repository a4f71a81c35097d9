package briefing

import (
	"go.uber.org/zap"

	"github.com/Philanthropists/daily-briefing/internal/notifications"
	"github.com/Philanthropists/daily-briefing/internal/notifications/twilio"
)

// notificationStore builds the SMS-backed store. Without Twilio credentials
// the store still queues but drops everything on Close.
func (s *Briefing) notificationStore() *notifications.Store {
	creds := s.Config.Twilio
	if creds.AccountSid == "" || creds.AuthToken == "" {
		s.log().Warn("no Twilio credentials, briefing will not be delivered")
		return &notifications.Store{}
	}

	client, err := notifications.CreateFixedClient(
		&twilio.Client{
			AccountSid: creds.AccountSid,
			Token:      creds.AuthToken,
		},
		creds.FromNumber,
		creds.ToNumber,
	)
	if err != nil {
		s.log().Error("could not create notifications client", zap.Error(err))
		return &notifications.Store{}
	}

	return &notifications.Store{Client: client}
}
