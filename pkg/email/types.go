package email

import "context"

type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}

// Sender delivers a message. *Client is the SMTP implementation.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Salon is the shop identity printed in message footers.
type Salon struct {
	Name          string
	PostalAddress string
	Phone         string
	Email         string
}
