package email

import (
	"time"

	"github.com/yosapark/yomogi_backend/config"
)

// Config is the sender identity plus SMTP transport settings.
type Config struct {
	Enabled      bool
	From         string
	AdminAddress string
	SMTP         SMTP
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	// UseTLS dials implicit TLS (port 465). Otherwise STARTTLS is used when offered.
	UseTLS  bool
	Timeout time.Duration
}

func FromCentralConfig(c config.EmailConfig) Config {
	port := c.SMTP.Port
	if port <= 0 {
		port = 587
	}
	timeout := time.Duration(c.SMTP.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return Config{
		Enabled:      c.Enabled,
		From:         c.From,
		AdminAddress: c.AdminAddress,
		SMTP: SMTP{
			Host:     c.SMTP.Host,
			Port:     port,
			Username: c.SMTP.Username,
			Password: c.SMTP.Password,
			UseTLS:   c.SMTP.UseTLS,
			Timeout:  timeout,
		},
	}
}
