package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Email.Enabled {
		if c.Email.SMTP.Host == "" {
			errs = append(errs, errors.New("email.smtp.host is required when email is enabled"))
		}
		if c.Email.From == "" {
			errs = append(errs, errors.New("email.from is required when email is enabled"))
		}
		if c.Email.AdminAddress == "" {
			errs = append(errs, errors.New("email.admin_address is required when email is enabled"))
		}
	}

	if c.SMS.Enabled && c.SMS.SMSIR.APIKey == "" {
		errs = append(errs, errors.New("sms.smsir.api_key is required when sms is enabled"))
	}

	return errors.Join(errs...)
}
