package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type dialFunc func(host string, port int, user, password string) error

// SMTPChecker logs in to the outgoing server without sending anything.
type SMTPChecker struct {
	Host string
	Port int
	dial dialFunc
}

func NewSMTPChecker(host string, port int) *SMTPChecker {
	return &SMTPChecker{Host: host, Port: port, dial: gomailDial}
}

func gomailDial(host string, port int, user, password string) error {
	d := gomail.NewDialer(host, port, user, password)
	sc, err := d.Dial()
	if err != nil {
		return err
	}
	return sc.Close()
}

// Check dials and authenticates. gomail has no context support, so a
// cancelled ctx only stops the wait, not the dial.
func (c *SMTPChecker) Check(ctx context.Context, user, password string) error {
	done := make(chan error, 1)
	go func() {
		done <- c.dial(c.Host, c.Port, user, password)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp login %s:%d: %w", c.Host, c.Port, err)
		}
		return nil
	}
}
