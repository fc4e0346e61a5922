package services

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	SendDonationReceipt(to, donorName string, amount int64, currency string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) SendDonationReceipt(to, donorName string, amount int64, currency string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Thank you for supporting the club")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nWe received your donation of %d.%02d %s. Thank you for supporting the club.\n",
		donorName, amount/100, amount%100, currency,
	))

	return m.dialer.DialAndSend(msg)
}
