package model

import (
	"fmt"
	"strings"
)

// AlertBody is the only message this service ever sends.
const AlertBody = "There is a high alert in your region please move to a safer location!"

type Credentials struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	Recipient  string
}

// Validate reports which credential fields are missing.
func (c Credentials) Validate() error {
	var missing []string
	if c.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.FromNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}
	if c.Recipient == "" {
		missing = append(missing, "ALERT_RECIPIENT_NUMBER")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing twilio credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}

type Message struct {
	Body string
	From string
	To   string
}

// AlertMessage builds the fixed alert addressed with c.
func AlertMessage(c Credentials) Message {
	return Message{
		Body: AlertBody,
		From: c.FromNumber,
		To:   c.Recipient,
	}
}

type Receipt struct {
	SID    string `json:"sid"`
	Body   string `json:"body"`
	Status string `json:"status,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
}
