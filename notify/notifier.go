// Package notify delivers SMS notifications to applicants.
package notify

import (
	"context"
	"fmt"
)

// Notifier sends a text message to a phone number.
type Notifier interface {
	SendSMS(ctx context.Context, phoneNumber, message string) error
}

// ApplicationConfirmation builds the message sent after a successful
// scholarship application.
func ApplicationConfirmation(applicantName, scholarshipName string) string {
	return fmt.Sprintf("Hi %s! You've successfully applied for %s. We'll notify you about the status soon!", applicantName, scholarshipName)
}
