package interfaces

import "context"

// INotificationDispatcher delivers a client-facing message to a phone
// contact. Implementations normalize the number to E.164 (local leading-zero
// numbers are rewritten to the international prefix) before delivery.
// Dispatch is fire-and-forget: delivery failures must not roll back the
// action that triggered them.
type INotificationDispatcher interface {
	Send(ctx context.Context, phone, message string) error
}
