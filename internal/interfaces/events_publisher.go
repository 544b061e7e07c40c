package interfaces

// EventPublisher delivers marketplace events to an external broker.
// Publication is best effort; the ledger never rolls back a committed
// transaction because an event could not be delivered.
type EventPublisher interface {
	Publish(topic string, event any) error
	Close() error
}
