package service

import "errors"

var (
	// ErrUnknownQueueEntity is returned when a queue entry carries an entity
	// tag the replay dispatcher does not recognise. The entry is left queued;
	// a newer build of the application may understand it.
	ErrUnknownQueueEntity = errors.New("unknown queue entity")

	// ErrUnknownQueueOperation is returned when a queue entry carries an
	// operation tag outside create/update/delete.
	ErrUnknownQueueOperation = errors.New("unknown queue operation")
)
