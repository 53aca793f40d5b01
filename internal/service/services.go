package service

import (
	"github.com/ashakirov/go-fit-keeper/internal/adapter"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
	"github.com/ashakirov/go-fit-keeper/internal/store"
)

// ClientServices bundles the replay machinery for wiring in main.
type ClientServices struct {
	Replay ReplayService
	Job    ReplayJob
}

func NewClientServices(localStore store.LocalStore, remote adapter.RemoteService, logger *logger.Logger) *ClientServices {
	replaySvc := NewReplayService(localStore, remote, logger)

	return &ClientServices{
		Replay: replaySvc,
		Job:    NewReplayJob(replaySvc),
	}
}
