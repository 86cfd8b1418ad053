package handlers

import (
	"horatime-api/internal/config"
	"horatime-api/internal/queue"
	"horatime-api/internal/timezone"

	"go.uber.org/zap"
)

type Handler struct {
	Logger   *zap.Logger
	Config   config.Config
	Timezone *timezone.Service
	Events   *queue.LookupEvents
}
