package initializer

import (
	"riddle-service/internal/api/ws/hub"
)

func InitWebsocket() *hub.Hub {
	return hub.NewHub()
}
