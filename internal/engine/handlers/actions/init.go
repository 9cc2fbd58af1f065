package actions

import (
	"corsair-server/internal/engine/handlers"
)

// HandleInit не тратит ход: клиент просто просит первый кадр.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Welcome ashore, corsair.", MsgType: "INFO"}, nil
}
