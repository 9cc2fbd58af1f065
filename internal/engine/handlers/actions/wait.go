package actions

import (
	"corsair-server/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{TurnSpent: true}, nil
}
