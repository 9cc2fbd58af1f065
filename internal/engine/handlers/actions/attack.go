package actions

import (
	"fmt"

	"corsair-server/internal/engine/handlers"
	"corsair-server/pkg/api"
)

// HandleAttack фиксирует решение об атаке смежной цели. Разрешение боя
// (урон, промахи) движок не моделирует - только само намерение.
func HandleAttack(ctx handlers.Context, p api.EntityPayload) (handlers.Result, error) {
	target := ctx.World.GetEntity(p.TargetID)
	if target == nil || target.Stats == nil || target.Stats.IsDead {
		return handlers.Result{Msg: "There is nothing to attack.", MsgType: "ERROR"}, nil
	}

	if !ctx.Actor.Pos.IsAdjacent(target.Pos) {
		return handlers.Result{Msg: "Too far away.", MsgType: "ERROR"}, nil
	}

	msg := fmt.Sprintf("%s attacks %s!", ctx.Actor.Name, target.Name)
	return handlers.Result{Msg: msg, MsgType: "COMBAT", TurnSpent: true}, nil
}
