package actions

import (
	"fmt"

	"corsair-server/internal/domain"
	"corsair-server/internal/engine/handlers"
	"corsair-server/internal/systems"
	"corsair-server/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	if ctx.Actor.AI == nil {
		return handlers.EmptyResult(), nil
	}

	res := systems.CalculateMove(ctx.Actor, p.Dx, p.Dy, ctx.World, ctx.Actor.AI.Passable)

	if res.BlockedBy != nil {
		actorHostile := ctx.Actor.AI.IsHostile
		targetHostile := false
		if res.BlockedBy.AI != nil {
			targetHostile = res.BlockedBy.AI.IsHostile
		}

		// Шаг во врага - это заявка на атаку. Само нанесение урона
		// лежит за пределами движка, мы только фиксируем решение.
		if actorHostile != targetHostile {
			msg := fmt.Sprintf("%s lunges at %s!", ctx.Actor.Name, res.BlockedBy.Name)
			return handlers.Result{Msg: msg, MsgType: "COMBAT", TurnSpent: true}, nil
		}

		return handlers.Result{Msg: "Someone is in the way.", MsgType: "ERROR"}, nil
	}

	if res.HasMoved {
		if err := ctx.World.UpdateEntityPos(ctx.Actor, res.NewPos.X, res.NewPos.Y); err != nil {
			return handlers.EmptyResult(), err
		}
		return handlers.Result{TurnSpent: true}, nil
	}

	if res.IsWall && ctx.Actor.Type == domain.EntityTypePlayer {
		return handlers.Result{Msg: "The way is blocked.", MsgType: "ERROR"}, nil
	}

	return handlers.EmptyResult(), nil
}
