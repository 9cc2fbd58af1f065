package engine

import (
	"corsair-server/internal/domain"
	"corsair-server/internal/engine/handlers"
	"corsair-server/internal/engine/handlers/actions"
	"corsair-server/internal/network"
	"corsair-server/pkg/api"
	"corsair-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameService - обвязка партии: принимает команды из транспорта,
// диспетчеризует их хендлерам, двигает мир и рассылает кадры.
type GameService struct {
	Cfg  Config
	Game *Game

	Hub         *network.Broadcaster
	CommandChan chan domain.InternalCommand

	Logs []api.LogEntry

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) (*GameService, error) {
	game, err := NewGame(cfg, "player_1")
	if err != nil {
		return nil, err
	}

	s := &GameService{
		Cfg:         cfg,
		Game:        game,
		Hub:         network.NewBroadcaster(),
		CommandChan: make(chan domain.InternalCommand, 100),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionAttack] = handlers.WithPayload(actions.HandleAttack)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	select {
	case s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
	default:
		logger.Log.Warn("Command queue full, dropping command")
	}
}

// --- GAME LOOP ---

// RunGameLoop обрабатывает команды последовательно: мир пошаговый,
// одна горутина владеет всем состоянием, мьютексы не нужны.
func (s *GameService) RunGameLoop() {
	logger.Log.Info("Game loop started")

	for cmd := range s.CommandChan {
		s.executeCommand(cmd)
	}
}

// ExecuteSync выполняет команду в обход канала. Только для тестов и
// однопоточных сценариев.
func (s *GameService) ExecuteSync(cmd domain.InternalCommand) {
	s.executeCommand(cmd)
}

func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		World: s.Game.World,
		Actor: s.Game.Player,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"action": cmd.Action.String(),
			"token":  cmd.Token,
		}).Warn("Command rejected")
		// Отказ - личное дело отправителя: зрители этот кадр не получают
		s.publishRejection(cmd.Token)
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}

	// Мир двигается только если действие потратило ход
	if result.TurnSpent {
		s.Game.Step()
		for _, text := range s.Game.DrainLogs() {
			s.AddLog(text, "COMBAT")
		}
	}

	s.publishUpdate()
}

// publishUpdate собирает кадр игрока и рассылает его подписчикам.
// Подписчиков немного (игрок + зрители), все получают один кадр.
func (s *GameService) publishUpdate() {
	state := s.Game.BuildFrameFor(s.Game.Player, s.Cfg.Vision)

	state.Logs = make([]api.LogEntry, len(s.Logs))
	copy(state.Logs, s.Logs)
	s.Logs = nil

	s.Hub.Broadcast(*state)
}

// publishRejection отправляет кадр с пометкой об отказе только тому
// клиенту, чья команда не прошла. Общий лог сервиса не трогается.
func (s *GameService) publishRejection(token string) {
	state := s.Game.BuildFrameFor(s.Game.Player, s.Cfg.Vision)
	state.Logs = []api.LogEntry{newLogEntry("Nothing happens.", "ERROR")}
	s.Hub.SendTo(token, *state)
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, newLogEntry(text, logType))
}
