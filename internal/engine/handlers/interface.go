package handlers

import (
	"encoding/json"

	"corsair-server/internal/domain"
)

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние.
type Context struct {
	World *domain.GameWorld
	Actor *domain.Entity // Тот, кто выполняет команду (Игрок или NPC)
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)

	// TurnSpent - потратило ли действие ход. Неудачный шаг в стену
	// хода не тратит, мир не двигается.
	TurnSpent bool
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
