package domain

import "encoding/json"

// InternalCommand - команда после валидации транспортного слоя:
// строковый Action уже распознан в ActionType.
type InternalCommand struct {
	Action  ActionType
	Token   string // ID сущности, выполняющей действие
	Payload json.RawMessage
}
