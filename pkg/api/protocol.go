package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Это полный "снимок" видимого окна для конкретного наблюдателя: клиент
// получает готовый к отрисовке кадр, а не сырое состояние мира.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick текущий ход мира. Увеличивается после каждого действия игрока.
	Tick int `json:"tick"`

	// Hour игровой час (0-23). Клиент может подкрашивать интерфейс под
	// время суток, сервер уже учел его при расчете видимости.
	Hour int `json:"hour"`

	// MyEntityID ID сущности, которой управляет данный клиент.
	MyEntityID string `json:"myEntityId,omitempty"`

	// Frame готовый кадр видимости вокруг наблюдателя.
	Frame *FrameView `json:"frame,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого хода.
	Logs []LogEntry `json:"logs,omitempty"`
}

// FrameView это DTO кадра: прямоугольное окно, центрированное на
// наблюдателе. Cells хранится построчно (row-major), длина Height*Width.
type FrameView struct {
	Height int        `json:"h"`
	Width  int        `json:"w"`
	Cells  []CellView `json:"cells"`
}

// CellView это DTO одной клетки кадра. Сервер уже разрешил приоритеты
// отображения (существо, предмет, туман, террейн), клиенту остается
// только нарисовать символ.
type CellView struct {
	Symbol  string `json:"s,omitempty"`
	Color   string `json:"c,omitempty"`
	Visible bool   `json:"v"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сущности, от имени которой выполняется действие.
	// Обязателен только для первого сообщения (LOGIN/INIT).
	Token string `json:"token,omitempty"`

	// Action название действия. Его структура задается Payload.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для действий, связанных с направлением (MOVE).
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// EntityPayload используется для действий, нацеленных на другую сущность (ATTACK).
type EntityPayload struct {
	TargetID string `json:"targetId"`
}
