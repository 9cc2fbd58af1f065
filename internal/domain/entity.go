package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (S-акула, b-кабан)
	Color  string `json:"color"`
}

// StatsComponent - Характеристики и Ресурсы.
// Сущность блокирует клетку, только если у нее есть Stats и она жива.
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	IsDead bool `json:"isDead"`
}

// AIComponent - Поведение. Каждый вид существа приносит СВОЙ набор
// проходимости: роутер ничего не знает о видах, он получает набор в запросе.
type AIComponent struct {
	IsHostile bool `json:"isHostile"`

	// PursuitRange - дальше этого (по Манхэттену) существо игнорирует цель.
	PursuitRange int `json:"pursuitRange"`

	// Passable - где это существо умеет ходить/плавать.
	Passable PassabilitySet `json:"-"`
}

// --- СУЩНОСТЬ ---

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	rand.Read(b)
	return hex.EncodeToString(b)
}

type Entity struct {
	// Идентификация
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`

	Pos Position `json:"pos"`

	// Hidden - для предметов: спрятанный предмет не отрисовывается
	// (закопанный клад), разрешение тайла проваливается до террейна.
	Hidden bool `json:"hidden,omitempty"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Render *RenderComponent `json:"render,omitempty"`
	Stats  *StatsComponent  `json:"stats,omitempty"`
	AI     *AIComponent     `json:"ai,omitempty"`
}

// Blocks возвращает true, если сущность занимает клетку для движения.
// Предметы (Stats == nil) и трупы проходимы.
func (e *Entity) Blocks() bool {
	return e.Stats != nil && !e.Stats.IsDead
}
