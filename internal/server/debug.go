package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"corsair-server/internal/domain"
	"corsair-server/internal/engine"
	"corsair-server/internal/systems"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorldSummary)
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/weather", h.handleWeather)
	mux.HandleFunc("/debug/route", h.handleRoute)
}

// /debug/world - сводка по миру
func (h *DebugHandler) handleWorldSummary(w http.ResponseWriter, r *http.Request) {
	g := h.Service.Game

	type WorldSummary struct {
		Width        int  `json:"width"`
		Height       int  `json:"height"`
		EntityCount  int  `json:"entity_count"`
		ShipCount    int  `json:"ship_count"`
		Tick         int  `json:"tick"`
		Hour         int  `json:"hour"`
		Daylight     bool `json:"daylight"`
		Subscribers  int  `json:"subscribers"`
		PlayerOnline bool `json:"player_online"`
	}

	writeJSON(w, WorldSummary{
		Width:        g.World.Width,
		Height:       g.World.Height,
		EntityCount:  len(g.World.EntityRegistry),
		ShipCount:    len(g.World.Ships),
		Tick:         g.Tick,
		Hour:         g.Clock.Hour(),
		Daylight:     g.Clock.IsDaylight(),
		Subscribers:  h.Service.Hub.SubscriberCount(),
		PlayerOnline: h.Service.Hub.HasSubscriber(g.Player.ID),
	})
}

// /debug/entities - дамп всех сущностей (включая скрытые предметы)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Game.World.EntityRegistry)
}

// /debug/weather - очаги и количество туманных клеток
func (h *DebugHandler) handleWeather(w http.ResponseWriter, r *http.Request) {
	g := h.Service.Game

	type WeatherSummary struct {
		SystemCount int `json:"system_count"`
		CloudCells  int `json:"cloud_cells"`
	}

	writeJSON(w, WeatherSummary{
		SystemCount: len(g.Weather.Systems),
		CloudCells:  len(g.Weather.Clouds),
	})
}

// /debug/route?fromX=..&fromY=..&toX=..&toY=.. - прогон роутера между
// двумя клетками. Проходимость всеядная: эндпоинт отвечает на вопрос
// "соединены ли клетки вообще", а не "дойдет ли туда конкретный зверь".
func (h *DebugHandler) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, err := queryPos(r, "fromX", "fromY")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := queryPos(r, "toX", "toY")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := h.Service.Game
	path := systems.FindPath(g.World, g.World, from, to, domain.AllPassable())

	type RouteSummary struct {
		Reachable bool              `json:"reachable"`
		Steps     int               `json:"steps"`
		Path      []domain.Position `json:"path,omitempty"`
	}

	steps := 0
	if len(path) > 1 {
		steps = len(path) - 1
	}
	writeJSON(w, RouteSummary{
		Reachable: len(path) > 0,
		Steps:     steps,
		Path:      path,
	})
}

func queryPos(r *http.Request, xKey, yKey string) (domain.Position, error) {
	x, err := strconv.Atoi(r.URL.Query().Get(xKey))
	if err != nil {
		return domain.Position{}, err
	}
	y, err := strconv.Atoi(r.URL.Query().Get(yKey))
	if err != nil {
		return domain.Position{}, err
	}
	return domain.Position{X: x, Y: y}, nil
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
