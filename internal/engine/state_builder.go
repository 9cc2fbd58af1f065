package engine

import (
	"fmt"
	"time"

	"corsair-server/internal/domain"
	"corsair-server/internal/systems"
	"corsair-server/pkg/api"
)

// BuildFrameFor собирает персональный кадр для наблюдателя: профиль
// обзора берется из часов, туман - из погоды, гало - из состояния фонаря.
func (g *Game) BuildFrameFor(observer *domain.Entity, cfg VisionConfig) *api.ServerResponse {
	profile := g.Clock.VisionProfile(cfg.FOVHeight, cfg.FOVWidth, g.LightActive)
	noFog := systems.NoFogZone(observer.Pos, g.LightActive)

	buf := systems.ComputeVisibility(
		g.World, observer.Pos, profile,
		g.Weather.Clouds, noFog,
		cfg.FOVHeight, cfg.FOVWidth,
	)

	return &api.ServerResponse{
		Type:       "UPDATE",
		Tick:       g.Tick,
		Hour:       g.Clock.Hour(),
		MyEntityID: observer.ID,
		Frame:      toFrameView(buf),
	}
}

// toFrameView конвертирует буфер сканера в DTO кадра.
func toFrameView(buf *systems.RenderBuffer) *api.FrameView {
	frame := &api.FrameView{
		Height: buf.Height,
		Width:  buf.Width,
		Cells:  make([]api.CellView, len(buf.Cells)),
	}
	for i, c := range buf.Cells {
		frame.Cells[i] = api.CellView{
			Symbol:  c.Symbol,
			Color:   c.Color,
			Visible: c.Visible,
		}
	}
	return frame
}

// newLogEntry оборачивает текст в DTO записи лога.
func newLogEntry(text, logType string) api.LogEntry {
	return api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	}
}
