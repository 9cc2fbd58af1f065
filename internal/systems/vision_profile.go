package systems

import (
	"corsair-server/internal/domain"
	"corsair-server/pkg/utils"
)

// RadiusProfile - профиль радиуса зрения: заранее посчитанный набор
// граничных смещений относительно наблюдателя. По одному лучу на точку
// границы ("перекрестное лучевое сканирование по периметру").
// Днем это весь периметр окна, ночью - сжимающиеся кольца.
type RadiusProfile []domain.Position

// FullWindowProfile возвращает периметр видового окна height x width
// с наблюдателем в центре. Дневное зрение.
func FullWindowProfile(height, width int) RadiusProfile {
	centerY := height / 2
	centerX := width / 2

	profile := make(RadiusProfile, 0, 2*width+2*height)

	// Верхняя и нижняя кромки
	for col := 0; col < width; col++ {
		profile = append(profile,
			domain.Position{X: col - centerX, Y: -centerY},
			domain.Position{X: col - centerX, Y: height - 1 - centerY},
		)
	}
	// Левая и правая кромки
	for row := 0; row < height; row++ {
		profile = append(profile,
			domain.Position{X: -centerX, Y: row - centerY},
			domain.Position{X: width - 1 - centerX, Y: row - centerY},
		)
	}

	return profile
}

// RingProfile возвращает растеризованную окружность радиуса radius
// вокруг наблюдателя. Сумеречное и ночное зрение; активный источник
// света расширяет кольцо (радиус подбирает часовой механизм).
func RingProfile(radius int) RadiusProfile {
	pts := utils.BresenhamCircle(0, 0, radius)
	profile := make(RadiusProfile, 0, len(pts))
	for _, pt := range pts {
		profile = append(profile, domain.Position{X: pt[0], Y: pt[1]})
	}
	return profile
}

// Clamp обрезает профиль под видовое окно: смещения за его пределами
// бессмысленны (буфер все равно их не вместит).
func (p RadiusProfile) Clamp(height, width int) RadiusProfile {
	centerY := height / 2
	centerX := width / 2

	clamped := make(RadiusProfile, 0, len(p))
	for _, off := range p {
		o := off
		if o.X < -centerX {
			o.X = -centerX
		}
		if o.X > width-1-centerX {
			o.X = width - 1 - centerX
		}
		if o.Y < -centerY {
			o.Y = -centerY
		}
		if o.Y > height-1-centerY {
			o.Y = height - 1 - centerY
		}
		clamped = append(clamped, o)
	}
	return clamped
}
