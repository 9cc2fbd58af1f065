package domain

// Символы частей корабля
const (
	ShipDeckStraight = "■" // ■
	ShipDeckAngle    = "◆" // ◆
	ShipBowN         = "▲" // ▲
	ShipBowS         = "▼" // ▼
	ShipBowE         = "▶" // ▶
	ShipBowW         = "◀" // ◀
	ShipBowNE        = "◥" // ◥
	ShipBowSE        = "◢" // ◢
	ShipBowSW        = "◣" // ◣
	ShipBowNW        = "◤" // ◤
)

// Ship - трехклеточное судно: центр (палуба со штурвалом), нос и корма.
// Нос и корма выводятся из курса (Bearing, 16 румбов), поэтому после
// каждого поворота или сдвига нужно звать UpdateFootprint.
type Ship struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Pos      Position `json:"pos"`
	BowPos   Position `json:"bowPos"`
	AftPos   Position `json:"aftPos"`
	Bearing  int      `json:"bearing"` // 0..15, 0 = север, по часовой
	Anchored bool     `json:"anchored"`

	BowSymbol  string `json:"bowSymbol"`
	AftSymbol  string `json:"aftSymbol"`
	DeckSymbol string `json:"deckSymbol"`
}

func NewShip(name string) *Ship {
	s := &Ship{
		ID:       GenerateID(),
		Name:     name,
		Anchored: true,
	}
	s.UpdateFootprint()
	return s
}

// UpdateFootprint пересчитывает клетки носа/кормы и их символы из курса.
// Таблица смещений: 16 румбов схлопываются в 8 направлений.
func (s *Ship) UpdateFootprint() {
	var bowSym, aftSym, deckSym string
	var bowDX, bowDY int

	switch {
	case s.Bearing == 0 || s.Bearing == 1 || s.Bearing == 15:
		bowSym, bowDX, bowDY = ShipBowN, 0, -1
		aftSym, deckSym = ShipDeckStraight, ShipDeckStraight
	case s.Bearing == 2:
		bowSym, bowDX, bowDY = ShipBowNE, 1, -1
		aftSym, deckSym = ShipDeckAngle, ShipDeckAngle
	case s.Bearing >= 3 && s.Bearing <= 5:
		bowSym, bowDX, bowDY = ShipBowE, 1, 0
		aftSym, deckSym = ShipDeckStraight, ShipDeckStraight
	case s.Bearing == 6:
		bowSym, bowDX, bowDY = ShipBowSE, 1, 1
		aftSym, deckSym = ShipDeckAngle, ShipDeckAngle
	case s.Bearing >= 7 && s.Bearing <= 9:
		bowSym, bowDX, bowDY = ShipBowS, 0, 1
		aftSym, deckSym = ShipDeckStraight, ShipDeckStraight
	case s.Bearing == 10:
		bowSym, bowDX, bowDY = ShipBowSW, -1, 1
		aftSym, deckSym = ShipDeckAngle, ShipDeckAngle
	case s.Bearing >= 11 && s.Bearing <= 13:
		bowSym, bowDX, bowDY = ShipBowW, -1, 0
		aftSym, deckSym = ShipDeckStraight, ShipDeckStraight
	default: // 14
		bowSym, bowDX, bowDY = ShipBowNW, -1, -1
		aftSym, deckSym = ShipDeckAngle, ShipDeckAngle
	}

	// Корма всегда зеркальна носу относительно центра
	s.BowSymbol = bowSym
	s.AftSymbol = aftSym
	s.DeckSymbol = deckSym
	s.BowPos = Position{X: s.Pos.X + bowDX, Y: s.Pos.Y + bowDY}
	s.AftPos = Position{X: s.Pos.X - bowDX, Y: s.Pos.Y - bowDY}
}

// Footprint возвращает три клетки, занятые судном: центр, нос, корма.
func (s *Ship) Footprint() [3]Position {
	return [3]Position{s.Pos, s.BowPos, s.AftPos}
}

// Covers проверяет, накрывает ли судно данную клетку.
func (s *Ship) Covers(p Position) bool {
	return p == s.Pos || p == s.BowPos || p == s.AftPos
}
