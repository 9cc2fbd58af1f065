package utils

// BresenhamCircle возвращает точки растеризованной окружности радиуса radius
// с центром (cx, cy) (алгоритм средней точки, 8 октантов).
// Точки на границах октантов могут повторяться - вызывающие стороны либо
// равнодушны к дублям (лучи зрения), либо складывают точки в set (погода).
func BresenhamCircle(cx, cy, radius int) [][2]int {
	if radius <= 0 {
		return [][2]int{{cx, cy}}
	}

	pts := make([][2]int, 0, radius*8)
	x := radius
	y := 0
	err := 1 - radius

	for x >= y {
		pts = append(pts,
			[2]int{cx + x, cy + y}, [2]int{cx + y, cy + x},
			[2]int{cx - y, cy + x}, [2]int{cx - x, cy + y},
			[2]int{cx - x, cy - y}, [2]int{cx - y, cy - x},
			[2]int{cx + y, cy - x}, [2]int{cx + x, cy - y},
		)

		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}

	return pts
}
