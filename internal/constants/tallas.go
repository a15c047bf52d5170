package constants

// Tallas es la enumeración cerrada de tallas del taller (cinturas pares).
// Ningún corte puede declarar cupos fuera de esta lista.
var Tallas = []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38, 40, 42, 44}

// TallaGrandeDesde separa la tarifa chica (niños) de la grande (adulto).
// 27 cobra precio chico, 28 ya cobra precio grande.
const TallaGrandeDesde = 28

var tallasValidas = map[int]bool{}

func init() {
	for _, t := range Tallas {
		tallasValidas[t] = true
	}
}

func TallaValida(talla int) bool {
	return tallasValidas[talla]
}
