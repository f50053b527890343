package utils

import "math"

// MicrosPerUnit é a representação de ponto fixo usada pela API do Google Ads:
// um milionésimo da unidade monetária principal.
const MicrosPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToMicros converte um valor na unidade monetária principal para micros.
func ToMicros(amount float64) int64 {
	return int64(math.Round(amount * MicrosPerUnit))
}

// FromMicros converte micros para a unidade monetária principal.
func FromMicros(micros int64) float64 {
	return float64(micros) / MicrosPerUnit
}
