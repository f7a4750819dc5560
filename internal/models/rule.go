package models

// TierRule asocia un mínimo de visitas dentro de una ventana de días
// con una categoría de fidelización.
type TierRule struct {
	Level      TierLevel `json:"level"`
	MinVisits  int       `json:"min_visits"`
	WindowDays int       `json:"window_days"`
}

// RuleSet es la configuración activa: una regla por categoría clasificable.
type RuleSet struct {
	Regular  TierRule `json:"regular"`
	VIP      TierRule `json:"vip"`
	SuperVIP TierRule `json:"super_vip"`
}

// Desc devuelve las reglas de la más estricta a la más laxa,
// que es el orden de evaluación de la estrategia.
func (rs RuleSet) Desc() []TierRule {
	return []TierRule{rs.SuperVIP, rs.VIP, rs.Regular}
}

// MaxWindowDays es la ventana más amplia configurada; sirve como
// base del conteo de visitas usado en el ranking.
func (rs RuleSet) MaxWindowDays() int {
	max := rs.Regular.WindowDays
	if rs.VIP.WindowDays > max {
		max = rs.VIP.WindowDays
	}
	if rs.SuperVIP.WindowDays > max {
		max = rs.SuperVIP.WindowDays
	}
	return max
}
