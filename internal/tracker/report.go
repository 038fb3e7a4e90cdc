// internal/tracker/report.go
package tracker

import "fmt"

// Report is the derived-metrics summary for one reading.
type Report struct {
	Kind     string  `json:"kind"`
	Duration float64 `json:"duration_hours"`
	Distance float64 `json:"distance_km"`
	Speed    float64 `json:"mean_speed_kmh"`
	Calories float64 `json:"calories"`
}

// Message renders the fixed-template summary line.
func (r Report) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		r.Kind, r.Duration, r.Distance, r.Speed, r.Calories)
}

func (r Report) String() string {
	return r.Message()
}
