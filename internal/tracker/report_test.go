package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	report := NewSwimming(720, 1, 80, 25, 40).Summarize()

	assert.Equal(t, "Swimming", report.Kind)
	assert.Equal(t, 1.0, report.Duration)
	assert.InDelta(t, 1.000, report.Distance, 0.0005)
	assert.InDelta(t, 1.000, report.Speed, 0.0005)
	assert.InDelta(t, 336.000, report.Calories, 0.0005)
}

func TestReportMessage(t *testing.T) {
	cases := []struct {
		name    string
		reading Reading
		want    string
	}{
		{
			name:    "swimming",
			reading: NewSwimming(720, 1, 80, 25, 40),
			want:    "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 1.000 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name:    "running",
			reading: NewRunning(15000, 1, 75),
			want:    "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			name:    "walking",
			reading: NewWalking(9000, 1, 75, 180),
			want:    "Тип тренировки: Walking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := tc.reading.Summarize()
			assert.Equal(t, tc.want, report.Message())
			assert.Equal(t, tc.want, report.String())
		})
	}
}
