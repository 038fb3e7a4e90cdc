// internal/packet/packet.go
package packet

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sstent/fittrack-go/internal/tracker"
)

// Workout type codes as sent by the sensor hub.
const (
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
	CodeSwimming = "SWM"
)

var (
	ErrUnknownWorkoutKind = errors.New("unknown workout kind")
	ErrArityMismatch      = errors.New("wrong number of sensor values")
	ErrInvalidFieldType   = errors.New("sensor value is not numeric")
	ErrInvalidDuration    = errors.New("duration must be positive")
)

// Packet is one raw packet from the sensor hub: a workout type code and
// an ordered list of raw values. Values are kept loosely typed so that
// malformed input is rejected by Decode, not silently coerced.
type Packet struct {
	Type string `json:"workout_type"`
	Data []any  `json:"data"`
}

func (p Packet) Decode() (tracker.Reading, error) {
	return Decode(p.Type, p.Data)
}

// arity is the required value count per workout code:
// RUN [action duration weight], WLK adds height, SWM replaces step data
// with pool length and lap count.
var arity = map[string]int{
	CodeRunning:  3,
	CodeWalking:  4,
	CodeSwimming: 5,
}

// Decode validates a raw packet and constructs the matching reading.
func Decode(workoutType string, data []any) (tracker.Reading, error) {
	need, ok := arity[workoutType]
	if !ok {
		return tracker.Reading{}, fmt.Errorf("%w: %q", ErrUnknownWorkoutKind, workoutType)
	}
	if len(data) != need {
		return tracker.Reading{}, fmt.Errorf("%w: %s wants %d values, got %d",
			ErrArityMismatch, workoutType, need, len(data))
	}

	vals := make([]float64, len(data))
	for i, raw := range data {
		v, err := toFloat(raw)
		if err != nil {
			return tracker.Reading{}, fmt.Errorf("%s value %d: %w", workoutType, i, err)
		}
		vals[i] = v
	}

	// Every variant carries duration as the second value.
	if vals[1] <= 0 {
		return tracker.Reading{}, fmt.Errorf("%w: got %v h", ErrInvalidDuration, vals[1])
	}

	switch workoutType {
	case CodeWalking:
		return tracker.NewWalking(int(vals[0]), vals[1], vals[2], vals[3]), nil
	case CodeSwimming:
		return tracker.NewSwimming(int(vals[0]), vals[1], vals[2], vals[3], int(vals[4])), nil
	default:
		return tracker.NewRunning(int(vals[0]), vals[1], vals[2]), nil
	}
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFieldType, v.String())
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v (%T)", ErrInvalidFieldType, raw, raw)
	}
}
