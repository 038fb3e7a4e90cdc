// internal/tracker/training.go
package tracker

// Shared conversion constants for all workout kinds.
const (
	metersPerKm = 1000.0
	minPerHour  = 60.0
	cmPerM      = 100.0

	stepLen     = 0.65 // meters per step or stroke (running, walking)
	swimStepLen = 1.38 // meters per stroke (swimming)

	runningSpeedMultiplier = 18.0
	runningSpeedShift      = 1.79

	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029
	kmhToMsec                    = 0.278

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2.0
)

// Kind is the workout category determining which formulas apply.
type Kind int

const (
	Running Kind = iota
	Walking
	Swimming
)

func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case Walking:
		return "Walking"
	case Swimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Reading is one raw sensor sample for a single workout session.
// Immutable once constructed; build it through the packet factory,
// which validates the raw values.
type Reading struct {
	kind     Kind
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg

	height float64 // cm, walking only

	poolLength float64 // meters, swimming only
	poolLaps   int     // swimming only
}

func NewRunning(action int, duration, weight float64) Reading {
	return Reading{kind: Running, action: action, duration: duration, weight: weight}
}

func NewWalking(action int, duration, weight, height float64) Reading {
	return Reading{kind: Walking, action: action, duration: duration, weight: weight, height: height}
}

func NewSwimming(action int, duration, weight, poolLength float64, poolLaps int) Reading {
	return Reading{kind: Swimming, action: action, duration: duration, weight: weight, poolLength: poolLength, poolLaps: poolLaps}
}

func (r Reading) Kind() Kind        { return r.kind }
func (r Reading) Duration() float64 { return r.duration }

// Distance returns the covered distance in km. Swimming distance comes
// from pool geometry, not stroke count.
func (r Reading) Distance() float64 {
	if r.kind == Swimming {
		return r.poolLength * float64(r.poolLaps) / metersPerKm
	}
	return float64(r.action) * stepLen / metersPerKm
}

// MeanSpeed returns the mean speed in km/h.
func (r Reading) MeanSpeed() float64 {
	if r.kind == Swimming {
		return r.poolLength * float64(r.poolLaps) / metersPerKm / r.duration
	}
	return r.Distance() / r.duration
}

// Calories returns the energy spent in kcal, using the per-kind formula.
func (r Reading) Calories() float64 {
	switch r.kind {
	case Walking:
		speedMsec := r.MeanSpeed() * kmhToMsec
		return (walkingWeightMultiplier*r.weight +
			speedMsec*speedMsec/(r.height/cmPerM)*walkingSpeedHeightMultiplier*r.weight) *
			r.duration * minPerHour
	case Swimming:
		return (r.MeanSpeed() + swimmingSpeedShift) * swimmingWeightMultiplier * r.weight * r.duration
	default: // Running
		return (runningSpeedMultiplier*r.MeanSpeed() + runningSpeedShift) *
			r.weight / metersPerKm * r.duration * minPerHour
	}
}

// Summarize derives all metrics once and returns them as a Report.
func (r Reading) Summarize() Report {
	return Report{
		Kind:     r.kind.String(),
		Duration: r.duration,
		Distance: r.Distance(),
		Speed:    r.MeanSpeed(),
		Calories: r.Calories(),
	}
}
