package assist

import (
	"fmt"
	"math"
)

// SegmentKind defines the semantic kind of a mission segment.
type SegmentKind uint8

const (
	// Warmup is engine start and runup, at constant fuel flow.
	Warmup SegmentKind = iota + 1
	// Taxi is ground movement to the runway.
	Taxi
	// Takeoff is the ground roll, rotation and obstacle clearance.
	Takeoff
	// Climb is a climb at a required rate.
	Climb
	// Cruise is a range leg at best throttle.
	Cruise
	// Dash is a range leg at maximum speed, with afterburner if available.
	Dash
	// Loiter is an endurance leg, possibly with a sustained turn requirement.
	Loiter
	// Descend is an idle descent.
	Descend
	// Land is the approach and ground roll.
	Land
)

func (k SegmentKind) String() string {
	switch k {
	case Warmup:
		return "warmup"
	case Taxi:
		return "taxi"
	case Takeoff:
		return "takeoff"
	case Climb:
		return "climb"
	case Cruise:
		return "cruise"
	case Dash:
		return "dash"
	case Loiter:
		return "loiter"
	case Descend:
		return "descend"
	case Land:
		return "land"
	}
	panic("cannot stringify unknown segment kind")
}

// SegmentKindFromString returns the segment kind from its name.
func SegmentKindFromString(name string) (SegmentKind, error) {
	for _, k := range []SegmentKind{Warmup, Taxi, Takeoff, Climb, Cruise, Dash, Loiter, Descend, Land} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown segment kind `%s`", name)
}

// Historical weight fractions for segments whose fuel burn is not computed
// from the engine model. Raymer, 1999 (pp. 150).
var segmentWeightFractions = map[SegmentKind]float64{
	Takeoff: 0.98,
	Climb:   0.95,
	Descend: 0.98,
	Land:    0.99,
}

// Segment is one phase of a mission. Only the fields required by the kind
// need to be set; NewMission validates them.
type Segment struct {
	Kind     SegmentKind
	Altitude float64 // ft
	Speed    float64 // knots

	Duration    float64 // s, for warmup, taxi and loiter
	Range       float64 // nmi, for cruise and dash
	FieldLength float64 // ft, for takeoff and land
	Temperature float64 // °F hot day override for takeoff and land, 0 for standard
	ClimbRate   float64 // ft/s, for climb

	TurnRate     float64 // rad/s sustained turn requirement
	TurnRadius   float64 // ft sustained turn requirement
	Acceleration float64 // ft/s^2 specific excess power requirement

	// Releases names the expendable payloads dropped at the end of this
	// segment. Each payload is released exactly once over the mission.
	Releases []string

	// WeightFractionOverride forces the segment weight fraction, 0 to use
	// the model.
	WeightFractionOverride float64
}

// Validate checks that the parameters required by the segment kind are set.
func (s Segment) Validate() error {
	switch s.Kind {
	case Warmup, Taxi:
		if s.Duration <= 0 {
			return MissingParameterError{s.Kind, "duration"}
		}
	case Loiter:
		if s.Duration <= 0 {
			return MissingParameterError{s.Kind, "duration"}
		}
		if s.Speed <= 0 {
			return MissingParameterError{s.Kind, "speed"}
		}
	case Takeoff, Land:
		if s.FieldLength <= 0 {
			return MissingParameterError{s.Kind, "field_length"}
		}
	case Cruise, Dash:
		if s.Range <= 0 {
			return MissingParameterError{s.Kind, "range"}
		}
		if s.Speed <= 0 {
			return MissingParameterError{s.Kind, "speed"}
		}
	case Climb:
		if s.ClimbRate <= 0 {
			return MissingParameterError{s.Kind, "climb_rate"}
		}
		if s.Speed <= 0 {
			return MissingParameterError{s.Kind, "speed"}
		}
	case Descend:
		// No required parameters.
	default:
		return fmt.Errorf("unknown segment kind %d", s.Kind)
	}
	return nil
}

// constrains returns whether this segment imposes a curve on the sizing
// carpet.
func (s Segment) constrains() bool {
	switch s.Kind {
	case Takeoff, Land, Climb, Cruise, Dash, Loiter:
		return true
	}
	return false
}

// afterburning returns whether the segment is flown with afterburner.
func (s Segment) afterburning() bool {
	return s.Kind == Dash
}

// atmosphere returns the atmosphere for this segment, with the hot day
// correction applied when a temperature is specified.
func (s Segment) atmosphere(std Atmosphere) Atmosphere {
	if s.Temperature != 0 {
		return NewHotDayAtmosphere(s.Temperature)
	}
	return std
}

// loadFactor returns the sustained turn load factor required by the segment.
func (s Segment) loadFactor() float64 {
	n := 1.0
	speed := s.Speed * KnotsToFps
	if s.TurnRate > 0 {
		omega := s.TurnRate * speed / G0
		if cand := math.Sqrt(1 + omega*omega); cand > n {
			n = cand
		}
	}
	if s.TurnRadius > 0 {
		cf := speed * speed / (s.TurnRadius * G0)
		if cand := math.Sqrt(1 + cf*cf); cand > n {
			n = cand
		}
	}
	return n
}

func (s Segment) String() string {
	switch s.Kind {
	case Warmup, Taxi, Loiter:
		return fmt.Sprintf("%s for %.0f s", s.Kind, s.Duration)
	case Takeoff, Land:
		return fmt.Sprintf("%s on %.0f ft", s.Kind, s.FieldLength)
	case Cruise, Dash:
		return fmt.Sprintf("%s %.0f nmi at %.0f ft", s.Kind, s.Range, s.Altitude)
	}
	return s.Kind.String()
}

// NewWarmup returns a warmup segment.
func NewWarmup(duration, altitude float64) Segment {
	return Segment{Kind: Warmup, Duration: duration, Altitude: altitude}
}

// NewTaxi returns a taxi segment.
func NewTaxi(duration float64) Segment {
	return Segment{Kind: Taxi, Duration: duration}
}

// NewTakeoff returns a takeoff segment constrained by the given field length.
func NewTakeoff(fieldLength, altitude float64) Segment {
	return Segment{Kind: Takeoff, FieldLength: fieldLength, Altitude: altitude}
}

// NewClimb returns a climb segment at a required rate of climb (ft/s).
func NewClimb(climbRate, speed, altitude float64) Segment {
	return Segment{Kind: Climb, ClimbRate: climbRate, Speed: speed, Altitude: altitude}
}

// NewCruise returns a cruise segment covering a range (nmi) at speed (knots).
func NewCruise(rangeNmi, speed, altitude float64) Segment {
	return Segment{Kind: Cruise, Range: rangeNmi, Speed: speed, Altitude: altitude}
}

// NewDash returns a dash segment covering a range (nmi) at speed (knots).
func NewDash(rangeNmi, speed, altitude float64) Segment {
	return Segment{Kind: Dash, Range: rangeNmi, Speed: speed, Altitude: altitude}
}

// NewLoiter returns a loiter segment of the given endurance (s).
func NewLoiter(duration, speed, altitude float64) Segment {
	return Segment{Kind: Loiter, Duration: duration, Speed: speed, Altitude: altitude}
}

// NewDescend returns a descent segment.
func NewDescend(altitude float64) Segment {
	return Segment{Kind: Descend, Altitude: altitude}
}

// NewLanding returns a landing segment constrained by the given field length,
// flown at the given approach speed (knots).
func NewLanding(fieldLength, speed, altitude float64) Segment {
	return Segment{Kind: Land, FieldLength: fieldLength, Speed: speed, Altitude: altitude}
}

// Mission is an ordered, immutable sequence of segments. Order is
// significant: the sizing engine walks segments in listed order for the
// sequential fuel and weight accounting.
type Mission struct {
	segments []Segment
}

// NewMission validates every segment and returns the mission.
func NewMission(segments ...Segment) (Mission, error) {
	if len(segments) == 0 {
		return Mission{}, fmt.Errorf("a mission requires at least one segment")
	}
	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return Mission{}, fmt.Errorf("segment #%d: %w", i, err)
		}
	}
	owned := make([]Segment, len(segments))
	copy(owned, segments)
	return Mission{segments: owned}, nil
}

// Segments returns a copy of the ordered segments.
func (m Mission) Segments() []Segment {
	out := make([]Segment, len(m.segments))
	copy(out, m.segments)
	return out
}

// Len returns the number of segments.
func (m Mission) Len() int {
	return len(m.segments)
}

func (m Mission) String() string {
	return fmt.Sprintf("Mission (%d segments)", len(m.segments))
}
