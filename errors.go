package assist

import "fmt"

// InvalidConfigurationError is returned when a component is constructed with
// parameters outside their physically valid bounds.
type InvalidConfigurationError struct {
	Param  string
	Value  float64
	Min    float64
	Max    float64
	Units  string
	Reason string
}

func (e InvalidConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
	}
	return fmt.Sprintf("value for `%s` [%g (%s)] outside of bounds [%g, %g]", e.Param, e.Value, e.Units, e.Min, e.Max)
}

// MissingParameterError is returned when a mission segment lacks a parameter
// required by its kind.
type MissingParameterError struct {
	Kind  SegmentKind
	Param string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("%s segment requires `%s`", e.Kind, e.Param)
}

// OutOfRangeError is returned when the atmosphere is queried outside of the
// modeled envelope.
type OutOfRangeError struct {
	Altitude float64
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("altitude of %.1f ft is outside of the modeled atmosphere [%.0f, %.0f]", e.Altitude, minAltitude, maxAltitude)
}

// InfeasibleMissionError is returned when no design point closes for the
// requested mission, or when the mission fuel fraction falls outside of (0,1).
type InfeasibleMissionError struct {
	Reason string
}

func (e InfeasibleMissionError) Error() string {
	return "infeasible mission: " + e.Reason
}

// ConvergenceError is returned when an iterative sizing loop exceeds its
// iteration cap without meeting its tolerance.
type ConvergenceError struct {
	Op         string
	Iterations int
	Residual   float64
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (residual %g)", e.Op, e.Iterations, e.Residual)
}

// NotYetComputedError is returned when a derived quantity is read before the
// transition which produces it has run.
type NotYetComputedError struct {
	Field    string
	Requires string
}

func (e NotYetComputedError) Error() string {
	return fmt.Sprintf("`%s` not yet computed: call %s first", e.Field, e.Requires)
}
