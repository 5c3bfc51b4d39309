package assist

import (
	"fmt"
	"math"
)

// FlapType defines the high lift devices fitted on the trailing edge.
type FlapType uint8

const (
	// FlapNone is a clean trailing edge.
	FlapNone FlapType = iota + 1
	// FlapPlain is a simple hinged flap.
	FlapPlain
	// FlapSingleSlot is a single slotted flap.
	FlapSingleSlot
	// FlapFowler is a Fowler flap (translates aft and deflects).
	FlapFowler
	// FlapDoubleSlotted is a double slotted flap.
	FlapDoubleSlotted
	// FlapTripleSlotted is a triple slotted flap.
	FlapTripleSlotted
)

func (f FlapType) String() string {
	switch f {
	case FlapNone:
		return "none"
	case FlapPlain:
		return "plain"
	case FlapSingleSlot:
		return "single_slot"
	case FlapFowler:
		return "fowler"
	case FlapDoubleSlotted:
		return "double_slotted"
	case FlapTripleSlotted:
		return "triple_slotted"
	}
	panic("cannot stringify unknown flap type")
}

// FlapTypeFromString returns the flap type from its configuration name.
func FlapTypeFromString(name string) (FlapType, error) {
	for _, f := range []FlapType{FlapNone, FlapPlain, FlapSingleSlot, FlapFowler, FlapDoubleSlotted, FlapTripleSlotted} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown flap type `%s`", name)
}

// Configuration defines the state of the high lift devices of a wing.
type Configuration uint8

const (
	// ConfigTakeoff has flaps and slats partially deployed.
	ConfigTakeoff Configuration = iota + 1
	// ConfigLanding has flaps and slats fully deployed.
	ConfigLanding
	// ConfigCruise is the clean wing.
	ConfigCruise
)

func (c Configuration) String() string {
	switch c {
	case ConfigTakeoff:
		return "takeoff"
	case ConfigLanding:
		return "landing"
	case ConfigCruise:
		return "cruise"
	}
	panic("cannot stringify unknown configuration")
}

// ConfigurationFromString returns the configuration from its name.
func ConfigurationFromString(name string) (Configuration, error) {
	for _, c := range []Configuration{ConfigTakeoff, ConfigLanding, ConfigCruise} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown configuration `%s`", name)
}

// Maximum lift coefficient bands [conservative, optimistic] per flap type, for
// the takeoff and landing deflections. Mattingly, 2002 (pp. 36).
var clMaxBands = map[FlapType]map[Configuration][2]float64{
	FlapNone:          {ConfigTakeoff: {0.9, 1.2}, ConfigLanding: {0.9, 1.2}},
	FlapPlain:         {ConfigTakeoff: {1.4, 1.6}, ConfigLanding: {1.7, 2.0}},
	FlapSingleSlot:    {ConfigTakeoff: {1.5, 1.7}, ConfigLanding: {1.8, 2.2}},
	FlapFowler:        {ConfigTakeoff: {2.0, 2.2}, ConfigLanding: {2.5, 2.9}},
	FlapDoubleSlotted: {ConfigTakeoff: {1.7, 2.0}, ConfigLanding: {2.3, 2.7}},
	FlapTripleSlotted: {ConfigTakeoff: {1.8, 2.1}, ConfigLanding: {2.7, 3.0}},
}

// Leading edge slat increments per deflection.
var slatCLDelta = map[Configuration]float64{ConfigTakeoff: 0.6, ConfigLanding: 0.5}

// Aspect ratio regression vs design Mach per aircraft class, AR = a * M^c.
var arVsMach = map[AircraftClass][2]float64{
	ClassJetTrainer:   {4.737, -0.979},
	ClassJetFighter:   {5.416, -0.622},
	ClassMilCargo:     {5.570, -1.075},
	ClassBomber:       {5.570, -1.075},
	ClassJetTransport: {7.500, 0.000},
}

// Wing holds the planform and high lift system of a wing. The configuration is
// a mutable selector: a single physical wing changes state during the mission
// (clean, takeoff flaps, landing flaps), so the sizing engine reuses one Wing
// across segments via SetConfiguration.
type Wing struct {
	FlapType      FlapType
	Slats         bool
	Sweep         float64    // quarter-chord sweep, degrees
	TaperRatio    float64    // tip over root chord
	FlapSpan      [2]float64 // inner and outer flap span fractions
	AspectRatio   float64
	KAero         float64 // empirical blend, 0 conservative to 1 optimistic
	VariableSweep bool
	Area          float64 // ft^2, set once the aircraft is sized

	configuration Configuration
	clMax         map[Configuration]float64
}

// NewWing returns a wing after validating its planform. The wing starts in the
// takeoff configuration.
func NewWing(flap FlapType, slats bool, sweep, taperRatio float64, flapSpan [2]float64, aspectRatio, kAero float64) (*Wing, error) {
	w := &Wing{FlapType: flap, Slats: slats, Sweep: sweep, TaperRatio: taperRatio, FlapSpan: flapSpan, AspectRatio: aspectRatio, KAero: kAero}
	if err := w.validate(); err != nil {
		return nil, err
	}
	w.configuration = ConfigTakeoff
	w.clMax = make(map[Configuration]float64, 3)
	return w, nil
}

// NewWingForClass returns a wing whose aspect ratio is regressed from the
// aircraft class and its design Mach number.
func NewWingForClass(class AircraftClass, designMach float64, flap FlapType, slats bool, sweep, taperRatio float64, flapSpan [2]float64, kAero float64) (*Wing, error) {
	reg, found := arVsMach[class]
	if !found {
		return nil, fmt.Errorf("no aspect ratio regression for class %s", class)
	}
	return NewWing(flap, slats, sweep, taperRatio, flapSpan, reg[0]*math.Pow(designMach, reg[1]), kAero)
}

func (w *Wing) validate() error {
	if _, found := clMaxBands[w.FlapType]; !found {
		return InvalidConfigurationError{Param: "flap_type", Reason: fmt.Sprintf("unknown flap type %d", w.FlapType)}
	}
	if w.Sweep < 0 || w.Sweep > 60 {
		return InvalidConfigurationError{Param: "sweep", Value: w.Sweep, Min: 0, Max: 60, Units: "degrees"}
	}
	if w.TaperRatio <= 0 || w.TaperRatio > 1 {
		return InvalidConfigurationError{Param: "taper_ratio", Value: w.TaperRatio, Min: 0, Max: 1, Units: "unitless"}
	}
	for _, f := range w.FlapSpan {
		if f < 0 || f > 1 {
			return InvalidConfigurationError{Param: "flap_span", Value: f, Min: 0, Max: 1, Units: "unitless"}
		}
	}
	if w.FlapSpan[0] >= w.FlapSpan[1] {
		return InvalidConfigurationError{Param: "flap_span", Reason: fmt.Sprintf("inner fraction %g must be less than outer fraction %g", w.FlapSpan[0], w.FlapSpan[1])}
	}
	if w.AspectRatio < 1 || w.AspectRatio > 8 {
		return InvalidConfigurationError{Param: "aspect_ratio", Value: w.AspectRatio, Min: 1, Max: 8, Units: "unitless"}
	}
	if w.KAero < 0 || w.KAero > 1 {
		return InvalidConfigurationError{Param: "k_aero", Value: w.KAero, Min: 0, Max: 1, Units: "unitless"}
	}
	return nil
}

func (w *Wing) String() string {
	highLift := "no flaps"
	if w.FlapType != FlapNone {
		highLift = w.FlapType.String()
	}
	if w.Slats {
		highLift += " with slats"
	}
	return fmt.Sprintf("Wing (%s, configured for %s)", highLift, w.configuration)
}

// Configuration returns the currently selected configuration.
func (w *Wing) Configuration() Configuration {
	return w.configuration
}

// SetConfiguration selects the high lift configuration and recomputes the
// maximum lift coefficient for it.
func (w *Wing) SetConfiguration(cfg Configuration) {
	switch cfg {
	case ConfigTakeoff, ConfigLanding, ConfigCruise:
	default:
		panic("cannot set unknown configuration")
	}
	w.configuration = cfg
	if _, cached := w.clMax[cfg]; !cached {
		w.clMax[cfg] = w.estimateCLMax(cfg)
	}
}

// CLMax returns the maximum lift coefficient for the current configuration.
func (w *Wing) CLMax() float64 {
	return w.CLMaxFor(w.configuration)
}

// CLMaxFor returns the maximum lift coefficient for the given configuration
// without changing the selected one.
func (w *Wing) CLMaxFor(cfg Configuration) float64 {
	if cl, cached := w.clMax[cfg]; cached {
		return cl
	}
	cl := w.estimateCLMax(cfg)
	w.clMax[cfg] = cl
	return cl
}

// estimateCLMax estimates the maximum lift coefficient of the wing for the
// given flap and slat deflection. Based on Raymer, 1999 (pp. 97) and
// Mattingly, 2002 (pp. 36). Valid for thin, unswept or swept back wings of
// aspect ratio below 8.
func (w *Wing) estimateCLMax(cfg Configuration) float64 {
	// Regressed from Fig. 5.3 in Raymer, 1999 (pp. 97).
	sweepFactor := 2 - (0.00011029411764705700*w.Sweep*w.Sweep +
		0.00014705882352927800*w.Sweep +
		1.00294117647059000000)
	correction := sweepFactor * (0.85 + 0.1*w.KAero)

	clean := clMaxBands[FlapNone][ConfigTakeoff]
	clUnflapped := w.KAero*(clean[1]-clean[0]) + clean[0]

	if cfg == ConfigCruise {
		// Clean wing, flaps and slats retracted.
		return correction * clUnflapped
	}

	flapped := clMaxBands[w.FlapType][cfg]
	clFlapped := w.KAero*(flapped[1]-flapped[0]) + flapped[0]

	if w.Slats {
		clUnflapped += slatCLDelta[cfg]
		clFlapped += slatCLDelta[cfg]
	}

	// Ratio of the flapped planform area to the reference area.
	sRatio := (2 + (w.TaperRatio-1)*(w.FlapSpan[0]+w.FlapSpan[1])) *
		(w.FlapSpan[1] - w.FlapSpan[0]) / (1 + w.TaperRatio)

	return correction * (clFlapped*sRatio + clUnflapped*(1-sRatio))
}
