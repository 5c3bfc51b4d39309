package assist

import (
	"fmt"
	"math"
)

// EngineType defines the conceptual engine cycles available for sizing.
type EngineType uint8

const (
	// ATJ is an advanced turbojet with afterburner.
	ATJ EngineType = iota + 1
	// ATP is an advanced turboprop.
	ATP
	// HBTF is a high bypass turbofan.
	HBTF
	// LBTF is a low bypass turbofan with afterburner.
	LBTF
)

func (e EngineType) String() string {
	switch e {
	case ATJ:
		return "ATJ"
	case ATP:
		return "ATP"
	case HBTF:
		return "HBTF"
	case LBTF:
		return "LBTF"
	}
	panic("cannot stringify unknown engine type")
}

// EngineTypeFromString returns the engine type from its catalog name.
func EngineTypeFromString(name string) (EngineType, error) {
	for _, e := range []EngineType{ATJ, ATP, HBTF, LBTF} {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown engine type `%s`", name)
}

// engineModel gathers the empirical coefficients of one engine cycle.
// Thrust lapse and TSFC models from Mattingly, 2002 (pp. 71).
type engineModel struct {
	name        string
	sign        float64
	alphas      [6]float64 // a1..a6 of the thrust lapse model
	tsfcMil     [2]float64
	tsfcAB      [2]float64
	afterburner bool
	bpr         float64
	hasBPR      bool
}

var engineModels = map[EngineType]engineModel{
	ATJ: {
		name:        "Advanced Turbo-Jet (with afterburner)",
		sign:        1,
		alphas:      [6]float64{1.00, 0.952, 0.30, 0.40, 2.0, 0.7},
		tsfcMil:     [2]float64{1.1, 0.30},
		tsfcAB:      [2]float64{1.5, 0.23},
		afterburner: true,
		bpr:         0,
		hasBPR:      true,
	},
	ATP: {
		name:    "Advanced Turbo-Prop",
		sign:    1,
		alphas:  [6]float64{0.12, 0.000, 1.00, -0.02, -1.0, 0.5},
		tsfcMil: [2]float64{0.18, 0.80},
	},
	HBTF: {
		name:    "High By-Pass Turbo-Fan",
		sign:    -1,
		alphas:  [6]float64{1.00, 0.568, 0.25, -1.20, 3.0, 0.6},
		tsfcMil: [2]float64{0.45, 0.54},
		bpr:     6,
		hasBPR:  true,
	},
	LBTF: {
		name:        "Low By-Pass Turbo-Fan (with afterburner)",
		sign:        1,
		alphas:      [6]float64{1.00, 0.940, 0.38, 0.40, 2.0, 0.7},
		tsfcMil:     [2]float64{0.9, 0.30},
		tsfcAB:      [2]float64{1.6, 0.27},
		afterburner: true,
		bpr:         1.5,
		hasBPR:      true,
	},
}

// Engine is a rubber engine: its reference characteristics are statistical
// functions of the cycle, and Size rescales its footprint to whichever sea
// level static thrust the synthesis requires.
type Engine struct {
	Type             EngineType
	BypassRatio      float64
	TurbineInletTemp float64 // °R

	// Set by Size.
	MaxThrust    float64 // lbf, sea level static
	MaxMach      float64
	Weight       float64 // lbm
	Length       float64 // ft
	Diameter     float64 // ft
	SFCMax       float64
	SFCCruise    float64
	CruiseThrust float64 // lbf at 36,000 ft, Mach 0.9

	atm   Atmosphere
	model engineModel
}

// NewEngine returns an engine of the given cycle with its catalog bypass ratio.
func NewEngine(etype EngineType, atm Atmosphere) (*Engine, error) {
	model, found := engineModels[etype]
	if !found {
		return nil, fmt.Errorf("unknown engine type %d", etype)
	}
	return &Engine{Type: etype, BypassRatio: model.bpr, TurbineInletTemp: 2000, atm: atm, model: model}, nil
}

// NewEngineWithBPR returns an engine with a bypass ratio overriding the
// catalog value, validated against the cycle type.
func NewEngineWithBPR(etype EngineType, bpr float64, atm Atmosphere) (*Engine, error) {
	eng, err := NewEngine(etype, atm)
	if err != nil {
		return nil, err
	}
	if etype == HBTF && bpr < 2.0 {
		return nil, InvalidConfigurationError{Param: "bpr", Reason: fmt.Sprintf("high by-pass turbofans must have by-pass ratios greater than 2.0, not %g", bpr)}
	}
	if etype == LBTF && bpr > 2.0 {
		return nil, InvalidConfigurationError{Param: "bpr", Reason: fmt.Sprintf("low by-pass turbofans must have by-pass ratios less than 2.0, not %g", bpr)}
	}
	eng.BypassRatio = bpr
	return eng, nil
}

func (e *Engine) String() string {
	return fmt.Sprintf("Engine %s", e.model.name)
}

// Afterburning returns whether this cycle has an afterburner.
func (e *Engine) Afterburning() bool {
	return e.model.afterburner
}

// TSFC estimates the thrust specific fuel consumption (1/hr) at the given
// Mach number and altitude. Engines without an afterburner ignore the
// afterburner flag.
func (e *Engine) TSFC(mach, altitude float64, afterburner bool) (float64, error) {
	coeffs := e.model.tsfcMil
	if afterburner && e.model.afterburner {
		coeffs = e.model.tsfcAB
	}
	temp, err := e.atm.Temperature(altitude)
	if err != nil {
		return 0, err
	}
	theta := temp / e.atm.TemperatureSLRankine()
	return (coeffs[0] + coeffs[1]*mach) * math.Sqrt(theta), nil
}

// ThrustLapse returns the ratio of installed thrust at the given altitude and
// Mach number to the sea level static thrust.
func (e *Engine) ThrustLapse(altitude, mach float64) (float64, error) {
	density, err := e.atm.Density(altitude)
	if err != nil {
		return 0, err
	}
	sigma := density / e.atm.DensitySL
	a := e.model.alphas
	return a[0] * (a[1] + a[2]*math.Pow(e.model.sign*mach-a[3], a[4])) * math.Pow(sigma, a[5]), nil
}

// Size rescales the engine to the required sea level static thrust, per the
// statistical rules of Raymer, 1999 (pp. 235). Cruise values are quoted at
// approximately 36,000 ft and Mach 0.9.
func (e *Engine) Size(requiredThrust, maxMach float64) error {
	if requiredThrust <= 0 {
		return InvalidConfigurationError{Param: "max_thrust", Reason: fmt.Sprintf("required thrust must be positive, not %g", requiredThrust)}
	}
	bpr := e.BypassRatio
	if e.model.afterburner {
		if bpr > 1.0 {
			return InvalidConfigurationError{Param: "bpr", Reason: fmt.Sprintf("by-pass ratio must be below 1.0 for afterburning engines, not %g", bpr)}
		}
		e.Weight = 0.063 * math.Pow(requiredThrust, 1.1) * math.Pow(maxMach, 0.25) * math.Exp(-0.81*bpr)
		e.Length = 0.255 * math.Pow(requiredThrust, 0.4) * math.Pow(maxMach, 0.2)
		e.Diameter = 0.024 * math.Pow(requiredThrust, 0.5) * math.Exp(0.04*bpr)
		e.SFCMax = 2.1 * math.Exp(-0.12*bpr)
		e.CruiseThrust = 2.4 * math.Pow(requiredThrust, 0.74) * math.Exp(0.023*bpr)
		e.SFCCruise = 1.04 * math.Exp(-0.186*bpr)
	} else {
		e.Weight = 0.084 * math.Pow(requiredThrust, 1.1) * math.Exp(-0.045*bpr)
		e.Length = 0.185 * math.Pow(requiredThrust, 0.4) * math.Pow(maxMach, 0.2)
		e.Diameter = 0.033 * math.Pow(requiredThrust, 0.5) * math.Exp(0.04*bpr)
		e.SFCMax = 0.67 * math.Exp(-0.12*bpr)
		e.CruiseThrust = 0.60 * math.Pow(requiredThrust, 0.9) * math.Exp(0.02*bpr)
		e.SFCCruise = 0.88 * math.Exp(-0.05*bpr)
	}
	e.MaxThrust = requiredThrust
	e.MaxMach = maxMach
	return nil
}
