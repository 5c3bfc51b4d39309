package assist

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

// AircraftClass defines the statistical class an aircraft is sized against.
type AircraftClass uint8

const (
	// ClassJetTrainer is a subsonic jet trainer.
	ClassJetTrainer AircraftClass = iota + 1
	// ClassJetFighter is a supersonic fighter.
	ClassJetFighter
	// ClassMilCargo is a military cargo aircraft.
	ClassMilCargo
	// ClassBomber is a bomber.
	ClassBomber
	// ClassJetTransport is a commercial jet transport.
	ClassJetTransport
)

func (c AircraftClass) String() string {
	switch c {
	case ClassJetTrainer:
		return "jet_trainer"
	case ClassJetFighter:
		return "jet_fighter"
	case ClassMilCargo:
		return "mil_cargo"
	case ClassBomber:
		return "bomber"
	case ClassJetTransport:
		return "jet_transport"
	}
	panic("cannot stringify unknown aircraft class")
}

// AircraftClassFromString returns the class from its name.
func AircraftClassFromString(name string) (AircraftClass, error) {
	for _, c := range []AircraftClass{ClassJetTrainer, ClassJetFighter, ClassMilCargo, ClassBomber, ClassJetTransport} {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown aircraft class `%s`", name)
}

// Initial thrust to weight guesses per class, refined by the design loop.
var initialTToW = map[AircraftClass]float64{
	ClassJetTrainer:   0.75,
	ClassJetFighter:   1.20,
	ClassMilCargo:     0.45,
	ClassBomber:       0.65,
	ClassJetTransport: 0.35,
}

// Initial wing loading guesses per class (lbf/ft^2).
var initialWToS = map[AircraftClass]float64{
	ClassJetTrainer:   60,
	ClassJetFighter:   70,
	ClassMilCargo:     90,
	ClassBomber:       110,
	ClassJetTransport: 120,
}

// Empty weight fraction regression coefficients (a, b, c1..c5) per class.
// Raymer, 1999 (pp. 115).
var emptyWeightCoeffs = map[AircraftClass][7]float64{
	ClassJetTrainer:   {0.00, 4.28, -0.10, 0.10, 0.20, -0.24, 0.11},
	ClassJetFighter:   {-0.02, 2.16, -0.10, 0.20, 0.04, -0.10, 0.08},
	ClassMilCargo:     {0.07, 1.71, -0.10, 0.10, 0.06, -0.10, 0.05},
	ClassBomber:       {0.07, 1.71, -0.10, 0.10, 0.06, -0.10, 0.05},
	ClassJetTransport: {0.32, 0.66, -0.13, 0.30, 0.06, -0.05, 0.05},
}

// Design Mach numbers per class.
var classDesignMach = map[AircraftClass]float64{
	ClassJetTrainer:   0.95,
	ClassJetFighter:   1.50,
	ClassMilCargo:     0.85,
	ClassBomber:       0.92,
	ClassJetTransport: 0.78,
}

// machBand holds a zero lift drag or induced drag band interpolated over Mach.
type machBand struct {
	mach, min, max []float64
}

var cd0Bands = map[AircraftClass]machBand{
	ClassJetFighter: {
		mach: []float64{0.0, 0.8, 0.9, 1.1, 1.2, 2.0},
		min:  []float64{0.014, 0.014, 0.0160, 0.0260, 0.028, 0.028},
		max:  []float64{0.018, 0.018, 0.0235, 0.0345, 0.040, 0.038},
	},
}

var k1Bands = map[AircraftClass]machBand{
	ClassJetFighter: {
		mach: []float64{0.0, 0.8, 1.0, 1.2, 2.0},
		min:  []float64{0.180, 0.180, 0.180, 0.216, 0.360},
		max:  []float64{0.140, 0.140, 0.170, 0.200, 0.500},
	},
}

// Residual drag of the airframe per configuration (gear, flap wells).
var configResidualDrag = map[Configuration]float64{
	ConfigTakeoff: 0.02,
	ConfigLanding: 0.02,
	ConfigCruise:  0.0,
}

const (
	wingLoadingMin     = 10.0
	wingLoadingMax     = 300.0
	wingLoadingSamples = 291

	maxSizeIterations   = 100
	sizeTolerance       = 0.1 // lbm on gross weight
	maxDesignIterations = 10
	designTolerance     = 0.005 // relative gross weight change

	designPointTieTol = 1e-9
)

// designState tracks which synthesis products are valid.
type designState uint8

const (
	// Unsized aircraft have no derived results.
	Unsized designState = iota
	// Synthesized aircraft have a sizing carpet and a design point.
	Synthesized
	// Sized aircraft additionally have weights and fuel fractions.
	Sized
)

func (s designState) String() string {
	switch s {
	case Unsized:
		return "unsized"
	case Synthesized:
		return "synthesized"
	case Sized:
		return "sized"
	}
	panic("cannot stringify unknown design state")
}

// DesignPoint is the selected wing loading and thrust to weight pair.
type DesignPoint struct {
	WingLoading    float64 // lbf/ft^2
	ThrustToWeight float64
}

// ConstraintCurve is the required thrust to weight versus wing loading for one
// constraining mission segment. Wing loadings above a field length limit carry
// +Inf.
type ConstraintCurve struct {
	Segment        int // index into the mission
	Kind           SegmentKind
	WingLoading    []float64
	ThrustToWeight []float64
}

// SizingCarpet is the family of constraint curves and their upper envelope.
type SizingCarpet struct {
	WingLoading []float64
	Curves      []ConstraintCurve
	Envelope    []float64
}

// SegmentFraction is the weight accounting of one mission segment.
type SegmentFraction struct {
	Kind           SegmentKind
	WeightFraction float64 // weight out over weight in, fuel only
	FuelBurned     float64 // lbm
	ReleasedWeight float64 // lbm of expendable payload dropped
}

// Aircraft owns one wing, one engine and a payload set, and sizes itself
// against a mission. Derived results move through Unsized, Synthesized and
// Sized: reading a result before its producing transition returns a
// NotYetComputedError, and a failed transition leaves the aircraft untouched.
type Aircraft struct {
	Class      AircraftClass
	Wing       *Wing
	Engine     *Engine
	Payloads   []Payload
	NumEngines int
	Atmosphere Atmosphere

	K2             float64 // linear drag polar term
	KTakeoff       float64 // liftoff speed margin over stall
	KTouchdown     float64 // touchdown speed margin over stall
	TimeToRotate   float64 // s held on the runway after liftoff speed
	FreeRollTime   float64 // s between touchdown and braking
	ObstacleFactor float64 // total field length over ground run available
	BrakingMu      float64 // effective braking deceleration coefficient
	ReverseThrust  bool
	DragChute      bool

	logger kitlog.Logger

	state        designState
	tToW         float64
	wToS         float64
	maxMach      float64
	carpet       *SizingCarpet
	fuelFraction float64
	segFractions []SegmentFraction
	grossWeight  float64
	emptyWeight  float64
	fuelWeight   float64
}

// NewAircraft returns an unsized aircraft with the conventional conceptual
// design margins for its class.
func NewAircraft(class AircraftClass, wing *Wing, engine *Engine, payloads []Payload) (*Aircraft, error) {
	if _, found := emptyWeightCoeffs[class]; !found {
		return nil, fmt.Errorf("unknown aircraft class %d", class)
	}
	if wing == nil || engine == nil {
		return nil, fmt.Errorf("an aircraft requires a wing and an engine")
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "sizing", "class", class.String())
	return &Aircraft{
		Class:          class,
		Wing:           wing,
		Engine:         engine,
		Payloads:       payloads,
		NumEngines:     1,
		Atmosphere:     NewAtmosphere(),
		K2:             0.003,
		KTakeoff:       1.1,
		KTouchdown:     1.15,
		TimeToRotate:   3.0,
		FreeRollTime:   3.0,
		ObstacleFactor: 1.15,
		BrakingMu:      0.4,
		logger:         klog,
		tToW:           initialTToW[class],
		wToS:           initialWToS[class],
		maxMach:        classDesignMach[class],
	}, nil
}

// SetLogger overrides the logger used during synthesis and sizing.
func (a *Aircraft) SetLogger(logger kitlog.Logger) {
	a.logger = logger
}

func (a *Aircraft) String() string {
	return fmt.Sprintf("Aircraft %s (%s, %s)", a.Class, a.Wing, a.Engine)
}

// State returns the current design state.
func (a *Aircraft) State() designState {
	return a.state
}

// TotalPayload returns the weight of all carried payloads (lbm).
func (a *Aircraft) TotalPayload() float64 {
	total := 0.0
	for _, p := range a.Payloads {
		total += p.TotalWeight()
	}
	return total
}

// DesignMach returns the design Mach number of the class.
func (a *Aircraft) DesignMach() float64 {
	return classDesignMach[a.Class]
}

// CD0 returns the zero lift drag coefficient at the given Mach number.
func (a *Aircraft) CD0(mach float64) float64 {
	band, found := cd0Bands[a.Class]
	if !found {
		return 0.02
	}
	lo := interp(mach, band.mach, band.min)
	hi := interp(mach, band.mach, band.max)
	return lo + (hi-lo)*(1-a.Wing.KAero)
}

// K1 returns the quadratic induced drag coefficient at the given Mach number.
func (a *Aircraft) K1(mach float64) float64 {
	band, found := k1Bands[a.Class]
	if !found {
		return 0.16
	}
	lo := interp(mach, band.mach, band.min)
	hi := interp(mach, band.mach, band.max)
	return lo + (hi-lo)*(1-a.Wing.KAero)
}

// CDR returns the residual drag coefficient for a configuration, including
// the carried stores.
func (a *Aircraft) CDR(cfg Configuration) float64 {
	cdr := configResidualDrag[cfg]
	for _, p := range a.Payloads {
		cdr += p.TotalDrag()
	}
	return cdr
}

// dragCoefficient evaluates the drag polar at the given lift coefficient.
func (a *Aircraft) dragCoefficient(cl, mach float64, cfg Configuration) float64 {
	return a.K1(mach)*cl*cl + a.K2*cl + a.CD0(mach) + a.CDR(cfg)
}

// brakingCoefficient returns the effective deceleration coefficient on
// landing, credited for a drag chute and reverse thrust.
func (a *Aircraft) brakingCoefficient() float64 {
	mu := a.BrakingMu
	if a.DragChute {
		mu += 0.25
	}
	if a.ReverseThrust {
		mu += 0.15
	}
	return mu
}

// segmentMach returns the Mach number flown on a segment.
func (a *Aircraft) segmentMach(seg Segment) (float64, error) {
	if seg.Speed <= 0 {
		return 0, nil
	}
	soundSpeed, err := seg.atmosphere(a.Atmosphere).SpeedOfSound(seg.Altitude)
	if err != nil {
		return 0, err
	}
	return seg.Speed * KnotsToFps / soundSpeed, nil
}

// segmentWeightFraction returns the weight out over weight in of a segment,
// fuel burn only. beta is the weight fraction ahead of the segment, tToW the
// current sea level thrust to weight estimate.
func (a *Aircraft) segmentWeightFraction(seg Segment, beta, tToW float64) (float64, error) {
	if seg.WeightFractionOverride > 0 {
		return seg.WeightFractionOverride, nil
	}
	if wf, tabulated := segmentWeightFractions[seg.Kind]; tabulated {
		return wf, nil
	}
	mach, err := a.segmentMach(seg)
	if err != nil {
		return 0, err
	}
	tsfc, err := a.Engine.TSFC(mach, seg.Altitude, seg.afterburning())
	if err != nil {
		return 0, err
	}
	switch seg.Kind {
	case Warmup, Taxi:
		// Fuel flow at static thrust for the duration of the segment.
		alpha, lerr := a.Engine.ThrustLapse(seg.Altitude, mach)
		if lerr != nil {
			return 0, lerr
		}
		burned := tsfc * alpha * tToW * (seg.Duration / 3600) / beta
		return 1 - burned, nil
	case Cruise, Dash:
		// Breguet range equation solved for the fuel weight fraction.
		overLD, lerr := a.inverseLiftToDrag(seg, beta)
		if lerr != nil {
			return 0, lerr
		}
		hours := seg.Range / seg.Speed
		return math.Exp(-tsfc * hours * overLD), nil
	case Loiter:
		overLD, lerr := a.inverseLiftToDrag(seg, beta)
		if lerr != nil {
			return 0, lerr
		}
		return math.Exp(-tsfc * (seg.Duration / 3600) * overLD), nil
	}
	return 1.0, nil
}

// inverseLiftToDrag returns drag over lift on a level segment at the current
// design point estimate.
func (a *Aircraft) inverseLiftToDrag(seg Segment, beta float64) (float64, error) {
	props, err := seg.atmosphere(a.Atmosphere).Properties(seg.Altitude)
	if err != nil {
		return 0, err
	}
	mach, err := a.segmentMach(seg)
	if err != nil {
		return 0, err
	}
	a.Wing.SetConfiguration(ConfigCruise)
	speed := seg.Speed * KnotsToFps
	q := 0.5 * props.Density * speed * speed
	cl := seg.loadFactor() * beta * a.wToS / q
	cd := a.dragCoefficient(cl, mach, ConfigCruise)
	return cd / cl, nil
}

// takeoffCurve returns the required thrust to weight over the wing loading
// scan for a takeoff field length constraint. Solving the ground roll plus
// rotation relation for thrust: the available run is the field length over
// the obstacle clearance factor less the rotation distance, and the quadratic
// in sqrt(w/s) round trips to the field length.
func (a *Aircraft) takeoffCurve(seg Segment, wls []float64, beta float64) ([]float64, error) {
	props, err := seg.atmosphere(a.Atmosphere).Properties(seg.Altitude)
	if err != nil {
		return nil, err
	}
	mach, err := a.segmentMach(seg)
	if err != nil {
		return nil, err
	}
	alpha, err := a.Engine.ThrustLapse(seg.Altitude, mach)
	if err != nil {
		return nil, err
	}
	a.Wing.SetConfiguration(ConfigTakeoff)
	clMax := a.Wing.CLMax()
	curve := make([]float64, len(wls))
	for i, wl := range wls {
		liftoffSpeed := a.KTakeoff * math.Sqrt(2*wl/(props.Density*clMax))
		groundRun := seg.FieldLength/a.ObstacleFactor - a.TimeToRotate*liftoffSpeed
		if groundRun <= 0 {
			curve[i] = math.Inf(1)
			continue
		}
		curve[i] = beta * beta * a.KTakeoff * a.KTakeoff * wl /
			(alpha * groundRun * props.Density * G0 * clMax)
	}
	return curve, nil
}

// landingLimit returns the maximum wing loading satisfying a landing field
// length, from the positive root of the braking roll quadratic in sqrt(w/s),
// and the approach stall margin when an approach speed is provided.
func (a *Aircraft) landingLimit(seg Segment) (float64, error) {
	props, err := seg.atmosphere(a.Atmosphere).Properties(seg.Altitude)
	if err != nil {
		return 0, err
	}
	a.Wing.SetConfiguration(ConfigLanding)
	clMax := a.Wing.CLMax()
	mu := a.brakingCoefficient()
	qa := a.KTouchdown * a.KTouchdown / (props.Density * G0 * clMax * mu)
	qb := a.FreeRollTime * a.KTouchdown * math.Sqrt(2/(props.Density*clMax))
	qc := seg.FieldLength / a.ObstacleFactor
	root := quadPositiveRoot(qa, qb, qc)
	limit := root * root
	if seg.Speed > 0 {
		stallSpeed := seg.Speed * KnotsToFps / a.KTouchdown
		stallLimit := 0.5 * props.Density * stallSpeed * stallSpeed * clMax
		if stallLimit < limit {
			limit = stallLimit
		}
	}
	return limit, nil
}

// landingCurve is zero up to the landing wing loading limit and +Inf past it.
func (a *Aircraft) landingCurve(seg Segment, wls []float64) ([]float64, error) {
	limit, err := a.landingLimit(seg)
	if err != nil {
		return nil, err
	}
	curve := make([]float64, len(wls))
	for i, wl := range wls {
		if wl > limit {
			curve[i] = math.Inf(1)
		}
	}
	return curve, nil
}

// masterEquationCurve returns the required thrust to weight over the wing
// loading scan for level, climbing or maneuvering flight. Mattingly, 2002.
func (a *Aircraft) masterEquationCurve(seg Segment, wls []float64, beta float64) ([]float64, error) {
	props, err := seg.atmosphere(a.Atmosphere).Properties(seg.Altitude)
	if err != nil {
		return nil, err
	}
	mach, err := a.segmentMach(seg)
	if err != nil {
		return nil, err
	}
	alpha, err := a.Engine.ThrustLapse(seg.Altitude, mach)
	if err != nil {
		return nil, err
	}
	a.Wing.SetConfiguration(ConfigCruise)
	speed := seg.Speed * KnotsToFps
	q := 0.5 * props.Density * speed * speed
	n := seg.loadFactor()
	excessPower := seg.ClimbRate/speed + seg.Acceleration/G0
	curve := make([]float64, len(wls))
	for i, wl := range wls {
		cl := n * beta * wl / q
		cd := a.dragCoefficient(cl, mach, ConfigCruise)
		curve[i] = (beta / alpha) * (q*cd/(beta*wl) + excessPower)
	}
	return curve, nil
}

// Synthesize scans wing loadings against every constraining mission segment
// and selects the design point: the lowest envelope thrust to weight, ties
// broken towards the highest wing loading. The aircraft is left untouched on
// error.
func (a *Aircraft) Synthesize(mission Mission) error {
	wls := scan(wingLoadingMin, wingLoadingMax, wingLoadingSamples)
	segs := mission.Segments()

	beta := 1.0
	maxMach := 0.0
	var curves []ConstraintCurve
	for i, seg := range segs {
		mach, err := a.segmentMach(seg)
		if err != nil {
			return err
		}
		if mach > maxMach {
			maxMach = mach
		}
		if seg.constrains() {
			var curve []float64
			var cerr error
			switch seg.Kind {
			case Takeoff:
				curve, cerr = a.takeoffCurve(seg, wls, beta)
			case Land:
				curve, cerr = a.landingCurve(seg, wls)
			default:
				curve, cerr = a.masterEquationCurve(seg, wls, beta)
			}
			if cerr != nil {
				return cerr
			}
			curves = append(curves, ConstraintCurve{Segment: i, Kind: seg.Kind, WingLoading: wls, ThrustToWeight: curve})
		}
		wf, err := a.segmentWeightFraction(seg, beta, a.tToW)
		if err != nil {
			return err
		}
		a.logger.Log("level", "info", "segment", seg.Kind.String(), "weight_fraction", fmt.Sprintf("%.4f", wf))
		beta *= wf
	}
	if len(curves) == 0 {
		return InfeasibleMissionError{"no segment imposes a performance constraint"}
	}

	// The scan matrix holds one constraint curve per row; the envelope is
	// the most restrictive thrust to weight in each column.
	scanMatrix := mat64.NewDense(len(curves), len(wls), nil)
	for r, curve := range curves {
		scanMatrix.SetRow(r, curve.ThrustToWeight)
	}
	envelope := make([]float64, len(wls))
	column := make([]float64, len(curves))
	for j := range wls {
		mat64.Col(column, j, scanMatrix)
		envelope[j] = floats.Max(column)
	}

	idx := argMinWithTies(envelope, designPointTieTol)
	if math.IsInf(envelope[idx], 1) {
		return InfeasibleMissionError{"no wing loading satisfies all segment constraints"}
	}

	a.carpet = &SizingCarpet{WingLoading: wls, Curves: curves, Envelope: envelope}
	a.wToS = wls[idx]
	a.tToW = envelope[idx]
	a.maxMach = maxMach
	a.state = Synthesized
	a.logger.Log("level", "notice", "status", "synthesized",
		"w_to_s", fmt.Sprintf("%.1f", a.wToS), "t_to_w", fmt.Sprintf("%.3f", a.tToW),
		"max_mach", fmt.Sprintf("%.2f", a.maxMach))
	return nil
}

// walkMission runs the sequential fuel and weight accounting for a candidate
// gross weight. Expendable payloads are dropped exactly once, at the segment
// which lists them.
func (a *Aircraft) walkMission(mission Mission, grossWeight float64) (fuelBurned float64, fractions []SegmentFraction, err error) {
	released := make(map[string]bool)
	weight := grossWeight
	for i, seg := range mission.Segments() {
		beta := weight / grossWeight
		wf, werr := a.segmentWeightFraction(seg, beta, a.tToW)
		if werr != nil {
			return 0, nil, werr
		}
		burned := weight * (1 - wf)
		weight -= burned
		fuelBurned += burned
		dropped := 0.0
		for _, name := range seg.Releases {
			payload, found := a.payloadByName(name)
			if !found {
				return 0, nil, InvalidConfigurationError{Param: "releases", Reason: fmt.Sprintf("segment #%d releases unknown payload `%s`", i, name)}
			}
			if !payload.Expendable {
				return 0, nil, InvalidConfigurationError{Param: "releases", Reason: fmt.Sprintf("payload `%s` is not expendable", name)}
			}
			if released[name] {
				return 0, nil, InvalidConfigurationError{Param: "releases", Reason: fmt.Sprintf("payload `%s` released more than once", name)}
			}
			released[name] = true
			dropped += payload.TotalWeight()
		}
		weight -= dropped
		fractions = append(fractions, SegmentFraction{Kind: seg.Kind, WeightFraction: wf, FuelBurned: burned, ReleasedWeight: dropped})
	}
	return fuelBurned, fractions, nil
}

func (a *Aircraft) payloadByName(name string) (Payload, bool) {
	for _, p := range a.Payloads {
		if p.Name == name {
			return p, true
		}
	}
	return Payload{}, false
}

// emptyWeightFraction evaluates the statistical empty weight regression at a
// candidate gross weight.
func (a *Aircraft) emptyWeightFraction(grossWeight float64) float64 {
	c := emptyWeightCoeffs[a.Class]
	kvs := 1.0
	if a.Wing.VariableSweep {
		kvs = 1.04
	}
	return (c[0] + c[1]*math.Pow(grossWeight, c[2])*math.Pow(a.Wing.AspectRatio, c[3])*
		math.Pow(a.tToW, c[4])*math.Pow(a.wToS, c[5])*math.Pow(a.maxMach, c[6])) * kvs
}

// Size walks the mission at the synthesized design point and iterates the
// empty weight regression against gross weight to a fixed point. Requires a
// Synthesized aircraft; the aircraft is left untouched on error.
func (a *Aircraft) Size(mission Mission) error {
	if a.state < Synthesized {
		return NotYetComputedError{"gross weight", "Synthesize"}
	}
	payload := a.TotalPayload()
	if payload <= 0 {
		return InvalidConfigurationError{Param: "payloads", Reason: "sizing requires a positive payload weight"}
	}

	grossWeight := a.grossWeight
	if grossWeight <= 0 {
		grossWeight = 8 * payload
	}
	var fuelFraction, weFraction float64
	var fractions []SegmentFraction
	converged := false
	residual := math.Inf(1)
	for iter := 0; iter < maxSizeIterations; iter++ {
		fuel, fracs, err := a.walkMission(mission, grossWeight)
		if err != nil {
			return err
		}
		fuelFraction = fuel / grossWeight
		if fuelFraction <= 0 || fuelFraction >= 1 {
			return InfeasibleMissionError{fmt.Sprintf("mission fuel fraction %.3f outside of (0,1)", fuelFraction)}
		}
		weFraction = a.emptyWeightFraction(grossWeight)
		budget := 1 - fuelFraction - weFraction
		if budget <= 0 {
			return InfeasibleMissionError{fmt.Sprintf("empty weight fraction %.3f and fuel fraction %.3f leave no payload budget", weFraction, fuelFraction)}
		}
		next := payload / budget
		fractions = fracs
		residual = math.Abs(next - grossWeight)
		if residual < sizeTolerance {
			grossWeight = next
			converged = true
			break
		}
		// Damped update, the bare fixed point oscillates.
		grossWeight = 0.5 * (grossWeight + next)
	}
	if !converged {
		return ConvergenceError{"empty weight iteration", maxSizeIterations, residual}
	}
	// Rewalk at the converged weight so the per segment accounting sums to
	// the fuel weight exactly.
	fuel, fracs, err := a.walkMission(mission, grossWeight)
	if err != nil {
		return err
	}
	fuelFraction = fuel / grossWeight
	weFraction = a.emptyWeightFraction(grossWeight)
	fractions = fracs

	requiredThrust := a.tToW * grossWeight / float64(a.NumEngines)
	if err := a.Engine.Size(requiredThrust, a.maxMach); err != nil {
		return err
	}
	a.Wing.Area = grossWeight / a.wToS

	a.grossWeight = grossWeight
	a.emptyWeight = weFraction * grossWeight
	a.fuelWeight = fuelFraction * grossWeight
	a.fuelFraction = fuelFraction
	a.segFractions = fractions
	a.state = Sized
	a.logger.Log("level", "notice", "status", "sized",
		"w_to", fmt.Sprintf("%.0f", a.grossWeight), "w_e", fmt.Sprintf("%.0f", a.emptyWeight),
		"w_f", fmt.Sprintf("%.0f", a.fuelWeight), "fuel_fraction", fmt.Sprintf("%.3f", a.fuelFraction))
	return nil
}

// Design runs the synthesis and sizing loop until the gross weight settles.
// The Breguet fractions depend on the design point, so a single pass is not
// self consistent.
func (a *Aircraft) Design(mission Mission) error {
	previous := 0.0
	for iter := 1; iter <= maxDesignIterations; iter++ {
		if err := a.Synthesize(mission); err != nil {
			return err
		}
		if err := a.Size(mission); err != nil {
			return err
		}
		if previous > 0 && math.Abs(a.grossWeight-previous)/previous < designTolerance {
			a.logger.Log("level", "notice", "status", "designed", "iterations", iter)
			return nil
		}
		previous = a.grossWeight
	}
	return ConvergenceError{"design loop", maxDesignIterations, math.Abs(a.grossWeight - previous)}
}

// DesignPoint returns the selected wing loading and thrust to weight.
func (a *Aircraft) DesignPoint() (DesignPoint, error) {
	if a.state < Synthesized {
		return DesignPoint{}, NotYetComputedError{"design point", "Synthesize"}
	}
	return DesignPoint{WingLoading: a.wToS, ThrustToWeight: a.tToW}, nil
}

// Carpet returns the sizing carpet of the last synthesis.
func (a *Aircraft) Carpet() (*SizingCarpet, error) {
	if a.state < Synthesized {
		return nil, NotYetComputedError{"sizing carpet", "Synthesize"}
	}
	return a.carpet, nil
}

// MaxMach returns the highest Mach number of the sized mission.
func (a *Aircraft) MaxMach() (float64, error) {
	if a.state < Synthesized {
		return 0, NotYetComputedError{"max Mach", "Synthesize"}
	}
	return a.maxMach, nil
}

// GrossWeight returns the takeoff gross weight (lbm).
func (a *Aircraft) GrossWeight() (float64, error) {
	if a.state < Sized {
		return 0, NotYetComputedError{"gross weight", "Size"}
	}
	return a.grossWeight, nil
}

// EmptyWeight returns the empty weight (lbm).
func (a *Aircraft) EmptyWeight() (float64, error) {
	if a.state < Sized {
		return 0, NotYetComputedError{"empty weight", "Size"}
	}
	return a.emptyWeight, nil
}

// FuelWeight returns the mission fuel weight (lbm).
func (a *Aircraft) FuelWeight() (float64, error) {
	if a.state < Sized {
		return 0, NotYetComputedError{"fuel weight", "Size"}
	}
	return a.fuelWeight, nil
}

// FuelFraction returns the mission fuel fraction.
func (a *Aircraft) FuelFraction() (float64, error) {
	if a.state < Sized {
		return 0, NotYetComputedError{"fuel fraction", "Size"}
	}
	return a.fuelFraction, nil
}

// SegmentFractions returns the per segment weight accounting.
func (a *Aircraft) SegmentFractions() ([]SegmentFraction, error) {
	if a.state < Sized {
		return nil, NotYetComputedError{"segment fractions", "Size"}
	}
	out := make([]SegmentFraction, len(a.segFractions))
	copy(out, a.segFractions)
	return out, nil
}

// BestCruise searches the Mach and altitude grid for the highest Breguet
// range factor and returns the best cruise condition.
func (a *Aircraft) BestCruise() (mach, altitude float64, err error) {
	machs := scan(0.2, 2.0, 91)
	alts := scan(1000, 65000, 65)
	rangeFactor := mat64.NewDense(len(machs), len(alts), nil)
	for i, m := range machs {
		k1 := a.K1(m)
		cd0 := a.CD0(m) + a.CDR(ConfigCruise)
		cl := math.Sqrt(cd0 / k1)
		cd := k1*cl*cl + a.K2*cl + cd0
		for j, alt := range alts {
			props, perr := a.Atmosphere.Properties(alt)
			if perr != nil {
				return 0, 0, perr
			}
			tsfc, terr := a.Engine.TSFC(m, alt, false)
			if terr != nil {
				return 0, 0, terr
			}
			rangeFactor.Set(i, j, m*props.SpeedOfSound*cl/(cd*tsfc))
		}
	}
	best := math.Inf(-1)
	for i := range machs {
		for j := range alts {
			if rf := rangeFactor.At(i, j); rf > best {
				best = rf
				mach, altitude = machs[i], alts[j]
			}
		}
	}
	return mach, altitude, nil
}
