package assist

import (
	"math"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

// fighterFixture returns a supersonic fighter and a hi-hi strike mission which
// is known to close.
func fighterFixture(t *testing.T) (*Aircraft, Mission) {
	wing, err := NewWing(FlapFowler, true, 20, 0.3, [2]float64{0.15, 0.7}, 4.0, 0.75)
	if err != nil {
		t.Fatalf("fixture wing: %s", err)
	}
	engine, err := NewEngine(ATJ, NewAtmosphere())
	if err != nil {
		t.Fatalf("fixture engine: %s", err)
	}
	payloads := []Payload{
		NewPayload("cannon", 1100, false),
		{Name: "missiles", Weight: 327, Quantity: 4, CDr: 0.001, Expendable: true},
	}
	aircraft, err := NewAircraft(ClassJetFighter, wing, engine, payloads)
	if err != nil {
		t.Fatalf("fixture aircraft: %s", err)
	}
	aircraft.DragChute = true
	aircraft.ReverseThrust = true
	aircraft.SetLogger(kitlog.NewNopLogger())

	dash := NewDash(100, 884, 30000)
	dash.Releases = []string{"missiles"}
	mission, err := NewMission(
		NewWarmup(60, 0),
		NewTakeoff(1500, 0),
		NewCruise(150, 520, 30000),
		dash,
		NewDescend(15000),
		NewCruise(150, 520, 30000),
		NewLanding(1500, 150, 0),
	)
	if err != nil {
		t.Fatalf("fixture mission: %s", err)
	}
	return aircraft, mission
}

func TestAircraftStateGating(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if aircraft.State() != Unsized {
		t.Fatal("new aircraft must be unsized")
	}
	if _, err := aircraft.DesignPoint(); err == nil {
		t.Fatal("no error reading the design point of an unsized aircraft")
	} else if _, ok := err.(NotYetComputedError); !ok {
		t.Fatalf("wrong error type: %s", err)
	}
	if err := aircraft.Size(mission); err == nil {
		t.Fatal("no error sizing before synthesis")
	}
	if err := aircraft.Synthesize(mission); err != nil {
		t.Fatalf("synthesize: %s", err)
	}
	if aircraft.State() != Synthesized {
		t.Fatal("aircraft must be synthesized")
	}
	if _, err := aircraft.DesignPoint(); err != nil {
		t.Fatalf("design point after synthesis: %s", err)
	}
	if _, err := aircraft.GrossWeight(); err == nil {
		t.Fatal("no error reading weights before sizing")
	}
	if err := aircraft.Size(mission); err != nil {
		t.Fatalf("size: %s", err)
	}
	if aircraft.State() != Sized {
		t.Fatal("aircraft must be sized")
	}
}

func TestSynthesizeDesignPoint(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Synthesize(mission); err != nil {
		t.Fatalf("synthesize: %s", err)
	}
	point, err := aircraft.DesignPoint()
	if err != nil {
		t.Fatalf("design point: %s", err)
	}
	// The landing roll caps the wing loading near 77 lbf/ft^2.
	if point.WingLoading < 40 || point.WingLoading > 78 {
		t.Fatalf("wing loading %f out of expected range", point.WingLoading)
	}
	if point.ThrustToWeight < 0.4 || point.ThrustToWeight > 1.0 {
		t.Fatalf("thrust to weight %f out of expected range", point.ThrustToWeight)
	}
	maxMach, err := aircraft.MaxMach()
	if err != nil {
		t.Fatalf("max Mach: %s", err)
	}
	// The dash at 884 kts and 30,000 ft is Mach 1.5.
	if !floats.EqualWithinAbs(maxMach, 1.5, 0.01) {
		t.Fatalf("max Mach %f", maxMach)
	}
}

func TestSynthesizeCarpet(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Synthesize(mission); err != nil {
		t.Fatalf("synthesize: %s", err)
	}
	carpet, err := aircraft.Carpet()
	if err != nil {
		t.Fatalf("carpet: %s", err)
	}
	if len(carpet.WingLoading) != wingLoadingSamples {
		t.Fatalf("carpet has %d wing loadings", len(carpet.WingLoading))
	}
	// Takeoff, two cruises, the dash and the landing constrain.
	if len(carpet.Curves) != 5 {
		t.Fatalf("carpet has %d curves", len(carpet.Curves))
	}
	for j := range carpet.WingLoading {
		for _, curve := range carpet.Curves {
			if curve.ThrustToWeight[j] > carpet.Envelope[j] {
				t.Fatalf("envelope below curve %s at column %d", curve.Kind, j)
			}
		}
	}
	point, _ := aircraft.DesignPoint()
	idx := argMinWithTies(carpet.Envelope, designPointTieTol)
	if carpet.WingLoading[idx] != point.WingLoading {
		t.Fatal("design point disagrees with the envelope minimum")
	}
}

func TestLandingLimit(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	limit, err := aircraft.landingLimit(NewLanding(1500, 150, 0))
	if err != nil {
		t.Fatalf("landing limit: %s", err)
	}
	if !floats.EqualWithinAbs(limit, 77.3, 0.5) {
		t.Fatalf("landing wing loading limit %f", limit)
	}
	// Without the chute and the buckets the roll is longer, so the limit drops.
	aircraft.DragChute = false
	aircraft.ReverseThrust = false
	bare, err := aircraft.landingLimit(NewLanding(1500, 150, 0))
	if err != nil {
		t.Fatalf("bare landing limit: %s", err)
	}
	if bare >= limit {
		t.Fatalf("bare braking limit %f not below %f", bare, limit)
	}
}

func TestTakeoffRoundTrip(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	seg := NewTakeoff(1500, 0)
	wls := []float64{40, 70, 100}
	beta := 0.98
	curve, err := aircraft.takeoffCurve(seg, wls, beta)
	if err != nil {
		t.Fatalf("takeoff curve: %s", err)
	}
	props, _ := aircraft.Atmosphere.Properties(0)
	aircraft.Wing.SetConfiguration(ConfigTakeoff)
	clMax := aircraft.Wing.CLMax()
	alpha, _ := aircraft.Engine.ThrustLapse(0, 0)
	for i, wl := range wls {
		// Substituting the required thrust to weight back into the ground
		// roll relation must reproduce the field length.
		groundRun := beta * beta * aircraft.KTakeoff * aircraft.KTakeoff * wl /
			(alpha * curve[i] * props.Density * G0 * clMax)
		liftoffSpeed := aircraft.KTakeoff * math.Sqrt(2*wl/(props.Density*clMax))
		field := (groundRun + aircraft.TimeToRotate*liftoffSpeed) * aircraft.ObstacleFactor
		if !floats.EqualWithinAbs(field, 1500, 1e-6) {
			t.Fatalf("round trip field length %f at w/s %.0f", field, wl)
		}
	}
}

func TestDesignConverges(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Design(mission); err != nil {
		t.Fatalf("design: %s", err)
	}
	grossWeight, err := aircraft.GrossWeight()
	if err != nil {
		t.Fatalf("gross weight: %s", err)
	}
	if grossWeight < 15000 || grossWeight > 45000 {
		t.Fatalf("gross weight %f out of expected range", grossWeight)
	}
	emptyWeight, _ := aircraft.EmptyWeight()
	fuelWeight, _ := aircraft.FuelWeight()
	fuelFraction, _ := aircraft.FuelFraction()
	if fuelFraction <= 0 || fuelFraction >= 1 {
		t.Fatalf("fuel fraction %f", fuelFraction)
	}
	// W0 = We + Wf + Wp at convergence.
	sum := emptyWeight + fuelWeight + aircraft.TotalPayload()
	if !floats.EqualWithinAbs(grossWeight, sum, 5) {
		t.Fatalf("weight budget fail: W0=%f, We+Wf+Wp=%f", grossWeight, sum)
	}
	point, _ := aircraft.DesignPoint()
	if !floats.EqualWithinAbs(aircraft.Wing.Area, grossWeight/point.WingLoading, 1e-6) {
		t.Fatalf("wing area %f disagrees with the design point", aircraft.Wing.Area)
	}
	if !floats.EqualWithinAbs(aircraft.Engine.MaxThrust, point.ThrustToWeight*grossWeight, 1) {
		t.Fatalf("engine thrust %f disagrees with the design point", aircraft.Engine.MaxThrust)
	}
}

func TestSegmentFractions(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Design(mission); err != nil {
		t.Fatalf("design: %s", err)
	}
	fractions, err := aircraft.SegmentFractions()
	if err != nil {
		t.Fatalf("segment fractions: %s", err)
	}
	if len(fractions) != mission.Len() {
		t.Fatalf("%d fractions for %d segments", len(fractions), mission.Len())
	}
	fuelWeight, _ := aircraft.FuelWeight()
	totalBurned, totalReleased := 0.0, 0.0
	for _, frac := range fractions {
		if frac.WeightFraction <= 0 || frac.WeightFraction > 1 {
			t.Fatalf("%s weight fraction %f", frac.Kind, frac.WeightFraction)
		}
		totalBurned += frac.FuelBurned
		totalReleased += frac.ReleasedWeight
	}
	if !floats.EqualWithinAbs(totalBurned, fuelWeight, 1e-6) {
		t.Fatalf("burned %f but carried %f", totalBurned, fuelWeight)
	}
	if !floats.EqualWithinAbs(totalReleased, 4*327, 1e-9) {
		t.Fatalf("released %f", totalReleased)
	}
}

func TestReleaseValidation(t *testing.T) {
	aircraft, _ := fighterFixture(t)

	badMission := func(releases ...[]string) Mission {
		dash := NewDash(100, 884, 30000)
		dash.Releases = releases[0]
		segs := []Segment{NewWarmup(60, 0), NewTakeoff(1500, 0), dash}
		if len(releases) > 1 {
			again := NewCruise(150, 520, 30000)
			again.Releases = releases[1]
			segs = append(segs, again)
		}
		segs = append(segs, NewLanding(1500, 150, 0))
		mission, err := NewMission(segs...)
		if err != nil {
			t.Fatalf("release mission: %s", err)
		}
		return mission
	}

	cases := map[string]Mission{
		"unknown payload": badMission([]string{"ghost"}),
		"not expendable":  badMission([]string{"cannon"}),
		"double release":  badMission([]string{"missiles"}, []string{"missiles"}),
	}
	for name, mission := range cases {
		if err := aircraft.Synthesize(mission); err != nil {
			t.Fatalf("%s: synthesize: %s", name, err)
		}
		err := aircraft.Size(mission)
		if err == nil {
			t.Fatalf("%s: no error", name)
		}
		if _, ok := err.(InvalidConfigurationError); !ok {
			t.Fatalf("%s: wrong error type: %s", name, err)
		}
	}
}

func TestInfeasibleMission(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	// A 200 ft strip is beyond any wing loading in the scan.
	mission, err := NewMission(
		NewWarmup(60, 0),
		NewTakeoff(200, 0),
		NewCruise(150, 520, 30000),
		NewLanding(200, 150, 0),
	)
	if err != nil {
		t.Fatalf("mission: %s", err)
	}
	synthErr := aircraft.Synthesize(mission)
	if synthErr == nil {
		t.Fatal("no error on an infeasible mission")
	}
	if _, ok := synthErr.(InfeasibleMissionError); !ok {
		t.Fatalf("wrong error type: %s", synthErr)
	}
	// The failed synthesis must not have produced results.
	if aircraft.State() != Unsized {
		t.Fatal("failed synthesis must leave the aircraft unsized")
	}
}

func TestDragPolar(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	// Supersonic wave drag kicks in across the transonic band.
	if aircraft.CD0(1.5) <= aircraft.CD0(0.8) {
		t.Fatal("supersonic CD0 must exceed subsonic")
	}
	if aircraft.K1(2.0) <= aircraft.K1(0.5) {
		t.Fatal("supersonic K1 must exceed subsonic")
	}
	// Stores add residual drag in every configuration.
	if aircraft.CDR(ConfigCruise) != 4*0.001 {
		t.Fatalf("cruise residual drag %f", aircraft.CDR(ConfigCruise))
	}
	if aircraft.CDR(ConfigLanding) <= aircraft.CDR(ConfigCruise) {
		t.Fatal("landing residual drag must exceed cruise")
	}
}

func TestBestCruise(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Design(mission); err != nil {
		t.Fatalf("design: %s", err)
	}
	mach, altitude, err := aircraft.BestCruise()
	if err != nil {
		t.Fatalf("best cruise: %s", err)
	}
	if mach < 0.2 || mach > 2.0 {
		t.Fatalf("best cruise Mach %f", mach)
	}
	if altitude < 1000 || altitude > 65000 {
		t.Fatalf("best cruise altitude %f", altitude)
	}
}

func TestAircraftClassRoundTrip(t *testing.T) {
	for _, c := range []AircraftClass{ClassJetTrainer, ClassJetFighter, ClassMilCargo, ClassBomber, ClassJetTransport} {
		got, err := AircraftClassFromString(c.String())
		if err != nil || got != c {
			t.Fatalf("round trip fail for %s", c)
		}
	}
	if _, err := AircraftClassFromString("zeppelin"); err == nil {
		t.Fatal("no error on unknown aircraft class")
	}
}

func TestEmptyWeightFractionTrend(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	// Heavier aircraft have lower empty weight fractions, per the negative
	// exponent on gross weight.
	light := aircraft.emptyWeightFraction(10000)
	heavy := aircraft.emptyWeightFraction(40000)
	if heavy >= light {
		t.Fatalf("empty weight fraction must drop with gross weight: %f vs %f", light, heavy)
	}
	if light <= 0 || light >= 1 {
		t.Fatalf("non physical empty weight fraction %f", light)
	}
	if math.IsNaN(heavy) {
		t.Fatal("NaN empty weight fraction")
	}
}
