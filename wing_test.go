package assist

import (
	"testing"

	"github.com/gonum/floats"
)

func sampleWing(t *testing.T) *Wing {
	wing, err := NewWing(FlapFowler, true, 20, 0.3, [2]float64{0.15, 0.7}, 4.0, 0.75)
	if err != nil {
		t.Fatalf("sample wing: %s", err)
	}
	return wing
}

func TestWingCLMaxOrdering(t *testing.T) {
	wing := sampleWing(t)
	landing := wing.CLMaxFor(ConfigLanding)
	takeoff := wing.CLMaxFor(ConfigTakeoff)
	cruise := wing.CLMaxFor(ConfigCruise)
	if landing <= takeoff {
		t.Fatalf("landing CLmax %f not above takeoff %f", landing, takeoff)
	}
	if takeoff <= cruise {
		t.Fatalf("takeoff CLmax %f not above cruise %f", takeoff, cruise)
	}
}

func TestWingCLMaxValues(t *testing.T) {
	wing := sampleWing(t)
	if !floats.EqualWithinAbs(wing.CLMaxFor(ConfigTakeoff), 2.051, 0.005) {
		t.Fatalf("takeoff CLmax %f", wing.CLMaxFor(ConfigTakeoff))
	}
	if !floats.EqualWithinAbs(wing.CLMaxFor(ConfigLanding), 2.303, 0.005) {
		t.Fatalf("landing CLmax %f", wing.CLMaxFor(ConfigLanding))
	}
}

func TestWingSweepPenalty(t *testing.T) {
	straight, _ := NewWing(FlapFowler, true, 0, 0.3, [2]float64{0.15, 0.7}, 4.0, 0.75)
	swept, _ := NewWing(FlapFowler, true, 45, 0.3, [2]float64{0.15, 0.7}, 4.0, 0.75)
	if swept.CLMaxFor(ConfigLanding) >= straight.CLMaxFor(ConfigLanding) {
		t.Fatal("sweep must reduce CLmax")
	}
}

func TestWingConfiguration(t *testing.T) {
	wing := sampleWing(t)
	if wing.Configuration() != ConfigTakeoff {
		t.Fatal("wings must start configured for takeoff")
	}
	wing.SetConfiguration(ConfigLanding)
	if wing.Configuration() != ConfigLanding {
		t.Fatal("SetConfiguration fail")
	}
	if !floats.EqualWithinAbs(wing.CLMax(), wing.CLMaxFor(ConfigLanding), 1e-12) {
		t.Fatal("CLMax must follow the selected configuration")
	}
}

func TestWingValidation(t *testing.T) {
	cases := []struct {
		name                      string
		sweep, taper, ar, kAero   float64
		flapSpan                  [2]float64
	}{
		{"sweep", 75, 0.3, 4, 0.5, [2]float64{0.15, 0.7}},
		{"taper", 20, 0, 4, 0.5, [2]float64{0.15, 0.7}},
		{"aspect ratio", 20, 0.3, 9, 0.5, [2]float64{0.15, 0.7}},
		{"k_aero", 20, 0.3, 4, 1.5, [2]float64{0.15, 0.7}},
		{"flap span order", 20, 0.3, 4, 0.5, [2]float64{0.7, 0.15}},
		{"flap span bound", 20, 0.3, 4, 0.5, [2]float64{0.15, 1.2}},
	}
	for _, tc := range cases {
		_, err := NewWing(FlapFowler, false, tc.sweep, tc.taper, tc.flapSpan, tc.ar, tc.kAero)
		if err == nil {
			t.Fatalf("%s: no error", tc.name)
		}
		if _, ok := err.(InvalidConfigurationError); !ok {
			t.Fatalf("%s: wrong error type: %s", tc.name, err)
		}
	}
}

func TestWingForClass(t *testing.T) {
	wing, err := NewWingForClass(ClassJetFighter, 1.5, FlapFowler, true, 20, 0.3, [2]float64{0.15, 0.7}, 0.75)
	if err != nil {
		t.Fatalf("class wing: %s", err)
	}
	// AR = 5.416 * 1.5^-0.622
	if !floats.EqualWithinAbs(wing.AspectRatio, 4.207, 0.005) {
		t.Fatalf("regressed aspect ratio %f", wing.AspectRatio)
	}
}

func TestFlapTypeRoundTrip(t *testing.T) {
	for _, f := range []FlapType{FlapNone, FlapPlain, FlapSingleSlot, FlapFowler, FlapDoubleSlotted, FlapTripleSlotted} {
		got, err := FlapTypeFromString(f.String())
		if err != nil || got != f {
			t.Fatalf("round trip fail for %s", f)
		}
	}
	if _, err := FlapTypeFromString("venetian_blind"); err == nil {
		t.Fatal("no error on unknown flap type")
	}
}
