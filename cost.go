package assist

import (
	"fmt"
	"math"
)

// Modified DAPCA IV labor rates, 1999 U$D per hour. Raymer, 1999 (pp. 544).
const (
	rateEngineering   = 86.0
	rateTooling       = 88.0
	rateManufacturing = 73.0
	rateQualityCtl    = 81.0
)

// AIA escalation factors relative to 1999 for airframes, engines and engine
// parts, and other parts and equipment.
// http://www.aia-aerospace.org/research_reports/aerospace_statistics/
var escalations = map[int][3]float64{
	1990: {0.918708240534521, 0.822946175637394, 0.818615751789976},
	1991: {0.948775055679287, 0.861189801699717, 0.846062052505967},
	1992: {0.968819599109131, 0.903682719546742, 0.878281622911694},
	1993: {0.983296213808463, 0.919263456090652, 0.900954653937947},
	1994: {0.996659242761693, 0.943342776203966, 0.920047732696897},
	1995: {1.005567928730510, 0.956090651558074, 0.927207637231504},
	1996: {1.010022271714920, 0.974504249291785, 0.959427207637232},
	1997: {1.003340757238310, 0.985835694050991, 0.978520286396181},
	1998: {0.998886414253898, 0.992917847025496, 0.990453460620525},
	1999: {1, 1, 1},
	2000: {1.008908685968820, 1.021246458923510, 1.008353221957040},
	2001: {1.015590200445430, 1.052407932011330, 1.031026252983290},
	2002: {1.016703786191540, 1.065155807365440, 1.041766109785200},
	2003: {1.035634743875280, 1.117563739376770, 1.038186157517900},
	2004: {1.056792873051230, 1.172804532577900, 1.041766109785200},
	2005: {1.074610244988860, 1.195467422096320, 1.068019093078760},
	2006: {1.106904231625840, 1.240793201133140, 1.082338902147970},
	2007: {1.102449888641430, 1.294617563739380, 1.124105011933170},
	2008: {1.106904231625840, 1.345609065155810, 1.169451073985680},
	2009: {1.113585746102450, 1.416430594900850, 1.193317422434370},
	2010: {1.112472160356350, 1.454674220963170, 1.190930787589500},
	2011: {1.116926503340760, 1.495750708215300, 1.202863961813840},
	2012: {1.125835189309580, 1.536827195467420, 1.207637231503580},
	2013: {1.135857461024500, 1.563739376770540, 1.232696897374700},
	2014: {1.140311804008910, 1.580736543909350, 1.248210023866350},
}

// Linear extrapolations of the AIA series past its last published year.
func futureEscalations(year int) [3]float64 {
	yr := float64(year)
	return [3]float64{
		0.0169864145*yr - 32.9627923628,
		0.0386483205*yr - 76.2369486042,
		0.0084778139*yr - 15.9284409799,
	}
}

// Program describes the production program whose acquisition cost is
// estimated: how many aircraft, in which year's dollars, and the cost drivers
// the statistical airframe hours depend on.
type Program struct {
	Quantity            int
	Year                int
	Stealth             float64 // 0 conventional to 1 full low observable
	MaterialsComplexity float64 // 1 aluminum to 2 exotic
	AvionicsWeight      float64 // lbm
	AvionicsComplexity  float64 // 0 to 1
	Cargo               bool
	Spares              bool
	Profit              float64
	FlightTestAircraft  int
}

// NewProgram returns a production program with the conventional defaults: 100
// aircraft in 2015 dollars, two flight test aircraft and a 20% profit margin.
func NewProgram(quantity int) Program {
	return Program{
		Quantity:            quantity,
		Year:                2015,
		Stealth:             0.1,
		MaterialsComplexity: 1.0,
		AvionicsComplexity:  0.25,
		Profit:              1.2,
		FlightTestAircraft:  2,
	}
}

func (p Program) validate() error {
	if p.Quantity < 1 {
		return InvalidConfigurationError{Param: "quantity", Value: float64(p.Quantity), Min: 1, Max: math.Inf(1), Units: "aircraft"}
	}
	if p.Stealth < 0 || p.Stealth > 1 {
		return InvalidConfigurationError{Param: "stealth", Value: p.Stealth, Min: 0, Max: 1, Units: "unitless"}
	}
	if p.MaterialsComplexity < 1 || p.MaterialsComplexity > 2 {
		return InvalidConfigurationError{Param: "materials_complexity", Value: p.MaterialsComplexity, Min: 1, Max: 2, Units: "unitless"}
	}
	if p.AvionicsComplexity < 0 || p.AvionicsComplexity > 1 {
		return InvalidConfigurationError{Param: "avionics_complexity", Value: p.AvionicsComplexity, Min: 0, Max: 1, Units: "unitless"}
	}
	if p.Profit < 1 || p.Profit > 2 {
		return InvalidConfigurationError{Param: "profit", Value: p.Profit, Min: 1, Max: 2, Units: "unitless"}
	}
	if p.FlightTestAircraft < 1 {
		return InvalidConfigurationError{Param: "num_flight_test_aircraft", Value: float64(p.FlightTestAircraft), Min: 1, Max: math.Inf(1), Units: "aircraft"}
	}
	return nil
}

// Cost estimates the acquisition cost of a program of sized aircraft with the
// modified DAPCA IV model. Raymer, 1999 (pp. 543). RDT&E and flyaway only,
// escalated from constant 1999 U$D to the program year.
type Cost struct {
	Aircraft *Aircraft
	Program  Program

	emptyWeight float64
	maxVelocity float64 // kts
	maxMach     float64
}

// NewCost returns a cost estimator for a sized aircraft.
func NewCost(ac *Aircraft, prog Program) (*Cost, error) {
	if err := prog.validate(); err != nil {
		return nil, err
	}
	emptyWeight, err := ac.EmptyWeight()
	if err != nil {
		return nil, err
	}
	maxMach, err := ac.MaxMach()
	if err != nil {
		return nil, err
	}
	soundSpeed, err := ac.Atmosphere.SpeedOfSound(tropopauseAlt)
	if err != nil {
		return nil, err
	}
	return &Cost{
		Aircraft:    ac,
		Program:     prog,
		emptyWeight: emptyWeight,
		maxVelocity: maxMach * soundSpeed / KnotsToFps,
		maxMach:     maxMach,
	}, nil
}

// EstimateAcquisition returns the RDT&E plus flyaway cost of the whole
// program, in program year U$D.
func (c *Cost) EstimateAcquisition() float64 {
	we := c.emptyWeight
	v := c.maxVelocity
	q := float64(c.Program.Quantity)

	esc, published := escalations[c.Program.Year]
	if !published {
		esc = futureEscalations(c.Program.Year)
	}
	fMfg, fEng, fOth := esc[0], esc[1], esc[2]

	hMult := c.Program.MaterialsComplexity
	if c.Program.Stealth > 0 {
		hMult *= 1.20 + 0.2*c.Program.Stealth
	}

	hEngineering := hMult * 7.070 * math.Pow(we, 0.777) * math.Pow(v, 0.894) * math.Pow(q, 0.163)
	hTooling := hMult * 8.710 * math.Pow(we, 0.777) * math.Pow(v, 0.696) * math.Pow(q, 0.263)
	hManufacturing := hMult * 10.72 * math.Pow(we, 0.820) * math.Pow(v, 0.484) * math.Pow(q, 0.641)
	hQualityCtl := 0.133 * hManufacturing
	if c.Program.Cargo {
		hQualityCtl = 0.076 * hManufacturing
	}

	cDevelopment := 66.0 * math.Pow(we, 0.630) * math.Pow(v, 1.3)
	cFlightTest := 1807.1 * math.Pow(we, 0.325) * math.Pow(v, 0.822) * math.Pow(float64(c.Program.FlightTestAircraft), 1.21)
	cMaterials := 16 * math.Pow(we, 0.921) * math.Pow(v, 0.621) * math.Pow(q, 0.799)
	cEngine := 2215 * (0.043*c.Aircraft.Engine.MaxThrust + 243.25*c.maxMach + 0.969*c.Aircraft.Engine.TurbineInletTemp - 2228)
	cAvionics := c.Program.AvionicsWeight * (3000 + 3000*c.Program.AvionicsComplexity)

	total := hEngineering*rateEngineering*fMfg +
		hTooling*rateTooling*fMfg +
		hManufacturing*rateManufacturing*fMfg +
		hQualityCtl*rateQualityCtl*fMfg +
		cDevelopment*fMfg +
		cFlightTest*fOth +
		cMaterials*fMfg +
		cEngine*float64(c.Aircraft.NumEngines)*fEng +
		cAvionics*fOth

	total *= c.Program.Profit
	if c.Program.Spares {
		total *= 1.125
	}
	return total
}

// PerUnit returns the program acquisition cost amortized over the quantity.
func (c *Cost) PerUnit() float64 {
	return c.EstimateAcquisition() / float64(c.Program.Quantity)
}

func (c *Cost) String() string {
	return fmt.Sprintf("Cost (%d aircraft, %d U$D)", c.Program.Quantity, c.Program.Year)
}
