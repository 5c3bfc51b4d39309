package main

import (
	"fmt"
	"log"

	"github.com/colonelzentor/assist"
	"github.com/spf13/viper"
)

func readWing(class assist.AircraftClass) *assist.Wing {
	key := "wing"
	flap, err := assist.FlapTypeFromString(viper.GetString(fmt.Sprintf("%s.flap_type", key)))
	if err != nil {
		log.Fatalf("could not understand flap type in `%s`: %s", key, err)
	}
	slats := viper.GetBool(fmt.Sprintf("%s.slats", key))
	sweep := viper.GetFloat64(fmt.Sprintf("%s.sweep", key))
	taper := viper.GetFloat64(fmt.Sprintf("%s.taper_ratio", key))
	spans := viper.GetStringSlice(fmt.Sprintf("%s.flap_span", key))
	flapSpan := [2]float64{0.2, 0.7}
	if len(spans) == 2 {
		fmt.Sscanf(spans[0], "%f", &flapSpan[0])
		fmt.Sscanf(spans[1], "%f", &flapSpan[1])
	}
	kAero := viper.GetFloat64(fmt.Sprintf("%s.k_aero", key))

	var wing *assist.Wing
	if ar := viper.GetFloat64(fmt.Sprintf("%s.aspect_ratio", key)); ar > 0 {
		wing, err = assist.NewWing(flap, slats, sweep, taper, flapSpan, ar, kAero)
	} else {
		wing, err = assist.NewWingForClass(class, viper.GetFloat64("aircraft.design_mach"), flap, slats, sweep, taper, flapSpan, kAero)
	}
	if err != nil {
		log.Fatalf("invalid wing: %s", err)
	}
	wing.VariableSweep = viper.GetBool(fmt.Sprintf("%s.variable_sweep", key))
	return wing
}

func readEngine(atm assist.Atmosphere) *assist.Engine {
	key := "engine"
	etype, err := assist.EngineTypeFromString(viper.GetString(fmt.Sprintf("%s.type", key)))
	if err != nil {
		log.Fatalf("could not understand engine type in `%s`: %s", key, err)
	}
	var engine *assist.Engine
	if bpr := viper.GetFloat64(fmt.Sprintf("%s.bpr", key)); bpr > 0 {
		engine, err = assist.NewEngineWithBPR(etype, bpr, atm)
	} else {
		engine, err = assist.NewEngine(etype, atm)
	}
	if err != nil {
		log.Fatalf("invalid engine: %s", err)
	}
	if tit := viper.GetFloat64(fmt.Sprintf("%s.turbine_inlet_temp", key)); tit > 0 {
		engine.TurbineInletTemp = tit
	}
	return engine
}

func readPayloads() []assist.Payload {
	var payloads []assist.Payload
	for _, name := range viper.GetStringSlice("aircraft.payloads") {
		key := fmt.Sprintf("payload.%s", name)
		payload := assist.NewPayload(name, viper.GetFloat64(fmt.Sprintf("%s.weight", key)), viper.GetBool(fmt.Sprintf("%s.expendable", key)))
		if qty := viper.GetInt(fmt.Sprintf("%s.quantity", key)); qty > 1 {
			payload.Quantity = qty
		}
		payload.CDr = viper.GetFloat64(fmt.Sprintf("%s.cdr", key))
		payloads = append(payloads, payload)
	}
	if len(payloads) == 0 {
		log.Fatal("no payloads defined in `aircraft.payloads`")
	}
	return payloads
}

func readMission() assist.Mission {
	sequence := viper.GetStringSlice("mission.sequence")
	if len(sequence) == 0 {
		log.Fatal("no segments defined in `mission.sequence`")
	}
	segments := make([]assist.Segment, len(sequence))
	for i, name := range sequence {
		key := fmt.Sprintf("segment.%s", name)
		kind, err := assist.SegmentKindFromString(viper.GetString(fmt.Sprintf("%s.kind", key)))
		if err != nil {
			log.Fatalf("could not understand segment kind in `%s`: %s", key, err)
		}
		segments[i] = assist.Segment{
			Kind:                   kind,
			Altitude:               viper.GetFloat64(fmt.Sprintf("%s.altitude", key)),
			Speed:                  viper.GetFloat64(fmt.Sprintf("%s.speed", key)),
			Duration:               viper.GetFloat64(fmt.Sprintf("%s.duration", key)),
			Range:                  viper.GetFloat64(fmt.Sprintf("%s.range", key)),
			FieldLength:            viper.GetFloat64(fmt.Sprintf("%s.field_length", key)),
			Temperature:            viper.GetFloat64(fmt.Sprintf("%s.temperature", key)),
			ClimbRate:              viper.GetFloat64(fmt.Sprintf("%s.climb_rate", key)),
			TurnRate:               viper.GetFloat64(fmt.Sprintf("%s.turn_rate", key)),
			TurnRadius:             viper.GetFloat64(fmt.Sprintf("%s.turn_radius", key)),
			Acceleration:           viper.GetFloat64(fmt.Sprintf("%s.acceleration", key)),
			Releases:               viper.GetStringSlice(fmt.Sprintf("%s.releases", key)),
			WeightFractionOverride: viper.GetFloat64(fmt.Sprintf("%s.weight_fraction", key)),
		}
	}
	mission, err := assist.NewMission(segments...)
	if err != nil {
		log.Fatalf("invalid mission: %s", err)
	}
	return mission
}

func readAircraft() *assist.Aircraft {
	class, err := assist.AircraftClassFromString(viper.GetString("aircraft.class"))
	if err != nil {
		log.Fatalf("could not understand aircraft class: %s", err)
	}
	wing := readWing(class)
	atm := assist.NewAtmosphere()
	aircraft, err := assist.NewAircraft(class, wing, readEngine(atm), readPayloads())
	if err != nil {
		log.Fatalf("invalid aircraft: %s", err)
	}
	if n := viper.GetInt("aircraft.num_engines"); n > 0 {
		aircraft.NumEngines = n
	}
	aircraft.DragChute = viper.GetBool("aircraft.drag_chute")
	aircraft.ReverseThrust = viper.GetBool("aircraft.reverse_thrust")
	if mu := viper.GetFloat64("aircraft.braking_mu"); mu > 0 {
		aircraft.BrakingMu = mu
	}
	return aircraft
}

func readProgram() (assist.Program, bool) {
	if !viper.IsSet("program.quantity") {
		return assist.Program{}, false
	}
	prog := assist.NewProgram(viper.GetInt("program.quantity"))
	if year := viper.GetInt("program.year"); year > 0 {
		prog.Year = year
	}
	if viper.IsSet("program.stealth") {
		prog.Stealth = viper.GetFloat64("program.stealth")
	}
	if v := viper.GetFloat64("program.materials_complexity"); v > 0 {
		prog.MaterialsComplexity = v
	}
	prog.AvionicsWeight = viper.GetFloat64("program.avionics_weight")
	if viper.IsSet("program.avionics_complexity") {
		prog.AvionicsComplexity = viper.GetFloat64("program.avionics_complexity")
	}
	prog.Cargo = viper.GetBool("program.cargo")
	prog.Spares = viper.GetBool("program.spares")
	return prog, true
}
