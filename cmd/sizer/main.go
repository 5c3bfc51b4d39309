// sizer synthesizes and sizes an aircraft against a mission described in a
// scenario TOML file, then reports the design point, the weight breakdown and
// optionally the program acquisition cost.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/colonelzentor/assist"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "sizer scenario TOML file")
	flag.BoolVar(&verbose, "debug", false, "log every synthesis iteration")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	prefix := viper.GetString("general.fileprefix")
	if prefix == "" {
		prefix = scenario
	}
	outputdir := viper.GetString("general.outputdir")
	if outputdir == "" {
		outputdir = "./"
	}

	aircraft := readAircraft()
	if !verbose {
		aircraft.SetLogger(kitlog.NewNopLogger())
	}
	mission := readMission()
	log.Printf("[info] %s over %s", aircraft, mission)

	if err := aircraft.Design(mission); err != nil {
		log.Fatalf("design failed: %s", err)
	}

	point, _ := aircraft.DesignPoint()
	grossWeight, _ := aircraft.GrossWeight()
	emptyWeight, _ := aircraft.EmptyWeight()
	fuelWeight, _ := aircraft.FuelWeight()
	log.Printf("[info] design point: W/S=%.1f lbf/ft^2 T/W=%.3f", point.WingLoading, point.ThrustToWeight)
	log.Printf("[info] weights: W0=%.0f We=%.0f Wf=%.0f Wp=%.0f lbm", grossWeight, emptyWeight, fuelWeight, aircraft.TotalPayload())
	log.Printf("[info] wing area: %.1f ft^2, engine thrust: %.0f lbf x%d", aircraft.Wing.Area, aircraft.Engine.MaxThrust, aircraft.NumEngines)

	if mach, altitude, err := aircraft.BestCruise(); err == nil {
		log.Printf("[info] best cruise: Mach %.2f at %.0f ft", mach, altitude)
	}

	if prog, set := readProgram(); set {
		cost, err := assist.NewCost(aircraft, prog)
		if err != nil {
			log.Fatalf("cost estimation failed: %s", err)
		}
		log.Printf("[info] acquisition: %.1f MU$D (%.1f MU$D per unit over %d aircraft)",
			cost.EstimateAcquisition()/1e6, cost.PerUnit()/1e6, prog.Quantity)
	}

	conf := assist.ExportConfig{
		Filename:  prefix,
		OutputDir: outputdir,
		AsCSV:     viper.GetBool("export.csv"),
		AsJSON:    viper.GetBool("export.json"),
		Timestamp: viper.GetBool("export.timestamp"),
	}
	if conf.IsUseless() {
		return
	}
	if err := assist.ExportCarpet(aircraft, conf); err != nil {
		log.Fatalf("carpet export failed: %s", err)
	}
	if err := assist.ExportDesign(aircraft, conf); err != nil {
		log.Fatalf("design export failed: %s", err)
	}
}
