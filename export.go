package assist

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"
)

// ExportConfig configures the exporting of synthesis and sizing results.
type ExportConfig struct {
	Filename  string
	OutputDir string
	AsCSV     bool
	AsJSON    bool
	Timestamp bool
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV && !c.AsJSON
}

func (c ExportConfig) path(suffix, ext string) string {
	dir := c.OutputDir
	if dir == "" {
		dir = assistConfig().outputDir
	}
	if c.Timestamp {
		t := time.Now()
		return fmt.Sprintf("%s/%s-%s-%d-%02d-%02dT%02d.%02d.%02d.%s", dir, suffix, c.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ext)
	}
	return fmt.Sprintf("%s/%s-%s.%s", dir, suffix, c.Filename, ext)
}

// ExportCarpet writes the sizing carpet of a synthesized aircraft as a CSV
// file: one row per wing loading, one column per constraint curve, and the
// envelope last. Infinite thrust to weight (wing loadings past a field length
// limit) is written as an empty cell.
func ExportCarpet(ac *Aircraft, conf ExportConfig) error {
	if !conf.AsCSV {
		return nil
	}
	carpet, err := ac.Carpet()
	if err != nil {
		return err
	}
	f, err := os.Create(conf.path("carpet", "csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are wing loading (lbf/ft^2) followed by the required thrust to
# weight of each constraining segment and the envelope.
`, time.Now().UTC()))
	f.WriteString("w_to_s")
	for _, curve := range carpet.Curves {
		f.WriteString(fmt.Sprintf(",%s_%d", curve.Kind, curve.Segment))
	}
	f.WriteString(",envelope\n")
	for j, wl := range carpet.WingLoading {
		f.WriteString(fmt.Sprintf("%.3f", wl))
		for _, curve := range carpet.Curves {
			f.WriteString(csvCell(curve.ThrustToWeight[j]))
		}
		f.WriteString(csvCell(carpet.Envelope[j]))
		f.WriteString("\n")
	}
	fmt.Printf("Saved carpet to %s.\n", f.Name())
	return nil
}

func csvCell(v float64) string {
	if math.IsInf(v, 0) {
		return ","
	}
	return fmt.Sprintf(",%.5f", v)
}

// designSummary is the JSON shape of a sized design.
type designSummary struct {
	Class          string             `json:"class"`
	WingLoading    float64            `json:"w_to_s"`
	ThrustToWeight float64            `json:"t_to_w"`
	MaxMach        float64            `json:"max_mach"`
	GrossWeight    float64            `json:"w_to"`
	EmptyWeight    float64            `json:"w_e"`
	FuelWeight     float64            `json:"w_f"`
	PayloadWeight  float64            `json:"w_p"`
	FuelFraction   float64            `json:"fuel_fraction"`
	WingArea       float64            `json:"wing_area"`
	EngineThrust   float64            `json:"engine_thrust"`
	EngineWeight   float64            `json:"engine_weight"`
	Segments       []segmentSummary   `json:"segments"`
}

type segmentSummary struct {
	Kind           string  `json:"kind"`
	WeightFraction float64 `json:"weight_fraction"`
	FuelBurned     float64 `json:"fuel_burned"`
	ReleasedWeight float64 `json:"released_weight,omitempty"`
}

// ExportDesign writes the sized design summary as a JSON file.
func ExportDesign(ac *Aircraft, conf ExportConfig) error {
	if !conf.AsJSON {
		return nil
	}
	point, err := ac.DesignPoint()
	if err != nil {
		return err
	}
	grossWeight, err := ac.GrossWeight()
	if err != nil {
		return err
	}
	emptyWeight, _ := ac.EmptyWeight()
	fuelWeight, _ := ac.FuelWeight()
	fuelFraction, _ := ac.FuelFraction()
	maxMach, _ := ac.MaxMach()
	fractions, _ := ac.SegmentFractions()

	summary := designSummary{
		Class:          ac.Class.String(),
		WingLoading:    point.WingLoading,
		ThrustToWeight: point.ThrustToWeight,
		MaxMach:        maxMach,
		GrossWeight:    grossWeight,
		EmptyWeight:    emptyWeight,
		FuelWeight:     fuelWeight,
		PayloadWeight:  ac.TotalPayload(),
		FuelFraction:   fuelFraction,
		WingArea:       ac.Wing.Area,
		EngineThrust:   ac.Engine.MaxThrust,
		EngineWeight:   ac.Engine.Weight,
	}
	for _, frac := range fractions {
		summary.Segments = append(summary.Segments, segmentSummary{
			Kind:           frac.Kind.String(),
			WeightFraction: frac.WeightFraction,
			FuelBurned:     frac.FuelBurned,
			ReleasedWeight: frac.ReleasedWeight,
		})
	}

	f, err := os.Create(conf.path("design", "json"))
	if err != nil {
		return err
	}
	defer f.Close()
	marsh, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	f.Write(marsh)
	fmt.Printf("Saved design to %s.\n", f.Name())
	return nil
}
