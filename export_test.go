package assist

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{Filename: "x"}).IsUseless() {
		t.Fatal("config without outputs must be useless")
	}
	if (ExportConfig{Filename: "x", AsCSV: true}).IsUseless() {
		t.Fatal("CSV config must not be useless")
	}
}

func TestExportCarpet(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Design(mission); err != nil {
		t.Fatalf("design: %s", err)
	}
	dir := t.TempDir()
	conf := ExportConfig{Filename: "fighter", OutputDir: dir, AsCSV: true}
	if err := ExportCarpet(aircraft, conf); err != nil {
		t.Fatalf("export carpet: %s", err)
	}
	data, err := os.ReadFile(dir + "/carpet-fighter.csv")
	if err != nil {
		t.Fatalf("read carpet: %s", err)
	}
	content := string(data)
	if !strings.Contains(content, "w_to_s") || !strings.Contains(content, "envelope") {
		t.Fatal("carpet header missing columns")
	}
	carpet, _ := aircraft.Carpet()
	// Header comments, column names and one row per wing loading.
	if got := strings.Count(content, "\n"); got < len(carpet.WingLoading) {
		t.Fatalf("carpet has %d lines", got)
	}
}

func TestExportDesign(t *testing.T) {
	aircraft, mission := fighterFixture(t)
	if err := aircraft.Design(mission); err != nil {
		t.Fatalf("design: %s", err)
	}
	dir := t.TempDir()
	conf := ExportConfig{Filename: "fighter", OutputDir: dir, AsJSON: true}
	if err := ExportDesign(aircraft, conf); err != nil {
		t.Fatalf("export design: %s", err)
	}
	data, err := os.ReadFile(dir + "/design-fighter.json")
	if err != nil {
		t.Fatalf("read design: %s", err)
	}
	var summary map[string]interface{}
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("unmarshal design: %s", err)
	}
	grossWeight, _ := aircraft.GrossWeight()
	if summary["w_to"].(float64) != grossWeight {
		t.Fatal("exported gross weight disagrees")
	}
	if summary["class"].(string) != "jet_fighter" {
		t.Fatal("exported class disagrees")
	}
}

func TestExportRequiresSynthesis(t *testing.T) {
	aircraft, _ := fighterFixture(t)
	conf := ExportConfig{Filename: "x", OutputDir: t.TempDir(), AsCSV: true, AsJSON: true}
	if err := ExportCarpet(aircraft, conf); err == nil {
		t.Fatal("no error exporting an unsized carpet")
	}
	if err := ExportDesign(aircraft, conf); err == nil {
		t.Fatal("no error exporting an unsized design")
	}
}
