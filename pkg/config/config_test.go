package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Params)
	}{
		{"negative prominence", func(p *Params) { p.ValleyProminence = -1 }},
		{"zero plateau window", func(p *Params) { p.PlateauWindow = 1 }},
		{"zero gradient window", func(p *Params) { p.GradientWindow = 0 }},
		{"negative split gap", func(p *Params) { p.SplitGap = -1 }},
		{"tiny min samples", func(p *Params) { p.MinSamples = 2 }},
		{"negative scale", func(p *Params) { p.PositioningScale = -3000 }},
		{"zero sigma", func(p *Params) { p.SmoothingSigma = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mut(&p)
			if err := p.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	data := "plateau_window: 11\nvalley_prominence: 2.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.PlateauWindow != 11 {
		t.Errorf("PlateauWindow = %d, want 11", p.PlateauWindow)
	}
	if p.ValleyProminence != 2.5 {
		t.Errorf("ValleyProminence = %v, want 2.5", p.ValleyProminence)
	}
	// Unset fields fall back to the defaults.
	if p.GradientWindow != 3 {
		t.Errorf("GradientWindow = %d, want default 3", p.GradientWindow)
	}
	if p.PositioningScale != 3000 {
		t.Errorf("PositioningScale = %v, want default 3000", p.PositioningScale)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")

	want := Default()
	want.PlateauWindow = 13
	want.SplitGap = 8
	if err := want.Write(path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	if err := os.WriteFile(path, []byte("plateau_window: -4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a negative window")
	}
}
