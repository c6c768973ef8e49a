package main

import (
	"testing"

	pymote "github.com/ManfredAabye/OpenSim-Pymote"
)

func TestStatsLine(t *testing.T) {
	fps := 54.3
	agents := 5
	memory := 512.5

	tests := []struct {
		name  string
		stats pymote.Stats
		want  string
	}{
		{"all fields", pymote.Stats{FPS: &fps, Agents: &agents, MemoryMB: &memory},
			"fps=54.3 agents=5 memory=512.5 MB"},
		{"partial", pymote.Stats{Agents: &agents},
			"fps=- agents=5 memory=-"},
		{"empty", pymote.Stats{},
			"fps=- agents=- memory=-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statsLine(tt.stats); got != tt.want {
				t.Errorf("statsLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
