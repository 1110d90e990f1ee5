package common

import "testing"

func TestDetectServerProfile(t *testing.T) {
	tests := []struct {
		cpus     int
		name     string
		maxProcs int
	}{
		{cpus: 1, name: "small", maxProcs: 1},
		{cpus: 2, name: "small", maxProcs: 1},
		{cpus: 4, name: "medium", maxProcs: 4},
		{cpus: 8, name: "medium", maxProcs: 8},
		{cpus: 32, name: "large", maxProcs: 32},
	}

	for _, tt := range tests {
		p := DetectServerProfile(tt.cpus)
		if p.Name != tt.name || p.MaxProcs != tt.maxProcs {
			t.Errorf("DetectServerProfile(%d) = %+v, expected %s/%d", tt.cpus, p, tt.name, tt.maxProcs)
		}
		if p.GOGC <= 0 || p.MemLimit <= 0 {
			t.Errorf("DetectServerProfile(%d) has unset limits: %+v", tt.cpus, p)
		}
	}
}
