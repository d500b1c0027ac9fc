package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"QRSHIP_MAX_CHUNK":         "250",
				"QRSHIP_MAX_TOTAL_SIZE":    "5000",
				"QRSHIP_MAX_PARTS":         "20",
				"QRSHIP_CONCURRENCY":       "4",
				"QRSHIP_ECC":               "H",
				"QRSHIP_FRAMING":           "binary",
				"QRSHIP_RENDER":            "compact",
				"QRSHIP_LOG_LEVEL":         "debug",
				"QRSHIP_AUTOPLAY_INTERVAL": "2s",
				"QRSHIP_RAW":               "true",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				MaxChunkLen:      250,
				MaxTotalSize:     5000,
				MaxParts:         20,
				Concurrency:      4,
				ECC:              "H",
				Framing:          "binary",
				Render:           "compact",
				LogLevel:         "debug",
				AutoPlayInterval: 2 * time.Second,
				Raw:              true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"QRSHIP_ECC":       "L",
				"QRSHIP_MAX_CHUNK": "50",
			},
			changed: map[string]bool{"ecc": true},
			initial: Config{ECC: "quartile"},
			expected: Config{
				ECC:         "quartile",
				MaxChunkLen: 50,
			},
		},
		{
			name:     "returns error for invalid duration",
			envVars:  map[string]string{"QRSHIP_AUTOPLAY_INTERVAL": "soon"},
			changed:  map[string]bool{},
			wantErr:  true,
		},
		{
			name:     "returns error for invalid int",
			envVars:  map[string]string{"QRSHIP_MAX_CHUNK": "lots"},
			changed:  map[string]bool{},
			wantErr:  true,
		},
		{
			name:     "ignores non-positive int",
			envVars:  map[string]string{"QRSHIP_MAX_PARTS": "0"},
			changed:  map[string]bool{},
			initial:  Config{MaxParts: 9},
			expected: Config{MaxParts: 9},
		},
		{
			name:     "handles bool '1' as true",
			envVars:  map[string]string{"QRSHIP_RAW": "1"},
			changed:  map[string]bool{},
			expected: Config{Raw: true},
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"QRSHIP_RAW": "false"},
			changed:  map[string]bool{},
			initial:  Config{Raw: true},
			expected: Config{Raw: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
