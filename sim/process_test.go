package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name    string
		procs   []Process
		wantErr bool
	}{
		{"empty", nil, false},
		{"valid", []Process{{ID: 1, Arrival: 0, Burst: 1}, {ID: 2, Arrival: 7, Burst: 3}}, false},
		{"zero burst", []Process{{ID: 1, Arrival: 0, Burst: 0}}, true},
		{"negative burst", []Process{{ID: 1, Arrival: 0, Burst: -2}}, true},
		{"negative arrival", []Process{{ID: 1, Arrival: -1, Burst: 1}}, true},
		{"zero id", []Process{{ID: 0, Arrival: 0, Burst: 1}}, true},
		{"duplicate id", []Process{{ID: 3, Burst: 1}, {ID: 4, Burst: 1}, {ID: 3, Burst: 2}}, true},
		{"arrival near max int", []Process{{ID: 1, Arrival: math.MaxInt - 1, Burst: 5}}, true},
		{"total burst overflows", []Process{{ID: 1, Burst: math.MaxInt}, {ID: 2, Burst: 1}}, true},
		{"late arrival plus earlier bursts", []Process{{ID: 1, Burst: math.MaxInt / 2}, {ID: 2, Arrival: math.MaxInt / 2, Burst: 1}}, true},
		{"large but representable", []Process{{ID: 1, Arrival: math.MaxInt / 4, Burst: math.MaxInt / 4}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProcesses(tt.procs)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProcesses_NamesOffendingProcess(t *testing.T) {
	err := ValidateProcesses([]Process{{ID: 1, Burst: 1}, {ID: 9, Burst: 0}})
	assert.ErrorContains(t, err, "process 9 (index 1)")
}

func TestTickLimit(t *testing.T) {
	assert.Equal(t, 0, tickLimit(nil))
	assert.Equal(t, 10+3+4, tickLimit([]Process{{Arrival: 10, Burst: 3}, {Arrival: 2, Burst: 4}}))
}
