package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacesWithStart(t *testing.T) {
	tests := []struct {
		name       string
		places     []string
		start      string
		want       []string
		fixedStart bool
	}{
		{
			name:       "no start keeps input",
			places:     []string{"A", "B"},
			start:      "",
			want:       []string{"A", "B"},
			fixedStart: false,
		},
		{
			name:       "absent start is prepended",
			places:     []string{"A", "B"},
			start:      "Hotel",
			want:       []string{"Hotel", "A", "B"},
			fixedStart: true,
		},
		{
			name:       "listed start moves to the front",
			places:     []string{"A", "Hotel", "B"},
			start:      "Hotel",
			want:       []string{"Hotel", "A", "B"},
			fixedStart: true,
		},
		{
			name:       "start already first still pins",
			places:     []string{"Hotel", "A"},
			start:      "Hotel",
			want:       []string{"Hotel", "A"},
			fixedStart: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fixedStart := placesWithStart(tt.places, tt.start)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.fixedStart, fixedStart)
		})
	}
}
