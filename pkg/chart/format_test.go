package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name    string
		seconds *float64
		leader  bool
		want    string
	}{
		{name: "nil renders dash", seconds: nil, leader: true, want: "-"},
		{name: "nil renders dash as gap", seconds: nil, leader: false, want: "-"},
		{name: "leader time", seconds: ptr(65.321), leader: true, want: "1:05.321"},
		{name: "leader under a minute", seconds: ptr(59.9), leader: true, want: "0:59.900"},
		{name: "leader exact minutes", seconds: ptr(120), leader: true, want: "2:00.000"},
		{name: "gap", seconds: ptr(5.5), leader: false, want: "+5.500"},
		{name: "small gap", seconds: ptr(0.062), leader: false, want: "+0.062"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.seconds, tt.leader))
		})
	}
}
