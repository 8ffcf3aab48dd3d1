// file: internals/features/records/working_time/model/working_time_record_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkedMinutes(t *testing.T) {
	start := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		end          time.Time
		breakMinutes int
		want         int
		malformed    bool
	}{
		{"eight and a half hours minus break", start.Add(510 * time.Minute), 30, 480, false},
		{"no break", start.Add(480 * time.Minute), 0, 480, false},
		{"break longer than the period", start.Add(20 * time.Minute), 60, 0, false},
		{"end equals start", start, 0, 0, true},
		{"end before start", start.Add(-time.Hour), 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := WorkingTimeRecordModel{
				WorkingTimeRecordStartAt:      start,
				WorkingTimeRecordEndAt:        tc.end,
				WorkingTimeRecordBreakMinutes: tc.breakMinutes,
			}
			assert.Equal(t, tc.want, rec.WorkedMinutes())
			assert.Equal(t, tc.malformed, rec.Malformed())
		})
	}
}
