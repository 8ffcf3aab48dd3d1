// file: internals/features/personnel/model/trainee_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTraineeAgeAt(t *testing.T) {
	trainee := TraineeModel{
		TraineeDateOfBirth: time.Date(2007, 5, 21, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 17, trainee.AgeAt(time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, trainee.AgeAt(time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, trainee.AgeAt(time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)))
}
