package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mauv0809/tennis-directory/internal/metrics"
	"github.com/mauv0809/tennis-directory/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Evaluation {
	return Evaluation{PlayerID: "1", TennisScore: score.MustNew(7), FitnessScore: score.MustNew(4)}
}

func TestEvaluation_JSON(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)
	assert.JSONEq(t, `{"playerId":"1","tennisScore":7,"fitnessScore":4}`, string(data))

	var e Evaluation
	require.NoError(t, json.Unmarshal(data, &e))
	assert.Equal(t, sample(), e)
}

func TestEvaluation_UnmarshalRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"missing player", `{"tennisScore":7,"fitnessScore":4}`, ErrMissingPlayer},
		{"missing tennis", `{"playerId":"1","fitnessScore":4}`, ErrMissingScore},
		{"missing fitness", `{"playerId":"1","tennisScore":4}`, ErrMissingScore},
		{"out of range", `{"playerId":"1","tennisScore":0,"fitnessScore":4}`, score.ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Evaluation
			err := json.Unmarshal([]byte(tt.body), &e)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMulti_AttemptsEverySink(t *testing.T) {
	m := metrics.NewMock()
	ok1 := NewMockRecorder()
	failing := NewMockRecorder()
	failing.RecordFunc = func(context.Context, Evaluation) error { return errors.New("boom") }
	ok2 := NewMockRecorder()

	rec := Multi(m,
		Sink{Name: "first", Recorder: ok1},
		Sink{Name: "failing", Recorder: failing},
		Sink{Name: "second", Recorder: ok2},
	)
	err := rec.Record(context.Background(), sample())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failing: boom")
	assert.Len(t, ok1.Calls(), 1)
	assert.Len(t, failing.Calls(), 1)
	assert.Len(t, ok2.Calls(), 1)
	assert.Equal(t, 1, m.EvaluationsRecorded("first"))
	assert.Equal(t, 1, m.EvaluationsRecorded("second"))
	assert.Equal(t, 1, m.EvaluationsFailed("failing"))
}

func TestMulti_NoSinks(t *testing.T) {
	assert.NoError(t, Multi(metrics.NewMock()).Record(context.Background(), sample()))
}

func TestSaveTo_BuildsEvaluation(t *testing.T) {
	rec := NewMockRecorder()
	save := SaveTo(context.Background(), rec)

	save("1", score.MustNew(7), score.MustNew(4))

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, sample(), rec.Calls()[0])
}

func TestSaveTo_SwallowsErrors(t *testing.T) {
	rec := NewMockRecorder()
	rec.RecordFunc = func(context.Context, Evaluation) error { return errors.New("offline") }

	assert.NotPanics(t, func() {
		SaveTo(context.Background(), rec)("1", score.MustNew(1), score.MustNew(1))
	})
}

func TestSessionWithRecorder(t *testing.T) {
	rec := NewMockRecorder()
	s := NewSession(SaveTo(context.Background(), Multi(metrics.NewMock(), Sink{Name: "log", Recorder: LogRecorder{}}, Sink{Name: "mock", Recorder: rec})), nil)

	s.Open(murray)
	s.SetFitness(score.MustNew(9))
	s.Save()

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, Evaluation{PlayerID: "1", TennisScore: score.MustNew(5), FitnessScore: score.MustNew(9)}, rec.Calls()[0])
}

func TestRelayObserver(t *testing.T) {
	payload := []byte(`{"playerId":"1","tennisScore":7,"fitnessScore":4}`)

	t.Run("records accepted evaluations", func(t *testing.T) {
		rec := NewMockRecorder()
		NewRelayObserver(rec).Relayed(context.Background(), payload, 201)
		require.Len(t, rec.Calls(), 1)
		assert.Equal(t, sample(), rec.Calls()[0])
	})

	t.Run("ignores rejected evaluations", func(t *testing.T) {
		rec := NewMockRecorder()
		NewRelayObserver(rec).Relayed(context.Background(), payload, 400)
		assert.Empty(t, rec.Calls())
	})

	t.Run("ignores opaque payloads", func(t *testing.T) {
		rec := NewMockRecorder()
		NewRelayObserver(rec).Relayed(context.Background(), []byte(`{"a":1}`), 200)
		assert.Empty(t, rec.Calls())
	})

	t.Run("recorder errors are not fatal", func(t *testing.T) {
		rec := NewMockRecorder()
		rec.RecordFunc = func(context.Context, Evaluation) error { return errors.New("down") }
		assert.NotPanics(t, func() {
			NewRelayObserver(rec).Relayed(context.Background(), payload, 200)
		})
	})
}
