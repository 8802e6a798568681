package inject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freshfetch/errors"
	"freshfetch/inject"
)

func TestSetLastWriterWins(t *testing.T) {
	r := inject.NewRegistry()
	require.NoError(t, r.Set("info", inject.String("first")))
	require.NoError(t, r.Set("infoWidth", inject.Int(3)))
	require.NoError(t, r.Set("info", inject.String("second")))

	v, ok := r.Get("info")
	require.True(t, ok)
	assert.Equal(t, inject.String("second"), v)
	assert.Equal(t, []string{"info", "infoWidth"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestSetReplacesRecordsWithoutMerging(t *testing.T) {
	r := inject.NewRegistry()
	require.NoError(t, r.PublishRecord("shell", inject.F("name", inject.String("zsh")), inject.F("version", inject.String("5.9"))))
	require.NoError(t, r.PublishRecord("shell", inject.F("name", inject.String("bash"))))

	v, _ := r.Get("shell")
	rec := v.(inject.Record)
	require.Len(t, rec, 1)
	_, hasVersion := rec.Get("version")
	assert.False(t, hasVersion)
}

func TestPublishRecordFailures(t *testing.T) {
	tests := []struct {
		name   string
		global string
		fields []inject.Field
	}{
		{
			name:   "invalid global name",
			global: "1memory",
			fields: []inject.Field{inject.F("max", inject.Int(1))},
		},
		{
			name:   "invalid field name",
			global: "memory",
			fields: []inject.Field{inject.F("max", inject.Int(1)), inject.F("used bytes", inject.Int(1))},
		},
		{
			name:   "nil field value",
			global: "memory",
			fields: []inject.Field{inject.F("max", nil)},
		},
		{
			name:   "duplicate field",
			global: "memory",
			fields: []inject.Field{inject.F("max", inject.Int(1)), inject.F("max", inject.Int(2))},
		},
		{
			name:   "invalid nested field",
			global: "cpu",
			fields: []inject.Field{inject.F("freq", inject.Record{inject.F("", inject.Int(1))})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := inject.NewRegistry()
			err := r.PublishRecord(tt.global, tt.fields...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPublish))
			assert.Equal(t, 0, r.Len(), "a failed publish must not write anything")
		})
	}
}

func TestEachStopsAtFirstError(t *testing.T) {
	r := inject.NewRegistry()
	require.NoError(t, r.Set("a", inject.Int(1)))
	require.NoError(t, r.Set("b", inject.Int(2)))

	var seen []string
	err := r.Each(func(name string, _ inject.Value) error {
		seen = append(seen, name)
		return errors.New(errors.ErrPublish, "boom")
	})
	require.Error(t, err)
	assert.Equal(t, []string{"a"}, seen)
}

func TestReset(t *testing.T) {
	r := inject.NewRegistry()
	require.NoError(t, r.Set("a", inject.Int(1)))
	r.Reset()
	assert.Equal(t, 0, r.Len())
	_, ok := r.Get("a")
	assert.False(t, ok)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, inject.KindInt, inject.Int(1).Kind())
	assert.Equal(t, inject.KindString, inject.String("x").Kind())
	assert.Equal(t, inject.KindRecord, inject.Record{}.Kind())
	assert.Equal(t, "record", inject.KindRecord.String())
}
