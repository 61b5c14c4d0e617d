package tabular

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_SetAndPrimitiveMap(t *testing.T) {
	in := NewInput()
	in.Set("epoch", 3)
	in.Set("loss", 0.25)
	in.Set("done", false)

	m := in.PrimitiveMap()
	assert.Equal(t, map[string]string{
		"epoch": "3",
		"loss":  "0.25",
		"done":  "false",
	}, m)

	// The snapshot is a copy.
	m["epoch"] = "mutated"
	assert.Equal(t, "3", in.PrimitiveMap()["epoch"])
}

func TestInput_OverwriteKeepsPosition(t *testing.T) {
	in := NewInput()
	in.Set("a", 1)
	in.Set("b", 2)
	in.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, in.Keys())
	assert.Equal(t, "3", in.PrimitiveMap()["a"])
}

func TestInput_RecordedTracking(t *testing.T) {
	in := NewInput()
	in.Set("a", 1)
	in.Set("b", 2)
	in.Set("c", 3)

	in.MarkRecorded("b")
	assert.Equal(t, []string{"a", "c"}, in.UnrecordedKeys())

	in.MarkRecorded("a")
	in.MarkRecorded("c")
	assert.Empty(t, in.UnrecordedKeys())
}

func TestInput_Clear(t *testing.T) {
	in := NewInput()
	in.Set("a", 1)
	in.MarkRecorded("a")

	in.Clear()
	assert.Empty(t, in.PrimitiveMap())
	assert.Empty(t, in.Keys())

	in.Set("b", 2)
	assert.Equal(t, []string{"b"}, in.UnrecordedKeys())
}

func TestInput_WithPrefix(t *testing.T) {
	in := NewInput()
	in.Set("outside", 0)
	in.WithPrefix("train/", func() {
		in.Set("loss", 1)
		in.WithPrefix("grad/", func() {
			in.Set("norm", 2)
		})
	})
	in.Set("after", 3)

	assert.Equal(t, []string{"outside", "train/loss", "train/grad/norm", "after"}, in.Keys())
}

type fakeStringer struct{}

func (fakeStringer) String() string { return "stringer" }

func TestPrimitive(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bool", true, "true"},
		{"int", -7, "-7"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint", uint(9), "9"},
		{"float64", 0.5, "0.5"},
		{"float32", float32(2), "2"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", fakeStringer{}, "stringer"},
		{"fallback", []int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Primitive(tt.value))
		})
	}
}
