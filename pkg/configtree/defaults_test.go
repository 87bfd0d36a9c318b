package configtree

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	section := &testSectionCollection{}

	require.NoError(t, ApplyDefaults(section))
	assert.False(t, section.Global)
	require.NotNil(t, section.Element)
	assert.Equal(t, 12, section.Element.Size)
	assert.Nil(t, section.URLs)
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	url := &testURL{Port: 4041}

	require.NoError(t, ApplyDefaults(url))
	assert.Equal(t, 4041, url.Port)
	assert.Equal(t, "testurl", url.Name)
	assert.Equal(t, "http://www.testurl.com", url.URL)
}

func TestApplyDefaults_InvalidInput(t *testing.T) {
	assert.ErrorIs(t, ApplyDefaults(nil), ErrNilObject)
	assert.ErrorIs(t, ApplyDefaults(testURL{}), ErrNilObject)

	n := 3
	assert.ErrorIs(t, ApplyDefaults(&n), ErrNotConfigObject)
}

func TestApplyDefaults_BadDefault(t *testing.T) {
	type broken struct {
		Port int `config:"port" default:"eighty"`
	}

	err := ApplyDefaults(&broken{})
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Port", schemaErr.Field)
}

func TestSetText(t *testing.T) {
	type target struct {
		S   string
		B   bool
		I8  int8
		U16 uint16
		F   float64
		D   time.Duration
		T   time.Time
		P   *int
	}

	var v target
	rv := reflect.ValueOf(&v).Elem()

	require.NoError(t, SetText(rv.FieldByName("S"), "hello"))
	require.NoError(t, SetText(rv.FieldByName("B"), "true"))
	require.NoError(t, SetText(rv.FieldByName("I8"), "-12"))
	require.NoError(t, SetText(rv.FieldByName("U16"), "65535"))
	require.NoError(t, SetText(rv.FieldByName("F"), "2.5"))
	require.NoError(t, SetText(rv.FieldByName("D"), "1m30s"))
	require.NoError(t, SetText(rv.FieldByName("T"), "2024-01-02T03:04:05Z"))
	require.NoError(t, SetText(rv.FieldByName("P"), "7"))

	assert.Equal(t, "hello", v.S)
	assert.True(t, v.B)
	assert.Equal(t, int8(-12), v.I8)
	assert.Equal(t, uint16(65535), v.U16)
	assert.Equal(t, 2.5, v.F)
	assert.Equal(t, 90*time.Second, v.D)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), v.T)
	require.NotNil(t, v.P)
	assert.Equal(t, 7, *v.P)

	assert.Error(t, SetText(rv.FieldByName("I8"), "300"))
	assert.Error(t, SetText(rv.FieldByName("B"), "maybe"))
	assert.Error(t, SetText(reflect.ValueOf(v).FieldByName("S"), "x"), "unaddressable value")
}

func TestSetText_IntegersAreDecimal(t *testing.T) {
	type target struct {
		I int
		U uint8
	}

	var v target
	rv := reflect.ValueOf(&v).Elem()

	require.NoError(t, SetText(rv.FieldByName("I"), "013"))
	require.NoError(t, SetText(rv.FieldByName("U"), "0080"))
	assert.Equal(t, 13, v.I)
	assert.Equal(t, uint8(80), v.U)

	assert.Error(t, SetText(rv.FieldByName("I"), "0x10"))
}

func TestSetText_Bool(t *testing.T) {
	var b bool
	rv := reflect.ValueOf(&b).Elem()

	require.NoError(t, SetText(rv, "TRUE"))
	assert.True(t, b)
	require.NoError(t, SetText(rv, "false"))
	assert.False(t, b)

	for _, text := range []string{"1", "0", "t", "F", "yes"} {
		assert.Error(t, SetText(rv, text), text)
	}
}

func TestApplyDefaults_LeadingZeroDefault(t *testing.T) {
	type padded struct {
		Port int `config:"port" default:"0080"`
	}

	var p padded
	require.NoError(t, ApplyDefaults(&p))
	assert.Equal(t, 80, p.Port)
}
