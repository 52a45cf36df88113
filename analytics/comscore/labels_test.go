package comscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsKeepInsertionOrder(t *testing.T) {
	labels := LabelsOf("ns_st_mp", "youtube", "ns_st_vo", "80")
	labels.Set("c3", "*null")
	labels.Set("ns_st_mp", "vimeo")

	assert.Equal(t, []string{"ns_st_mp", "ns_st_vo", "c3"}, labels.Keys())
	assert.Equal(t, map[string]string{"ns_st_mp": "vimeo", "ns_st_vo": "80", "c3": "*null"}, labels.Map())
	assert.Equal(t, "{ns_st_mp=vimeo, ns_st_vo=80, c3=*null}", labels.String())
}

func TestLabelsDelete(t *testing.T) {
	labels := LabelsOf("a", "1", "b", "2", "c", "3")
	labels.Delete("b")
	labels.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, labels.Keys())
	_, ok := labels.Get("b")
	assert.False(t, ok)

	labels.Set("b", "4")
	assert.Equal(t, []string{"a", "c", "b"}, labels.Keys())
}

func TestLabelsClone(t *testing.T) {
	labels := LabelsOf("a", "1")
	clone := labels.Clone()
	clone.Set("b", "2")

	assert.Equal(t, 1, labels.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestNilLabels(t *testing.T) {
	var labels *Labels

	assert.Equal(t, 0, labels.Len())
	assert.Nil(t, labels.Keys())
	assert.Empty(t, labels.Map())
	assert.Equal(t, "{}", labels.String())
	assert.Equal(t, 0, labels.Clone().Len())
	labels.Delete("a")
}

func TestLabelsMarshalJSON(t *testing.T) {
	labels := LabelsOf("name", "Completed Order", "value", "20.0", "quote", `say "hi"`)

	b, err := labels.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `{"name":"Completed Order","value":"20.0","quote":"say \"hi\""}`, string(b))
}
