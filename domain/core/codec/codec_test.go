package codec

import (
	"encoding/json"
	"testing"

	pkgerrors "graphbench/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_CanonicalShape(t *testing.T) {
	data, err := Serialize([]string{"A AND b_of", "NOT owns"})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"A AND b_of", "NOT owns"}, doc.Constraints)
}

func TestSerialize_NilListBecomesEmptyArray(t *testing.T) {
	data, err := Serialize(nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"constraints":[]}`, string(data))
}

func TestDeserialize_CanonicalShape(t *testing.T) {
	constraints, err := Deserialize([]byte(`{"constraints":["knows","owns"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"knows", "owns"}, constraints)
}

func TestDeserialize_PayloadShape(t *testing.T) {
	constraints, err := Deserialize([]byte(`{"payload":{"constraints":["knows"]}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"knows"}, constraints)
}

func TestDeserialize_ModelDumpShape(t *testing.T) {
	constraints, err := Deserialize([]byte(`{"model_dump":{"constraints":["knows"]}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"knows"}, constraints)
}

func TestDeserialize_TopLevelWinsOverLegacyShapes(t *testing.T) {
	raw := []byte(`{
		"constraints": ["top"],
		"payload": {"constraints": ["legacy"]},
		"model_dump": {"constraints": ["older"]}
	}`)

	constraints, err := Deserialize(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"top"}, constraints)
}

func TestDeserialize_PayloadWinsOverModelDump(t *testing.T) {
	raw := []byte(`{
		"payload": {"constraints": ["legacy"]},
		"model_dump": {"constraints": ["older"]}
	}`)

	constraints, err := Deserialize(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"legacy"}, constraints)
}

func TestDeserialize_EmptyListIsValid(t *testing.T) {
	constraints, err := Deserialize([]byte(`{"constraints":[]}`))
	require.NoError(t, err)

	assert.NotNil(t, constraints)
	assert.Empty(t, constraints)
}

func TestDeserialize_UnrecognizedShape(t *testing.T) {
	_, err := Deserialize([]byte(`{"foo":1}`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
}

func TestDeserialize_ConstraintsNotAList(t *testing.T) {
	_, err := Deserialize([]byte(`{"constraints":"knows"}`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
}

func TestDeserialize_ModelDumpConstraintsNotAList(t *testing.T) {
	_, err := Deserialize([]byte(`{"model_dump":{"constraints":42}}`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
}

func TestDeserialize_InvalidJSON(t *testing.T) {
	_, err := Deserialize([]byte(`not json`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
}

func TestDeserialize_NonStringElements(t *testing.T) {
	_, err := Deserialize([]byte(`{"constraints":[1,2]}`))

	assert.True(t, pkgerrors.IsMalformedDocument(err))
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	original := []string{"A AND b_of", "C1 OR C2", "NOT owns"}

	data, err := Serialize(original)
	require.NoError(t, err)

	back, err := Deserialize(data)
	require.NoError(t, err)

	assert.Equal(t, original, back)
}
