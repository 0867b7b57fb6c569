// Package codec serializes constraint lists to the portable constraint
// document format and reads them back, tolerating the legacy document shapes
// produced by earlier exports.
package codec

import (
	"encoding/json"

	pkgerrors "graphbench/pkg/errors"
)

// Document is the canonical constraint document shape. It is the only shape
// produced on export.
type Document struct {
	Constraints []string `json:"constraints"`
}

// Serialize produces the canonical document for a constraint list
func Serialize(constraints []string) ([]byte, error) {
	if constraints == nil {
		constraints = []string{}
	}
	data, err := json.MarshalIndent(Document{Constraints: constraints}, "", "  ")
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to encode constraint document").WithCause(err)
	}
	return data, nil
}

// extractor attempts to pull a constraint list out of one document shape.
// It returns (nil, false) when the shape does not apply.
type extractor func(doc map[string]json.RawMessage) ([]string, bool)

// extractors is the priority-ordered chain of accepted document shapes.
// The first matching shape wins.
var extractors = []extractor{
	topLevelConstraints,
	payloadConstraints,
	modelDumpConstraints,
}

// Deserialize parses a constraint document in any accepted shape and returns
// its constraint list. Unparseable input, or input matching none of the
// shapes, yields a MalformedDocument error and no partial result.
func Deserialize(raw []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, pkgerrors.NewMalformedDocumentError("constraint document is not valid JSON").WithCause(err)
	}

	for _, extract := range extractors {
		if constraints, ok := extract(doc); ok {
			return constraints, nil
		}
	}

	return nil, pkgerrors.NewMalformedDocumentError("constraint document has no recognized shape")
}

// topLevelConstraints handles the canonical shape { "constraints": [...] }
func topLevelConstraints(doc map[string]json.RawMessage) ([]string, bool) {
	return stringList(doc["constraints"])
}

// payloadConstraints handles the legacy shape { "payload": { "constraints": [...] } }
func payloadConstraints(doc map[string]json.RawMessage) ([]string, bool) {
	return nestedStringList(doc["payload"])
}

// modelDumpConstraints handles the legacy shape { "model_dump": { "constraints": [...] } }.
// Earlier readers used this branch without checking the value was a list;
// here it must be one, matching the other branches.
func modelDumpConstraints(doc map[string]json.RawMessage) ([]string, bool) {
	return nestedStringList(doc["model_dump"])
}

func nestedStringList(raw json.RawMessage) ([]string, bool) {
	if raw == nil {
		return nil, false
	}
	var nested map[string]json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil, false
	}
	return stringList(nested["constraints"])
}

func stringList(raw json.RawMessage) ([]string, bool) {
	if raw == nil {
		return nil, false
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = []string{}
	}
	return list, true
}
