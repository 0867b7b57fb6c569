package valueobjects

import "sort"

// Vocabulary is the schema snapshot of the active graph instance: the label
// set, the relation-type set, and the ordered node name list. It is replaced
// wholesale on every successful schema reload and never merged incrementally.
type Vocabulary struct {
	labels    map[string]struct{}
	relTypes  map[string]struct{}
	nodeNames []string
}

// NewVocabulary builds a vocabulary snapshot from the two schema responses.
// Nil slices are accepted and yield empty members.
func NewVocabulary(labels, relTypes, nodeNames []string) Vocabulary {
	v := Vocabulary{
		labels:    make(map[string]struct{}, len(labels)),
		relTypes:  make(map[string]struct{}, len(relTypes)),
		nodeNames: make([]string, 0, len(nodeNames)),
	}
	for _, l := range labels {
		v.labels[l] = struct{}{}
	}
	for _, r := range relTypes {
		v.relTypes[r] = struct{}{}
	}
	v.nodeNames = append(v.nodeNames, nodeNames...)
	return v
}

// EmptyVocabulary returns the all-empty triple
func EmptyVocabulary() Vocabulary {
	return NewVocabulary(nil, nil, nil)
}

// HasRelType checks relation-type membership with an exact, case-sensitive match
func (v Vocabulary) HasRelType(name string) bool {
	_, ok := v.relTypes[name]
	return ok
}

// HasLabel checks label membership with an exact, case-sensitive match
func (v Vocabulary) HasLabel(name string) bool {
	_, ok := v.labels[name]
	return ok
}

// Labels returns a sorted copy of the label set
func (v Vocabulary) Labels() []string {
	out := make([]string, 0, len(v.labels))
	for l := range v.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// RelTypes returns a sorted copy of the relation-type set
func (v Vocabulary) RelTypes() []string {
	out := make([]string, 0, len(v.relTypes))
	for r := range v.relTypes {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// RelTypeSet returns the relation-type vocabulary as a membership set.
// The returned map is a copy; callers may not mutate session state through it.
func (v Vocabulary) RelTypeSet() map[string]struct{} {
	out := make(map[string]struct{}, len(v.relTypes))
	for r := range v.relTypes {
		out[r] = struct{}{}
	}
	return out
}

// NodeNames returns a copy of the ordered node name list
func (v Vocabulary) NodeNames() []string {
	out := make([]string, len(v.nodeNames))
	copy(out, v.nodeNames)
	return out
}

// IsEmpty reports whether all three members are empty
func (v Vocabulary) IsEmpty() bool {
	return len(v.labels) == 0 && len(v.relTypes) == 0 && len(v.nodeNames) == 0
}
