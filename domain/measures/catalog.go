// Package measures defines the fixed catalog of inconsistency measures the
// remote computation service can produce.
package measures

// Measure describes one catalog entry. Label and description are display-only.
type Measure struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Catalog is the fixed enumeration of measure identifiers, in rendering order.
// It is not user-editable.
var Catalog = []Measure{
	{
		ID:          "mu_drastic",
		Label:       "Drastic measure",
		Description: "1 if any constraint is violated, 0 otherwise",
	},
	{
		ID:          "mu_violated_constraints",
		Label:       "Violated constraints",
		Description: "Number of constraints with at least one violation",
	},
	{
		ID:          "problematic_pairs",
		Label:       "Problematic pairs",
		Description: "Number of node pairs witnessing a violation",
	},
	{
		ID:          "minimal_problematic_graphs",
		Label:       "Minimal problematic subgraphs",
		Description: "Number of minimal inconsistent subgraphs",
	},
	{
		ID:          "minimal_problematic_paths",
		Label:       "Minimal problematic paths",
		Description: "Number of minimal violating paths",
	},
	{
		ID:          "problematic_edges",
		Label:       "Problematic edges",
		Description: "Number of edges involved in some violation",
	},
	{
		ID:          "problematic_labels",
		Label:       "Problematic labels",
		Description: "Number of relation labels involved in some violation",
	},
	{
		ID:          "problematic_vertices",
		Label:       "Problematic vertices",
		Description: "Number of vertices involved in some violation",
	},
	{
		ID:          "I_E_minus",
		Label:       "I_E-",
		Description: "Minimal edge removals restoring consistency",
	},
	{
		ID:          "I_E_plus",
		Label:       "I_E+",
		Description: "Edge additions resolving all violated inclusions",
	},
	{
		ID:          "I_V_minus",
		Label:       "I_V-",
		Description: "Minimal vertex removals restoring consistency",
	},
}

// IDs returns the catalog identifiers in catalog order
func IDs() []string {
	ids := make([]string, 0, len(Catalog))
	for _, m := range Catalog {
		ids = append(ids, m.ID)
	}
	return ids
}

// Contains reports whether an identifier belongs to the catalog
func Contains(id string) bool {
	for _, m := range Catalog {
		if m.ID == id {
			return true
		}
	}
	return false
}
