package service

import (
	"github.com/siakadku/siakad-backend/internal/model"
	"github.com/siakadku/siakad-backend/internal/permset"
)

// PermissionEntry is one catalog permission with its derived label.
type PermissionEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CategoryPermissions is one catalog category with its ordered permissions.
type CategoryPermissions struct {
	Category    string            `json:"category"`
	Permissions []PermissionEntry `json:"permissions"`
}

// CategorySummary is the tri-state selection status of one category.
type CategorySummary struct {
	Category string          `json:"category"`
	Status   permset.TriState `json:"status"`
	Selected []string        `json:"selected"`
}

// GetCatalog returns the full permission catalog grouped by category,
// in display order.
func (s *RoleService) GetCatalog() []CategoryPermissions {
	out := make([]CategoryPermissions, 0, len(model.Categories))
	for _, cat := range model.Categories {
		perms := model.PermissionsByCategory(cat)
		entries := make([]PermissionEntry, len(perms))
		for i, p := range perms {
			entries[i] = PermissionEntry{Key: string(p), Label: p.Label()}
		}
		out = append(out, CategoryPermissions{Category: string(cat), Permissions: entries})
	}
	return out
}

// GetDefaultPermissions returns the default permission codes for a
// built-in role name. Unknown names yield an empty list, not an error;
// the result only pre-populates the role creation form.
func (s *RoleService) GetDefaultPermissions(roleName string) []string {
	defaults := model.DefaultPermissionsFor(roleName)
	out := make([]string, len(defaults))
	for i, p := range defaults {
		out[i] = string(p)
	}
	return out
}

// SummarizeSelection computes the per-category tri-state status of a
// candidate permission set, so clients can redraw their category
// indicators without reimplementing the aggregation.
func (s *RoleService) SummarizeSelection(codes []string) []CategorySummary {
	selection := permset.FromStrings(codes)
	out := make([]CategorySummary, 0, len(model.Categories))
	for _, cat := range model.Categories {
		keys := model.PermissionsByCategory(cat)
		selected := []string{}
		for _, k := range keys {
			if selection.Has(k) {
				selected = append(selected, string(k))
			}
		}
		out = append(out, CategorySummary{
			Category: string(cat),
			Status:   permset.Aggregate(keys, selection),
			Selected: selected,
		})
	}
	return out
}
