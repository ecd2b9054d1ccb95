// Package registry holds the declarative knowledge about ArchiMate
// models: which folder each element type belongs to, which relationship
// types exist, which (source, relationship, target) triples are legal,
// the priority order used when repairing illegal relationships, and the
// autocomplete suggestion rules.
package registry

import (
	"sort"
	"strings"
)

// Canonical relationship type names
const (
	RelAssignment     = "AssignmentRelationship"
	RelRealization    = "RealizationRelationship"
	RelAssociation    = "AssociationRelationship"
	RelComposition    = "CompositionRelationship"
	RelAggregation    = "AggregationRelationship"
	RelServing        = "ServingRelationship"
	RelAccess         = "AccessRelationship"
	RelFlow           = "FlowRelationship"
	RelTriggering     = "TriggeringRelationship"
	RelSpecialization = "SpecializationRelationship"
	RelUsedBy         = "UsedByRelationship"
	RelInfluence      = "InfluenceRelationship"
)

// Wildcard matches any element type in rule target lists and any source
// type in the default rule.
const Wildcard = "*"

// RepairPriority is the fixed order in which the consistency engine
// tries replacement relationship types. Earlier entries carry more
// architectural meaning than later ones.
var RepairPriority = []string{
	RelRealization,
	RelAssignment,
	RelServing,
	RelAccess,
	RelInfluence,
	RelAssociation,
	RelUsedBy,
	RelFlow,
	RelTriggering,
	RelSpecialization,
	RelComposition,
	RelAggregation,
}

// Rule lists, per relationship type, the element types a given source
// type may point at. A single "*" entry allows any target.
type Rule struct {
	AllowedTargets map[string][]string
}

// Registry answers placement and legality questions about model content
type Registry struct {
	folderMap         map[string]string
	relationshipTypes map[string]struct{}
	rules             map[string]Rule
	autocomplete      []AutocompleteRule
}

// Default returns a registry loaded with the standard ArchiMate rule set
func Default() *Registry {
	return &Registry{
		folderMap:         folderMap,
		relationshipTypes: relationshipTypes,
		rules:             relationshipRules,
		autocomplete:      autocompleteRules,
	}
}

// StripPrefix removes a namespace prefix such as "archimate:" from a
// type name. Lookups accept both prefixed and short forms.
func StripPrefix(typeName string) string {
	if i := strings.LastIndex(typeName, ":"); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}

// FolderFor returns the display name of the folder an element type
// belongs in. Unmapped types land in Other.
func (r *Registry) FolderFor(elementType string) string {
	if name, ok := r.folderMap[StripPrefix(elementType)]; ok {
		return name
	}
	return "Other"
}

// FolderKindFor returns the folder type attribute for a folder display
// name, defaulting to other.
func (r *Registry) FolderKindFor(folderName string) string {
	if kind, ok := folderKinds[folderName]; ok {
		return kind
	}
	return "other"
}

// KnownElementType reports whether the element type has a folder mapping
func (r *Registry) KnownElementType(elementType string) bool {
	_, ok := r.folderMap[StripPrefix(elementType)]
	return ok
}

// IsRelationshipType reports whether the type names one of the twelve
// canonical relationship types.
func (r *Registry) IsRelationshipType(typeName string) bool {
	_, ok := r.relationshipTypes[StripPrefix(typeName)]
	return ok
}

// RelationshipTypes returns the canonical relationship type set, sorted
func (r *Registry) RelationshipTypes() []string {
	out := make([]string, 0, len(r.relationshipTypes))
	for t := range r.relationshipTypes {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// ruleFor returns the rule for a source type, falling back to the
// default wildcard rule.
func (r *Registry) ruleFor(sourceType string) Rule {
	if rule, ok := r.rules[sourceType]; ok {
		return rule
	}
	return r.rules[Wildcard]
}

// IsAllowed reports whether a relationship of relType may run from
// sourceType to targetType. Namespace prefixes are stripped.
func (r *Registry) IsAllowed(sourceType, targetType, relType string) bool {
	sourceType = StripPrefix(sourceType)
	targetType = StripPrefix(targetType)
	relType = StripPrefix(relType)

	targets, ok := r.ruleFor(sourceType).AllowedTargets[relType]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == Wildcard || t == targetType {
			return true
		}
	}
	return false
}

// LegalTypesBetween returns every relationship type legal from
// sourceType to targetType: source-specific rules first, then any
// default-rule types not already present. Order within each group is
// unspecified; callers impose RepairPriority where order matters.
func (r *Registry) LegalTypesBetween(sourceType, targetType string) []string {
	sourceType = StripPrefix(sourceType)
	targetType = StripPrefix(targetType)

	seen := make(map[string]struct{})
	var out []string

	collect := func(rule Rule) {
		for relType, targets := range rule.AllowedTargets {
			if _, dup := seen[relType]; dup {
				continue
			}
			for _, t := range targets {
				if t == Wildcard || t == targetType {
					seen[relType] = struct{}{}
					out = append(out, relType)
					break
				}
			}
		}
	}

	if rule, ok := r.rules[sourceType]; ok {
		collect(rule)
	}
	collect(r.rules[Wildcard])
	return out
}

// AutocompleteRules returns the suggestion rule set
func (r *Registry) AutocompleteRules() []AutocompleteRule {
	return r.autocomplete
}
