package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Switchdoctorstu/Archimate-Ingester/domain/index"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/model"
	"github.com/Switchdoctorstu/Archimate-Ingester/domain/registry"
)

// AutocompleteResult lists what a suggestion run added to the model
type AutocompleteResult struct {
	CreatedElements      []string `json:"created_elements"`
	CreatedRelationships []string `json:"created_relationships"`
}

// Total is the number of nodes the run created
func (r *AutocompleteResult) Total() int {
	return len(r.CreatedElements) + len(r.CreatedRelationships)
}

// AutocompleteEngine applies the registry's suggestion rules: for each
// element pair matching a rule's type constraint whose conditions all
// hold, it creates the suggested relationships and, for intermediary
// rules, the connecting element.
type AutocompleteEngine struct {
	registry *registry.Registry
	logger   *zap.Logger
}

// NewAutocompleteEngine creates an autocomplete engine
func NewAutocompleteEngine(reg *registry.Registry, logger *zap.Logger) *AutocompleteEngine {
	return &AutocompleteEngine{
		registry: reg,
		logger:   logger,
	}
}

// Run applies every suggestion rule to the model in place. The caller
// owns index rebuilding afterwards.
func (e *AutocompleteEngine) Run(m *model.Model) *AutocompleteResult {
	result := &AutocompleteResult{}

	relIx := index.BuildRelationshipIndex(m)
	byType := make(map[string][]*model.Node)
	for _, el := range m.Elements() {
		byType[el.Type] = append(byType[el.Type], el)
	}

	// Relationships created during this run, so later pairs see them
	created := make(map[string]struct{})
	connected := func(aID, bID string, relTypes []string) bool {
		if relIx.HasRelationship(aID, bID, relTypes...) || relIx.HasRelationship(bID, aID, relTypes...) {
			return true
		}
		for _, t := range relTypes {
			if _, ok := created[aID+"|"+bID+"|"+t]; ok {
				return true
			}
			if _, ok := created[bID+"|"+aID+"|"+t]; ok {
				return true
			}
		}
		return false
	}

	for _, rule := range e.registry.AutocompleteRules() {
		for _, srcType := range rule.SourceTypes {
			for _, src := range byType[srcType] {
				for _, tgtType := range rule.TargetTypes {
					for _, tgt := range byType[tgtType] {
						if src.ID == tgt.ID {
							continue
						}
						if !e.conditionsHold(rule, src, tgt, connected) {
							continue
						}
						e.apply(m, rule, src, tgt, created, result)
					}
				}
			}
		}
	}

	e.logger.Info("autocomplete run complete",
		zap.Int("created_elements", len(result.CreatedElements)),
		zap.Int("created_relationships", len(result.CreatedRelationships)),
	)
	return result
}

func (e *AutocompleteEngine) conditionsHold(rule registry.AutocompleteRule, src, tgt *model.Node, connected func(string, string, []string) bool) bool {
	for _, cond := range rule.Conditions {
		switch cond.Kind {
		case registry.CondNoRelationshipOfType:
			if connected(src.ID, tgt.ID, cond.RelTypes) {
				return false
			}
		case registry.CondNameSimilarity:
			if nameSimilarity(src.Name, tgt.Name) < cond.Threshold {
				return false
			}
		case registry.CondTargetNameContains:
			if !nameContainsAny(tgt.Name, cond.Keywords) {
				return false
			}
		case registry.CondTargetNameIsPartOfSource:
			if !namePartOf(tgt.Name, src.Name, cond.Threshold) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (e *AutocompleteEngine) apply(m *model.Model, rule registry.AutocompleteRule, src, tgt *model.Node, created map[string]struct{}, result *AutocompleteResult) {
	endpoints := map[string]string{
		registry.EndpointSource: src.ID,
		registry.EndpointTarget: tgt.ID,
	}

	if rule.CreateElement != nil {
		name := strings.NewReplacer(
			"{source_name}", src.Name,
			"{target_name}", tgt.Name,
		).Replace(rule.CreateElement.Name)
		el := model.NewElement(rule.CreateElement.Type, name)
		folderName := e.registry.FolderFor(el.Type)
		m.EnsureFolder(folderName, e.registry.FolderKindFor(folderName)).Add(el)
		endpoints[registry.EndpointIntermediary] = el.ID
		result.CreatedElements = append(result.CreatedElements,
			fmt.Sprintf("%s '%s'", el.Type, el.Name))
	}

	relations := m.RelationsFolder()
	for _, spec := range rule.CreateRels {
		rel := model.NewRelationship(spec.Type, endpoints[spec.Source], endpoints[spec.Target])
		relations.Add(rel)
		created[rel.Source+"|"+rel.Target+"|"+rel.Type] = struct{}{}
		result.CreatedRelationships = append(result.CreatedRelationships,
			fmt.Sprintf("%s %s -> %s (%s)", rel.Type, rel.Source, rel.Target, rule.Name))
	}
}

// nameSimilarity scores two names in [0,1] using the Dice coefficient
// over lowercase character bigrams.
func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return 1
	}
	ba, bb := bigrams(a), bigrams(b)
	if len(ba) == 0 || len(bb) == 0 {
		return 0
	}
	common := 0
	for g, n := range ba {
		if m, ok := bb[g]; ok {
			if m < n {
				common += m
			} else {
				common += n
			}
		}
	}
	total := 0
	for _, n := range ba {
		total += n
	}
	for _, n := range bb {
		total += n
	}
	return 2 * float64(common) / float64(total)
}

func bigrams(s string) map[string]int {
	out := make(map[string]int)
	runes := []rune(s)
	for i := 0; i+1 < len(runes); i++ {
		out[string(runes[i:i+2])]++
	}
	return out
}

func nameContainsAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// namePartOf reports whether the candidate name reads as a part of the
// whole name: a direct substring, or a token overlap at or above the
// threshold.
func namePartOf(candidate, whole string, threshold float64) bool {
	c, w := strings.ToLower(candidate), strings.ToLower(whole)
	if c == w {
		return false
	}
	if strings.Contains(w, c) {
		return true
	}
	ct := strings.Fields(c)
	if len(ct) == 0 {
		return false
	}
	wt := make(map[string]struct{})
	for _, t := range strings.Fields(w) {
		wt[t] = struct{}{}
	}
	hits := 0
	for _, t := range ct {
		if _, ok := wt[t]; ok {
			hits++
		}
	}
	return float64(hits)/float64(len(ct)) >= threshold
}
