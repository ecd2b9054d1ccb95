package registry

// Autocomplete rule kinds
const (
	RuleDirectRelationship = "direct_relationship"
	RuleInsertIntermediary = "insert_intermediary"
)

// Autocomplete condition kinds
const (
	CondNoRelationshipOfType     = "no_relationship_of_type"
	CondNameSimilarity           = "name_similarity"
	CondTargetNameContains       = "target_name_contains"
	CondTargetNameIsPartOfSource = "target_name_is_part_of_source"
)

// Endpoint placeholders used in relationship specs
const (
	EndpointSource       = "source"
	EndpointTarget       = "target"
	EndpointIntermediary = "intermediary"
)

// Condition gates an autocomplete rule on the state of an element pair
type Condition struct {
	Kind      string
	RelTypes  []string
	Threshold float64
	Keywords  []string
}

// ElementSpec describes an intermediary element to create. The name
// template may reference {source_name} and {target_name}.
type ElementSpec struct {
	Type string
	Name string
}

// RelationshipSpec describes a relationship to create between the
// matched pair and/or the created intermediary.
type RelationshipSpec struct {
	Type   string
	Source string
	Target string
}

// AutocompleteRule suggests relationships between element pairs that
// plausibly belong together but are not yet connected.
type AutocompleteRule struct {
	Name          string
	Kind          string
	SourceTypes   []string
	TargetTypes   []string
	Conditions    []Condition
	CreateElement *ElementSpec
	CreateRels    []RelationshipSpec
}

var autocompleteRules = []AutocompleteRule{
	// Motivation to business layer
	{
		Name:        "Connect Goals to Business Capabilities that realize them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"Capability"},
		TargetTypes: []string{"Goal"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization, RelInfluence}},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Requirements to Business Services that fulfill them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"BusinessService"},
		TargetTypes: []string{"Requirement"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Drivers to Business Processes they influence",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"Driver"},
		TargetTypes: []string{"BusinessProcess"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelInfluence}},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelInfluence, Source: EndpointSource, Target: EndpointTarget},
		},
	},

	// Business to application layer
	{
		Name:        "Connect Business Services to Application Services that realize them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"ApplicationService"},
		TargetTypes: []string{"BusinessService"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
			{Kind: CondNameSimilarity, Threshold: 0.6},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Business Processes to Application Services that support them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"ApplicationService"},
		TargetTypes: []string{"BusinessProcess"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelServing}},
			{Kind: CondNameSimilarity, Threshold: 0.5},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelServing, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Business Objects to Data Objects that implement them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"DataObject"},
		TargetTypes: []string{"BusinessObject"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
			{Kind: CondNameSimilarity, Threshold: 0.7},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},

	// Application to technology layer
	{
		Name:        "Connect Application Components to Nodes that host them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"Node"},
		TargetTypes: []string{"ApplicationComponent"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelAssignment}},
			{Kind: CondNameSimilarity, Threshold: 0.4},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelAssignment, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Application Services to Technology Services that enable them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"TechnologyService"},
		TargetTypes: []string{"ApplicationService"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelServing}},
			{Kind: CondNameSimilarity, Threshold: 0.5},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelServing, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Data Objects to Artifacts that store them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"Artifact"},
		TargetTypes: []string{"DataObject"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
			{Kind: CondNameSimilarity, Threshold: 0.6},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},

	// Cross-layer interface connections
	{
		Name:        "Add Application Interface between Business Actors and Application Services",
		Kind:        RuleInsertIntermediary,
		SourceTypes: []string{"BusinessActor", "BusinessRole"},
		TargetTypes: []string{"ApplicationService"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelServing, RelUsedBy}},
			{Kind: CondTargetNameContains, Keywords: []string{"api", "portal", "gateway", "service", "interface"}},
		},
		CreateElement: &ElementSpec{Type: "ApplicationInterface", Name: "{target_name} Interface"},
		CreateRels: []RelationshipSpec{
			{Type: RelAssignment, Source: EndpointIntermediary, Target: EndpointTarget},
			{Type: RelServing, Source: EndpointIntermediary, Target: EndpointSource},
		},
	},
	{
		Name:        "Add Technology Interface between Application Components and Technology Services",
		Kind:        RuleInsertIntermediary,
		SourceTypes: []string{"ApplicationComponent"},
		TargetTypes: []string{"TechnologyService"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelServing}},
			{Kind: CondTargetNameContains, Keywords: []string{"api", "service", "interface", "gateway"}},
		},
		CreateElement: &ElementSpec{Type: "TechnologyInterface", Name: "{target_name} Interface"},
		CreateRels: []RelationshipSpec{
			{Type: RelAssignment, Source: EndpointIntermediary, Target: EndpointTarget},
			{Type: RelServing, Source: EndpointIntermediary, Target: EndpointSource},
		},
	},

	// Value stream and capability connections
	{
		Name:        "Connect Capabilities to Value Streams they enable",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"Capability"},
		TargetTypes: []string{"ValueStream"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Connect Value Streams to Business Processes that implement them",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"BusinessProcess"},
		TargetTypes: []string{"ValueStream"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelRealization}},
			{Kind: CondNameSimilarity, Threshold: 0.6},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelRealization, Source: EndpointSource, Target: EndpointTarget},
		},
	},

	// Composition relationships
	{
		Name:        "Compose Business Processes from sub-processes",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"BusinessProcess"},
		TargetTypes: []string{"BusinessProcess"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelComposition, RelAggregation}},
			{Kind: CondTargetNameIsPartOfSource, Threshold: 0.8},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelComposition, Source: EndpointSource, Target: EndpointTarget},
		},
	},
	{
		Name:        "Compose Application Components from sub-components",
		Kind:        RuleDirectRelationship,
		SourceTypes: []string{"ApplicationComponent"},
		TargetTypes: []string{"ApplicationComponent"},
		Conditions: []Condition{
			{Kind: CondNoRelationshipOfType, RelTypes: []string{RelComposition, RelAggregation}},
			{Kind: CondTargetNameIsPartOfSource, Threshold: 0.8},
		},
		CreateRels: []RelationshipSpec{
			{Type: RelComposition, Source: EndpointSource, Target: EndpointTarget},
		},
	},
}
