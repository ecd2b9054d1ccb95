package registry

// relationshipRules lists, per source element type, the relationship
// types it may originate and the target types each may point at. The
// "*" source rule is the fallback for unlisted types and deliberately
// allows only the weakest relationships.
var relationshipRules = map[string]Rule{
	// Strategy elements
	"Capability": {AllowedTargets: map[string][]string{
		RelRealization: {"Goal", "Requirement", "Outcome", "CourseOfAction"},
		RelServing:     {"BusinessActor", "BusinessRole"},
		RelComposition: {"Capability"},
		RelAggregation: {"Capability"},
		RelInfluence:   {"Goal", "Principle", "Requirement"},
		RelAssociation: {Wildcard},
	}},
	"CourseOfAction": {AllowedTargets: map[string][]string{
		RelRealization: {"Capability", "Goal"},
		RelServing:     {"BusinessActor", "BusinessRole"},
		RelComposition: {"CourseOfAction"},
		RelAggregation: {"CourseOfAction"},
		RelAssociation: {Wildcard},
	}},
	"ValueStream": {AllowedTargets: map[string][]string{
		RelComposition: {"ValueStream"},
		RelAggregation: {"ValueStream"},
		RelRealization: {"BusinessProcess", "BusinessFunction"},
		RelAssociation: {Wildcard},
	}},
	"Resource": {AllowedTargets: map[string][]string{
		RelRealization: {"BusinessObject", "DataObject", "Artifact"},
		RelComposition: {"Resource"},
		RelAggregation: {"Resource"},
		RelAssociation: {Wildcard},
	}},

	// Motivation elements
	"Stakeholder": {AllowedTargets: map[string][]string{
		RelInfluence:   {"Goal", "Driver", "Requirement"},
		RelAssignment:  {"BusinessActor", "BusinessRole"},
		RelAssociation: {Wildcard},
	}},
	"Driver": {AllowedTargets: map[string][]string{
		RelInfluence:   {"Goal", "Assessment", "Requirement"},
		RelAssociation: {Wildcard},
	}},
	"Assessment": {AllowedTargets: map[string][]string{
		RelInfluence:   {"Driver", "Goal"},
		RelAssociation: {Wildcard},
	}},
	"Goal": {AllowedTargets: map[string][]string{
		RelRealization:    {"Outcome", "Capability"},
		RelInfluence:      {"Goal", "Principle", "Requirement"},
		RelComposition:    {"Goal"},
		RelAggregation:    {"Goal"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"Goal"},
	}},
	"Outcome": {AllowedTargets: map[string][]string{
		RelRealization: {"Capability"},
		RelInfluence:   {"Goal"},
		RelAssociation: {Wildcard},
	}},
	"Principle": {AllowedTargets: map[string][]string{
		RelInfluence:   {"Goal", "Requirement", "Constraint"},
		RelAssociation: {Wildcard},
	}},
	"Requirement": {AllowedTargets: map[string][]string{
		RelRealization:    {"ApplicationService", "TechnologyService", "BusinessService", "Capability", "CourseOfAction"},
		RelInfluence:      {"Goal", "Principle", "Requirement"},
		RelComposition:    {"Requirement"},
		RelAggregation:    {"Requirement"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"Requirement"},
	}},
	"Constraint": {AllowedTargets: map[string][]string{
		RelInfluence:   {"Goal", "Requirement", "Principle"},
		RelAssociation: {Wildcard},
	}},

	// Business elements
	"BusinessActor": {AllowedTargets: map[string][]string{
		RelServing:        {"BusinessActor", "BusinessRole", "BusinessProcess", "BusinessFunction"},
		RelUsedBy:         {"BusinessProcess", "BusinessFunction"},
		RelComposition:    {"BusinessActor", "BusinessRole"},
		RelAggregation:    {"BusinessActor", "BusinessRole"},
		RelAssignment:     {"BusinessRole"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"BusinessActor"},
	}},
	"BusinessRole": {AllowedTargets: map[string][]string{
		RelServing:        {"BusinessActor", "BusinessRole", "BusinessProcess", "BusinessFunction"},
		RelUsedBy:         {"BusinessProcess", "BusinessFunction"},
		RelComposition:    {"BusinessRole"},
		RelAggregation:    {"BusinessRole"},
		RelAssignment:     {"BusinessActor"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"BusinessRole"},
	}},
	"BusinessCollaboration": {AllowedTargets: map[string][]string{
		RelServing:     {"BusinessProcess", "BusinessFunction"},
		RelComposition: {"BusinessActor", "BusinessRole"},
		RelAggregation: {"BusinessActor", "BusinessRole"},
		RelAssociation: {Wildcard},
	}},
	"BusinessInterface": {AllowedTargets: map[string][]string{
		RelServing:     {"BusinessActor", "BusinessRole", "BusinessProcess"},
		RelAssignment:  {"BusinessService"},
		RelComposition: {"BusinessActor", "BusinessRole"},
		RelAssociation: {Wildcard},
	}},
	"BusinessProcess": {AllowedTargets: map[string][]string{
		RelUsedBy:         {"BusinessActor", "BusinessRole"},
		RelServing:        {"BusinessActor", "BusinessRole"},
		RelAccess:         {"BusinessObject"},
		RelFlow:           {"BusinessProcess", "BusinessFunction"},
		RelTriggering:     {"BusinessProcess", "BusinessFunction", "BusinessEvent"},
		RelComposition:    {"BusinessProcess", "BusinessFunction"},
		RelAggregation:    {"BusinessProcess", "BusinessFunction"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"BusinessProcess"},
	}},
	"BusinessFunction": {AllowedTargets: map[string][]string{
		RelUsedBy:         {"BusinessActor", "BusinessRole"},
		RelServing:        {"BusinessActor", "BusinessRole"},
		RelAccess:         {"BusinessObject"},
		RelFlow:           {"BusinessProcess", "BusinessFunction"},
		RelTriggering:     {"BusinessProcess", "BusinessFunction", "BusinessEvent"},
		RelComposition:    {"BusinessFunction"},
		RelAggregation:    {"BusinessFunction"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"BusinessFunction"},
	}},
	"BusinessInteraction": {AllowedTargets: map[string][]string{
		RelFlow:        {"BusinessProcess", "BusinessFunction", "BusinessInteraction"},
		RelTriggering:  {"BusinessProcess", "BusinessFunction", "BusinessEvent"},
		RelAssociation: {Wildcard},
	}},
	"BusinessEvent": {AllowedTargets: map[string][]string{
		RelTriggering:  {"BusinessProcess", "BusinessFunction"},
		RelAssociation: {Wildcard},
	}},
	"BusinessService": {AllowedTargets: map[string][]string{
		RelServing:        {"BusinessActor", "BusinessRole", "BusinessProcess"},
		RelRealization:    {"ApplicationService", "BusinessProcess", "BusinessFunction"},
		RelAccess:         {"BusinessObject"},
		RelComposition:    {"BusinessService"},
		RelAggregation:    {"BusinessService"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"BusinessService"},
	}},
	"BusinessObject": {AllowedTargets: map[string][]string{
		RelAccess:      {"BusinessProcess", "BusinessFunction", "BusinessService"},
		RelRealization: {"DataObject"},
		RelComposition: {"BusinessObject"},
		RelAggregation: {"BusinessObject"},
		RelAssociation: {Wildcard},
	}},
	"BusinessContract": {AllowedTargets: map[string][]string{
		RelAccess:      {"BusinessProcess", "BusinessFunction"},
		RelAssociation: {Wildcard},
	}},
	"BusinessRepresentation": {AllowedTargets: map[string][]string{
		RelAccess:      {"BusinessObject"},
		RelAssociation: {Wildcard},
	}},

	// Application elements
	"ApplicationComponent": {AllowedTargets: map[string][]string{
		RelRealization:    {"ApplicationService", "ApplicationFunction"},
		RelUsedBy:         {"ApplicationComponent"},
		RelServing:        {"ApplicationComponent"},
		RelAccess:         {"DataObject"},
		RelFlow:           {"ApplicationComponent"},
		RelComposition:    {"ApplicationComponent", "ApplicationInterface", "ApplicationFunction"},
		RelAggregation:    {"ApplicationComponent", "ApplicationInterface", "ApplicationFunction"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"ApplicationComponent"},
	}},
	"ApplicationCollaboration": {AllowedTargets: map[string][]string{
		RelComposition: {"ApplicationComponent"},
		RelAggregation: {"ApplicationComponent"},
		RelAssociation: {Wildcard},
	}},
	"ApplicationInterface": {AllowedTargets: map[string][]string{
		RelServing:        {"BusinessActor", "BusinessRole", "BusinessProcess", "ApplicationComponent"},
		RelAssignment:     {"ApplicationService"},
		RelComposition:    {"ApplicationComponent"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"ApplicationInterface"},
	}},
	"ApplicationService": {AllowedTargets: map[string][]string{
		RelServing:        {"BusinessProcess", "BusinessFunction", "BusinessService", "ApplicationComponent"},
		RelRealization:    {"ApplicationComponent", "ApplicationFunction"},
		RelAccess:         {"DataObject"},
		RelComposition:    {"ApplicationService"},
		RelAggregation:    {"ApplicationService"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"ApplicationService"},
	}},
	"ApplicationFunction": {AllowedTargets: map[string][]string{
		RelUsedBy:         {"ApplicationComponent"},
		RelAccess:         {"DataObject"},
		RelFlow:           {"ApplicationFunction"},
		RelTriggering:     {"ApplicationFunction", "ApplicationEvent"},
		RelComposition:    {"ApplicationFunction"},
		RelAggregation:    {"ApplicationFunction"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"ApplicationFunction"},
	}},
	"ApplicationProcess": {AllowedTargets: map[string][]string{
		RelAccess:      {"DataObject"},
		RelFlow:        {"ApplicationProcess"},
		RelTriggering:  {"ApplicationProcess", "ApplicationEvent"},
		RelComposition: {"ApplicationProcess"},
		RelAggregation: {"ApplicationProcess"},
		RelAssociation: {Wildcard},
	}},
	"ApplicationInteraction": {AllowedTargets: map[string][]string{
		RelFlow:        {"ApplicationProcess", "ApplicationFunction", "ApplicationInteraction"},
		RelTriggering:  {"ApplicationProcess", "ApplicationFunction", "ApplicationEvent"},
		RelAssociation: {Wildcard},
	}},
	"ApplicationEvent": {AllowedTargets: map[string][]string{
		RelTriggering:  {"ApplicationProcess", "ApplicationFunction"},
		RelAssociation: {Wildcard},
	}},
	"DataObject": {AllowedTargets: map[string][]string{
		RelAccess:      {"ApplicationComponent", "ApplicationFunction", "ApplicationProcess", "ApplicationService"},
		RelRealization: {"Artifact"},
		RelComposition: {"DataObject"},
		RelAggregation: {"DataObject"},
		RelAssociation: {Wildcard},
	}},

	// Technology & Physical elements
	"Node": {AllowedTargets: map[string][]string{
		RelRealization: {"TechnologyService"},
		RelAssignment:  {"SystemSoftware", "Artifact", "Device"},
		RelComposition: {"Node", "Device", "SystemSoftware"},
		RelAggregation: {"Node", "Device", "SystemSoftware"},
		RelAssociation: {Wildcard},
	}},
	"Device": {AllowedTargets: map[string][]string{
		RelRealization: {"TechnologyService"},
		RelAssignment:  {"SystemSoftware", "Artifact"},
		RelComposition: {"Device"},
		RelAggregation: {"Device"},
		RelAssociation: {Wildcard},
	}},
	"SystemSoftware": {AllowedTargets: map[string][]string{
		RelRealization: {"TechnologyService"},
		RelAssignment:  {"Node", "Device"},
		RelComposition: {"SystemSoftware"},
		RelAggregation: {"SystemSoftware"},
		RelAssociation: {Wildcard},
	}},
	"TechnologyInterface": {AllowedTargets: map[string][]string{
		RelServing:     {"ApplicationComponent", "Node", "Device"},
		RelAssignment:  {"TechnologyService"},
		RelComposition: {"Node", "Device"},
		RelAssociation: {Wildcard},
	}},
	"TechnologyService": {AllowedTargets: map[string][]string{
		RelServing:        {"ApplicationComponent", "ApplicationService", "Node", "Device"},
		RelRealization:    {"Node", "Device", "SystemSoftware"},
		RelComposition:    {"TechnologyService"},
		RelAggregation:    {"TechnologyService"},
		RelAssociation:    {Wildcard},
		RelSpecialization: {"TechnologyService"},
	}},
	"Artifact": {AllowedTargets: map[string][]string{
		RelAssignment:  {"Node", "Device"},
		RelRealization: {"DataObject"},
		RelAssociation: {Wildcard},
	}},

	// Implementation & Migration elements
	"WorkPackage": {AllowedTargets: map[string][]string{
		RelRealization: {"Deliverable"},
		RelComposition: {"WorkPackage"},
		RelAggregation: {"WorkPackage"},
		RelAssociation: {Wildcard},
	}},
	"Deliverable": {AllowedTargets: map[string][]string{
		RelRealization: {"Artifact", "BusinessObject", "DataObject"},
		RelComposition: {"Deliverable"},
		RelAggregation: {"Deliverable"},
		RelAssociation: {Wildcard},
	}},
	"Plateau": {AllowedTargets: map[string][]string{
		RelComposition: {"Plateau"},
		RelAggregation: {"Plateau"},
		RelAssociation: {Wildcard},
	}},

	// Default rule for any unlisted source type
	Wildcard: {AllowedTargets: map[string][]string{
		RelAssociation:    {Wildcard},
		RelSpecialization: {Wildcard},
	}},
}
