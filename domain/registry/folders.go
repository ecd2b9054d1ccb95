package registry

// folderMap assigns each element type its canonical folder. Types
// without an entry belong in Other.
var folderMap = map[string]string{
	// Business
	"BusinessActor":          "Business",
	"BusinessRole":           "Business",
	"BusinessCollaboration":  "Business",
	"BusinessEvent":          "Business",
	"BusinessProcess":        "Business",
	"BusinessFunction":       "Business",
	"BusinessInteraction":    "Business",
	"BusinessService":        "Business",
	"BusinessObject":         "Business",
	"BusinessInterface":      "Business",
	"BusinessContract":       "Business",
	"BusinessRepresentation": "Business",

	// Application
	"ApplicationComponent":     "Application",
	"ApplicationCollaboration": "Application",
	"ApplicationInterface":     "Application",
	"ApplicationService":       "Application",
	"ApplicationFunction":      "Application",
	"ApplicationProcess":       "Application",
	"ApplicationInteraction":   "Application",
	"ApplicationEvent":         "Application",
	"DataObject":               "Application",

	// Technology & Physical
	"Node":                "Technology & Physical",
	"Device":              "Technology & Physical",
	"SystemSoftware":      "Technology & Physical",
	"TechnologyInterface": "Technology & Physical",
	"TechnologyService":   "Technology & Physical",
	"Artifact":            "Technology & Physical",

	// Motivation
	"Stakeholder": "Motivation",
	"Driver":      "Motivation",
	"Goal":        "Motivation",
	"Outcome":     "Motivation",
	"Assessment":  "Motivation",
	"Principle":   "Motivation",
	"Requirement": "Motivation",
	"Constraint":  "Motivation",

	// Strategy
	"Capability":     "Strategy",
	"CourseOfAction": "Strategy",
	"ValueStream":    "Strategy",
	"Resource":       "Strategy",

	// Implementation & Migration
	"WorkPackage": "Implementation & Migration",
	"Deliverable": "Implementation & Migration",
	"Plateau":     "Implementation & Migration",
}

// CommonTypes lists the element types most models use, in the order
// pickers present them.
var CommonTypes = []string{
	"Stakeholder", "Requirement", "Goal", "Driver", "Outcome",
	"BusinessActor", "BusinessRole", "BusinessCollaboration", "BusinessInterface",
	"BusinessProcess", "BusinessFunction", "BusinessService",
	"ApplicationComponent", "ApplicationService", "ApplicationInterface", "DataObject",
	"Node", "Device", "SystemSoftware", "TechnologyService",
	"Capability", "ValueStream",
	"WorkPackage", "Deliverable",
}

// folderKinds maps folder display names to the folder type attribute
// used in .archimate documents.
var folderKinds = map[string]string{
	"Strategy":                   "strategy",
	"Business":                   "business",
	"Application":                "application",
	"Technology & Physical":      "technology",
	"Motivation":                 "motivation",
	"Implementation & Migration": "implementation_migration",
	"Other":                      "other",
	"Relations":                  "relations",
	"Views":                      "diagrams",
}

var relationshipTypes = map[string]struct{}{
	RelAssignment:     {},
	RelRealization:    {},
	RelAssociation:    {},
	RelComposition:    {},
	RelAggregation:    {},
	RelServing:        {},
	RelAccess:         {},
	RelFlow:           {},
	RelTriggering:     {},
	RelSpecialization: {},
	RelUsedBy:         {},
	RelInfluence:      {},
}
