package workflow

import "github.com/c360studio/ontolabel/label"

// Display labels for known tokens. Unknown tokens are not an error:
// they fall back to label.FormatFallback so a freshly added token still
// renders readably before this table catches up.

var triggerLabels = map[TriggerType]string{
	TriggerOnCreate:        "On Create",
	TriggerOnUpdate:        "On Update",
	TriggerOnDelete:        "On Delete",
	TriggerOnRequestReview: "On Request Review",
	TriggerManual:          "Manual",
	TriggerScheduled:       "Scheduled",
}

var entityLabels = map[EntityType]string{
	EntityDataProduct:  "Data Product",
	EntityDataContract: "Data Contract",
	EntityDomain:       "Domain",
	EntityTeam:         "Team",
	EntityGlossaryTerm: "Glossary Term",
}

var stepLabels = map[StepType]string{
	StepValidation:   "Validation",
	StepApproval:     "Approval",
	StepNotification: "Notification",
	StepAssignTag:    "Assign Tag",
	StepRemoveTag:    "Remove Tag",
	StepConditional:  "Conditional",
	StepScript:       "Script",
	StepDelivery:     "Delivery",
	StepPolicyCheck:  "Policy Check",
	StepSuccess:      "Success",
	StepFailure:      "Failure",
}

// Label returns the display label for the trigger type.
func (t TriggerType) Label() string {
	if l, ok := triggerLabels[t]; ok {
		return l
	}
	return label.FormatFallback(string(t))
}

// Label returns the display label for the entity type.
func (t EntityType) Label() string {
	if l, ok := entityLabels[t]; ok {
		return l
	}
	return label.FormatFallback(string(t))
}

// Label returns the display label for the step type.
func (t StepType) Label() string {
	if l, ok := stepLabels[t]; ok {
		return l
	}
	return label.FormatFallback(string(t))
}
