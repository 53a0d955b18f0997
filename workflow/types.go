// Package workflow defines the token vocabularies of the catalog's
// workflow engine: what triggers a workflow, what kind of entity it runs
// against, and what each step does.
//
// All three enumerations are open. New tokens appear over time without a
// redeploy of this module, so unknown tokens are accepted everywhere and
// only affect how a display label is derived (see labels.go).
package workflow

// TriggerType identifies what started a workflow run.
type TriggerType string

const (
	// TriggerOnCreate fires when a catalog entity is created.
	TriggerOnCreate TriggerType = "on_create"

	// TriggerOnUpdate fires when a catalog entity is updated.
	TriggerOnUpdate TriggerType = "on_update"

	// TriggerOnDelete fires when a catalog entity is deleted.
	TriggerOnDelete TriggerType = "on_delete"

	// TriggerOnRequestReview fires when a review is requested for an
	// entity.
	TriggerOnRequestReview TriggerType = "on_request_review"

	// TriggerManual fires when a user starts the workflow explicitly.
	TriggerManual TriggerType = "manual"

	// TriggerScheduled fires on a schedule.
	TriggerScheduled TriggerType = "scheduled"
)

// String returns the string representation of the trigger type.
func (t TriggerType) String() string {
	return string(t)
}

// EntityType identifies the kind of catalog entity a workflow runs
// against.
type EntityType string

const (
	// EntityDataProduct is a data product.
	EntityDataProduct EntityType = "data_product"

	// EntityDataContract is a data contract.
	EntityDataContract EntityType = "data_contract"

	// EntityDomain is a governance domain.
	EntityDomain EntityType = "domain"

	// EntityTeam is a team.
	EntityTeam EntityType = "team"

	// EntityGlossaryTerm is a business glossary term.
	EntityGlossaryTerm EntityType = "glossary_term"
)

// String returns the string representation of the entity type.
func (t EntityType) String() string {
	return string(t)
}

// StepType identifies what a workflow step does when executed.
type StepType string

const (
	// StepValidation evaluates a compliance rule against the entity.
	StepValidation StepType = "validation"

	// StepApproval creates an approval request and pauses the run.
	StepApproval StepType = "approval"

	// StepNotification sends a notification to the responsible team.
	StepNotification StepType = "notification"

	// StepAssignTag attaches a tag to the entity.
	StepAssignTag StepType = "assign_tag"

	// StepRemoveTag removes a tag from the entity.
	StepRemoveTag StepType = "remove_tag"

	// StepConditional branches on a rule result.
	StepConditional StepType = "conditional"

	// StepScript runs a configured script.
	StepScript StepType = "script"

	// StepDelivery hands the entity's changes to the delivery service.
	StepDelivery StepType = "delivery"

	// StepPolicyCheck evaluates an existing compliance policy by ID.
	StepPolicyCheck StepType = "policy_check"

	// StepSuccess terminates the run successfully.
	StepSuccess StepType = "success"

	// StepFailure terminates the run as failed.
	StepFailure StepType = "failure"
)

// String returns the string representation of the step type.
func (t StepType) String() string {
	return string(t)
}
