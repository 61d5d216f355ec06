package lifecycle

import (
	"errors"

	"recolecta-api/models"
)

// Initial is the status every product is created with.
const Initial = models.StatusPending

// Transition defines a valid status change and the role that can perform it
type Transition struct {
	From  models.ProductStatus
	To    models.ProductStatus
	Actor models.UserRole
}

// validTransitions is the authoritative state machine definition.
// Admin review (approve/reject) is valid from any current status —
// re-review is permitted, including no-op self transitions. Publishing
// is reserved to the owning collector and only from APPROVED.
var validTransitions = []Transition{
	// Admin approves the listing
	{From: models.StatusPending, To: models.StatusApproved, Actor: models.RoleAdmin},
	{From: models.StatusApproved, To: models.StatusApproved, Actor: models.RoleAdmin},
	{From: models.StatusRejected, To: models.StatusApproved, Actor: models.RoleAdmin},
	{From: models.StatusPublished, To: models.StatusApproved, Actor: models.RoleAdmin},
	// Admin rejects the listing
	{From: models.StatusPending, To: models.StatusRejected, Actor: models.RoleAdmin},
	{From: models.StatusApproved, To: models.StatusRejected, Actor: models.RoleAdmin},
	{From: models.StatusRejected, To: models.StatusRejected, Actor: models.RoleAdmin},
	{From: models.StatusPublished, To: models.StatusRejected, Actor: models.RoleAdmin},
	// Owning collector publishes an approved listing
	{From: models.StatusApproved, To: models.StatusPublished, Actor: models.RoleCollector},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.ProductStatus
	To    models.ProductStatus
	Actor models.UserRole
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.ProductStatus) []models.ProductStatus {
	var nexts []models.ProductStatus
	seen := map[models.ProductStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given role can move a product from one status to another
func CanTransition(from, to models.ProductStatus, actor models.UserRole) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for role '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.ProductStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full state machine for documentation
func AllTransitions() []Transition {
	return validTransitions
}
