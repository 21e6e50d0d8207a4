// Package classify contains the pure business logic for classifier output
// handling: the instruction prompt, JSON extraction, category and status
// enums, and the validation gate applied to parsed results.
package classify

import "strings"

// Category is the routing destination for an inbox item.
type Category string

// Valid routing categories. Unknown is never a destination; it marks
// results that failed validation.
const (
	CategoryPeople   Category = "people"
	CategoryProjects Category = "projects"
	CategoryIdeas    Category = "ideas"
	CategoryAdmin    Category = "admin"
	CategoryUnknown  Category = "unknown"
)

// ParseCategory maps a raw category string onto a routing category.
// Returns false for anything that is not one of the four destinations.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPeople:
		return CategoryPeople, true
	case CategoryProjects:
		return CategoryProjects, true
	case CategoryIdeas:
		return CategoryIdeas, true
	case CategoryAdmin:
		return CategoryAdmin, true
	default:
		return CategoryUnknown, false
	}
}

// ProjectStatus is the lifecycle status of a project record.
type ProjectStatus string

const (
	ProjectActive  ProjectStatus = "active"
	ProjectWaiting ProjectStatus = "waiting"
	ProjectBlocked ProjectStatus = "blocked"
	ProjectSomeday ProjectStatus = "someday"
	ProjectDone    ProjectStatus = "done"
)

// ParseProjectStatus normalizes a raw status string. Invalid or missing
// values fall back to active.
func ParseProjectStatus(s string) ProjectStatus {
	switch ProjectStatus(strings.TrimSpace(s)) {
	case ProjectActive:
		return ProjectActive
	case ProjectWaiting:
		return ProjectWaiting
	case ProjectBlocked:
		return ProjectBlocked
	case ProjectSomeday:
		return ProjectSomeday
	case ProjectDone:
		return ProjectDone
	default:
		return ProjectActive
	}
}

// AdminStatus is the lifecycle status of an admin task record.
type AdminStatus string

const (
	AdminOpen AdminStatus = "open"
	AdminDone AdminStatus = "done"
)

// ParseAdminStatus normalizes a raw status string. Invalid or missing
// values fall back to open.
func ParseAdminStatus(s string) AdminStatus {
	switch AdminStatus(strings.TrimSpace(s)) {
	case AdminOpen:
		return AdminOpen
	case AdminDone:
		return AdminDone
	default:
		return AdminOpen
	}
}
