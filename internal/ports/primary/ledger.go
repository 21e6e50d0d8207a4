package primary

import "context"

// PeopleService is the primary port for browsing the people table.
type PeopleService interface {
	ListPeople(ctx context.Context, limit int) ([]*Person, error)
}

// Person represents a person record for presentation.
type Person struct {
	ID          int64
	Name        string
	Context     string
	FollowUp    string
	LastContact string
	UpdatedAt   string
}

// ProjectService is the primary port for browsing the projects table.
type ProjectService interface {
	ListProjects(ctx context.Context, status string, limit int) ([]*Project, error)
}

// Project represents a project record for presentation.
type Project struct {
	ID         int64
	Name       string
	Status     string
	NextAction string
	Notes      string
	UpdatedAt  string
}

// IdeaService is the primary port for browsing the ideas table.
type IdeaService interface {
	ListIdeas(ctx context.Context, limit int) ([]*Idea, error)
}

// Idea represents an idea record for presentation.
type Idea struct {
	ID       int64
	Title    string
	OneLiner string
	Notes    string
}

// AdminService is the primary port for browsing the admin table.
type AdminService interface {
	ListTasks(ctx context.Context, status string, limit int) ([]*AdminTask, error)
}

// AdminTask represents an admin task record for presentation.
type AdminTask struct {
	ID      int64
	Task    string
	DueDate string
	Status  string
}
