package app

import (
	"context"
	"fmt"

	"github.com/example/secondbrain/internal/ports/primary"
	"github.com/example/secondbrain/internal/ports/secondary"
)

// PeopleServiceImpl implements the PeopleService interface.
type PeopleServiceImpl struct {
	peopleRepo secondary.PeopleRepository
}

// NewPeopleService creates a new PeopleService with injected dependencies.
func NewPeopleService(peopleRepo secondary.PeopleRepository) *PeopleServiceImpl {
	return &PeopleServiceImpl{peopleRepo: peopleRepo}
}

// ListPeople lists people records.
func (s *PeopleServiceImpl) ListPeople(ctx context.Context, limit int) ([]*primary.Person, error) {
	records, err := s.peopleRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	people := make([]*primary.Person, len(records))
	for i, r := range records {
		people[i] = &primary.Person{
			ID:          r.ID,
			Name:        r.Name,
			Context:     r.Context,
			FollowUp:    r.FollowUp,
			LastContact: r.LastContact,
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return people, nil
}

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(projectRepo secondary.ProjectRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

// ListProjects lists project records, optionally filtered by status.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, status string, limit int) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = &primary.Project{
			ID:         r.ID,
			Name:       r.Name,
			Status:     r.Status,
			NextAction: r.NextAction,
			Notes:      r.Notes,
			UpdatedAt:  r.UpdatedAt,
		}
	}
	return projects, nil
}

// IdeaServiceImpl implements the IdeaService interface.
type IdeaServiceImpl struct {
	ideaRepo secondary.IdeaRepository
}

// NewIdeaService creates a new IdeaService with injected dependencies.
func NewIdeaService(ideaRepo secondary.IdeaRepository) *IdeaServiceImpl {
	return &IdeaServiceImpl{ideaRepo: ideaRepo}
}

// ListIdeas lists idea records.
func (s *IdeaServiceImpl) ListIdeas(ctx context.Context, limit int) ([]*primary.Idea, error) {
	records, err := s.ideaRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	ideas := make([]*primary.Idea, len(records))
	for i, r := range records {
		ideas[i] = &primary.Idea{
			ID:       r.ID,
			Title:    r.Title,
			OneLiner: r.OneLiner,
			Notes:    r.Notes,
		}
	}
	return ideas, nil
}

// AdminServiceImpl implements the AdminService interface.
type AdminServiceImpl struct {
	adminRepo secondary.AdminTaskRepository
}

// NewAdminService creates a new AdminService with injected dependencies.
func NewAdminService(adminRepo secondary.AdminTaskRepository) *AdminServiceImpl {
	return &AdminServiceImpl{adminRepo: adminRepo}
}

// ListTasks lists admin task records, optionally filtered by status.
func (s *AdminServiceImpl) ListTasks(ctx context.Context, status string, limit int) ([]*primary.AdminTask, error) {
	records, err := s.adminRepo.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin tasks: %w", err)
	}

	tasks := make([]*primary.AdminTask, len(records))
	for i, r := range records {
		tasks[i] = &primary.AdminTask{
			ID:      r.ID,
			Task:    r.Task,
			DueDate: r.DueDate,
			Status:  r.Status,
		}
	}
	return tasks, nil
}

// Ensure the ledger services implement their interfaces
var (
	_ primary.PeopleService  = (*PeopleServiceImpl)(nil)
	_ primary.ProjectService = (*ProjectServiceImpl)(nil)
	_ primary.IdeaService    = (*IdeaServiceImpl)(nil)
	_ primary.AdminService   = (*AdminServiceImpl)(nil)
)
