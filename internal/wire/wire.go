// Package wire provides dependency injection for the secondbrain
// application. It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/secondbrain/internal/adapters/ollama"
	"github.com/example/secondbrain/internal/adapters/sqlite"
	"github.com/example/secondbrain/internal/app"
	"github.com/example/secondbrain/internal/config"
	"github.com/example/secondbrain/internal/core/alias"
	"github.com/example/secondbrain/internal/db"
	"github.com/example/secondbrain/internal/ports/primary"
)

var (
	cfg            *config.Config
	processService primary.ProcessService
	inboxService   primary.InboxService
	peopleService  primary.PeopleService
	projectService primary.ProjectService
	ideaService    primary.IdeaService
	adminService   primary.AdminService
	logService     primary.LogService
	once           sync.Once
)

// Config returns the loaded application config.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// ProcessService returns the singleton ProcessService instance.
func ProcessService() primary.ProcessService {
	once.Do(initServices)
	return processService
}

// InboxService returns the singleton InboxService instance.
func InboxService() primary.InboxService {
	once.Do(initServices)
	return inboxService
}

// PeopleService returns the singleton PeopleService instance.
func PeopleService() primary.PeopleService {
	once.Do(initServices)
	return peopleService
}

// ProjectService returns the singleton ProjectService instance.
func ProjectService() primary.ProjectService {
	once.Do(initServices)
	return projectService
}

// IdeaService returns the singleton IdeaService instance.
func IdeaService() primary.IdeaService {
	once.Do(initServices)
	return ideaService
}

// AdminService returns the singleton AdminService instance.
func AdminService() primary.AdminService {
	once.Do(initServices)
	return adminService
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	dir, err := config.Dir()
	if err != nil {
		log.Fatalf("failed to locate config directory: %v", err)
	}

	cfg, err = config.Load(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Create repository adapters (secondary ports)
	inboxRepo := sqlite.NewInboxRepository(database)
	peopleRepo := sqlite.NewPeopleRepository(database)
	projectRepo := sqlite.NewProjectRepository(database)
	ideaRepo := sqlite.NewIdeaRepository(database)
	adminRepo := sqlite.NewAdminTaskRepository(database)
	logRepo := sqlite.NewEventLogRepository(database)
	outcomes := sqlite.NewOutcomeStore(database)

	// Alias table degrades to empty when the file is absent
	aliases := alias.Load(cfg.AliasesPath)

	classifier := ollama.NewClassifier(cfg.Model)

	// Create services (primary ports implementation)
	processService = app.NewProcessService(inboxRepo, outcomes, classifier, aliases,
		cfg.ConfidenceThreshold, cfg.MaxRetries)
	inboxService = app.NewInboxService(inboxRepo)
	peopleService = app.NewPeopleService(peopleRepo)
	projectService = app.NewProjectService(projectRepo)
	ideaService = app.NewIdeaService(ideaRepo)
	adminService = app.NewAdminService(adminRepo)
	logService = app.NewLogService(logRepo)
}
