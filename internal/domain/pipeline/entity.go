package pipeline

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("process name cannot be empty")
	ErrNoStages  = errors.New("process requires at least one stage")
)

// Stage is a named step inside a hiring process.
type Stage struct {
	id        uuid.UUID
	processID uuid.UUID
	name      string
	sortOrder int
}

func (s Stage) ID() uuid.UUID        { return s.id }
func (s Stage) ProcessID() uuid.UUID { return s.processID }
func (s Stage) Name() string         { return s.name }
func (s Stage) SortOrder() int       { return s.sortOrder }

func ReconstructStage(id, processID uuid.UUID, name string, sortOrder int) Stage {
	return Stage{id: id, processID: processID, name: name, sortOrder: sortOrder}
}

// Process is an ordered hiring pipeline owned by a team.
type Process struct {
	id        uuid.UUID
	name      string
	stages    []Stage
	createdBy uuid.UUID
	createdAt time.Time
}

func NewProcess(name string, stageNames []string, createdBy uuid.UUID, now time.Time) (*Process, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(stageNames) == 0 {
		return nil, ErrNoStages
	}

	id := uuid.New()
	stages := make([]Stage, len(stageNames))
	for i, stageName := range stageNames {
		stages[i] = Stage{
			id:        uuid.New(),
			processID: id,
			name:      strings.TrimSpace(stageName),
			sortOrder: i,
		}
	}

	return &Process{
		id:        id,
		name:      name,
		stages:    stages,
		createdBy: createdBy,
		createdAt: now,
	}, nil
}

func ReconstructProcess(id uuid.UUID, name string, stages []Stage, createdBy uuid.UUID, createdAt time.Time) *Process {
	return &Process{
		id:        id,
		name:      name,
		stages:    stages,
		createdBy: createdBy,
		createdAt: createdAt,
	}
}

func (p *Process) ID() uuid.UUID        { return p.id }
func (p *Process) Name() string         { return p.name }
func (p *Process) Stages() []Stage      { return p.stages }
func (p *Process) CreatedBy() uuid.UUID { return p.createdBy }
func (p *Process) CreatedAt() time.Time { return p.createdAt }
