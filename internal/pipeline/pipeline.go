// Package pipeline implements the kanban board: stage ordering, movement
// rules, and optimistic updates with rollback. The board mirrors the backend
// pipeline but applies moves locally first so the screen responds
// immediately, reverting if the backend rejects the change.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/talentpipe/talentpipe/pkg/models"
)

// DefaultStages is the built-in workflow used when the backend has no stage
// table configured. Order and colors match the seeded defaults.
var DefaultStages = []*models.RecruitmentStage{
	{ID: 1, Name: "Application Received", OrderPosition: 1, Color: "#3b82f6", IsActive: true},
	{ID: 2, Name: "Resume Screening", OrderPosition: 2, Color: "#8b5cf6", IsActive: true},
	{ID: 3, Name: "Phone Screening", OrderPosition: 3, Color: "#06b6d4", IsActive: true},
	{ID: 4, Name: "Technical Test", OrderPosition: 4, Color: "#f59e0b", IsActive: true},
	{ID: 5, Name: "HR Interview", OrderPosition: 5, Color: "#10b981", IsActive: true},
	{ID: 6, Name: "Technical Interview", OrderPosition: 6, Color: "#ef4444", IsActive: true},
	{ID: 7, Name: "Reference Check", OrderPosition: 7, Color: "#84cc16", IsActive: true},
	{ID: 8, Name: "Offer Sent", OrderPosition: 8, Color: "#f97316", IsActive: true},
	{ID: 9, Name: "Hired", OrderPosition: 9, Color: "#22c55e", IsActive: true},
}

// Mover applies a stage move on the backend and returns the updated record.
type Mover interface {
	MoveStage(ctx context.Context, id int, move *models.StageMove) (*models.Application, error)
}

// Board holds the stage table and the applications grouped by stage.
type Board struct {
	stages []*models.RecruitmentStage
	apps   map[int]*models.Application
	mover  Mover
	actor  string
	now    func() time.Time
}

// NewBoard builds a board over the given stage table. An empty table falls
// back to DefaultStages. Inactive stages are dropped and the rest sorted by
// order position.
func NewBoard(stages []*models.RecruitmentStage, mover Mover) *Board {
	if len(stages) == 0 {
		stages = DefaultStages
	}
	active := make([]*models.RecruitmentStage, 0, len(stages))
	for _, s := range stages {
		if s.IsActive {
			active = append(active, s)
		}
	}
	sort.SliceStable(active, func(i, j int) bool { return active[i].OrderPosition < active[j].OrderPosition })
	return &Board{
		stages: active,
		apps:   make(map[int]*models.Application),
		mover:  mover,
		now:    time.Now,
	}
}

// SetActor records who is moving applications. The name is stamped on the
// history entries written before the backend confirms a move.
func (b *Board) SetActor(name string) {
	b.actor = name
}

// Load replaces the board's applications with a fresh backend snapshot.
func (b *Board) Load(apps []*models.Application) {
	b.apps = make(map[int]*models.Application, len(apps))
	for _, a := range apps {
		b.apps[a.ID] = a
	}
}

// Stages returns the active stage table in board order.
func (b *Board) Stages() []*models.RecruitmentStage {
	return b.stages
}

// Application returns the tracked application, nil if unknown.
func (b *Board) Application(id int) *models.Application {
	return b.apps[id]
}

// Column returns the applications currently in the given stage, oldest first.
func (b *Board) Column(stage int) []*models.Application {
	var col []*models.Application
	for _, a := range b.apps {
		if a.Stage == stage {
			col = append(col, a)
		}
	}
	sort.SliceStable(col, func(i, j int) bool {
		if !col[i].AppliedAt.Equal(col[j].AppliedAt) {
			return col[i].AppliedAt.Before(col[j].AppliedAt)
		}
		return col[i].ID < col[j].ID
	})
	return col
}

// Terminal reports whether the status freezes stage movement. Hired and
// rejected applications keep their final column.
func Terminal(status string) bool {
	return status == models.AppStatusHired || status == models.AppStatusRejected
}

func (b *Board) stageIndex(stage int) int {
	for i, s := range b.stages {
		if s.ID == stage {
			return i
		}
	}
	return -1
}

// validStage reports whether the stage exists on the board.
func (b *Board) validStage(stage int) bool {
	return b.stageIndex(stage) >= 0
}

// Advance moves the application one stage forward.
func (b *Board) Advance(ctx context.Context, id int, notes string) (*models.Application, error) {
	return b.move(ctx, id, &models.StageMove{Action: "next", Notes: notes}, +1, 0)
}

// Retreat moves the application one stage back.
func (b *Board) Retreat(ctx context.Context, id int, notes string) (*models.Application, error) {
	return b.move(ctx, id, &models.StageMove{Action: "previous", Notes: notes}, -1, 0)
}

// Jump moves the application directly to the target stage.
func (b *Board) Jump(ctx context.Context, id, target int, notes string) (*models.Application, error) {
	return b.move(ctx, id, &models.StageMove{Action: "specific", TargetStage: target, Notes: notes}, 0, target)
}

// move applies the change locally, then confirms with the backend. On
// rejection the local state is restored from the pre-move snapshot.
func (b *Board) move(ctx context.Context, id int, req *models.StageMove, step, target int) (*models.Application, error) {
	app, ok := b.apps[id]
	if !ok {
		return nil, fmt.Errorf("application %d is not on the board", id)
	}
	if Terminal(app.Status) {
		return nil, fmt.Errorf("application %d is %s and cannot change stage", id, app.Status)
	}

	idx := b.stageIndex(app.Stage)
	if idx < 0 {
		return nil, fmt.Errorf("application %d is in unknown stage %d", id, app.Stage)
	}
	var next int
	switch {
	case step > 0:
		if idx == len(b.stages)-1 {
			return nil, fmt.Errorf("application %d is already in the final stage", id)
		}
		next = b.stages[idx+1].ID
	case step < 0:
		if idx == 0 {
			return nil, fmt.Errorf("application %d is already in the first stage", id)
		}
		next = b.stages[idx-1].ID
	default:
		if !b.validStage(target) {
			return nil, fmt.Errorf("stage %d does not exist", target)
		}
		next = target
	}

	snapshot := *app
	b.applyLocal(app, next, req.Notes)

	updated, err := b.mover.MoveStage(ctx, id, req)
	if err != nil {
		restored := snapshot
		b.apps[id] = &restored
		return nil, err
	}
	b.apps[id] = updated
	return updated, nil
}

// applyLocal updates the in-memory record and appends a history entry, so
// the move is visible before the backend round trip completes.
func (b *Board) applyLocal(app *models.Application, next int, notes string) {
	prevStage := app.Stage
	prevStatus := app.Status
	status := app.Status
	if status == models.AppStatusApplied {
		status = models.AppStatusInProgress
	}
	if next == b.stages[len(b.stages)-1].ID {
		status = models.AppStatusHired
	}
	app.History = append(app.History, &models.StageTransition{
		ApplicationID:  app.ID,
		PreviousStatus: &prevStatus,
		NewStatus:      status,
		PreviousStage:  &prevStage,
		NewStage:       next,
		ChangedBy:      b.actor,
		Notes:          notes,
		ChangedAt:      b.now(),
	})
	app.Stage = next
	app.Status = status
	app.UpdatedAt = b.now()
}

// Snapshot renders the board into the wire pipeline shape, used by the
// export and stats paths.
func (b *Board) Snapshot() *models.Pipeline {
	cols := make(map[int]*models.PipelineColumn, len(b.stages))
	total := 0
	for _, s := range b.stages {
		apps := b.Column(s.ID)
		total += len(apps)
		cols[s.ID] = &models.PipelineColumn{Stage: s, Applications: apps}
	}
	return &models.Pipeline{Columns: cols, Stages: b.stages, TotalApplications: total}
}
