// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *TaskCreate) SetConversationID(v string) *TaskCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *TaskCreate) SetUserID(v string) *TaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *TaskCreate) SetName(v string) *TaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIntervalValue sets the "interval_value" field.
func (_c *TaskCreate) SetIntervalValue(v int) *TaskCreate {
	_c.mutation.SetIntervalValue(v)
	return _c
}

// SetNillableIntervalValue sets the "interval_value" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIntervalValue(v *int) *TaskCreate {
	if v != nil {
		_c.SetIntervalValue(*v)
	}
	return _c
}

// SetIntervalUnit sets the "interval_unit" field.
func (_c *TaskCreate) SetIntervalUnit(v task.IntervalUnit) *TaskCreate {
	_c.mutation.SetIntervalUnit(v)
	return _c
}

// SetNillableIntervalUnit sets the "interval_unit" field if the given value is not nil.
func (_c *TaskCreate) SetNillableIntervalUnit(v *task.IntervalUnit) *TaskCreate {
	if v != nil {
		_c.SetIntervalUnit(*v)
	}
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *TaskCreate) SetCronExpression(v string) *TaskCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCronExpression(v *string) *TaskCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *TaskCreate) SetNextRunAt(v time.Time) *TaskCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableNextRunAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *TaskCreate) SetLastRunAt(v time.Time) *TaskCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastRunAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetMaxRuns sets the "max_runs" field.
func (_c *TaskCreate) SetMaxRuns(v int) *TaskCreate {
	_c.mutation.SetMaxRuns(v)
	return _c
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRuns(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRuns(*v)
	}
	return _c
}

// SetCurrentRuns sets the "current_runs" field.
func (_c *TaskCreate) SetCurrentRuns(v int) *TaskCreate {
	_c.mutation.SetCurrentRuns(v)
	return _c
}

// SetNillableCurrentRuns sets the "current_runs" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCurrentRuns(v *int) *TaskCreate {
	if v != nil {
		_c.SetCurrentRuns(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *TaskCreate) SetExpiresAt(v time.Time) *TaskCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableExpiresAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetTaskContext sets the "task_context" field.
func (_c *TaskCreate) SetTaskContext(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetTaskContext(v)
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *TaskCreate) SetConsecutiveFailures(v int) *TaskCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *TaskCreate) SetNillableConsecutiveFailures(v *int) *TaskCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *TaskCreate) SetLastError(v string) *TaskCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastError(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *TaskCreate) SetConversation(v *Conversation) *TaskCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentRuns(); !ok {
		v := task.DefaultCurrentRuns
		_c.mutation.SetCurrentRuns(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := task.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "Task.conversation_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Task.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Task.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IntervalUnit(); ok {
		if err := task.IntervalUnitValidator(v); err != nil {
			return &ValidationError{Name: "interval_unit", err: fmt.Errorf(`ent: validator failed for field "Task.interval_unit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentRuns(); !ok {
		return &ValidationError{Name: "current_runs", err: errors.New(`ent: missing required field "Task.current_runs"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "Task.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "Task.conversation"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(task.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IntervalValue(); ok {
		_spec.SetField(task.FieldIntervalValue, field.TypeInt, value)
		_node.IntervalValue = &value
	}
	if value, ok := _c.mutation.IntervalUnit(); ok {
		_spec.SetField(task.FieldIntervalUnit, field.TypeEnum, value)
		_node.IntervalUnit = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(task.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(task.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(task.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.MaxRuns(); ok {
		_spec.SetField(task.FieldMaxRuns, field.TypeInt, value)
		_node.MaxRuns = &value
	}
	if value, ok := _c.mutation.CurrentRuns(); ok {
		_spec.SetField(task.FieldCurrentRuns, field.TypeInt, value)
		_node.CurrentRuns = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(task.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.TaskContext(); ok {
		_spec.SetField(task.FieldTaskContext, field.TypeJSON, value)
		_node.TaskContext = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(task.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ConversationTable,
			Columns: []string{task.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TaskUpsert) SetName(v string) *TaskUpsert {
	u.Set(task.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsert) UpdateName() *TaskUpsert {
	u.SetExcluded(task.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetIntervalValue sets the "interval_value" field.
func (u *TaskUpsert) SetIntervalValue(v int) *TaskUpsert {
	u.Set(task.FieldIntervalValue, v)
	return u
}

// UpdateIntervalValue sets the "interval_value" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIntervalValue() *TaskUpsert {
	u.SetExcluded(task.FieldIntervalValue)
	return u
}

// AddIntervalValue adds v to the "interval_value" field.
func (u *TaskUpsert) AddIntervalValue(v int) *TaskUpsert {
	u.Add(task.FieldIntervalValue, v)
	return u
}

// ClearIntervalValue clears the value of the "interval_value" field.
func (u *TaskUpsert) ClearIntervalValue() *TaskUpsert {
	u.SetNull(task.FieldIntervalValue)
	return u
}

// SetIntervalUnit sets the "interval_unit" field.
func (u *TaskUpsert) SetIntervalUnit(v task.IntervalUnit) *TaskUpsert {
	u.Set(task.FieldIntervalUnit, v)
	return u
}

// UpdateIntervalUnit sets the "interval_unit" field to the value that was provided on create.
func (u *TaskUpsert) UpdateIntervalUnit() *TaskUpsert {
	u.SetExcluded(task.FieldIntervalUnit)
	return u
}

// ClearIntervalUnit clears the value of the "interval_unit" field.
func (u *TaskUpsert) ClearIntervalUnit() *TaskUpsert {
	u.SetNull(task.FieldIntervalUnit)
	return u
}

// SetCronExpression sets the "cron_expression" field.
func (u *TaskUpsert) SetCronExpression(v string) *TaskUpsert {
	u.Set(task.FieldCronExpression, v)
	return u
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCronExpression() *TaskUpsert {
	u.SetExcluded(task.FieldCronExpression)
	return u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *TaskUpsert) ClearCronExpression() *TaskUpsert {
	u.SetNull(task.FieldCronExpression)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *TaskUpsert) SetNextRunAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateNextRunAt() *TaskUpsert {
	u.SetExcluded(task.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *TaskUpsert) ClearNextRunAt() *TaskUpsert {
	u.SetNull(task.FieldNextRunAt)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *TaskUpsert) SetLastRunAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastRunAt() *TaskUpsert {
	u.SetExcluded(task.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *TaskUpsert) ClearLastRunAt() *TaskUpsert {
	u.SetNull(task.FieldLastRunAt)
	return u
}

// SetMaxRuns sets the "max_runs" field.
func (u *TaskUpsert) SetMaxRuns(v int) *TaskUpsert {
	u.Set(task.FieldMaxRuns, v)
	return u
}

// UpdateMaxRuns sets the "max_runs" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxRuns() *TaskUpsert {
	u.SetExcluded(task.FieldMaxRuns)
	return u
}

// AddMaxRuns adds v to the "max_runs" field.
func (u *TaskUpsert) AddMaxRuns(v int) *TaskUpsert {
	u.Add(task.FieldMaxRuns, v)
	return u
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (u *TaskUpsert) ClearMaxRuns() *TaskUpsert {
	u.SetNull(task.FieldMaxRuns)
	return u
}

// SetCurrentRuns sets the "current_runs" field.
func (u *TaskUpsert) SetCurrentRuns(v int) *TaskUpsert {
	u.Set(task.FieldCurrentRuns, v)
	return u
}

// UpdateCurrentRuns sets the "current_runs" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCurrentRuns() *TaskUpsert {
	u.SetExcluded(task.FieldCurrentRuns)
	return u
}

// AddCurrentRuns adds v to the "current_runs" field.
func (u *TaskUpsert) AddCurrentRuns(v int) *TaskUpsert {
	u.Add(task.FieldCurrentRuns, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *TaskUpsert) SetExpiresAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateExpiresAt() *TaskUpsert {
	u.SetExcluded(task.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *TaskUpsert) ClearExpiresAt() *TaskUpsert {
	u.SetNull(task.FieldExpiresAt)
	return u
}

// SetTaskContext sets the "task_context" field.
func (u *TaskUpsert) SetTaskContext(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldTaskContext, v)
	return u
}

// UpdateTaskContext sets the "task_context" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskContext() *TaskUpsert {
	u.SetExcluded(task.FieldTaskContext)
	return u
}

// ClearTaskContext clears the value of the "task_context" field.
func (u *TaskUpsert) ClearTaskContext() *TaskUpsert {
	u.SetNull(task.FieldTaskContext)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *TaskUpsert) SetConsecutiveFailures(v int) *TaskUpsert {
	u.Set(task.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *TaskUpsert) UpdateConsecutiveFailures() *TaskUpsert {
	u.SetExcluded(task.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *TaskUpsert) AddConsecutiveFailures(v int) *TaskUpsert {
	u.Add(task.FieldConsecutiveFailures, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsert) SetLastError(v string) *TaskUpsert {
	u.Set(task.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastError() *TaskUpsert {
	u.SetExcluded(task.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsert) ClearLastError() *TaskUpsert {
	u.SetNull(task.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(task.FieldConversationID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(task.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TaskUpsertOne) SetName(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateName() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetIntervalValue sets the "interval_value" field.
func (u *TaskUpsertOne) SetIntervalValue(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIntervalValue(v)
	})
}

// AddIntervalValue adds v to the "interval_value" field.
func (u *TaskUpsertOne) AddIntervalValue(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddIntervalValue(v)
	})
}

// UpdateIntervalValue sets the "interval_value" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIntervalValue() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIntervalValue()
	})
}

// ClearIntervalValue clears the value of the "interval_value" field.
func (u *TaskUpsertOne) ClearIntervalValue() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIntervalValue()
	})
}

// SetIntervalUnit sets the "interval_unit" field.
func (u *TaskUpsertOne) SetIntervalUnit(v task.IntervalUnit) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetIntervalUnit(v)
	})
}

// UpdateIntervalUnit sets the "interval_unit" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateIntervalUnit() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIntervalUnit()
	})
}

// ClearIntervalUnit clears the value of the "interval_unit" field.
func (u *TaskUpsertOne) ClearIntervalUnit() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIntervalUnit()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *TaskUpsertOne) SetCronExpression(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCronExpression() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *TaskUpsertOne) ClearCronExpression() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCronExpression()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *TaskUpsertOne) SetNextRunAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateNextRunAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *TaskUpsertOne) ClearNextRunAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *TaskUpsertOne) SetLastRunAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastRunAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *TaskUpsertOne) ClearLastRunAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastRunAt()
	})
}

// SetMaxRuns sets the "max_runs" field.
func (u *TaskUpsertOne) SetMaxRuns(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRuns(v)
	})
}

// AddMaxRuns adds v to the "max_runs" field.
func (u *TaskUpsertOne) AddMaxRuns(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRuns(v)
	})
}

// UpdateMaxRuns sets the "max_runs" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxRuns() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRuns()
	})
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (u *TaskUpsertOne) ClearMaxRuns() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearMaxRuns()
	})
}

// SetCurrentRuns sets the "current_runs" field.
func (u *TaskUpsertOne) SetCurrentRuns(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentRuns(v)
	})
}

// AddCurrentRuns adds v to the "current_runs" field.
func (u *TaskUpsertOne) AddCurrentRuns(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddCurrentRuns(v)
	})
}

// UpdateCurrentRuns sets the "current_runs" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCurrentRuns() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentRuns()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *TaskUpsertOne) SetExpiresAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateExpiresAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *TaskUpsertOne) ClearExpiresAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExpiresAt()
	})
}

// SetTaskContext sets the "task_context" field.
func (u *TaskUpsertOne) SetTaskContext(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskContext(v)
	})
}

// UpdateTaskContext sets the "task_context" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskContext()
	})
}

// ClearTaskContext clears the value of the "task_context" field.
func (u *TaskUpsertOne) ClearTaskContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTaskContext()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *TaskUpsertOne) SetConsecutiveFailures(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *TaskUpsertOne) AddConsecutiveFailures(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateConsecutiveFailures() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertOne) SetLastError(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertOne) ClearLastError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(task.FieldConversationID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(task.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TaskUpsertBulk) SetName(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateName() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetIntervalValue sets the "interval_value" field.
func (u *TaskUpsertBulk) SetIntervalValue(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIntervalValue(v)
	})
}

// AddIntervalValue adds v to the "interval_value" field.
func (u *TaskUpsertBulk) AddIntervalValue(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddIntervalValue(v)
	})
}

// UpdateIntervalValue sets the "interval_value" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIntervalValue() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIntervalValue()
	})
}

// ClearIntervalValue clears the value of the "interval_value" field.
func (u *TaskUpsertBulk) ClearIntervalValue() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIntervalValue()
	})
}

// SetIntervalUnit sets the "interval_unit" field.
func (u *TaskUpsertBulk) SetIntervalUnit(v task.IntervalUnit) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetIntervalUnit(v)
	})
}

// UpdateIntervalUnit sets the "interval_unit" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateIntervalUnit() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateIntervalUnit()
	})
}

// ClearIntervalUnit clears the value of the "interval_unit" field.
func (u *TaskUpsertBulk) ClearIntervalUnit() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearIntervalUnit()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *TaskUpsertBulk) SetCronExpression(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCronExpression() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *TaskUpsertBulk) ClearCronExpression() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCronExpression()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *TaskUpsertBulk) SetNextRunAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateNextRunAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *TaskUpsertBulk) ClearNextRunAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *TaskUpsertBulk) SetLastRunAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastRunAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *TaskUpsertBulk) ClearLastRunAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastRunAt()
	})
}

// SetMaxRuns sets the "max_runs" field.
func (u *TaskUpsertBulk) SetMaxRuns(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRuns(v)
	})
}

// AddMaxRuns adds v to the "max_runs" field.
func (u *TaskUpsertBulk) AddMaxRuns(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRuns(v)
	})
}

// UpdateMaxRuns sets the "max_runs" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxRuns() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRuns()
	})
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (u *TaskUpsertBulk) ClearMaxRuns() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearMaxRuns()
	})
}

// SetCurrentRuns sets the "current_runs" field.
func (u *TaskUpsertBulk) SetCurrentRuns(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCurrentRuns(v)
	})
}

// AddCurrentRuns adds v to the "current_runs" field.
func (u *TaskUpsertBulk) AddCurrentRuns(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddCurrentRuns(v)
	})
}

// UpdateCurrentRuns sets the "current_runs" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCurrentRuns() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCurrentRuns()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *TaskUpsertBulk) SetExpiresAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateExpiresAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *TaskUpsertBulk) ClearExpiresAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExpiresAt()
	})
}

// SetTaskContext sets the "task_context" field.
func (u *TaskUpsertBulk) SetTaskContext(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskContext(v)
	})
}

// UpdateTaskContext sets the "task_context" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskContext()
	})
}

// ClearTaskContext clears the value of the "task_context" field.
func (u *TaskUpsertBulk) ClearTaskContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTaskContext()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *TaskUpsertBulk) SetConsecutiveFailures(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *TaskUpsertBulk) AddConsecutiveFailures(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateConsecutiveFailures() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetLastError sets the "last_error" field.
func (u *TaskUpsertBulk) SetLastError(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *TaskUpsertBulk) ClearLastError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
