// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/majordomo-io/majordomo/ent/predicate"
	"github.com/majordomo-io/majordomo/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskUpdate) SetName(v string) *TaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdate) ClearDescription() *TaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntervalValue sets the "interval_value" field.
func (_u *TaskUpdate) SetIntervalValue(v int) *TaskUpdate {
	_u.mutation.ResetIntervalValue()
	_u.mutation.SetIntervalValue(v)
	return _u
}

// SetNillableIntervalValue sets the "interval_value" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIntervalValue(v *int) *TaskUpdate {
	if v != nil {
		_u.SetIntervalValue(*v)
	}
	return _u
}

// AddIntervalValue adds value to the "interval_value" field.
func (_u *TaskUpdate) AddIntervalValue(v int) *TaskUpdate {
	_u.mutation.AddIntervalValue(v)
	return _u
}

// ClearIntervalValue clears the value of the "interval_value" field.
func (_u *TaskUpdate) ClearIntervalValue() *TaskUpdate {
	_u.mutation.ClearIntervalValue()
	return _u
}

// SetIntervalUnit sets the "interval_unit" field.
func (_u *TaskUpdate) SetIntervalUnit(v task.IntervalUnit) *TaskUpdate {
	_u.mutation.SetIntervalUnit(v)
	return _u
}

// SetNillableIntervalUnit sets the "interval_unit" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableIntervalUnit(v *task.IntervalUnit) *TaskUpdate {
	if v != nil {
		_u.SetIntervalUnit(*v)
	}
	return _u
}

// ClearIntervalUnit clears the value of the "interval_unit" field.
func (_u *TaskUpdate) ClearIntervalUnit() *TaskUpdate {
	_u.mutation.ClearIntervalUnit()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *TaskUpdate) SetCronExpression(v string) *TaskUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCronExpression(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *TaskUpdate) ClearCronExpression() *TaskUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *TaskUpdate) SetNextRunAt(v time.Time) *TaskUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableNextRunAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *TaskUpdate) ClearNextRunAt() *TaskUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *TaskUpdate) SetLastRunAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastRunAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *TaskUpdate) ClearLastRunAt() *TaskUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *TaskUpdate) SetMaxRuns(v int) *TaskUpdate {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxRuns(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *TaskUpdate) AddMaxRuns(v int) *TaskUpdate {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (_u *TaskUpdate) ClearMaxRuns() *TaskUpdate {
	_u.mutation.ClearMaxRuns()
	return _u
}

// SetCurrentRuns sets the "current_runs" field.
func (_u *TaskUpdate) SetCurrentRuns(v int) *TaskUpdate {
	_u.mutation.ResetCurrentRuns()
	_u.mutation.SetCurrentRuns(v)
	return _u
}

// SetNillableCurrentRuns sets the "current_runs" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentRuns(v *int) *TaskUpdate {
	if v != nil {
		_u.SetCurrentRuns(*v)
	}
	return _u
}

// AddCurrentRuns adds value to the "current_runs" field.
func (_u *TaskUpdate) AddCurrentRuns(v int) *TaskUpdate {
	_u.mutation.AddCurrentRuns(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TaskUpdate) SetExpiresAt(v time.Time) *TaskUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExpiresAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *TaskUpdate) ClearExpiresAt() *TaskUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetTaskContext sets the "task_context" field.
func (_u *TaskUpdate) SetTaskContext(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetTaskContext(v)
	return _u
}

// ClearTaskContext clears the value of the "task_context" field.
func (_u *TaskUpdate) ClearTaskContext() *TaskUpdate {
	_u.mutation.ClearTaskContext()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *TaskUpdate) SetConsecutiveFailures(v int) *TaskUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableConsecutiveFailures(v *int) *TaskUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *TaskUpdate) AddConsecutiveFailures(v int) *TaskUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdate) SetLastError(v string) *TaskUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdate) ClearLastError() *TaskUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalUnit(); ok {
		if err := task.IntervalUnitValidator(v); err != nil {
			return &ValidationError{Name: "interval_unit", err: fmt.Errorf(`ent: validator failed for field "Task.interval_unit": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.conversation"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalValue(); ok {
		_spec.SetField(task.FieldIntervalValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalValue(); ok {
		_spec.AddField(task.FieldIntervalValue, field.TypeInt, value)
	}
	if _u.mutation.IntervalValueCleared() {
		_spec.ClearField(task.FieldIntervalValue, field.TypeInt)
	}
	if value, ok := _u.mutation.IntervalUnit(); ok {
		_spec.SetField(task.FieldIntervalUnit, field.TypeEnum, value)
	}
	if _u.mutation.IntervalUnitCleared() {
		_spec.ClearField(task.FieldIntervalUnit, field.TypeEnum)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(task.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(task.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(task.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(task.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(task.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(task.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(task.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(task.FieldMaxRuns, field.TypeInt, value)
	}
	if _u.mutation.MaxRunsCleared() {
		_spec.ClearField(task.FieldMaxRuns, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentRuns(); ok {
		_spec.SetField(task.FieldCurrentRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRuns(); ok {
		_spec.AddField(task.FieldCurrentRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(task.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(task.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TaskContext(); ok {
		_spec.SetField(task.FieldTaskContext, field.TypeJSON, value)
	}
	if _u.mutation.TaskContextCleared() {
		_spec.ClearField(task.FieldTaskContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(task.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(task.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetName sets the "name" field.
func (_u *TaskUpdateOne) SetName(v string) *TaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TaskUpdateOne) ClearDescription() *TaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntervalValue sets the "interval_value" field.
func (_u *TaskUpdateOne) SetIntervalValue(v int) *TaskUpdateOne {
	_u.mutation.ResetIntervalValue()
	_u.mutation.SetIntervalValue(v)
	return _u
}

// SetNillableIntervalValue sets the "interval_value" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIntervalValue(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetIntervalValue(*v)
	}
	return _u
}

// AddIntervalValue adds value to the "interval_value" field.
func (_u *TaskUpdateOne) AddIntervalValue(v int) *TaskUpdateOne {
	_u.mutation.AddIntervalValue(v)
	return _u
}

// ClearIntervalValue clears the value of the "interval_value" field.
func (_u *TaskUpdateOne) ClearIntervalValue() *TaskUpdateOne {
	_u.mutation.ClearIntervalValue()
	return _u
}

// SetIntervalUnit sets the "interval_unit" field.
func (_u *TaskUpdateOne) SetIntervalUnit(v task.IntervalUnit) *TaskUpdateOne {
	_u.mutation.SetIntervalUnit(v)
	return _u
}

// SetNillableIntervalUnit sets the "interval_unit" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableIntervalUnit(v *task.IntervalUnit) *TaskUpdateOne {
	if v != nil {
		_u.SetIntervalUnit(*v)
	}
	return _u
}

// ClearIntervalUnit clears the value of the "interval_unit" field.
func (_u *TaskUpdateOne) ClearIntervalUnit() *TaskUpdateOne {
	_u.mutation.ClearIntervalUnit()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *TaskUpdateOne) SetCronExpression(v string) *TaskUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCronExpression(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *TaskUpdateOne) ClearCronExpression() *TaskUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *TaskUpdateOne) SetNextRunAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableNextRunAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *TaskUpdateOne) ClearNextRunAt() *TaskUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *TaskUpdateOne) SetLastRunAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastRunAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *TaskUpdateOne) ClearLastRunAt() *TaskUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetMaxRuns sets the "max_runs" field.
func (_u *TaskUpdateOne) SetMaxRuns(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxRuns()
	_u.mutation.SetMaxRuns(v)
	return _u
}

// SetNillableMaxRuns sets the "max_runs" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxRuns(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxRuns(*v)
	}
	return _u
}

// AddMaxRuns adds value to the "max_runs" field.
func (_u *TaskUpdateOne) AddMaxRuns(v int) *TaskUpdateOne {
	_u.mutation.AddMaxRuns(v)
	return _u
}

// ClearMaxRuns clears the value of the "max_runs" field.
func (_u *TaskUpdateOne) ClearMaxRuns() *TaskUpdateOne {
	_u.mutation.ClearMaxRuns()
	return _u
}

// SetCurrentRuns sets the "current_runs" field.
func (_u *TaskUpdateOne) SetCurrentRuns(v int) *TaskUpdateOne {
	_u.mutation.ResetCurrentRuns()
	_u.mutation.SetCurrentRuns(v)
	return _u
}

// SetNillableCurrentRuns sets the "current_runs" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentRuns(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentRuns(*v)
	}
	return _u
}

// AddCurrentRuns adds value to the "current_runs" field.
func (_u *TaskUpdateOne) AddCurrentRuns(v int) *TaskUpdateOne {
	_u.mutation.AddCurrentRuns(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *TaskUpdateOne) SetExpiresAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExpiresAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *TaskUpdateOne) ClearExpiresAt() *TaskUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetTaskContext sets the "task_context" field.
func (_u *TaskUpdateOne) SetTaskContext(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetTaskContext(v)
	return _u
}

// ClearTaskContext clears the value of the "task_context" field.
func (_u *TaskUpdateOne) ClearTaskContext() *TaskUpdateOne {
	_u.mutation.ClearTaskContext()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *TaskUpdateOne) SetConsecutiveFailures(v int) *TaskUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableConsecutiveFailures(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *TaskUpdateOne) AddConsecutiveFailures(v int) *TaskUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *TaskUpdateOne) SetLastError(v string) *TaskUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *TaskUpdateOne) ClearLastError() *TaskUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalUnit(); ok {
		if err := task.IntervalUnitValidator(v); err != nil {
			return &ValidationError{Name: "interval_unit", err: fmt.Errorf(`ent: validator failed for field "Task.interval_unit": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.conversation"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(task.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntervalValue(); ok {
		_spec.SetField(task.FieldIntervalValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalValue(); ok {
		_spec.AddField(task.FieldIntervalValue, field.TypeInt, value)
	}
	if _u.mutation.IntervalValueCleared() {
		_spec.ClearField(task.FieldIntervalValue, field.TypeInt)
	}
	if value, ok := _u.mutation.IntervalUnit(); ok {
		_spec.SetField(task.FieldIntervalUnit, field.TypeEnum, value)
	}
	if _u.mutation.IntervalUnitCleared() {
		_spec.ClearField(task.FieldIntervalUnit, field.TypeEnum)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(task.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(task.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(task.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(task.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(task.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(task.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MaxRuns(); ok {
		_spec.SetField(task.FieldMaxRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRuns(); ok {
		_spec.AddField(task.FieldMaxRuns, field.TypeInt, value)
	}
	if _u.mutation.MaxRunsCleared() {
		_spec.ClearField(task.FieldMaxRuns, field.TypeInt)
	}
	if value, ok := _u.mutation.CurrentRuns(); ok {
		_spec.SetField(task.FieldCurrentRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRuns(); ok {
		_spec.AddField(task.FieldCurrentRuns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(task.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(task.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TaskContext(); ok {
		_spec.SetField(task.FieldTaskContext, field.TypeJSON, value)
	}
	if _u.mutation.TaskContextCleared() {
		_spec.ClearField(task.FieldTaskContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(task.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(task.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(task.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(task.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
