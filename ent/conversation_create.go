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
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/notification"
	"github.com/majordomo-io/majordomo/ent/task"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ConversationCreate) SetUserID(v string) *ConversationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ConversationCreate) SetTitle(v string) *ConversationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTitle(v *string) *ConversationCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversationCreate) SetStatus(v conversation.Status) *ConversationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableStatus(v *conversation.Status) *ConversationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduleType sets the "schedule_type" field.
func (_c *ConversationCreate) SetScheduleType(v conversation.ScheduleType) *ConversationCreate {
	_c.mutation.SetScheduleType(v)
	return _c
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableScheduleType(v *conversation.ScheduleType) *ConversationCreate {
	if v != nil {
		_c.SetScheduleType(*v)
	}
	return _c
}

// SetCronExpression sets the "cron_expression" field.
func (_c *ConversationCreate) SetCronExpression(v string) *ConversationCreate {
	_c.mutation.SetCronExpression(v)
	return _c
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCronExpression(v *string) *ConversationCreate {
	if v != nil {
		_c.SetCronExpression(*v)
	}
	return _c
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (_c *ConversationCreate) SetScheduledRunAt(v time.Time) *ConversationCreate {
	_c.mutation.SetScheduledRunAt(v)
	return _c
}

// SetNillableScheduledRunAt sets the "scheduled_run_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableScheduledRunAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetScheduledRunAt(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ConversationCreate) SetNextRunAt(v time.Time) *ConversationCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableNextRunAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetStateContext sets the "state_context" field.
func (_c *ConversationCreate) SetStateContext(v map[string]interface{}) *ConversationCreate {
	_c.mutation.SetStateContext(v)
	return _c
}

// SetStateStep sets the "state_step" field.
func (_c *ConversationCreate) SetStateStep(v string) *ConversationCreate {
	_c.mutation.SetStateStep(v)
	return _c
}

// SetNillableStateStep sets the "state_step" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableStateStep(v *string) *ConversationCreate {
	if v != nil {
		_c.SetStateStep(*v)
	}
	return _c
}

// SetStateData sets the "state_data" field.
func (_c *ConversationCreate) SetStateData(v map[string]interface{}) *ConversationCreate {
	_c.mutation.SetStateData(v)
	return _c
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (_c *ConversationCreate) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationCreate {
	_c.mutation.SetPendingQuestionType(v)
	return _c
}

// SetNillablePendingQuestionType sets the "pending_question_type" field if the given value is not nil.
func (_c *ConversationCreate) SetNillablePendingQuestionType(v *conversation.PendingQuestionType) *ConversationCreate {
	if v != nil {
		_c.SetPendingQuestionType(*v)
	}
	return _c
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (_c *ConversationCreate) SetPendingQuestionPrompt(v string) *ConversationCreate {
	_c.mutation.SetPendingQuestionPrompt(v)
	return _c
}

// SetNillablePendingQuestionPrompt sets the "pending_question_prompt" field if the given value is not nil.
func (_c *ConversationCreate) SetNillablePendingQuestionPrompt(v *string) *ConversationCreate {
	if v != nil {
		_c.SetPendingQuestionPrompt(*v)
	}
	return _c
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (_c *ConversationCreate) SetPendingQuestionOptions(v []string) *ConversationCreate {
	_c.mutation.SetPendingQuestionOptions(v)
	return _c
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_c *ConversationCreate) SetClaudeSessionID(v string) *ConversationCreate {
	_c.mutation.SetClaudeSessionID(v)
	return _c
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableClaudeSessionID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetClaudeSessionID(*v)
	}
	return _c
}

// SetSkills sets the "skills" field.
func (_c *ConversationCreate) SetSkills(v []string) *ConversationCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *ConversationCreate) SetConsecutiveFailures(v int) *ConversationCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableConsecutiveFailures(v *int) *ConversationCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *ConversationCreate) AddTaskIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *ConversationCreate) AddTasks(v ...*Task) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_c *ConversationCreate) AddNotificationIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddNotificationIDs(ids...)
	return _c
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_c *ConversationCreate) AddNotifications(v ...*Notification) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNotificationIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := conversation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StateStep(); !ok {
		v := conversation.DefaultStateStep
		_c.mutation.SetStateStep(v)
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := conversation.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Conversation.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Conversation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ScheduleType(); ok {
		if err := conversation.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.schedule_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StateStep(); !ok {
		return &ValidationError{Name: "state_step", err: errors.New(`ent: missing required field "Conversation.state_step"`)}
	}
	if v, ok := _c.mutation.PendingQuestionType(); ok {
		if err := conversation.PendingQuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "pending_question_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.pending_question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "Conversation.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduleType(); ok {
		_spec.SetField(conversation.FieldScheduleType, field.TypeEnum, value)
		_node.ScheduleType = value
	}
	if value, ok := _c.mutation.CronExpression(); ok {
		_spec.SetField(conversation.FieldCronExpression, field.TypeString, value)
		_node.CronExpression = value
	}
	if value, ok := _c.mutation.ScheduledRunAt(); ok {
		_spec.SetField(conversation.FieldScheduledRunAt, field.TypeTime, value)
		_node.ScheduledRunAt = &value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(conversation.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.StateContext(); ok {
		_spec.SetField(conversation.FieldStateContext, field.TypeJSON, value)
		_node.StateContext = value
	}
	if value, ok := _c.mutation.StateStep(); ok {
		_spec.SetField(conversation.FieldStateStep, field.TypeString, value)
		_node.StateStep = value
	}
	if value, ok := _c.mutation.StateData(); ok {
		_spec.SetField(conversation.FieldStateData, field.TypeJSON, value)
		_node.StateData = value
	}
	if value, ok := _c.mutation.PendingQuestionType(); ok {
		_spec.SetField(conversation.FieldPendingQuestionType, field.TypeEnum, value)
		_node.PendingQuestionType = value
	}
	if value, ok := _c.mutation.PendingQuestionPrompt(); ok {
		_spec.SetField(conversation.FieldPendingQuestionPrompt, field.TypeString, value)
		_node.PendingQuestionPrompt = value
	}
	if value, ok := _c.mutation.PendingQuestionOptions(); ok {
		_spec.SetField(conversation.FieldPendingQuestionOptions, field.TypeJSON, value)
		_node.PendingQuestionOptions = value
	}
	if value, ok := _c.mutation.ClaudeSessionID(); ok {
		_spec.SetField(conversation.FieldClaudeSessionID, field.TypeString, value)
		_node.ClaudeSessionID = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(conversation.FieldSkills, field.TypeJSON, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(conversation.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.TasksTable,
			Columns: []string{conversation.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NotificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.NotificationsTable,
			Columns: []string{conversation.NotificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ConversationUpsert) SetTitle(v string) *ConversationUpsert {
	u.Set(conversation.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateTitle() *ConversationUpsert {
	u.SetExcluded(conversation.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *ConversationUpsert) ClearTitle() *ConversationUpsert {
	u.SetNull(conversation.FieldTitle)
	return u
}

// SetStatus sets the "status" field.
func (u *ConversationUpsert) SetStatus(v conversation.Status) *ConversationUpsert {
	u.Set(conversation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateStatus() *ConversationUpsert {
	u.SetExcluded(conversation.FieldStatus)
	return u
}

// SetScheduleType sets the "schedule_type" field.
func (u *ConversationUpsert) SetScheduleType(v conversation.ScheduleType) *ConversationUpsert {
	u.Set(conversation.FieldScheduleType, v)
	return u
}

// UpdateScheduleType sets the "schedule_type" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateScheduleType() *ConversationUpsert {
	u.SetExcluded(conversation.FieldScheduleType)
	return u
}

// ClearScheduleType clears the value of the "schedule_type" field.
func (u *ConversationUpsert) ClearScheduleType() *ConversationUpsert {
	u.SetNull(conversation.FieldScheduleType)
	return u
}

// SetCronExpression sets the "cron_expression" field.
func (u *ConversationUpsert) SetCronExpression(v string) *ConversationUpsert {
	u.Set(conversation.FieldCronExpression, v)
	return u
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateCronExpression() *ConversationUpsert {
	u.SetExcluded(conversation.FieldCronExpression)
	return u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *ConversationUpsert) ClearCronExpression() *ConversationUpsert {
	u.SetNull(conversation.FieldCronExpression)
	return u
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (u *ConversationUpsert) SetScheduledRunAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldScheduledRunAt, v)
	return u
}

// UpdateScheduledRunAt sets the "scheduled_run_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateScheduledRunAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldScheduledRunAt)
	return u
}

// ClearScheduledRunAt clears the value of the "scheduled_run_at" field.
func (u *ConversationUpsert) ClearScheduledRunAt() *ConversationUpsert {
	u.SetNull(conversation.FieldScheduledRunAt)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ConversationUpsert) SetNextRunAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateNextRunAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ConversationUpsert) ClearNextRunAt() *ConversationUpsert {
	u.SetNull(conversation.FieldNextRunAt)
	return u
}

// SetStateContext sets the "state_context" field.
func (u *ConversationUpsert) SetStateContext(v map[string]interface{}) *ConversationUpsert {
	u.Set(conversation.FieldStateContext, v)
	return u
}

// UpdateStateContext sets the "state_context" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateStateContext() *ConversationUpsert {
	u.SetExcluded(conversation.FieldStateContext)
	return u
}

// ClearStateContext clears the value of the "state_context" field.
func (u *ConversationUpsert) ClearStateContext() *ConversationUpsert {
	u.SetNull(conversation.FieldStateContext)
	return u
}

// SetStateStep sets the "state_step" field.
func (u *ConversationUpsert) SetStateStep(v string) *ConversationUpsert {
	u.Set(conversation.FieldStateStep, v)
	return u
}

// UpdateStateStep sets the "state_step" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateStateStep() *ConversationUpsert {
	u.SetExcluded(conversation.FieldStateStep)
	return u
}

// SetStateData sets the "state_data" field.
func (u *ConversationUpsert) SetStateData(v map[string]interface{}) *ConversationUpsert {
	u.Set(conversation.FieldStateData, v)
	return u
}

// UpdateStateData sets the "state_data" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateStateData() *ConversationUpsert {
	u.SetExcluded(conversation.FieldStateData)
	return u
}

// ClearStateData clears the value of the "state_data" field.
func (u *ConversationUpsert) ClearStateData() *ConversationUpsert {
	u.SetNull(conversation.FieldStateData)
	return u
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (u *ConversationUpsert) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationUpsert {
	u.Set(conversation.FieldPendingQuestionType, v)
	return u
}

// UpdatePendingQuestionType sets the "pending_question_type" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePendingQuestionType() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPendingQuestionType)
	return u
}

// ClearPendingQuestionType clears the value of the "pending_question_type" field.
func (u *ConversationUpsert) ClearPendingQuestionType() *ConversationUpsert {
	u.SetNull(conversation.FieldPendingQuestionType)
	return u
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (u *ConversationUpsert) SetPendingQuestionPrompt(v string) *ConversationUpsert {
	u.Set(conversation.FieldPendingQuestionPrompt, v)
	return u
}

// UpdatePendingQuestionPrompt sets the "pending_question_prompt" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePendingQuestionPrompt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPendingQuestionPrompt)
	return u
}

// ClearPendingQuestionPrompt clears the value of the "pending_question_prompt" field.
func (u *ConversationUpsert) ClearPendingQuestionPrompt() *ConversationUpsert {
	u.SetNull(conversation.FieldPendingQuestionPrompt)
	return u
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (u *ConversationUpsert) SetPendingQuestionOptions(v []string) *ConversationUpsert {
	u.Set(conversation.FieldPendingQuestionOptions, v)
	return u
}

// UpdatePendingQuestionOptions sets the "pending_question_options" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePendingQuestionOptions() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPendingQuestionOptions)
	return u
}

// ClearPendingQuestionOptions clears the value of the "pending_question_options" field.
func (u *ConversationUpsert) ClearPendingQuestionOptions() *ConversationUpsert {
	u.SetNull(conversation.FieldPendingQuestionOptions)
	return u
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (u *ConversationUpsert) SetClaudeSessionID(v string) *ConversationUpsert {
	u.Set(conversation.FieldClaudeSessionID, v)
	return u
}

// UpdateClaudeSessionID sets the "claude_session_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateClaudeSessionID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldClaudeSessionID)
	return u
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (u *ConversationUpsert) ClearClaudeSessionID() *ConversationUpsert {
	u.SetNull(conversation.FieldClaudeSessionID)
	return u
}

// SetSkills sets the "skills" field.
func (u *ConversationUpsert) SetSkills(v []string) *ConversationUpsert {
	u.Set(conversation.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateSkills() *ConversationUpsert {
	u.SetExcluded(conversation.FieldSkills)
	return u
}

// ClearSkills clears the value of the "skills" field.
func (u *ConversationUpsert) ClearSkills() *ConversationUpsert {
	u.SetNull(conversation.FieldSkills)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ConversationUpsert) SetConsecutiveFailures(v int) *ConversationUpsert {
	u.Set(conversation.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateConsecutiveFailures() *ConversationUpsert {
	u.SetExcluded(conversation.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ConversationUpsert) AddConsecutiveFailures(v int) *ConversationUpsert {
	u.Add(conversation.FieldConsecutiveFailures, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsert) SetUpdatedAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateUpdatedAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(conversation.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ConversationUpsertOne) SetTitle(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateTitle() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ConversationUpsertOne) ClearTitle() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *ConversationUpsertOne) SetStatus(v conversation.Status) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateStatus() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetScheduleType sets the "schedule_type" field.
func (u *ConversationUpsertOne) SetScheduleType(v conversation.ScheduleType) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetScheduleType(v)
	})
}

// UpdateScheduleType sets the "schedule_type" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateScheduleType() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateScheduleType()
	})
}

// ClearScheduleType clears the value of the "schedule_type" field.
func (u *ConversationUpsertOne) ClearScheduleType() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearScheduleType()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *ConversationUpsertOne) SetCronExpression(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateCronExpression() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *ConversationUpsertOne) ClearCronExpression() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearCronExpression()
	})
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (u *ConversationUpsertOne) SetScheduledRunAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetScheduledRunAt(v)
	})
}

// UpdateScheduledRunAt sets the "scheduled_run_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateScheduledRunAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateScheduledRunAt()
	})
}

// ClearScheduledRunAt clears the value of the "scheduled_run_at" field.
func (u *ConversationUpsertOne) ClearScheduledRunAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearScheduledRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ConversationUpsertOne) SetNextRunAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateNextRunAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ConversationUpsertOne) ClearNextRunAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNextRunAt()
	})
}

// SetStateContext sets the "state_context" field.
func (u *ConversationUpsertOne) SetStateContext(v map[string]interface{}) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateContext(v)
	})
}

// UpdateStateContext sets the "state_context" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateStateContext() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateContext()
	})
}

// ClearStateContext clears the value of the "state_context" field.
func (u *ConversationUpsertOne) ClearStateContext() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearStateContext()
	})
}

// SetStateStep sets the "state_step" field.
func (u *ConversationUpsertOne) SetStateStep(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateStep(v)
	})
}

// UpdateStateStep sets the "state_step" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateStateStep() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateStep()
	})
}

// SetStateData sets the "state_data" field.
func (u *ConversationUpsertOne) SetStateData(v map[string]interface{}) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateData(v)
	})
}

// UpdateStateData sets the "state_data" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateStateData() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateData()
	})
}

// ClearStateData clears the value of the "state_data" field.
func (u *ConversationUpsertOne) ClearStateData() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearStateData()
	})
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (u *ConversationUpsertOne) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionType(v)
	})
}

// UpdatePendingQuestionType sets the "pending_question_type" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePendingQuestionType() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionType()
	})
}

// ClearPendingQuestionType clears the value of the "pending_question_type" field.
func (u *ConversationUpsertOne) ClearPendingQuestionType() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionType()
	})
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (u *ConversationUpsertOne) SetPendingQuestionPrompt(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionPrompt(v)
	})
}

// UpdatePendingQuestionPrompt sets the "pending_question_prompt" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePendingQuestionPrompt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionPrompt()
	})
}

// ClearPendingQuestionPrompt clears the value of the "pending_question_prompt" field.
func (u *ConversationUpsertOne) ClearPendingQuestionPrompt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionPrompt()
	})
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (u *ConversationUpsertOne) SetPendingQuestionOptions(v []string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionOptions(v)
	})
}

// UpdatePendingQuestionOptions sets the "pending_question_options" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePendingQuestionOptions() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionOptions()
	})
}

// ClearPendingQuestionOptions clears the value of the "pending_question_options" field.
func (u *ConversationUpsertOne) ClearPendingQuestionOptions() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionOptions()
	})
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (u *ConversationUpsertOne) SetClaudeSessionID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetClaudeSessionID(v)
	})
}

// UpdateClaudeSessionID sets the "claude_session_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateClaudeSessionID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateClaudeSessionID()
	})
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (u *ConversationUpsertOne) ClearClaudeSessionID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearClaudeSessionID()
	})
}

// SetSkills sets the "skills" field.
func (u *ConversationUpsertOne) SetSkills(v []string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateSkills() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *ConversationUpsertOne) ClearSkills() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSkills()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ConversationUpsertOne) SetConsecutiveFailures(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ConversationUpsertOne) AddConsecutiveFailures(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateConsecutiveFailures() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertOne) SetUpdatedAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateUpdatedAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(conversation.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ConversationUpsertBulk) SetTitle(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateTitle() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *ConversationUpsertBulk) ClearTitle() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearTitle()
	})
}

// SetStatus sets the "status" field.
func (u *ConversationUpsertBulk) SetStatus(v conversation.Status) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateStatus() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetScheduleType sets the "schedule_type" field.
func (u *ConversationUpsertBulk) SetScheduleType(v conversation.ScheduleType) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetScheduleType(v)
	})
}

// UpdateScheduleType sets the "schedule_type" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateScheduleType() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateScheduleType()
	})
}

// ClearScheduleType clears the value of the "schedule_type" field.
func (u *ConversationUpsertBulk) ClearScheduleType() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearScheduleType()
	})
}

// SetCronExpression sets the "cron_expression" field.
func (u *ConversationUpsertBulk) SetCronExpression(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetCronExpression(v)
	})
}

// UpdateCronExpression sets the "cron_expression" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateCronExpression() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateCronExpression()
	})
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (u *ConversationUpsertBulk) ClearCronExpression() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearCronExpression()
	})
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (u *ConversationUpsertBulk) SetScheduledRunAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetScheduledRunAt(v)
	})
}

// UpdateScheduledRunAt sets the "scheduled_run_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateScheduledRunAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateScheduledRunAt()
	})
}

// ClearScheduledRunAt clears the value of the "scheduled_run_at" field.
func (u *ConversationUpsertBulk) ClearScheduledRunAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearScheduledRunAt()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ConversationUpsertBulk) SetNextRunAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateNextRunAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ConversationUpsertBulk) ClearNextRunAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNextRunAt()
	})
}

// SetStateContext sets the "state_context" field.
func (u *ConversationUpsertBulk) SetStateContext(v map[string]interface{}) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateContext(v)
	})
}

// UpdateStateContext sets the "state_context" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateStateContext() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateContext()
	})
}

// ClearStateContext clears the value of the "state_context" field.
func (u *ConversationUpsertBulk) ClearStateContext() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearStateContext()
	})
}

// SetStateStep sets the "state_step" field.
func (u *ConversationUpsertBulk) SetStateStep(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateStep(v)
	})
}

// UpdateStateStep sets the "state_step" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateStateStep() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateStep()
	})
}

// SetStateData sets the "state_data" field.
func (u *ConversationUpsertBulk) SetStateData(v map[string]interface{}) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStateData(v)
	})
}

// UpdateStateData sets the "state_data" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateStateData() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStateData()
	})
}

// ClearStateData clears the value of the "state_data" field.
func (u *ConversationUpsertBulk) ClearStateData() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearStateData()
	})
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (u *ConversationUpsertBulk) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionType(v)
	})
}

// UpdatePendingQuestionType sets the "pending_question_type" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePendingQuestionType() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionType()
	})
}

// ClearPendingQuestionType clears the value of the "pending_question_type" field.
func (u *ConversationUpsertBulk) ClearPendingQuestionType() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionType()
	})
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (u *ConversationUpsertBulk) SetPendingQuestionPrompt(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionPrompt(v)
	})
}

// UpdatePendingQuestionPrompt sets the "pending_question_prompt" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePendingQuestionPrompt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionPrompt()
	})
}

// ClearPendingQuestionPrompt clears the value of the "pending_question_prompt" field.
func (u *ConversationUpsertBulk) ClearPendingQuestionPrompt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionPrompt()
	})
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (u *ConversationUpsertBulk) SetPendingQuestionOptions(v []string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPendingQuestionOptions(v)
	})
}

// UpdatePendingQuestionOptions sets the "pending_question_options" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePendingQuestionOptions() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePendingQuestionOptions()
	})
}

// ClearPendingQuestionOptions clears the value of the "pending_question_options" field.
func (u *ConversationUpsertBulk) ClearPendingQuestionOptions() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPendingQuestionOptions()
	})
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (u *ConversationUpsertBulk) SetClaudeSessionID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetClaudeSessionID(v)
	})
}

// UpdateClaudeSessionID sets the "claude_session_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateClaudeSessionID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateClaudeSessionID()
	})
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (u *ConversationUpsertBulk) ClearClaudeSessionID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearClaudeSessionID()
	})
}

// SetSkills sets the "skills" field.
func (u *ConversationUpsertBulk) SetSkills(v []string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateSkills() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSkills()
	})
}

// ClearSkills clears the value of the "skills" field.
func (u *ConversationUpsertBulk) ClearSkills() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSkills()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *ConversationUpsertBulk) SetConsecutiveFailures(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *ConversationUpsertBulk) AddConsecutiveFailures(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateConsecutiveFailures() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertBulk) SetUpdatedAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateUpdatedAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
