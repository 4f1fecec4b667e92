// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/majordomo-io/majordomo/ent/conversation"
	"github.com/majordomo-io/majordomo/ent/message"
	"github.com/majordomo-io/majordomo/ent/notification"
	"github.com/majordomo-io/majordomo/ent/predicate"
	"github.com/majordomo-io/majordomo/ent/task"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConversationUpdate) SetTitle(v string) *ConversationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTitle(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationUpdate) ClearTitle() *ConversationUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ConversationUpdate) SetScheduleType(v conversation.ScheduleType) *ConversationUpdate {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableScheduleType(v *conversation.ScheduleType) *ConversationUpdate {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// ClearScheduleType clears the value of the "schedule_type" field.
func (_u *ConversationUpdate) ClearScheduleType() *ConversationUpdate {
	_u.mutation.ClearScheduleType()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ConversationUpdate) SetCronExpression(v string) *ConversationUpdate {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableCronExpression(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *ConversationUpdate) ClearCronExpression() *ConversationUpdate {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (_u *ConversationUpdate) SetScheduledRunAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetScheduledRunAt(v)
	return _u
}

// SetNillableScheduledRunAt sets the "scheduled_run_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableScheduledRunAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetScheduledRunAt(*v)
	}
	return _u
}

// ClearScheduledRunAt clears the value of the "scheduled_run_at" field.
func (_u *ConversationUpdate) ClearScheduledRunAt() *ConversationUpdate {
	_u.mutation.ClearScheduledRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ConversationUpdate) SetNextRunAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableNextRunAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ConversationUpdate) ClearNextRunAt() *ConversationUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetStateContext sets the "state_context" field.
func (_u *ConversationUpdate) SetStateContext(v map[string]interface{}) *ConversationUpdate {
	_u.mutation.SetStateContext(v)
	return _u
}

// ClearStateContext clears the value of the "state_context" field.
func (_u *ConversationUpdate) ClearStateContext() *ConversationUpdate {
	_u.mutation.ClearStateContext()
	return _u
}

// SetStateStep sets the "state_step" field.
func (_u *ConversationUpdate) SetStateStep(v string) *ConversationUpdate {
	_u.mutation.SetStateStep(v)
	return _u
}

// SetNillableStateStep sets the "state_step" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStateStep(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetStateStep(*v)
	}
	return _u
}

// SetStateData sets the "state_data" field.
func (_u *ConversationUpdate) SetStateData(v map[string]interface{}) *ConversationUpdate {
	_u.mutation.SetStateData(v)
	return _u
}

// ClearStateData clears the value of the "state_data" field.
func (_u *ConversationUpdate) ClearStateData() *ConversationUpdate {
	_u.mutation.ClearStateData()
	return _u
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (_u *ConversationUpdate) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationUpdate {
	_u.mutation.SetPendingQuestionType(v)
	return _u
}

// SetNillablePendingQuestionType sets the "pending_question_type" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePendingQuestionType(v *conversation.PendingQuestionType) *ConversationUpdate {
	if v != nil {
		_u.SetPendingQuestionType(*v)
	}
	return _u
}

// ClearPendingQuestionType clears the value of the "pending_question_type" field.
func (_u *ConversationUpdate) ClearPendingQuestionType() *ConversationUpdate {
	_u.mutation.ClearPendingQuestionType()
	return _u
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (_u *ConversationUpdate) SetPendingQuestionPrompt(v string) *ConversationUpdate {
	_u.mutation.SetPendingQuestionPrompt(v)
	return _u
}

// SetNillablePendingQuestionPrompt sets the "pending_question_prompt" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePendingQuestionPrompt(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetPendingQuestionPrompt(*v)
	}
	return _u
}

// ClearPendingQuestionPrompt clears the value of the "pending_question_prompt" field.
func (_u *ConversationUpdate) ClearPendingQuestionPrompt() *ConversationUpdate {
	_u.mutation.ClearPendingQuestionPrompt()
	return _u
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (_u *ConversationUpdate) SetPendingQuestionOptions(v []string) *ConversationUpdate {
	_u.mutation.SetPendingQuestionOptions(v)
	return _u
}

// AppendPendingQuestionOptions appends value to the "pending_question_options" field.
func (_u *ConversationUpdate) AppendPendingQuestionOptions(v []string) *ConversationUpdate {
	_u.mutation.AppendPendingQuestionOptions(v)
	return _u
}

// ClearPendingQuestionOptions clears the value of the "pending_question_options" field.
func (_u *ConversationUpdate) ClearPendingQuestionOptions() *ConversationUpdate {
	_u.mutation.ClearPendingQuestionOptions()
	return _u
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_u *ConversationUpdate) SetClaudeSessionID(v string) *ConversationUpdate {
	_u.mutation.SetClaudeSessionID(v)
	return _u
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableClaudeSessionID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetClaudeSessionID(*v)
	}
	return _u
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (_u *ConversationUpdate) ClearClaudeSessionID() *ConversationUpdate {
	_u.mutation.ClearClaudeSessionID()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ConversationUpdate) SetSkills(v []string) *ConversationUpdate {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ConversationUpdate) AppendSkills(v []string) *ConversationUpdate {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ConversationUpdate) ClearSkills() *ConversationUpdate {
	_u.mutation.ClearSkills()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ConversationUpdate) SetConsecutiveFailures(v int) *ConversationUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableConsecutiveFailures(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ConversationUpdate) AddConsecutiveFailures(v int) *ConversationUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ConversationUpdate) AddTaskIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ConversationUpdate) AddTasks(v ...*Task) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *ConversationUpdate) AddNotificationIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *ConversationUpdate) AddNotifications(v ...*Notification) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ConversationUpdate) ClearTasks() *ConversationUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ConversationUpdate) RemoveTaskIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ConversationUpdate) RemoveTasks(v ...*Task) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *ConversationUpdate) ClearNotifications() *ConversationUpdate {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *ConversationUpdate) RemoveNotificationIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *ConversationUpdate) RemoveNotifications(v ...*Notification) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := conversation.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PendingQuestionType(); ok {
		if err := conversation.PendingQuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "pending_question_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.pending_question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversation.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(conversation.FieldScheduleType, field.TypeEnum, value)
	}
	if _u.mutation.ScheduleTypeCleared() {
		_spec.ClearField(conversation.FieldScheduleType, field.TypeEnum)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(conversation.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(conversation.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledRunAt(); ok {
		_spec.SetField(conversation.FieldScheduledRunAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledRunAtCleared() {
		_spec.ClearField(conversation.FieldScheduledRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(conversation.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(conversation.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StateContext(); ok {
		_spec.SetField(conversation.FieldStateContext, field.TypeJSON, value)
	}
	if _u.mutation.StateContextCleared() {
		_spec.ClearField(conversation.FieldStateContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StateStep(); ok {
		_spec.SetField(conversation.FieldStateStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateData(); ok {
		_spec.SetField(conversation.FieldStateData, field.TypeJSON, value)
	}
	if _u.mutation.StateDataCleared() {
		_spec.ClearField(conversation.FieldStateData, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingQuestionType(); ok {
		_spec.SetField(conversation.FieldPendingQuestionType, field.TypeEnum, value)
	}
	if _u.mutation.PendingQuestionTypeCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionType, field.TypeEnum)
	}
	if value, ok := _u.mutation.PendingQuestionPrompt(); ok {
		_spec.SetField(conversation.FieldPendingQuestionPrompt, field.TypeString, value)
	}
	if _u.mutation.PendingQuestionPromptCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PendingQuestionOptions(); ok {
		_spec.SetField(conversation.FieldPendingQuestionOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingQuestionOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldPendingQuestionOptions, value)
		})
	}
	if _u.mutation.PendingQuestionOptionsCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClaudeSessionID(); ok {
		_spec.SetField(conversation.FieldClaudeSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaudeSessionIDCleared() {
		_spec.ClearField(conversation.FieldClaudeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(conversation.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(conversation.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(conversation.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(conversation.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetTitle sets the "title" field.
func (_u *ConversationUpdateOne) SetTitle(v string) *ConversationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTitle(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ConversationUpdateOne) ClearTitle() *ConversationUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduleType sets the "schedule_type" field.
func (_u *ConversationUpdateOne) SetScheduleType(v conversation.ScheduleType) *ConversationUpdateOne {
	_u.mutation.SetScheduleType(v)
	return _u
}

// SetNillableScheduleType sets the "schedule_type" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableScheduleType(v *conversation.ScheduleType) *ConversationUpdateOne {
	if v != nil {
		_u.SetScheduleType(*v)
	}
	return _u
}

// ClearScheduleType clears the value of the "schedule_type" field.
func (_u *ConversationUpdateOne) ClearScheduleType() *ConversationUpdateOne {
	_u.mutation.ClearScheduleType()
	return _u
}

// SetCronExpression sets the "cron_expression" field.
func (_u *ConversationUpdateOne) SetCronExpression(v string) *ConversationUpdateOne {
	_u.mutation.SetCronExpression(v)
	return _u
}

// SetNillableCronExpression sets the "cron_expression" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableCronExpression(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetCronExpression(*v)
	}
	return _u
}

// ClearCronExpression clears the value of the "cron_expression" field.
func (_u *ConversationUpdateOne) ClearCronExpression() *ConversationUpdateOne {
	_u.mutation.ClearCronExpression()
	return _u
}

// SetScheduledRunAt sets the "scheduled_run_at" field.
func (_u *ConversationUpdateOne) SetScheduledRunAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetScheduledRunAt(v)
	return _u
}

// SetNillableScheduledRunAt sets the "scheduled_run_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableScheduledRunAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetScheduledRunAt(*v)
	}
	return _u
}

// ClearScheduledRunAt clears the value of the "scheduled_run_at" field.
func (_u *ConversationUpdateOne) ClearScheduledRunAt() *ConversationUpdateOne {
	_u.mutation.ClearScheduledRunAt()
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *ConversationUpdateOne) SetNextRunAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableNextRunAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *ConversationUpdateOne) ClearNextRunAt() *ConversationUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetStateContext sets the "state_context" field.
func (_u *ConversationUpdateOne) SetStateContext(v map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.SetStateContext(v)
	return _u
}

// ClearStateContext clears the value of the "state_context" field.
func (_u *ConversationUpdateOne) ClearStateContext() *ConversationUpdateOne {
	_u.mutation.ClearStateContext()
	return _u
}

// SetStateStep sets the "state_step" field.
func (_u *ConversationUpdateOne) SetStateStep(v string) *ConversationUpdateOne {
	_u.mutation.SetStateStep(v)
	return _u
}

// SetNillableStateStep sets the "state_step" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStateStep(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetStateStep(*v)
	}
	return _u
}

// SetStateData sets the "state_data" field.
func (_u *ConversationUpdateOne) SetStateData(v map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.SetStateData(v)
	return _u
}

// ClearStateData clears the value of the "state_data" field.
func (_u *ConversationUpdateOne) ClearStateData() *ConversationUpdateOne {
	_u.mutation.ClearStateData()
	return _u
}

// SetPendingQuestionType sets the "pending_question_type" field.
func (_u *ConversationUpdateOne) SetPendingQuestionType(v conversation.PendingQuestionType) *ConversationUpdateOne {
	_u.mutation.SetPendingQuestionType(v)
	return _u
}

// SetNillablePendingQuestionType sets the "pending_question_type" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePendingQuestionType(v *conversation.PendingQuestionType) *ConversationUpdateOne {
	if v != nil {
		_u.SetPendingQuestionType(*v)
	}
	return _u
}

// ClearPendingQuestionType clears the value of the "pending_question_type" field.
func (_u *ConversationUpdateOne) ClearPendingQuestionType() *ConversationUpdateOne {
	_u.mutation.ClearPendingQuestionType()
	return _u
}

// SetPendingQuestionPrompt sets the "pending_question_prompt" field.
func (_u *ConversationUpdateOne) SetPendingQuestionPrompt(v string) *ConversationUpdateOne {
	_u.mutation.SetPendingQuestionPrompt(v)
	return _u
}

// SetNillablePendingQuestionPrompt sets the "pending_question_prompt" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePendingQuestionPrompt(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetPendingQuestionPrompt(*v)
	}
	return _u
}

// ClearPendingQuestionPrompt clears the value of the "pending_question_prompt" field.
func (_u *ConversationUpdateOne) ClearPendingQuestionPrompt() *ConversationUpdateOne {
	_u.mutation.ClearPendingQuestionPrompt()
	return _u
}

// SetPendingQuestionOptions sets the "pending_question_options" field.
func (_u *ConversationUpdateOne) SetPendingQuestionOptions(v []string) *ConversationUpdateOne {
	_u.mutation.SetPendingQuestionOptions(v)
	return _u
}

// AppendPendingQuestionOptions appends value to the "pending_question_options" field.
func (_u *ConversationUpdateOne) AppendPendingQuestionOptions(v []string) *ConversationUpdateOne {
	_u.mutation.AppendPendingQuestionOptions(v)
	return _u
}

// ClearPendingQuestionOptions clears the value of the "pending_question_options" field.
func (_u *ConversationUpdateOne) ClearPendingQuestionOptions() *ConversationUpdateOne {
	_u.mutation.ClearPendingQuestionOptions()
	return _u
}

// SetClaudeSessionID sets the "claude_session_id" field.
func (_u *ConversationUpdateOne) SetClaudeSessionID(v string) *ConversationUpdateOne {
	_u.mutation.SetClaudeSessionID(v)
	return _u
}

// SetNillableClaudeSessionID sets the "claude_session_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableClaudeSessionID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetClaudeSessionID(*v)
	}
	return _u
}

// ClearClaudeSessionID clears the value of the "claude_session_id" field.
func (_u *ConversationUpdateOne) ClearClaudeSessionID() *ConversationUpdateOne {
	_u.mutation.ClearClaudeSessionID()
	return _u
}

// SetSkills sets the "skills" field.
func (_u *ConversationUpdateOne) SetSkills(v []string) *ConversationUpdateOne {
	_u.mutation.SetSkills(v)
	return _u
}

// AppendSkills appends value to the "skills" field.
func (_u *ConversationUpdateOne) AppendSkills(v []string) *ConversationUpdateOne {
	_u.mutation.AppendSkills(v)
	return _u
}

// ClearSkills clears the value of the "skills" field.
func (_u *ConversationUpdateOne) ClearSkills() *ConversationUpdateOne {
	_u.mutation.ClearSkills()
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *ConversationUpdateOne) SetConsecutiveFailures(v int) *ConversationUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableConsecutiveFailures(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *ConversationUpdateOne) AddConsecutiveFailures(v int) *ConversationUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *ConversationUpdateOne) AddTaskIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *ConversationUpdateOne) AddTasks(v ...*Task) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddNotificationIDs adds the "notifications" edge to the Notification entity by IDs.
func (_u *ConversationUpdateOne) AddNotificationIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddNotificationIDs(ids...)
	return _u
}

// AddNotifications adds the "notifications" edges to the Notification entity.
func (_u *ConversationUpdateOne) AddNotifications(v ...*Notification) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNotificationIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *ConversationUpdateOne) ClearTasks() *ConversationUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *ConversationUpdateOne) RemoveTaskIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *ConversationUpdateOne) RemoveTasks(v ...*Task) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearNotifications clears all "notifications" edges to the Notification entity.
func (_u *ConversationUpdateOne) ClearNotifications() *ConversationUpdateOne {
	_u.mutation.ClearNotifications()
	return _u
}

// RemoveNotificationIDs removes the "notifications" edge to Notification entities by IDs.
func (_u *ConversationUpdateOne) RemoveNotificationIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveNotificationIDs(ids...)
	return _u
}

// RemoveNotifications removes "notifications" edges to Notification entities.
func (_u *ConversationUpdateOne) RemoveNotifications(v ...*Notification) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNotificationIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScheduleType(); ok {
		if err := conversation.ScheduleTypeValidator(v); err != nil {
			return &ValidationError{Name: "schedule_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.schedule_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PendingQuestionType(); ok {
		if err := conversation.PendingQuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "pending_question_type", err: fmt.Errorf(`ent: validator failed for field "Conversation.pending_question_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(conversation.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(conversation.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduleType(); ok {
		_spec.SetField(conversation.FieldScheduleType, field.TypeEnum, value)
	}
	if _u.mutation.ScheduleTypeCleared() {
		_spec.ClearField(conversation.FieldScheduleType, field.TypeEnum)
	}
	if value, ok := _u.mutation.CronExpression(); ok {
		_spec.SetField(conversation.FieldCronExpression, field.TypeString, value)
	}
	if _u.mutation.CronExpressionCleared() {
		_spec.ClearField(conversation.FieldCronExpression, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledRunAt(); ok {
		_spec.SetField(conversation.FieldScheduledRunAt, field.TypeTime, value)
	}
	if _u.mutation.ScheduledRunAtCleared() {
		_spec.ClearField(conversation.FieldScheduledRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(conversation.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(conversation.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StateContext(); ok {
		_spec.SetField(conversation.FieldStateContext, field.TypeJSON, value)
	}
	if _u.mutation.StateContextCleared() {
		_spec.ClearField(conversation.FieldStateContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StateStep(); ok {
		_spec.SetField(conversation.FieldStateStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.StateData(); ok {
		_spec.SetField(conversation.FieldStateData, field.TypeJSON, value)
	}
	if _u.mutation.StateDataCleared() {
		_spec.ClearField(conversation.FieldStateData, field.TypeJSON)
	}
	if value, ok := _u.mutation.PendingQuestionType(); ok {
		_spec.SetField(conversation.FieldPendingQuestionType, field.TypeEnum, value)
	}
	if _u.mutation.PendingQuestionTypeCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionType, field.TypeEnum)
	}
	if value, ok := _u.mutation.PendingQuestionPrompt(); ok {
		_spec.SetField(conversation.FieldPendingQuestionPrompt, field.TypeString, value)
	}
	if _u.mutation.PendingQuestionPromptCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PendingQuestionOptions(); ok {
		_spec.SetField(conversation.FieldPendingQuestionOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPendingQuestionOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldPendingQuestionOptions, value)
		})
	}
	if _u.mutation.PendingQuestionOptionsCleared() {
		_spec.ClearField(conversation.FieldPendingQuestionOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ClaudeSessionID(); ok {
		_spec.SetField(conversation.FieldClaudeSessionID, field.TypeString, value)
	}
	if _u.mutation.ClaudeSessionIDCleared() {
		_spec.ClearField(conversation.FieldClaudeSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Skills(); ok {
		_spec.SetField(conversation.FieldSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldSkills, value)
		})
	}
	if _u.mutation.SkillsCleared() {
		_spec.ClearField(conversation.FieldSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(conversation.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(conversation.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNotificationsIDs(); len(nodes) > 0 && !_u.mutation.NotificationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
