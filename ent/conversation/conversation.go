// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldScheduleType holds the string denoting the schedule_type field in the database.
	FieldScheduleType = "schedule_type"
	// FieldCronExpression holds the string denoting the cron_expression field in the database.
	FieldCronExpression = "cron_expression"
	// FieldScheduledRunAt holds the string denoting the scheduled_run_at field in the database.
	FieldScheduledRunAt = "scheduled_run_at"
	// FieldNextRunAt holds the string denoting the next_run_at field in the database.
	FieldNextRunAt = "next_run_at"
	// FieldStateContext holds the string denoting the state_context field in the database.
	FieldStateContext = "state_context"
	// FieldStateStep holds the string denoting the state_step field in the database.
	FieldStateStep = "state_step"
	// FieldStateData holds the string denoting the state_data field in the database.
	FieldStateData = "state_data"
	// FieldPendingQuestionType holds the string denoting the pending_question_type field in the database.
	FieldPendingQuestionType = "pending_question_type"
	// FieldPendingQuestionPrompt holds the string denoting the pending_question_prompt field in the database.
	FieldPendingQuestionPrompt = "pending_question_prompt"
	// FieldPendingQuestionOptions holds the string denoting the pending_question_options field in the database.
	FieldPendingQuestionOptions = "pending_question_options"
	// FieldClaudeSessionID holds the string denoting the claude_session_id field in the database.
	FieldClaudeSessionID = "claude_session_id"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldConsecutiveFailures holds the string denoting the consecutive_failures field in the database.
	FieldConsecutiveFailures = "consecutive_failures"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeNotifications holds the string denoting the notifications edge name in mutations.
	EdgeNotifications = "notifications"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// NotificationFieldID holds the string denoting the ID field of the Notification.
	NotificationFieldID = "notification_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "conversation_id"
	// NotificationsTable is the table that holds the notifications relation/edge.
	NotificationsTable = "notifications"
	// NotificationsInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	NotificationsInverseTable = "notifications"
	// NotificationsColumn is the table column denoting the notifications relation/edge.
	NotificationsColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTitle,
	FieldStatus,
	FieldScheduleType,
	FieldCronExpression,
	FieldScheduledRunAt,
	FieldNextRunAt,
	FieldStateContext,
	FieldStateStep,
	FieldStateData,
	FieldPendingQuestionType,
	FieldPendingQuestionPrompt,
	FieldPendingQuestionOptions,
	FieldClaudeSessionID,
	FieldSkills,
	FieldConsecutiveFailures,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStateStep holds the default value on creation for the "state_step" field.
	DefaultStateStep string
	// DefaultConsecutiveFailures holds the default value on creation for the "consecutive_failures" field.
	DefaultConsecutiveFailures int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive       Status = "active"
	StatusBackground   Status = "background"
	StatusWaitingInput Status = "waiting_input"
	StatusArchived     Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusBackground, StatusWaitingInput, StatusArchived:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for status field: %q", s)
	}
}

// ScheduleType defines the type for the "schedule_type" enum field.
type ScheduleType string

// ScheduleType values.
const (
	ScheduleTypeCron      ScheduleType = "cron"
	ScheduleTypeScheduled ScheduleType = "scheduled"
	ScheduleTypeImmediate ScheduleType = "immediate"
)

func (st ScheduleType) String() string {
	return string(st)
}

// ScheduleTypeValidator is a validator for the "schedule_type" field enum values. It is called by the builders before save.
func ScheduleTypeValidator(st ScheduleType) error {
	switch st {
	case ScheduleTypeCron, ScheduleTypeScheduled, ScheduleTypeImmediate:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for schedule_type field: %q", st)
	}
}

// PendingQuestionType defines the type for the "pending_question_type" enum field.
type PendingQuestionType string

// PendingQuestionType values.
const (
	PendingQuestionTypeConfirmation PendingQuestionType = "confirmation"
	PendingQuestionTypeChoice       PendingQuestionType = "choice"
	PendingQuestionTypeInput        PendingQuestionType = "input"
)

func (pqt PendingQuestionType) String() string {
	return string(pqt)
}

// PendingQuestionTypeValidator is a validator for the "pending_question_type" field enum values. It is called by the builders before save.
func PendingQuestionTypeValidator(pqt PendingQuestionType) error {
	switch pqt {
	case PendingQuestionTypeConfirmation, PendingQuestionTypeChoice, PendingQuestionTypeInput:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for pending_question_type field: %q", pqt)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScheduleType orders the results by the schedule_type field.
func ByScheduleType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleType, opts...).ToFunc()
}

// ByCronExpression orders the results by the cron_expression field.
func ByCronExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCronExpression, opts...).ToFunc()
}

// ByScheduledRunAt orders the results by the scheduled_run_at field.
func ByScheduledRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledRunAt, opts...).ToFunc()
}

// ByNextRunAt orders the results by the next_run_at field.
func ByNextRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunAt, opts...).ToFunc()
}

// ByStateStep orders the results by the state_step field.
func ByStateStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateStep, opts...).ToFunc()
}

// ByPendingQuestionType orders the results by the pending_question_type field.
func ByPendingQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingQuestionType, opts...).ToFunc()
}

// ByPendingQuestionPrompt orders the results by the pending_question_prompt field.
func ByPendingQuestionPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingQuestionPrompt, opts...).ToFunc()
}

// ByClaudeSessionID orders the results by the claude_session_id field.
func ByClaudeSessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaudeSessionID, opts...).ToFunc()
}

// ByConsecutiveFailures orders the results by the consecutive_failures field.
func ByConsecutiveFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveFailures, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationsCount orders the results by notifications count.
func ByNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationsStep(), opts...)
	}
}

// ByNotifications orders the results by notifications terms.
func ByNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationsInverseTable, NotificationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
	)
}
