// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/majordomo-io/majordomo/ent/conversation"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status conversation.Status `json:"status,omitempty"`
	// ScheduleType holds the value of the "schedule_type" field.
	ScheduleType conversation.ScheduleType `json:"schedule_type,omitempty"`
	// CronExpression holds the value of the "cron_expression" field.
	CronExpression string `json:"cron_expression,omitempty"`
	// ScheduledRunAt holds the value of the "scheduled_run_at" field.
	ScheduledRunAt *time.Time `json:"scheduled_run_at,omitempty"`
	// When the background worker should pick this row up
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
	// StateContext holds the value of the "state_context" field.
	StateContext map[string]interface{} `json:"state_context,omitempty"`
	// StateStep holds the value of the "state_step" field.
	StateStep string `json:"state_step,omitempty"`
	// StateData holds the value of the "state_data" field.
	StateData map[string]interface{} `json:"state_data,omitempty"`
	// PendingQuestionType holds the value of the "pending_question_type" field.
	PendingQuestionType conversation.PendingQuestionType `json:"pending_question_type,omitempty"`
	// PendingQuestionPrompt holds the value of the "pending_question_prompt" field.
	PendingQuestionPrompt string `json:"pending_question_prompt,omitempty"`
	// PendingQuestionOptions holds the value of the "pending_question_options" field.
	PendingQuestionOptions []string `json:"pending_question_options,omitempty"`
	// Opaque session resumption token, round-tripped to the model harness
	ClaudeSessionID string `json:"claude_session_id,omitempty"`
	// Skills holds the value of the "skills" field.
	Skills []string `json:"skills,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationQuery when eager-loading is set.
	Edges        ConversationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationEdges holds the relations/edges for other nodes in the graph.
type ConversationEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[1] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[2] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldStateContext, conversation.FieldStateData, conversation.FieldPendingQuestionOptions, conversation.FieldSkills:
			values[i] = new([]byte)
		case conversation.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case conversation.FieldID, conversation.FieldUserID, conversation.FieldTitle, conversation.FieldStatus, conversation.FieldScheduleType, conversation.FieldCronExpression, conversation.FieldStateStep, conversation.FieldPendingQuestionType, conversation.FieldPendingQuestionPrompt, conversation.FieldClaudeSessionID:
			values[i] = new(sql.NullString)
		case conversation.FieldScheduledRunAt, conversation.FieldNextRunAt, conversation.FieldCreatedAt, conversation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case conversation.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case conversation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conversation.Status(value.String)
			}
		case conversation.FieldScheduleType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_type", values[i])
			} else if value.Valid {
				_m.ScheduleType = conversation.ScheduleType(value.String)
			}
		case conversation.FieldCronExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cron_expression", values[i])
			} else if value.Valid {
				_m.CronExpression = value.String
			}
		case conversation.FieldScheduledRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_run_at", values[i])
			} else if value.Valid {
				_m.ScheduledRunAt = new(time.Time)
				*_m.ScheduledRunAt = value.Time
			}
		case conversation.FieldNextRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_at", values[i])
			} else if value.Valid {
				_m.NextRunAt = new(time.Time)
				*_m.NextRunAt = value.Time
			}
		case conversation.FieldStateContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StateContext); err != nil {
					return fmt.Errorf("unmarshal field state_context: %w", err)
				}
			}
		case conversation.FieldStateStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_step", values[i])
			} else if value.Valid {
				_m.StateStep = value.String
			}
		case conversation.FieldStateData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StateData); err != nil {
					return fmt.Errorf("unmarshal field state_data: %w", err)
				}
			}
		case conversation.FieldPendingQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_question_type", values[i])
			} else if value.Valid {
				_m.PendingQuestionType = conversation.PendingQuestionType(value.String)
			}
		case conversation.FieldPendingQuestionPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_question_prompt", values[i])
			} else if value.Valid {
				_m.PendingQuestionPrompt = value.String
			}
		case conversation.FieldPendingQuestionOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pending_question_options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PendingQuestionOptions); err != nil {
					return fmt.Errorf("unmarshal field pending_question_options: %w", err)
				}
			}
		case conversation.FieldClaudeSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claude_session_id", values[i])
			} else if value.Valid {
				_m.ClaudeSessionID = value.String
			}
		case conversation.FieldSkills:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skills", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Skills); err != nil {
					return fmt.Errorf("unmarshal field skills: %w", err)
				}
			}
		case conversation.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the Conversation entity.
func (_m *Conversation) QueryMessages() *MessageQuery {
	return NewConversationClient(_m.config).QueryMessages(_m)
}

// QueryTasks queries the "tasks" edge of the Conversation entity.
func (_m *Conversation) QueryTasks() *TaskQuery {
	return NewConversationClient(_m.config).QueryTasks(_m)
}

// QueryNotifications queries the "notifications" edge of the Conversation entity.
func (_m *Conversation) QueryNotifications() *NotificationQuery {
	return NewConversationClient(_m.config).QueryNotifications(_m)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("schedule_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduleType))
	builder.WriteString(", ")
	builder.WriteString("cron_expression=")
	builder.WriteString(_m.CronExpression)
	builder.WriteString(", ")
	if v := _m.ScheduledRunAt; v != nil {
		builder.WriteString("scheduled_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextRunAt; v != nil {
		builder.WriteString("next_run_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("state_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateContext))
	builder.WriteString(", ")
	builder.WriteString("state_step=")
	builder.WriteString(_m.StateStep)
	builder.WriteString(", ")
	builder.WriteString("state_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateData))
	builder.WriteString(", ")
	builder.WriteString("pending_question_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingQuestionType))
	builder.WriteString(", ")
	builder.WriteString("pending_question_prompt=")
	builder.WriteString(_m.PendingQuestionPrompt)
	builder.WriteString(", ")
	builder.WriteString("pending_question_options=")
	builder.WriteString(fmt.Sprintf("%v", _m.PendingQuestionOptions))
	builder.WriteString(", ")
	builder.WriteString("claude_session_id=")
	builder.WriteString(_m.ClaudeSessionID)
	builder.WriteString(", ")
	builder.WriteString("skills=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skills))
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
