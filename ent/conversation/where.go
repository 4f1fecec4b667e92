// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/majordomo-io/majordomo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTitle, v))
}

// CronExpression applies equality check predicate on the "cron_expression" field. It's identical to CronExpressionEQ.
func CronExpression(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCronExpression, v))
}

// ScheduledRunAt applies equality check predicate on the "scheduled_run_at" field. It's identical to ScheduledRunAtEQ.
func ScheduledRunAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldScheduledRunAt, v))
}

// NextRunAt applies equality check predicate on the "next_run_at" field. It's identical to NextRunAtEQ.
func NextRunAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNextRunAt, v))
}

// StateStep applies equality check predicate on the "state_step" field. It's identical to StateStepEQ.
func StateStep(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStateStep, v))
}

// PendingQuestionPrompt applies equality check predicate on the "pending_question_prompt" field. It's identical to PendingQuestionPromptEQ.
func PendingQuestionPrompt(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPendingQuestionPrompt, v))
}

// ClaudeSessionID applies equality check predicate on the "claude_session_id" field. It's identical to ClaudeSessionIDEQ.
func ClaudeSessionID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClaudeSessionID, v))
}

// ConsecutiveFailures applies equality check predicate on the "consecutive_failures" field. It's identical to ConsecutiveFailuresEQ.
func ConsecutiveFailures(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldUserID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldStatus, vs...))
}

// ScheduleTypeEQ applies the EQ predicate on the "schedule_type" field.
func ScheduleTypeEQ(v ScheduleType) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldScheduleType, v))
}

// ScheduleTypeNEQ applies the NEQ predicate on the "schedule_type" field.
func ScheduleTypeNEQ(v ScheduleType) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldScheduleType, v))
}

// ScheduleTypeIn applies the In predicate on the "schedule_type" field.
func ScheduleTypeIn(vs ...ScheduleType) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldScheduleType, vs...))
}

// ScheduleTypeNotIn applies the NotIn predicate on the "schedule_type" field.
func ScheduleTypeNotIn(vs ...ScheduleType) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldScheduleType, vs...))
}

// ScheduleTypeIsNil applies the IsNil predicate on the "schedule_type" field.
func ScheduleTypeIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldScheduleType))
}

// ScheduleTypeNotNil applies the NotNil predicate on the "schedule_type" field.
func ScheduleTypeNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldScheduleType))
}

// CronExpressionEQ applies the EQ predicate on the "cron_expression" field.
func CronExpressionEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCronExpression, v))
}

// CronExpressionNEQ applies the NEQ predicate on the "cron_expression" field.
func CronExpressionNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCronExpression, v))
}

// CronExpressionIn applies the In predicate on the "cron_expression" field.
func CronExpressionIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCronExpression, vs...))
}

// CronExpressionNotIn applies the NotIn predicate on the "cron_expression" field.
func CronExpressionNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCronExpression, vs...))
}

// CronExpressionGT applies the GT predicate on the "cron_expression" field.
func CronExpressionGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCronExpression, v))
}

// CronExpressionGTE applies the GTE predicate on the "cron_expression" field.
func CronExpressionGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCronExpression, v))
}

// CronExpressionLT applies the LT predicate on the "cron_expression" field.
func CronExpressionLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCronExpression, v))
}

// CronExpressionLTE applies the LTE predicate on the "cron_expression" field.
func CronExpressionLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCronExpression, v))
}

// CronExpressionContains applies the Contains predicate on the "cron_expression" field.
func CronExpressionContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldCronExpression, v))
}

// CronExpressionHasPrefix applies the HasPrefix predicate on the "cron_expression" field.
func CronExpressionHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldCronExpression, v))
}

// CronExpressionHasSuffix applies the HasSuffix predicate on the "cron_expression" field.
func CronExpressionHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldCronExpression, v))
}

// CronExpressionIsNil applies the IsNil predicate on the "cron_expression" field.
func CronExpressionIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldCronExpression))
}

// CronExpressionNotNil applies the NotNil predicate on the "cron_expression" field.
func CronExpressionNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldCronExpression))
}

// CronExpressionEqualFold applies the EqualFold predicate on the "cron_expression" field.
func CronExpressionEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldCronExpression, v))
}

// CronExpressionContainsFold applies the ContainsFold predicate on the "cron_expression" field.
func CronExpressionContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldCronExpression, v))
}

// ScheduledRunAtEQ applies the EQ predicate on the "scheduled_run_at" field.
func ScheduledRunAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldScheduledRunAt, v))
}

// ScheduledRunAtNEQ applies the NEQ predicate on the "scheduled_run_at" field.
func ScheduledRunAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldScheduledRunAt, v))
}

// ScheduledRunAtIn applies the In predicate on the "scheduled_run_at" field.
func ScheduledRunAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldScheduledRunAt, vs...))
}

// ScheduledRunAtNotIn applies the NotIn predicate on the "scheduled_run_at" field.
func ScheduledRunAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldScheduledRunAt, vs...))
}

// ScheduledRunAtGT applies the GT predicate on the "scheduled_run_at" field.
func ScheduledRunAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldScheduledRunAt, v))
}

// ScheduledRunAtGTE applies the GTE predicate on the "scheduled_run_at" field.
func ScheduledRunAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldScheduledRunAt, v))
}

// ScheduledRunAtLT applies the LT predicate on the "scheduled_run_at" field.
func ScheduledRunAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldScheduledRunAt, v))
}

// ScheduledRunAtLTE applies the LTE predicate on the "scheduled_run_at" field.
func ScheduledRunAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldScheduledRunAt, v))
}

// ScheduledRunAtIsNil applies the IsNil predicate on the "scheduled_run_at" field.
func ScheduledRunAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldScheduledRunAt))
}

// ScheduledRunAtNotNil applies the NotNil predicate on the "scheduled_run_at" field.
func ScheduledRunAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldScheduledRunAt))
}

// NextRunAtEQ applies the EQ predicate on the "next_run_at" field.
func NextRunAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNextRunAt, v))
}

// NextRunAtNEQ applies the NEQ predicate on the "next_run_at" field.
func NextRunAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldNextRunAt, v))
}

// NextRunAtIn applies the In predicate on the "next_run_at" field.
func NextRunAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldNextRunAt, vs...))
}

// NextRunAtNotIn applies the NotIn predicate on the "next_run_at" field.
func NextRunAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldNextRunAt, vs...))
}

// NextRunAtGT applies the GT predicate on the "next_run_at" field.
func NextRunAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldNextRunAt, v))
}

// NextRunAtGTE applies the GTE predicate on the "next_run_at" field.
func NextRunAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldNextRunAt, v))
}

// NextRunAtLT applies the LT predicate on the "next_run_at" field.
func NextRunAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldNextRunAt, v))
}

// NextRunAtLTE applies the LTE predicate on the "next_run_at" field.
func NextRunAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldNextRunAt, v))
}

// NextRunAtIsNil applies the IsNil predicate on the "next_run_at" field.
func NextRunAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldNextRunAt))
}

// NextRunAtNotNil applies the NotNil predicate on the "next_run_at" field.
func NextRunAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldNextRunAt))
}

// StateContextIsNil applies the IsNil predicate on the "state_context" field.
func StateContextIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldStateContext))
}

// StateContextNotNil applies the NotNil predicate on the "state_context" field.
func StateContextNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldStateContext))
}

// StateStepEQ applies the EQ predicate on the "state_step" field.
func StateStepEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStateStep, v))
}

// StateStepNEQ applies the NEQ predicate on the "state_step" field.
func StateStepNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldStateStep, v))
}

// StateStepIn applies the In predicate on the "state_step" field.
func StateStepIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldStateStep, vs...))
}

// StateStepNotIn applies the NotIn predicate on the "state_step" field.
func StateStepNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldStateStep, vs...))
}

// StateStepGT applies the GT predicate on the "state_step" field.
func StateStepGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldStateStep, v))
}

// StateStepGTE applies the GTE predicate on the "state_step" field.
func StateStepGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldStateStep, v))
}

// StateStepLT applies the LT predicate on the "state_step" field.
func StateStepLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldStateStep, v))
}

// StateStepLTE applies the LTE predicate on the "state_step" field.
func StateStepLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldStateStep, v))
}

// StateStepContains applies the Contains predicate on the "state_step" field.
func StateStepContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldStateStep, v))
}

// StateStepHasPrefix applies the HasPrefix predicate on the "state_step" field.
func StateStepHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldStateStep, v))
}

// StateStepHasSuffix applies the HasSuffix predicate on the "state_step" field.
func StateStepHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldStateStep, v))
}

// StateStepEqualFold applies the EqualFold predicate on the "state_step" field.
func StateStepEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldStateStep, v))
}

// StateStepContainsFold applies the ContainsFold predicate on the "state_step" field.
func StateStepContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldStateStep, v))
}

// StateDataIsNil applies the IsNil predicate on the "state_data" field.
func StateDataIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldStateData))
}

// StateDataNotNil applies the NotNil predicate on the "state_data" field.
func StateDataNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldStateData))
}

// PendingQuestionTypeEQ applies the EQ predicate on the "pending_question_type" field.
func PendingQuestionTypeEQ(v PendingQuestionType) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPendingQuestionType, v))
}

// PendingQuestionTypeNEQ applies the NEQ predicate on the "pending_question_type" field.
func PendingQuestionTypeNEQ(v PendingQuestionType) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPendingQuestionType, v))
}

// PendingQuestionTypeIn applies the In predicate on the "pending_question_type" field.
func PendingQuestionTypeIn(vs ...PendingQuestionType) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPendingQuestionType, vs...))
}

// PendingQuestionTypeNotIn applies the NotIn predicate on the "pending_question_type" field.
func PendingQuestionTypeNotIn(vs ...PendingQuestionType) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPendingQuestionType, vs...))
}

// PendingQuestionTypeIsNil applies the IsNil predicate on the "pending_question_type" field.
func PendingQuestionTypeIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldPendingQuestionType))
}

// PendingQuestionTypeNotNil applies the NotNil predicate on the "pending_question_type" field.
func PendingQuestionTypeNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldPendingQuestionType))
}

// PendingQuestionPromptEQ applies the EQ predicate on the "pending_question_prompt" field.
func PendingQuestionPromptEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptNEQ applies the NEQ predicate on the "pending_question_prompt" field.
func PendingQuestionPromptNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptIn applies the In predicate on the "pending_question_prompt" field.
func PendingQuestionPromptIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldPendingQuestionPrompt, vs...))
}

// PendingQuestionPromptNotIn applies the NotIn predicate on the "pending_question_prompt" field.
func PendingQuestionPromptNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldPendingQuestionPrompt, vs...))
}

// PendingQuestionPromptGT applies the GT predicate on the "pending_question_prompt" field.
func PendingQuestionPromptGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptGTE applies the GTE predicate on the "pending_question_prompt" field.
func PendingQuestionPromptGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptLT applies the LT predicate on the "pending_question_prompt" field.
func PendingQuestionPromptLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptLTE applies the LTE predicate on the "pending_question_prompt" field.
func PendingQuestionPromptLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptContains applies the Contains predicate on the "pending_question_prompt" field.
func PendingQuestionPromptContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptHasPrefix applies the HasPrefix predicate on the "pending_question_prompt" field.
func PendingQuestionPromptHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptHasSuffix applies the HasSuffix predicate on the "pending_question_prompt" field.
func PendingQuestionPromptHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptIsNil applies the IsNil predicate on the "pending_question_prompt" field.
func PendingQuestionPromptIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldPendingQuestionPrompt))
}

// PendingQuestionPromptNotNil applies the NotNil predicate on the "pending_question_prompt" field.
func PendingQuestionPromptNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldPendingQuestionPrompt))
}

// PendingQuestionPromptEqualFold applies the EqualFold predicate on the "pending_question_prompt" field.
func PendingQuestionPromptEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldPendingQuestionPrompt, v))
}

// PendingQuestionPromptContainsFold applies the ContainsFold predicate on the "pending_question_prompt" field.
func PendingQuestionPromptContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldPendingQuestionPrompt, v))
}

// PendingQuestionOptionsIsNil applies the IsNil predicate on the "pending_question_options" field.
func PendingQuestionOptionsIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldPendingQuestionOptions))
}

// PendingQuestionOptionsNotNil applies the NotNil predicate on the "pending_question_options" field.
func PendingQuestionOptionsNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldPendingQuestionOptions))
}

// ClaudeSessionIDEQ applies the EQ predicate on the "claude_session_id" field.
func ClaudeSessionIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldClaudeSessionID, v))
}

// ClaudeSessionIDNEQ applies the NEQ predicate on the "claude_session_id" field.
func ClaudeSessionIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldClaudeSessionID, v))
}

// ClaudeSessionIDIn applies the In predicate on the "claude_session_id" field.
func ClaudeSessionIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldClaudeSessionID, vs...))
}

// ClaudeSessionIDNotIn applies the NotIn predicate on the "claude_session_id" field.
func ClaudeSessionIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldClaudeSessionID, vs...))
}

// ClaudeSessionIDGT applies the GT predicate on the "claude_session_id" field.
func ClaudeSessionIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldClaudeSessionID, v))
}

// ClaudeSessionIDGTE applies the GTE predicate on the "claude_session_id" field.
func ClaudeSessionIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldClaudeSessionID, v))
}

// ClaudeSessionIDLT applies the LT predicate on the "claude_session_id" field.
func ClaudeSessionIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldClaudeSessionID, v))
}

// ClaudeSessionIDLTE applies the LTE predicate on the "claude_session_id" field.
func ClaudeSessionIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldClaudeSessionID, v))
}

// ClaudeSessionIDContains applies the Contains predicate on the "claude_session_id" field.
func ClaudeSessionIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldClaudeSessionID, v))
}

// ClaudeSessionIDHasPrefix applies the HasPrefix predicate on the "claude_session_id" field.
func ClaudeSessionIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldClaudeSessionID, v))
}

// ClaudeSessionIDHasSuffix applies the HasSuffix predicate on the "claude_session_id" field.
func ClaudeSessionIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldClaudeSessionID, v))
}

// ClaudeSessionIDIsNil applies the IsNil predicate on the "claude_session_id" field.
func ClaudeSessionIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldClaudeSessionID))
}

// ClaudeSessionIDNotNil applies the NotNil predicate on the "claude_session_id" field.
func ClaudeSessionIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldClaudeSessionID))
}

// ClaudeSessionIDEqualFold applies the EqualFold predicate on the "claude_session_id" field.
func ClaudeSessionIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldClaudeSessionID, v))
}

// ClaudeSessionIDContainsFold applies the ContainsFold predicate on the "claude_session_id" field.
func ClaudeSessionIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldClaudeSessionID, v))
}

// SkillsIsNil applies the IsNil predicate on the "skills" field.
func SkillsIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldSkills))
}

// SkillsNotNil applies the NotNil predicate on the "skills" field.
func SkillsNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldSkills))
}

// ConsecutiveFailuresEQ applies the EQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresNEQ applies the NEQ predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresIn applies the In predicate on the "consecutive_failures" field.
func ConsecutiveFailuresIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresNotIn applies the NotIn predicate on the "consecutive_failures" field.
func ConsecutiveFailuresNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldConsecutiveFailures, vs...))
}

// ConsecutiveFailuresGT applies the GT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresGTE applies the GTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLT applies the LT predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldConsecutiveFailures, v))
}

// ConsecutiveFailuresLTE applies the LTE predicate on the "consecutive_failures" field.
func ConsecutiveFailuresLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldConsecutiveFailures, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotifications applies the HasEdge predicate on the "notifications" edge.
func HasNotifications() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationsWith applies the HasEdge predicate on the "notifications" edge with a given conditions (other predicates).
func HasNotificationsWith(preds ...predicate.Notification) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newNotificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
