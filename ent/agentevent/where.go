// Code generated by ent, DO NOT EDIT.

package agentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipfleet/shipfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEventID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldKind, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSource, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldProjectID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ProcessingMs applies equality check predicate on the "processing_ms" field. It's identical to ProcessingMsEQ.
func ProcessingMs(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldProcessingMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldEventID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldKind, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldSource, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v int) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldProjectID, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldCorrelationID, v))
}

// DataIsNil applies the IsNil predicate on the "data" field.
func DataIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldData))
}

// DataNotNil applies the NotNil predicate on the "data" field.
func DataNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldData))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ProcessingMsEQ applies the EQ predicate on the "processing_ms" field.
func ProcessingMsEQ(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldProcessingMs, v))
}

// ProcessingMsNEQ applies the NEQ predicate on the "processing_ms" field.
func ProcessingMsNEQ(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldProcessingMs, v))
}

// ProcessingMsIn applies the In predicate on the "processing_ms" field.
func ProcessingMsIn(vs ...float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldProcessingMs, vs...))
}

// ProcessingMsNotIn applies the NotIn predicate on the "processing_ms" field.
func ProcessingMsNotIn(vs ...float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldProcessingMs, vs...))
}

// ProcessingMsGT applies the GT predicate on the "processing_ms" field.
func ProcessingMsGT(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldProcessingMs, v))
}

// ProcessingMsGTE applies the GTE predicate on the "processing_ms" field.
func ProcessingMsGTE(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldProcessingMs, v))
}

// ProcessingMsLT applies the LT predicate on the "processing_ms" field.
func ProcessingMsLT(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldProcessingMs, v))
}

// ProcessingMsLTE applies the LTE predicate on the "processing_ms" field.
func ProcessingMsLTE(v float64) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldProcessingMs, v))
}

// ProcessingMsIsNil applies the IsNil predicate on the "processing_ms" field.
func ProcessingMsIsNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIsNull(FieldProcessingMs))
}

// ProcessingMsNotNil applies the NotNil predicate on the "processing_ms" field.
func ProcessingMsNotNil() predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotNull(FieldProcessingMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentEvent {
	return predicate.AgentEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentEvent) predicate.AgentEvent {
	return predicate.AgentEvent(sql.NotPredicates(p))
}
