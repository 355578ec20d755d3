// Code generated by ent, DO NOT EDIT.

package serviceconnection

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shipfleet/shipfleet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldProjectID, v))
}

// ServiceKind applies equality check predicate on the "service_kind" field. It's identical to ServiceKindEQ.
func ServiceKind(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldServiceKind, v))
}

// BaseURL applies equality check predicate on the "base_url" field. It's identical to BaseURLEQ.
func BaseURL(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldBaseURL, v))
}

// Token applies equality check predicate on the "token" field. It's identical to TokenEQ.
func Token(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldToken, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldEnabled, v))
}

// LastSyncAt applies equality check predicate on the "last_sync_at" field. It's identical to LastSyncAtEQ.
func LastSyncAt(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldLastSyncAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v int) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldProjectID, v))
}

// ServiceKindEQ applies the EQ predicate on the "service_kind" field.
func ServiceKindEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldServiceKind, v))
}

// ServiceKindNEQ applies the NEQ predicate on the "service_kind" field.
func ServiceKindNEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldServiceKind, v))
}

// ServiceKindIn applies the In predicate on the "service_kind" field.
func ServiceKindIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldServiceKind, vs...))
}

// ServiceKindNotIn applies the NotIn predicate on the "service_kind" field.
func ServiceKindNotIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldServiceKind, vs...))
}

// ServiceKindGT applies the GT predicate on the "service_kind" field.
func ServiceKindGT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldServiceKind, v))
}

// ServiceKindGTE applies the GTE predicate on the "service_kind" field.
func ServiceKindGTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldServiceKind, v))
}

// ServiceKindLT applies the LT predicate on the "service_kind" field.
func ServiceKindLT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldServiceKind, v))
}

// ServiceKindLTE applies the LTE predicate on the "service_kind" field.
func ServiceKindLTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldServiceKind, v))
}

// ServiceKindContains applies the Contains predicate on the "service_kind" field.
func ServiceKindContains(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContains(FieldServiceKind, v))
}

// ServiceKindHasPrefix applies the HasPrefix predicate on the "service_kind" field.
func ServiceKindHasPrefix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasPrefix(FieldServiceKind, v))
}

// ServiceKindHasSuffix applies the HasSuffix predicate on the "service_kind" field.
func ServiceKindHasSuffix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasSuffix(FieldServiceKind, v))
}

// ServiceKindEqualFold applies the EqualFold predicate on the "service_kind" field.
func ServiceKindEqualFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEqualFold(FieldServiceKind, v))
}

// ServiceKindContainsFold applies the ContainsFold predicate on the "service_kind" field.
func ServiceKindContainsFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContainsFold(FieldServiceKind, v))
}

// BaseURLEQ applies the EQ predicate on the "base_url" field.
func BaseURLEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldBaseURL, v))
}

// BaseURLNEQ applies the NEQ predicate on the "base_url" field.
func BaseURLNEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldBaseURL, v))
}

// BaseURLIn applies the In predicate on the "base_url" field.
func BaseURLIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldBaseURL, vs...))
}

// BaseURLNotIn applies the NotIn predicate on the "base_url" field.
func BaseURLNotIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldBaseURL, vs...))
}

// BaseURLGT applies the GT predicate on the "base_url" field.
func BaseURLGT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldBaseURL, v))
}

// BaseURLGTE applies the GTE predicate on the "base_url" field.
func BaseURLGTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldBaseURL, v))
}

// BaseURLLT applies the LT predicate on the "base_url" field.
func BaseURLLT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldBaseURL, v))
}

// BaseURLLTE applies the LTE predicate on the "base_url" field.
func BaseURLLTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldBaseURL, v))
}

// BaseURLContains applies the Contains predicate on the "base_url" field.
func BaseURLContains(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContains(FieldBaseURL, v))
}

// BaseURLHasPrefix applies the HasPrefix predicate on the "base_url" field.
func BaseURLHasPrefix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasPrefix(FieldBaseURL, v))
}

// BaseURLHasSuffix applies the HasSuffix predicate on the "base_url" field.
func BaseURLHasSuffix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasSuffix(FieldBaseURL, v))
}

// BaseURLIsNil applies the IsNil predicate on the "base_url" field.
func BaseURLIsNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIsNull(FieldBaseURL))
}

// BaseURLNotNil applies the NotNil predicate on the "base_url" field.
func BaseURLNotNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotNull(FieldBaseURL))
}

// BaseURLEqualFold applies the EqualFold predicate on the "base_url" field.
func BaseURLEqualFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEqualFold(FieldBaseURL, v))
}

// BaseURLContainsFold applies the ContainsFold predicate on the "base_url" field.
func BaseURLContainsFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContainsFold(FieldBaseURL, v))
}

// TokenEQ applies the EQ predicate on the "token" field.
func TokenEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldToken, v))
}

// TokenNEQ applies the NEQ predicate on the "token" field.
func TokenNEQ(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldToken, v))
}

// TokenIn applies the In predicate on the "token" field.
func TokenIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldToken, vs...))
}

// TokenNotIn applies the NotIn predicate on the "token" field.
func TokenNotIn(vs ...string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldToken, vs...))
}

// TokenGT applies the GT predicate on the "token" field.
func TokenGT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldToken, v))
}

// TokenGTE applies the GTE predicate on the "token" field.
func TokenGTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldToken, v))
}

// TokenLT applies the LT predicate on the "token" field.
func TokenLT(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldToken, v))
}

// TokenLTE applies the LTE predicate on the "token" field.
func TokenLTE(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldToken, v))
}

// TokenContains applies the Contains predicate on the "token" field.
func TokenContains(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContains(FieldToken, v))
}

// TokenHasPrefix applies the HasPrefix predicate on the "token" field.
func TokenHasPrefix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasPrefix(FieldToken, v))
}

// TokenHasSuffix applies the HasSuffix predicate on the "token" field.
func TokenHasSuffix(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldHasSuffix(FieldToken, v))
}

// TokenEqualFold applies the EqualFold predicate on the "token" field.
func TokenEqualFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEqualFold(FieldToken, v))
}

// TokenContainsFold applies the ContainsFold predicate on the "token" field.
func TokenContainsFold(v string) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldContainsFold(FieldToken, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotNull(FieldConfig))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldEnabled, v))
}

// LastSyncAtEQ applies the EQ predicate on the "last_sync_at" field.
func LastSyncAtEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldLastSyncAt, v))
}

// LastSyncAtNEQ applies the NEQ predicate on the "last_sync_at" field.
func LastSyncAtNEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldLastSyncAt, v))
}

// LastSyncAtIn applies the In predicate on the "last_sync_at" field.
func LastSyncAtIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldLastSyncAt, vs...))
}

// LastSyncAtNotIn applies the NotIn predicate on the "last_sync_at" field.
func LastSyncAtNotIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldLastSyncAt, vs...))
}

// LastSyncAtGT applies the GT predicate on the "last_sync_at" field.
func LastSyncAtGT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldLastSyncAt, v))
}

// LastSyncAtGTE applies the GTE predicate on the "last_sync_at" field.
func LastSyncAtGTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldLastSyncAt, v))
}

// LastSyncAtLT applies the LT predicate on the "last_sync_at" field.
func LastSyncAtLT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldLastSyncAt, v))
}

// LastSyncAtLTE applies the LTE predicate on the "last_sync_at" field.
func LastSyncAtLTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldLastSyncAt, v))
}

// LastSyncAtIsNil applies the IsNil predicate on the "last_sync_at" field.
func LastSyncAtIsNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIsNull(FieldLastSyncAt))
}

// LastSyncAtNotNil applies the NotNil predicate on the "last_sync_at" field.
func LastSyncAtNotNil() predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotNull(FieldLastSyncAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ServiceConnection) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ServiceConnection) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ServiceConnection) predicate.ServiceConnection {
	return predicate.ServiceConnection(sql.NotPredicates(p))
}
