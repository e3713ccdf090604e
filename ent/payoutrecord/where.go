// Code generated by ent, DO NOT EDIT.

package payoutrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tracklane/tracklane/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldID, id))
}

// ProducerID applies equality check predicate on the "producer_id" field. It's identical to ProducerIDEQ.
func ProducerID(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldProducerID, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldMonth, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldAmount, v))
}

// WalletAddress applies equality check predicate on the "wallet_address" field. It's identical to WalletAddressEQ.
func WalletAddress(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldWalletAddress, v))
}

// PaymentTransactionID applies equality check predicate on the "payment_transaction_id" field. It's identical to PaymentTransactionIDEQ.
func PaymentTransactionID(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldPaymentTransactionID, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldRetryCount, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldLastError, v))
}

// PaidAt applies equality check predicate on the "paid_at" field. It's identical to PaidAtEQ.
func PaidAt(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldPaidAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProducerIDEQ applies the EQ predicate on the "producer_id" field.
func ProducerIDEQ(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldProducerID, v))
}

// ProducerIDNEQ applies the NEQ predicate on the "producer_id" field.
func ProducerIDNEQ(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldProducerID, v))
}

// ProducerIDIn applies the In predicate on the "producer_id" field.
func ProducerIDIn(vs ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldProducerID, vs...))
}

// ProducerIDNotIn applies the NotIn predicate on the "producer_id" field.
func ProducerIDNotIn(vs ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldProducerID, vs...))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContainsFold(FieldMonth, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// WalletAddressEQ applies the EQ predicate on the "wallet_address" field.
func WalletAddressEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldWalletAddress, v))
}

// WalletAddressNEQ applies the NEQ predicate on the "wallet_address" field.
func WalletAddressNEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldWalletAddress, v))
}

// WalletAddressIn applies the In predicate on the "wallet_address" field.
func WalletAddressIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldWalletAddress, vs...))
}

// WalletAddressNotIn applies the NotIn predicate on the "wallet_address" field.
func WalletAddressNotIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldWalletAddress, vs...))
}

// WalletAddressGT applies the GT predicate on the "wallet_address" field.
func WalletAddressGT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldWalletAddress, v))
}

// WalletAddressGTE applies the GTE predicate on the "wallet_address" field.
func WalletAddressGTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldWalletAddress, v))
}

// WalletAddressLT applies the LT predicate on the "wallet_address" field.
func WalletAddressLT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldWalletAddress, v))
}

// WalletAddressLTE applies the LTE predicate on the "wallet_address" field.
func WalletAddressLTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldWalletAddress, v))
}

// WalletAddressContains applies the Contains predicate on the "wallet_address" field.
func WalletAddressContains(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContains(FieldWalletAddress, v))
}

// WalletAddressHasPrefix applies the HasPrefix predicate on the "wallet_address" field.
func WalletAddressHasPrefix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasPrefix(FieldWalletAddress, v))
}

// WalletAddressHasSuffix applies the HasSuffix predicate on the "wallet_address" field.
func WalletAddressHasSuffix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasSuffix(FieldWalletAddress, v))
}

// WalletAddressIsNil applies the IsNil predicate on the "wallet_address" field.
func WalletAddressIsNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIsNull(FieldWalletAddress))
}

// WalletAddressNotNil applies the NotNil predicate on the "wallet_address" field.
func WalletAddressNotNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotNull(FieldWalletAddress))
}

// WalletAddressEqualFold applies the EqualFold predicate on the "wallet_address" field.
func WalletAddressEqualFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEqualFold(FieldWalletAddress, v))
}

// WalletAddressContainsFold applies the ContainsFold predicate on the "wallet_address" field.
func WalletAddressContainsFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContainsFold(FieldWalletAddress, v))
}

// PaymentTransactionIDEQ applies the EQ predicate on the "payment_transaction_id" field.
func PaymentTransactionIDEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDNEQ applies the NEQ predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDIn applies the In predicate on the "payment_transaction_id" field.
func PaymentTransactionIDIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldPaymentTransactionID, vs...))
}

// PaymentTransactionIDNotIn applies the NotIn predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNotIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldPaymentTransactionID, vs...))
}

// PaymentTransactionIDGT applies the GT predicate on the "payment_transaction_id" field.
func PaymentTransactionIDGT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDGTE applies the GTE predicate on the "payment_transaction_id" field.
func PaymentTransactionIDGTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDLT applies the LT predicate on the "payment_transaction_id" field.
func PaymentTransactionIDLT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDLTE applies the LTE predicate on the "payment_transaction_id" field.
func PaymentTransactionIDLTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDContains applies the Contains predicate on the "payment_transaction_id" field.
func PaymentTransactionIDContains(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContains(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDHasPrefix applies the HasPrefix predicate on the "payment_transaction_id" field.
func PaymentTransactionIDHasPrefix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasPrefix(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDHasSuffix applies the HasSuffix predicate on the "payment_transaction_id" field.
func PaymentTransactionIDHasSuffix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasSuffix(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDIsNil applies the IsNil predicate on the "payment_transaction_id" field.
func PaymentTransactionIDIsNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIsNull(FieldPaymentTransactionID))
}

// PaymentTransactionIDNotNil applies the NotNil predicate on the "payment_transaction_id" field.
func PaymentTransactionIDNotNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotNull(FieldPaymentTransactionID))
}

// PaymentTransactionIDEqualFold applies the EqualFold predicate on the "payment_transaction_id" field.
func PaymentTransactionIDEqualFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEqualFold(FieldPaymentTransactionID, v))
}

// PaymentTransactionIDContainsFold applies the ContainsFold predicate on the "payment_transaction_id" field.
func PaymentTransactionIDContainsFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContainsFold(FieldPaymentTransactionID, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldRetryCount, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldContainsFold(FieldLastError, v))
}

// PaidAtEQ applies the EQ predicate on the "paid_at" field.
func PaidAtEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldPaidAt, v))
}

// PaidAtNEQ applies the NEQ predicate on the "paid_at" field.
func PaidAtNEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldPaidAt, v))
}

// PaidAtIn applies the In predicate on the "paid_at" field.
func PaidAtIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldPaidAt, vs...))
}

// PaidAtNotIn applies the NotIn predicate on the "paid_at" field.
func PaidAtNotIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldPaidAt, vs...))
}

// PaidAtGT applies the GT predicate on the "paid_at" field.
func PaidAtGT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldPaidAt, v))
}

// PaidAtGTE applies the GTE predicate on the "paid_at" field.
func PaidAtGTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldPaidAt, v))
}

// PaidAtLT applies the LT predicate on the "paid_at" field.
func PaidAtLT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldPaidAt, v))
}

// PaidAtLTE applies the LTE predicate on the "paid_at" field.
func PaidAtLTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldPaidAt, v))
}

// PaidAtIsNil applies the IsNil predicate on the "paid_at" field.
func PaidAtIsNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIsNull(FieldPaidAt))
}

// PaidAtNotNil applies the NotNil predicate on the "paid_at" field.
func PaidAtNotNil() predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotNull(FieldPaidAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProducer applies the HasEdge predicate on the "producer" edge.
func HasProducer() predicate.PayoutRecord {
	return predicate.PayoutRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProducerTable, ProducerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProducerWith applies the HasEdge predicate on the "producer" edge with a given conditions (other predicates).
func HasProducerWith(preds ...predicate.User) predicate.PayoutRecord {
	return predicate.PayoutRecord(func(s *sql.Selector) {
		step := newProducerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayoutRecord) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayoutRecord) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayoutRecord) predicate.PayoutRecord {
	return predicate.PayoutRecord(sql.NotPredicates(p))
}
