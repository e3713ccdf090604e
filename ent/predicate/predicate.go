// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CompensationSettings is the predicate function for compensationsettings builders.
type CompensationSettings func(*sql.Selector)

// PayoutRecord is the predicate function for payoutrecord builders.
type PayoutRecord func(*sql.Selector)

// PayoutRun is the predicate function for payoutrun builders.
type PayoutRun func(*sql.Selector)

// Sale is the predicate function for sale builders.
type Sale func(*sql.Selector)

// SyncProposal is the predicate function for syncproposal builders.
type SyncProposal func(*sql.Selector)

// Track is the predicate function for track builders.
type Track func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
