// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompensationSettingsColumns holds the columns for the "compensation_settings" table.
	CompensationSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "standard_rate", Type: field.TypeFloat64, Default: 0.7},
		{Name: "exclusive_rate", Type: field.TypeFloat64, Default: 0.8},
		{Name: "sync_fee_rate", Type: field.TypeFloat64, Default: 0.85},
		{Name: "volume_bonus_rate", Type: field.TypeFloat64, Default: 0.05},
		{Name: "volume_bonus_threshold", Type: field.TypeInt, Default: 20},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompensationSettingsTable holds the schema information for the "compensation_settings" table.
	CompensationSettingsTable = &schema.Table{
		Name:       "compensation_settings",
		Columns:    CompensationSettingsColumns,
		PrimaryKey: []*schema.Column{CompensationSettingsColumns[0]},
	}
	// PayoutRecordsColumns holds the columns for the "payout_records" table.
	PayoutRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "month", Type: field.TypeString},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "skipped", "failed"}, Default: "pending"},
		{Name: "wallet_address", Type: field.TypeString, Nullable: true},
		{Name: "payment_transaction_id", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "producer_id", Type: field.TypeInt},
	}
	// PayoutRecordsTable holds the schema information for the "payout_records" table.
	PayoutRecordsTable = &schema.Table{
		Name:       "payout_records",
		Columns:    PayoutRecordsColumns,
		PrimaryKey: []*schema.Column{PayoutRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payout_records_users_payouts",
				Columns:    []*schema.Column{PayoutRecordsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payoutrecord_producer_id_month",
				Unique:  true,
				Columns: []*schema.Column{PayoutRecordsColumns[11], PayoutRecordsColumns[1]},
			},
			{
				Name:    "payoutrecord_month",
				Unique:  false,
				Columns: []*schema.Column{PayoutRecordsColumns[1]},
			},
			{
				Name:    "payoutrecord_status",
				Unique:  false,
				Columns: []*schema.Column{PayoutRecordsColumns[3]},
			},
		},
	}
	// PayoutRunsColumns holds the columns for the "payout_runs" table.
	PayoutRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "month", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"generate", "disburse"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "triggered_by", Type: field.TypeInt, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// PayoutRunsTable holds the schema information for the "payout_runs" table.
	PayoutRunsTable = &schema.Table{
		Name:       "payout_runs",
		Columns:    PayoutRunsColumns,
		PrimaryKey: []*schema.Column{PayoutRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "payoutrun_month_kind",
				Unique:  false,
				Columns: []*schema.Column{PayoutRunsColumns[1], PayoutRunsColumns[2]},
			},
		},
	}
	// SalesColumns holds the columns for the "sales" table.
	SalesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "producer_id", Type: field.TypeInt},
		{Name: "license_type", Type: field.TypeEnum, Enums: []string{"standard", "exclusive"}},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "refunded"}, Default: "pending"},
		{Name: "stripe_session_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_payment_intent_id", Type: field.TypeString, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "track_id", Type: field.TypeInt},
		{Name: "buyer_id", Type: field.TypeInt},
	}
	// SalesTable holds the schema information for the "sales" table.
	SalesTable = &schema.Table{
		Name:       "sales",
		Columns:    SalesColumns,
		PrimaryKey: []*schema.Column{SalesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sales_tracks_sales",
				Columns:    []*schema.Column{SalesColumns[10]},
				RefColumns: []*schema.Column{TracksColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "sales_users_purchases",
				Columns:    []*schema.Column{SalesColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sale_producer_id_status",
				Unique:  false,
				Columns: []*schema.Column{SalesColumns[1], SalesColumns[4]},
			},
			{
				Name:    "sale_completed_at",
				Unique:  false,
				Columns: []*schema.Column{SalesColumns[7]},
			},
			{
				Name:    "sale_stripe_session_id",
				Unique:  true,
				Columns: []*schema.Column{SalesColumns[5]},
			},
		},
	}
	// SyncProposalsColumns holds the columns for the "sync_proposals" table.
	SyncProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "producer_id", Type: field.TypeInt},
		{Name: "track_id", Type: field.TypeInt},
		{Name: "project_name", Type: field.TypeString},
		{Name: "fee", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "accepted", "rejected", "paid"}, Default: "submitted"},
		{Name: "accepted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SyncProposalsTable holds the schema information for the "sync_proposals" table.
	SyncProposalsTable = &schema.Table{
		Name:       "sync_proposals",
		Columns:    SyncProposalsColumns,
		PrimaryKey: []*schema.Column{SyncProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncproposal_producer_id_status",
				Unique:  false,
				Columns: []*schema.Column{SyncProposalsColumns[1], SyncProposalsColumns[5]},
			},
			{
				Name:    "syncproposal_accepted_at",
				Unique:  false,
				Columns: []*schema.Column{SyncProposalsColumns[6]},
			},
		},
	}
	// TracksColumns holds the columns for the "tracks" table.
	TracksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "genre", Type: field.TypeString, Nullable: true},
		{Name: "bpm", Type: field.TypeInt, Nullable: true},
		{Name: "standard_price", Type: field.TypeFloat64, Default: 29.99},
		{Name: "exclusive_price", Type: field.TypeFloat64, Default: 299.99},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "exclusively_sold"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "producer_id", Type: field.TypeInt},
	}
	// TracksTable holds the schema information for the "tracks" table.
	TracksTable = &schema.Table{
		Name:       "tracks",
		Columns:    TracksColumns,
		PrimaryKey: []*schema.Column{TracksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tracks_users_tracks",
				Columns:    []*schema.Column{TracksColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "track_producer_id",
				Unique:  false,
				Columns: []*schema.Column{TracksColumns[9]},
			},
			{
				Name:    "track_status",
				Unique:  false,
				Columns: []*schema.Column{TracksColumns[6]},
			},
			{
				Name:    "track_genre",
				Unique:  false,
				Columns: []*schema.Column{TracksColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"client", "producer", "admin"}, Default: "client"},
		{Name: "artist_name", Type: field.TypeString, Nullable: true},
		{Name: "wallet_address", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompensationSettingsTable,
		PayoutRecordsTable,
		PayoutRunsTable,
		SalesTable,
		SyncProposalsTable,
		TracksTable,
		UsersTable,
	}
)

func init() {
	PayoutRecordsTable.ForeignKeys[0].RefTable = UsersTable
	SalesTable.ForeignKeys[0].RefTable = TracksTable
	SalesTable.ForeignKeys[1].RefTable = UsersTable
	TracksTable.ForeignKeys[0].RefTable = UsersTable
}
