package repo

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	TableContactMessages = "contact_messages"
	TableReservations    = "reservations"
	TableDiagnoses       = "diagnoses"
)

var (
	contactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Size: 255},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"UNREAD", "READ", "REPLIED"}, Default: "UNREAD"},
		{Name: "created_at", Type: field.TypeTime},
	}
	contactMessagesTable = &schema.Table{
		Name:       TableContactMessages,
		Columns:    contactMessagesColumns,
		PrimaryKey: []*schema.Column{contactMessagesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "contactmessage_status_created_at", Columns: []*schema.Column{contactMessagesColumns[5], contactMessagesColumns[6]}},
		},
	}

	reservationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "phone", Type: field.TypeString, Size: 32},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "time", Type: field.TypeString, Size: 5},
		{Name: "blend", Type: field.TypeString, Size: 64},
		{Name: "menu", Type: field.TypeString, Size: 255, Nullable: true},
		{Name: "message", Type: field.TypeString, Size: 2147483647, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"}, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	reservationsTable = &schema.Table{
		Name:       TableReservations,
		Columns:    reservationsColumns,
		PrimaryKey: []*schema.Column{reservationsColumns[0]},
		Indexes: []*schema.Index{
			// One live booking per slot. Cancelled and completed rows may repeat.
			{
				Name:       "reservation_date_time_active",
				Unique:     true,
				Columns:    []*schema.Column{reservationsColumns[4], reservationsColumns[5]},
				Annotation: &entsql.IndexAnnotation{Where: "status IN ('PENDING', 'CONFIRMED')"},
			},
			{Name: "reservation_status", Columns: []*schema.Column{reservationsColumns[9]}},
		},
	}

	diagnosesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString, Size: 64, Nullable: true},
		{Name: "body_type", Type: field.TypeString, Size: 32},
		{Name: "near_tie", Type: field.TypeBool, Default: false},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "raw_answers", Type: field.TypeJSON},
		{Name: "type_scores", Type: field.TypeJSON},
		{Name: "type_count", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	diagnosesTable = &schema.Table{
		Name:       TableDiagnoses,
		Columns:    diagnosesColumns,
		PrimaryKey: []*schema.Column{diagnosesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "diagnosis_body_type", Columns: []*schema.Column{diagnosesColumns[2]}},
			{Name: "diagnosis_user_id", Columns: []*schema.Column{diagnosesColumns[1]}},
			{Name: "diagnosis_created_at", Columns: []*schema.Column{diagnosesColumns[9]}},
		},
	}

	// Tables holds every table in schema order.
	Tables = []*schema.Table{
		contactMessagesTable,
		reservationsTable,
		diagnosesTable,
	}
)
