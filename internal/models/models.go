package models

// All returns every persisted entity, in migration order. Used by
// AutoMigrate in main and by test databases.
func All() []any {
	return []any{
		&Workspace{},
		&Category{},
		&CategoryPattern{},
		&Ledger{},
		&Transaction{},
		&RecurringPattern{},
	}
}
