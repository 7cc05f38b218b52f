package models

// All lists the entities managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Category{},
		&Vocabulary{},
		&Progress{},
	}
}
