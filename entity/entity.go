package entity

// All lists the models managed by AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&File{},
		&Product{},
		&ProductImage{},
		&CustomerAddress{},
		&Order{},
	}
}
