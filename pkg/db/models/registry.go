package models

// All lists every table model, in creation order.
func All() []any {
	return []any{
		&Identity{},
		&AdminUser{},
		&Role{},
		&Article{},
		&Boutique{},
	}
}

// UsersDB lists the models stored in the users database.
func UsersDB() []any {
	return []any{&Identity{}, &AdminUser{}}
}

// AdminDB lists the models stored in the admin database.
func AdminDB() []any {
	return []any{&Role{}, &Article{}, &Boutique{}}
}
