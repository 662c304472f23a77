// Package database provides the gorm + sqlite implementation of store.Store.
//
// # Architecture
//
//	database/
//	├── database.go          # Connection setup, migrations, helpers
//	├── users.go             # Users and their preferences row
//	├── books.go             # Book CRUD, filtering and search
//	├── favorites.go         # Favorite links
//	├── recently_viewed.go   # Recently viewed links
//	├── notifications.go     # Notifications
//	├── catalog.go           # Authors and series
//	└── following.go         # Author, series and category follows
//
// # Usage
//
//	db, err := database.NewDatabase("./storystash.db")
//	book, err := db.GetBook(ctx, 123)
//
// A path of ":memory:" gives a volatile database, which is what tests and the
// run-matcher dry runs use.
//
// # Invariants
//
// Uniqueness rules are backed by unique indexes and pre-checked inside a
// transaction, so concurrent idempotent links resolve to a single row. The
// connection pool is capped at one connection: sqlite serialises writers
// anyway, and a single connection keeps ":memory:" databases alive.
package database
