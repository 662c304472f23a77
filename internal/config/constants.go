package config

const (
	// DefaultDatabasePath is where the sqlite store keeps its file
	DefaultDatabasePath = "./storystash.db"

	DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"
)
