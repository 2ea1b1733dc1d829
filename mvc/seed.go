package mvc

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type sampleUser struct {
	name     string
	username string
	email    string
	phone    string
	street   string
	state    string
	city     string
	zipcode  string
	hasAddr  bool
}

var sampleUsers = []sampleUser{
	{name: "Leanne Graham", username: "Bret", email: "leanne.graham@example.com", phone: "1-770-736-8031", street: "Kulas Light", state: "WI", city: "Gwenborough", zipcode: "92998-3874", hasAddr: true},
	{name: "Ervin Howell", username: "Antonette", email: "ervin.howell@example.com", phone: "010-692-6593", street: "Victor Plains", state: "NY", city: "Wisokyburgh", zipcode: "90566-7771", hasAddr: true},
	{name: "Clementine Bauch", username: "Samantha", email: "clementine.bauch@example.com", phone: "1-463-123-4447", street: "Douglas Extension", state: "CA", city: "McKenziehaven", zipcode: "59590-4157", hasAddr: true},
	// Partial address: no zipcode.
	{name: "Patricia Lebsack", username: "Karianne", email: "patricia.lebsack@example.com", phone: "493-170-9623", street: "Hoeger Mall", state: "TX", city: "South Elvis", hasAddr: true},
	// No address at all.
	{name: "Chelsey Dietrich", username: "Kamren", email: "chelsey.dietrich@example.com", phone: "(254)954-1289"},
	{name: "Dennis Schulist", username: "Leopoldo_Corkery", email: "dennis.schulist@example.com", phone: "1-477-935-8478"},
}

// seedSampleData inserts the fixed sample set, skipping if users already
// exist so the command can be run repeatedly.
func seedSampleData(db *sql.DB) (int, error) {
	existing, err := countUsers(db)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for _, u := range sampleUsers {
		id := uuid.NewString()
		if _, err := tx.Exec(
			"INSERT INTO users (id, name, username, email, phone) VALUES (?, ?, ?, ?, ?)",
			id, u.name, u.username, u.email, u.phone,
		); err != nil {
			return 0, fmt.Errorf("inserting user %s: %w", u.name, err)
		}
		if !u.hasAddr {
			continue
		}
		_, err := tx.Exec(
			"INSERT INTO addresses (user_id, street, state, city, zipcode) VALUES (?, ?, ?, ?, ?)",
			id, nullable(u.street), nullable(u.state), nullable(u.city), nullable(u.zipcode),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting address for %s: %w", u.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(sampleUsers), nil
}

// nullable maps empty strings to NULL so partial addresses round-trip
// the same way the API reads them.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
