package repositories

import (
	"database/sql"

	"github.com/sulaimon23/blog-post/app/models"
)

const selectUserColumns = `
SELECT
    u.id,
    u.name,
    u.username,
    u.email,
    u.phone,
    a.street,
    a.state,
    a.city,
    a.zipcode
FROM users u
LEFT JOIN addresses a ON u.id = a.user_id
`

// SQLiteUserRepository implements UserRepository over database/sql.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// List retrieves one page of users ordered by name, with their addresses.
// An offset past the last row yields an empty slice, not an error.
func (r *SQLiteUserRepository) List(pageNumber, pageSize int) ([]*models.User, error) {
	rows, err := r.db.Query(selectUserColumns+`ORDER BY u.name LIMIT ?, ?`,
		pageNumber*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Count returns the total number of user rows.
func (r *SQLiteUserRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// GetByID retrieves a user with its address, or ErrNotFound.
func (r *SQLiteUserRepository) GetByID(id string) (*models.User, error) {
	row := r.db.QueryRow(selectUserColumns+`WHERE u.id = ?`, id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var street, state, city, zipcode sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone,
		&street, &state, &city, &zipcode)
	if err != nil {
		return nil, err
	}
	u.Street = street.String
	u.State = state.String
	u.City = city.String
	u.Zipcode = zipcode.String
	return &u, nil
}
