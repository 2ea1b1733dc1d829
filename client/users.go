package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sulaimon23/blog-post/app/models"
)

// Users fetches one page of users.
func (c *Client) Users(ctx context.Context, pageNumber, pageSize int) ([]models.User, error) {
	var users []models.User
	path := fmt.Sprintf("/users?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
	if err := c.get(ctx, path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UsersCount fetches the total number of users.
func (c *Client) UsersCount(ctx context.Context) (int, error) {
	var body struct {
		Count int `json:"count"`
	}
	if err := c.get(ctx, "/users/count", &body); err != nil {
		return 0, err
	}
	return body.Count, nil
}

// User fetches a single user by id.
func (c *Client) User(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}
