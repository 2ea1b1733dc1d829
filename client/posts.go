package client

import (
	"context"
	"net/url"

	"github.com/sulaimon23/blog-post/app/models"
)

// PostsByUser fetches all posts belonging to a user.
func (c *Client) PostsByUser(ctx context.Context, userID string) ([]models.Post, error) {
	var posts []models.Post
	if err := c.get(ctx, "/posts?userId="+url.QueryEscape(userID), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost creates a post and returns the stored record with its
// generated id and creation time.
func (c *Client) CreatePost(ctx context.Context, input models.CreatePostInput) (*models.Post, error) {
	var post models.Post
	if err := c.post(ctx, "/posts", input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes a post by id.
func (c *Client) DeletePost(ctx context.Context, postID string) error {
	return c.delete(ctx, "/posts/"+url.PathEscape(postID))
}
