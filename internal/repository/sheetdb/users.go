package sheetdb

import (
	"context"
	"strconv"

	"github.com/AnNhien/companion-service/internal/model"
)

type usersRepo struct {
	client *Client
}

func newUsersRepo(client *Client) Users {
	return &usersRepo{
		client: client,
	}
}

// FindByUsername returns nil when no row matches.
func (r *usersRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	records, err := r.client.Search(ctx, SheetUsers, map[string]string{"username": username})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	record := records[0]
	user := model.User{
		Username:     record.String("username"),
		PasswordHash: record.String("password"),
		Name:         record.String("name"),
		Role:         record.String("role"),
		CreatedAt:    record.Int64("createdAt"),
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	return &user, nil
}

func (r *usersRepo) Create(ctx context.Context, user model.User) error {
	return r.client.Create(ctx, SheetUsers, Record{
		"username":  user.Username,
		"password":  user.PasswordHash,
		"name":      user.Name,
		"role":      user.Role,
		"createdAt": strconv.FormatInt(user.CreatedAt, 10),
	})
}
