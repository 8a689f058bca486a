// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"fmt"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/database/schema"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

var userColumns = columns("", schema.UserAccount.Columns())

func scanUser(row scanner) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.DisplayName,
		&user.AvatarURL, &user.CoverImageURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # User Retrieval

func (repository *Repository) FindUserByID(context context.Context, id string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_id")
	}
	return user, nil
}

func (repository *Repository) FindUserByUsername(context context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = LOWER($1)`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Username)

	user, err := scanUser(repository.db.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return user, nil
}

func (repository *Repository) FindUserByEmail(context context.Context, email string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1)`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Email)

	user, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_email")
	}
	return user, nil
}

/*
FindUsersByIDs resolves a batch of users in one round trip.

Parameters:
  - context: context.Context
  - ids: []string

Returns:
  - map[string]*entity.User: Found users keyed by ID
  - error: Database retrieval failures
*/
func (repository *Repository) FindUsersByIDs(context context.Context, ids []string) (map[string]*entity.User, error) {
	found := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1::uuid[])`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users_by_ids")
	}
	defer rows.Close()

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		found[user.ID] = user
	}

	return found, dberr.Wrap(rows.Err(), "iterate_users")
}

// # User Mutation

func (repository *Repository) CreateUser(context context.Context, user *entity.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.DisplayName, schema.UserAccount.AvatarURL, schema.UserAccount.CoverImageURL,
		schema.UserAccount.Username, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.DisplayName, user.AvatarURL, user.CoverImageURL,
	).Scan(&user.Username, &user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *Repository) UpdateUser(context context.Context, user *entity.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Email, schema.UserAccount.DisplayName, schema.UserAccount.AvatarURL,
		schema.UserAccount.CoverImageURL, schema.UserAccount.Password, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Email, user.DisplayName, user.AvatarURL, user.CoverImageURL, user.PasswordHash,
	).Scan(&user.UpdatedAt)

	return dberr.Wrap(err, "update_user")
}
