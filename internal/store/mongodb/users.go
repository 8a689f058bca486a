// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mongodb

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/yomitube/internal/core/entity"
	"github.com/taibuivan/yomitube/internal/platform/dberr"
)

func (r *Repository) CreateUser(ctx context.Context, user *entity.User) error {
	user.Username = strings.ToLower(user.Username)
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	_, err := r.users.InsertOne(ctx, user)
	return dberr.Wrap(err, "create_user")
}

func (r *Repository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := findOne[entity.User](ctx, r.users, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_id")
	}
	return user, nil
}

func (r *Repository) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user := &entity.User{}
	err := r.users.FindOne(ctx, bson.M{"username": strings.ToLower(username)}).Decode(user)
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return user, nil
}

// FindUserByEmail matches under the same collation as the unique email index.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user := &entity.User{}
	findOptions := options.FindOne().SetCollation(caseInsensitive)
	if err := r.users.FindOne(ctx, bson.M{"email": email}, findOptions).Decode(user); err != nil {
		return nil, dberr.Wrap(err, "get_user_by_email")
	}
	return user, nil
}

func (r *Repository) FindUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	found := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	users, err := findAll[entity.User](ctx, r.users, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
	if err != nil {
		return nil, dberr.Wrap(err, "get_users_by_ids")
	}
	for _, user := range users {
		found[user.ID] = user
	}
	return found, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *entity.User) error {
	update := bson.M{"$set": bson.M{
		"email":         user.Email,
		"displayName":   user.DisplayName,
		"avatarUrl":     user.AvatarURL,
		"coverImageUrl": user.CoverImageURL,
		"passwordHash":  user.PasswordHash,
		"updatedAt":     now(),
	}}

	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, update, afterUpdate()).Decode(user)
	return dberr.Wrap(err, "update_user")
}
