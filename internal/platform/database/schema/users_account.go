// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the PostgreSQL tables and columns used by the store.
// Queries are assembled from these definitions so a rename touches one file.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table         string
	ID            string
	Username      string
	Email         string
	Password      string
	DisplayName   string
	AvatarURL     string
	CoverImageURL string
	CreatedAt     string
	UpdatedAt     string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:         "users.account",
	ID:            "id",
	Username:      "username",
	Email:         "email",
	Password:      "passwordhash",
	DisplayName:   "displayname",
	AvatarURL:     "avatarurl",
	CoverImageURL: "coverimageurl",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.DisplayName,
		t.AvatarURL, t.CoverImageURL, t.CreatedAt, t.UpdatedAt,
	}
}
