// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles the signed-in user's profile and public channel pages.

# Architecture

  - Accounts are [entity.User] records read and written through [store.UserStore].
  - Credentials and sessions live in the sibling auth package.
  - The channel page is composed by [view.Composer].
*/
package account

// UpdateInput defines the mutable subset of profile fields. Nil means keep.
type UpdateInput struct {
	DisplayName   *string `json:"displayName"   validate:"omitempty,min=1,max=80"`
	Email         *string `json:"email"         validate:"omitempty,email,max=254"`
	AvatarURL     *string `json:"avatarUrl"     validate:"omitempty,http_url"`
	CoverImageURL *string `json:"coverImageUrl" validate:"omitempty,http_url"`
}
