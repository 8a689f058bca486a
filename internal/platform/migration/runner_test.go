// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPgx5URL(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/yt":   "pgx5://u:p@db:5432/yt",
		"postgresql://u:p@db:5432/yt": "pgx5://u:p@db:5432/yt",
		"pgx5://u:p@db:5432/yt":       "pgx5://u:p@db:5432/yt",
		"host=db dbname=yt":           "host=db dbname=yt",
	}
	for in, want := range tests {
		assert.Equal(t, want, pgx5URL(in), in)
	}
}
