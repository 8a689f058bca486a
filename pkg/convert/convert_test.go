// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomitube/pkg/convert"
)

func TestToIntD(t *testing.T) {
	assert.Equal(t, 7, convert.ToIntD(" 7 ", 1))
	assert.Equal(t, -3, convert.ToIntD("-3", 1))
	assert.Equal(t, 1, convert.ToIntD("", 1))
	assert.Equal(t, 1, convert.ToIntD("ten", 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, convert.Clamp(-5, 1, 100))
	assert.Equal(t, 100, convert.Clamp(500, 1, 100))
	assert.Equal(t, 42, convert.Clamp(42, 1, 100))
}
