// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption(t *testing.T) {
	var o Option[int]
	assert.False(t, o.IsValid())
	assert.Equal(t, 5, o.Or(5))
	assert.Equal(t, "unset", o.String())

	o.Set(3)
	assert.True(t, o.IsValid())
	assert.Equal(t, 3, o.Or(5))
	assert.Equal(t, "3", o.String())

	o.Clear()
	assert.False(t, o.IsValid())
	assert.Equal(t, 0, o.Value)
}

func TestApply(t *testing.T) {
	dst := "kept"
	assert.False(t, Option[string]{}.Apply(&dst))
	assert.Equal(t, "kept", dst)

	assert.True(t, New("").Apply(&dst))
	assert.Equal(t, "", dst, "an explicit zero value still overwrites")
}
