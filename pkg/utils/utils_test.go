/*
 * Copyright (C) 2020-2022, IrineSistiana
 *
 * This file is part of linkedlist.
 *
 * linkedlist is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * linkedlist is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaultNum(t *testing.T) {
	i := 0
	SetDefaultNum(&i, 8)
	assert.Equal(t, 8, i)
	SetDefaultNum(&i, 16)
	assert.Equal(t, 8, i)

	f := 0.0
	SetDefaultNum(&f, 0.5)
	assert.Equal(t, 0.5, f)
}

func TestWeakDecode(t *testing.T) {
	type args struct {
		Name string `yaml:"name"`
		Size int    `yaml:"size"`
	}

	out := new(args)
	require.NoError(t, WeakDecode(map[string]interface{}{"name": "a", "size": "12"}, out))
	assert.Equal(t, args{Name: "a", Size: 12}, *out)

	err := WeakDecode(map[string]interface{}{"unknown": 1}, new(args))
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	var es Errors
	assert.NoError(t, es.Build())

	e1 := errors.New("e1")
	es.Append(e1)
	assert.Same(t, e1, es.Build())

	es.Append(errors.New("e2"))
	err := es.Build()
	require.Error(t, err)
	assert.Equal(t, "joint errors: #0: e1 #1: e2", err.Error())
}
