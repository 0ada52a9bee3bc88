// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/compose/tree"
)

type testNode struct {
	NodeBase
	Value int
}

func newTestNode(name ...string) *testNode {
	n := &testNode{}
	n.InitName(n, name...)
	return n
}

func TestNodeAddChild(t *testing.T) {
	parent := newTestNode("root")
	child := newTestNode()
	parent.AddChild(child)
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "test-node-0", child.Name)
	assert.Equal(t, "/root/test-node-0", child.Path())
	assert.Equal(t, "/root/test-node-0", child.String())
}

func TestNodeAddChildOrder(t *testing.T) {
	parent := newTestNode("root")
	var added []string
	parent.OnChildAdded = func(n Node) {
		added = append(added, n.AsTree().Name)
	}
	for _, name := range []string{"c", "a", "b"} {
		parent.AddChild(newTestNode(name))
	}
	require.Equal(t, 3, parent.NumChildren())
	assert.Equal(t, []string{"c", "a", "b"}, added)
	assert.Equal(t, "a", parent.Child(1).AsTree().Name)
	assert.Nil(t, parent.Child(3))
	assert.Nil(t, parent.Child(-1))
}

func TestNodeAddChildTwice(t *testing.T) {
	p1 := newTestNode("p1")
	p2 := newTestNode("p2")
	child := newTestNode("child")
	p1.AddChild(child)
	assert.Panics(t, func() { p2.AddChild(child) })
	assert.Panics(t, func() { p1.AddChild(p1) })
	assert.Equal(t, 0, p2.NumChildren())
}

func TestNodeProperties(t *testing.T) {
	n := newTestNode("n")
	assert.Nil(t, n.Property("missing"))
	n.SetProperty("tag", 42)
	assert.Equal(t, 42, n.Property("tag"))
	n.SetProperty("tag", "x")
	assert.Equal(t, "x", n.Property("tag"))
}

func buildTree() (*testNode, []*testNode) {
	root := newTestNode("root")
	a := newTestNode("a")
	b := newTestNode("b")
	a1 := newTestNode("a1")
	a2 := newTestNode("a2")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)
	a.AddChild(a2)
	return root, []*testNode{a, b, a1, a2}
}

func TestWalkDown(t *testing.T) {
	root, nodes := buildTree()
	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "a2", "b"}, names)

	names = nil
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n != Node(nodes[0])
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)
}

func TestWalkUp(t *testing.T) {
	root, nodes := buildTree()
	var names []string
	done := nodes[3].WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.True(t, done)
	assert.Equal(t, []string{"a2", "a", "root"}, names)

	names = nil
	done = nodes[3].WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n != Node(nodes[0])
	})
	assert.False(t, done)
	assert.Equal(t, []string{"a2", "a"}, names)
	assert.True(t, root.WalkUp(func(n Node) bool { return Continue }))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "test-node", newTestNode().TypeName())
	assert.Equal(t, "node-base", (&NodeBase{}).TypeName())
}
