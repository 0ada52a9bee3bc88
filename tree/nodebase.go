// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/compose/base/strcase"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the tree system. You must use NodeBase as an embedded struct in all
// higher-level tree types, and call [NodeBase.InitName] with the outer value
// before using the node, so that [NodeBase.This] is set correctly.
//
// Children are kept in insertion order, which is also their traversal order.
// A node can only be added to a parent once.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to other children of
	// the same parent. If not otherwise set, it defaults to the kebab-case name of the node
	// type combined with the total number of children that have ever been added to the
	// node's parent.
	Name string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types.
	This Node

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent.
	Parent Node

	// Children is the list of children of this node, in insertion order.
	Children []Node

	// Properties is a property map for arbitrary key-value properties.
	Properties map[string]any

	// OnChildAdded is called after a node has been appended as a direct
	// child of this node.
	OnChildAdded func(n Node)

	// numLifetimeChildren is the number of children that have ever been added to this
	// node, which is used for automatic unique naming.
	numLifetimeChildren uint64
}

// InitName sets [NodeBase.This] to the given outer value and sets the name
// of the node if one is given.
func (n *NodeBase) InitName(this Node, name ...string) {
	n.This = this
	if len(name) > 0 {
		n.Name = name[0]
	}
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// TypeName returns the kebab-case name of the type of the node,
// such as "text-view" for a *TextView.
func (n *NodeBase) TypeName() string {
	if n.This == nil {
		return "node-base"
	}
	typ := reflect.TypeOf(n.This)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return strcase.ToKebab(typ.Name())
}

// Children:

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// Path returns the path to this node from the tree root,
// using [Node.Name]s separated by / delimeters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + n.Name
	}
	return "/" + n.Name
}

// AddChild appends the given child to the end of the children of this node
// and makes this node its parent. If the child does not have a name, it is
// given one from its type name and the number of children ever added to this
// node. It panics if the child already has a parent; a node is attached
// exactly once. After the child is appended, [NodeBase.OnChildAdded] is called.
func (n *NodeBase) AddChild(kid Node) {
	kb := kid.AsTree()
	if kb.This == nil {
		kb.This = kid
	}
	if kb.Parent != nil {
		panic(fmt.Sprintf("tree.AddChild: %s already has a parent", kb.Path()))
	}
	if kid == n.This {
		panic("tree.AddChild: a node cannot be its own child")
	}
	n.Children = append(n.Children, kid)
	kb.Parent = n.This
	c := n.numLifetimeChildren
	n.numLifetimeChildren++
	if kb.Name == "" {
		kb.Name = kb.TypeName() + "-" + strconv.FormatUint(c, 10)
	}
	if n.OnChildAdded != nil {
		n.OnChildAdded(kid)
	}
}

// Properties:

// SetProperty sets the given property to the given value.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// Tree walking:

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner, in child order. It stops walking the current
// branch of the tree if the function returns [Break] and keeps walking
// if it returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	for _, k := range n.Children {
		k.AsTree().WalkDown(fun)
	}
}
