// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metadata

import (
	"github.com/charmbracelet/log"
)

// policy labels the naming convention of a namedContext in log output
type policy string

const (
	naturalPolicy policy = "natural"
	normalPolicy  policy = "normal"
)

// Natural is a ContextFactory keying attributes by name: the TagInfo name, else the dictionary
// keyword, else the tag. Attributes whose multiplicity is exactly one hold their value directly,
// passed through MakeArrayLike; all others hold a []interface{}.
//
// If a single valued attribute receives a second value, a warning is logged and the attribute
// becomes a list of both values. Sequences are VM 1 in the dictionary but routinely hold several
// items, so for SQ attributes the message is logged at debug level. If an attribute of unknown
// multiplicity receives exactly one value that MakeArrayLike wraps, it holds the *ArrayLike
// instead of a list. Primitives stay in a one element list.
func Natural(req TagRequest) Context {
	return newNamedContext(req, naturalPolicy)
}

// Normal is a ContextFactory producing the same tree shape as Natural.
func Normal(req TagRequest) Context {
	return newNamedContext(req, normalPolicy)
}

type namedContext struct {
	parent *ObjectContext
	tag    string
	name   string
	policy policy
	logger *log.Logger

	// single is true while the attribute is believed to hold exactly one value
	single bool
	// unknown is true when neither TagInfo nor the dictionary gave a multiplicity
	unknown bool
	// sequence is true for SQ attributes, whose items arrive as separate values
	sequence bool

	count  int
	scalar interface{}
	list   []interface{}
}

func newNamedContext(req TagRequest, p policy) *namedContext {
	vm := req.VM()
	logger := req.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &namedContext{
		parent:   req.Parent,
		tag:      req.Tag,
		name:     req.Name(),
		policy:   p,
		logger:   logger,
		single:   vm.IsSingle(),
		unknown:  !vm.Known(),
		sequence: req.VR() == "SQ",
	}
}

func (c *namedContext) Value(v interface{}) error {
	c.count++

	if !c.single {
		c.list = append(c.list, v)
		return nil
	}

	if c.count == 1 {
		c.scalar = MakeArrayLike(v)
		c.parent.Set(c.name, c.scalar)
		return nil
	}

	logf := c.logger.Warn
	if c.sequence {
		logf = c.logger.Debug
	}
	logf("multiple values for single valued attribute",
		"tag", c.tag, "name", c.name, "policy", string(c.policy))
	c.single = false
	c.list = []interface{}{Unwrap(c.scalar), v}
	c.scalar = nil
	return nil
}

func (c *namedContext) Pop() (interface{}, error) {
	if c.single && c.count > 0 {
		return c.scalar, nil
	}

	var dest interface{} = c.list
	if c.list == nil {
		dest = []interface{}{}
	}
	if c.count == 1 && c.unknown {
		if a, ok := MakeArrayLike(c.list[0]).(*ArrayLike); ok {
			dest = a
		}
	}
	c.parent.Set(c.name, dest)
	return dest, nil
}
