// Package yamlsrc converts a YAML document into the same JSON-compatible tree
// the engine builds from JSON tokens.
package yamlsrc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/jsonresume/internal/engine"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Path      string
	Key       string
	FirstLine int
	Line      int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at line %d (first at line %d)", e.Key, e.Line, e.FirstLine)
}

// ErrEmptyDocument is returned for input without any YAML document.
var ErrEmptyDocument = errors.New("yamlsrc: empty document")

// Decode parses the first YAML document in data. Mappings become
// map[string]any, sequences []any (nil when empty), null scalars nil and
// booleans bool. Every other scalar keeps its literal text, so an unquoted
// 2021 or 2021-06-15 arrives as a string like its JSON counterpart.
//
// Aliases are expanded in place and merge keys (<<) are applied. Cyclic
// aliases and documents that expand mostly through aliases are rejected.
func Decode(data []byte, opt eng.EnforceOptions) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	c := &converter{opt: opt, active: make(map[*yaml.Node]struct{})}
	return c.convert(&root, "", 0)
}

// Limits on alias expansion, as applied by yaml.v3 when decoding into Go
// values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(nodes int) float64 {
	switch {
	case nodes <= aliasRatioRangeLow:
		return 0.99
	case nodes >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(nodes-aliasRatioRangeLow)/aliasRatioRange)
	}
}

type converter struct {
	opt eng.EnforceOptions

	// active holds the anchored nodes currently being converted.
	active map[*yaml.Node]struct{}

	nodes      int // nodes converted
	aliasNodes int // nodes converted through an alias
	aliasDepth int
}

func (c *converter) convert(n *yaml.Node, path string, depth int) (any, error) {
	c.nodes++
	if c.aliasDepth > 0 {
		c.aliasNodes++
		if c.aliasNodes > 100 && c.nodes > 1000 && float64(c.aliasNodes)/float64(c.nodes) > allowedAliasRatio(c.nodes) {
			return nil, parseError(path, "excessive aliasing")
		}
	}
	if n.Anchor != "" {
		c.active[n] = struct{}{}
		defer delete(c.active, n)
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return c.convert(n.Content[0], path, depth)
	case yaml.AliasNode:
		if _, busy := c.active[n.Alias]; busy {
			return nil, parseError(path, "alias cycle")
		}
		c.aliasDepth++
		defer func() { c.aliasDepth-- }()
		return c.convert(n.Alias, path, depth)
	case yaml.MappingNode:
		return c.convertMapping(n, path, depth)
	case yaml.SequenceNode:
		if err := c.checkDepth(path, depth+1); err != nil {
			return nil, err
		}
		var arr []any
		for i, item := range n.Content {
			v, err := c.convert(item, path+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err == nil {
				return b, nil
			}
		}
		return n.Value, nil
	}
	return nil, nil
}

func (c *converter) convertMapping(n *yaml.Node, path string, depth int) (any, error) {
	if err := c.checkDepth(path, depth+1); err != nil {
		return nil, err
	}
	m := make(map[string]any, len(n.Content)/2)
	first := make(map[string]int, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		kp := path + "/" + escape(k.Value)
		if line, dup := first[k.Value]; dup && c.opt.OnDuplicate != eng.DupIgnore {
			if c.opt.OnDuplicate == eng.DupError {
				return nil, &DuplicateKeyError{Path: kp, Key: k.Value, FirstLine: line, Line: k.Line}
			}
			if c.opt.IssueSink != nil {
				c.opt.IssueSink(eng.SimpleIssue{Code: "duplicate_key", Path: kp, Message: "key '" + k.Value + "' duplicated"})
			}
		}
		first[k.Value] = k.Line
		val, err := c.convert(v, kp, depth+1)
		if err != nil {
			return nil, err
		}
		m[k.Value] = val
	}
	// Explicit keys win over merged ones; earlier merge sources win over later.
	for _, src := range merges {
		items := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			items = src.Content
		}
		for _, item := range items {
			mv, err := c.convert(item, path, depth)
			if err != nil {
				return nil, err
			}
			mm, ok := mv.(map[string]any)
			if !ok {
				return nil, parseError(path, "merge value must be a mapping")
			}
			for k, v := range mm {
				if _, set := m[k]; !set {
					m[k] = v
				}
			}
		}
	}
	return m, nil
}

func parseError(path, msg string) error {
	if path == "" {
		path = "/"
	}
	return eng.IssueError{SimpleIssue: eng.SimpleIssue{Code: "parse_error", Path: path, Message: msg}}
}

func (c *converter) checkDepth(path string, depth int) error {
	if c.opt.MaxDepth > 0 && depth > c.opt.MaxDepth {
		return parseError(path, "max depth exceeded")
	}
	return nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escape(s string) string { return pointerEscaper.Replace(s) }
