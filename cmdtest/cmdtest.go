// Package cmdtest runs in-process command line tests described in YAML files.
//
// Each file holds either a sequence of cases or a mapping with a "tests" key:
//
//	tests:
//	  - name: meets
//	    cmd: intervals
//	    args: ["relation", "[1,5]", "[6,10]"]
//	    env:
//	      INTERVALS_KIND: int
//	    expect:
//	      stdout: "meets\n"
//	      exitCode: 0
//
// Args are given as a list so that interval notation never needs quoting.
// With update enabled, mismatching expectations are written back into the
// file, keeping its comments and layout.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is a single test case of a YAML file.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Expect      Expect            `yaml:"expect"`
}

// Expect is what a case must produce.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// Group is the content of one YAML file.
type Group struct {
	Name  string
	Tests []Case `yaml:"tests"`
}

// Suite is the set of groups read from a directory.
type Suite struct {
	groups   []*Group
	commands map[string]func() int
	sources  map[*Group]*source
	mu       sync.Mutex
}

// source keeps the parsed document of a group so updates can be persisted
// without losing comments.
type source struct {
	path  string
	root  *yaml.Node
	cases []*yaml.Node
}

// Read loads every .yaml and .yml file below dir, in lexical order.
func Read(dir string) (*Suite, error) {
	s := &Suite{
		commands: make(map[string]func() int),
		sources:  make(map[*Group]*source),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		g, src, err := readGroup(path)
		if err != nil {
			return err
		}
		s.groups = append(s.groups, g)
		s.sources[g] = src
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readGroup(path string) (*Group, *source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, nil, fmt.Errorf("%s: empty yaml", path)
	}

	casesNode, err := locateCases(root.Content[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	g := &Group{Name: filepath.Base(path)}
	if err := casesNode.Decode(&g.Tests); err != nil {
		return nil, nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	return g, &source{path: path, root: &root, cases: casesNode.Content}, nil
}

// Register binds the name used in the cmd field of a case to a function
// returning the exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run runs every case as a subtest of t.
func (s *Suite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate runs every case; with update set, mismatches rewrite the
// expectations instead of failing.
func (s *Suite) RunWithUpdate(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		t.Run(g.Name, func(t *testing.T) {
			for i := range g.Tests {
				t.Run(caseName(g, i), func(t *testing.T) {
					s.runCase(t, g, i, update)
				})
			}
		})
	}
}

func caseName(g *Group, i int) string {
	if name := g.Tests[i].Name; name != "" {
		return name
	}
	return fmt.Sprintf("Case-%d", i)
}

// cmdFor resolves the command of c. An empty cmd selects the only
// registered command.
func (s *Suite) cmdFor(c *Case) (string, func() int, error) {
	if c.Cmd != "" {
		run, ok := s.commands[c.Cmd]
		if !ok {
			return "", nil, fmt.Errorf("command %q not registered", c.Cmd)
		}
		return c.Cmd, run, nil
	}
	if len(s.commands) != 1 {
		return "", nil, fmt.Errorf("case has no cmd and %d commands are registered", len(s.commands))
	}
	for name, run := range s.commands {
		return name, run, nil
	}
	panic("unreachable")
}

func (s *Suite) runCase(t *testing.T, g *Group, idx int, update bool) {
	c := &g.Tests[idx]
	name, run, err := s.cmdFor(c)
	if err != nil {
		t.Fatal(err)
	}

	restore := setEnv(c.Env)
	oldArgs := os.Args
	os.Args = append([]string{name}, c.Args...)

	stdout, stderr, exitCode, err := capture(run)

	os.Args = oldArgs
	restore()
	if err != nil {
		t.Fatal(err)
	}

	changes := s.check(t, g, idx, Expect{Stdout: stdout, Stderr: stderr, ExitCode: exitCode}, update)
	if update && len(changes) > 0 {
		if err := s.persist(g); err != nil {
			t.Fatalf("persist %s: %v", s.sources[g].path, err)
		}
		t.Logf("cmdtest: updated %s (%s): %s", s.sources[g].path, caseName(g, idx), strings.Join(changes, "; "))
	}
}

// setEnv applies env and returns a function that puts the previous values
// back.
func setEnv(env map[string]string) func() {
	type saved struct {
		value  string
		exists bool
	}
	old := make(map[string]saved, len(env))
	for k, v := range env {
		val, exists := os.LookupEnv(k)
		old[k] = saved{value: val, exists: exists}
		os.Setenv(k, v)
	}
	return func() {
		for k, sv := range old {
			if sv.exists {
				os.Setenv(k, sv.value)
			} else {
				os.Unsetenv(k)
			}
		}
	}
}

// capture runs run with os.Stdout and os.Stderr redirected to pipes. A panic
// is reported as exit code -1 with the panic value on stderr.
func capture(run func() int) (stdout, stderr string, exitCode int, err error) {
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return "", "", 0, err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		rOut.Close()
		wOut.Close()
		return "", "", 0, err
	}

	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = wOut, wErr

	var wg sync.WaitGroup
	var outBuf, errBuf bytes.Buffer
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&outBuf, rOut)
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(&errBuf, rErr)
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(wErr, "panic: %v\n", r)
				exitCode = -1
			}
		}()
		exitCode = run()
	}()

	os.Stdout, os.Stderr = oldStdout, oldStderr
	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()

	return outBuf.String(), errBuf.String(), exitCode, nil
}

// check compares got with the expectations of case idx. It returns the
// fields rewritten in update mode.
func (s *Suite) check(t *testing.T, g *Group, idx int, got Expect, update bool) []string {
	c := &g.Tests[idx]
	src := s.sources[g]
	if src == nil {
		t.Fatalf("no yaml source for group %s", g.Name)
	}
	expectNode := ensureMapValue(src.cases[idx], "expect")

	var changes []string
	if got.ExitCode != c.Expect.ExitCode {
		if update {
			c.Expect.ExitCode = got.ExitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.ExitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.ExitCode))
		} else {
			t.Errorf("exit code mismatch:\nexpected: %d\nactual:   %d\nstderr:\n%s", c.Expect.ExitCode, got.ExitCode, got.Stderr)
		}
	}

	fields := []struct {
		key   string
		want  *string
		value string
	}{
		{"stdout", &c.Expect.Stdout, got.Stdout},
		{"stderr", &c.Expect.Stderr, got.Stderr},
	}
	for _, f := range fields {
		if *f.want == f.value {
			continue
		}
		if update {
			*f.want = f.value
			setStringScalar(ensureMapValue(expectNode, f.key), f.value)
			changes = append(changes, fmt.Sprintf("%s=%q", f.key, summarize(f.value)))
		} else {
			t.Errorf("%s mismatch:\nexpected:\n%s\nactual:\n%s", f.key, *f.want, f.value)
		}
	}
	sort.Strings(changes)
	return changes
}

func (s *Suite) persist(g *Group) error {
	src := s.sources[g]
	if src == nil {
		return fmt.Errorf("no yaml source for group %s", g.Name)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(src.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(src.path, buf.Bytes(), 0o644)
}

func locateCases(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.MappingNode:
		val := findMapValue(doc, "tests")
		if val == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return val, nil
	case yaml.SequenceNode:
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ""}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	// a lone newline would otherwise be written as an empty literal block
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	} else {
		node.Style = 0
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarize(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
