// Copyright 2026 Google LLC
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

// Package shell runs external commands synchronously and captures their output.
package shell

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// CommandResult holds the outcome of a finished command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Command is a single external invocation.
type Command struct {
	name   string
	args   []string
	input  string
	output io.Writer
}

// NewCommand creates a Command for the given binary and arguments.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// SetInput sets the text fed to the command's stdin.
func (c *Command) SetInput(input string) {
	c.input = input
}

// SetOutput streams stdout to w instead of capturing it in the result.
func (c *Command) SetOutput(w io.Writer) {
	c.output = w
}

// Name returns the binary being run.
func (c *Command) Name() string {
	return c.name
}

// Args returns the command arguments.
func (c *Command) Args() []string {
	return c.args
}

// Output returns the writer set with SetOutput, or nil.
func (c *Command) Output() io.Writer {
	return c.output
}

// String renders the command line for logging.
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Execute runs the command and blocks until it exits. A command that cannot
// be started yields ExitCode -1 with the start error in Stderr.
func (c *Command) Execute() CommandResult {
	logrus.Debugf("Executing: %s", c.String())

	cmd := exec.Command(c.name, c.args...)
	var stdout, stderr bytes.Buffer
	if c.output != nil {
		cmd.Stdout = c.output
	} else {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = &stderr
	if c.input != "" {
		cmd.Stdin = strings.NewReader(c.input)
	}

	res := CommandResult{}
	err := cmd.Run()
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}
	logrus.Debugf("Command %q exited with code %d", c.name, res.ExitCode)
	return res
}

// ExecuteCommand runs name with args and returns the captured result.
func ExecuteCommand(name string, args ...string) CommandResult {
	return NewCommand(name, args...).Execute()
}

// ExecFunc matches ExecuteCommand. Callers take one so tests can stand in for
// the real binary.
type ExecFunc func(name string, args ...string) CommandResult

// RunFunc executes a prepared Command.
type RunFunc func(cmd *Command) CommandResult

// Run executes cmd. It is the default RunFunc.
func Run(cmd *Command) CommandResult {
	return cmd.Execute()
}
