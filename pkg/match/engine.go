// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package match

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
	search "laptudirm.com/x/taxi/pkg/engine"
)

// HandshakeTimeout bounds every exchange outside of a search.
const HandshakeTimeout = 5 * time.Second

// UntimedSearchLimit bounds the search of an engine without a clock.
const UntimedSearchLimit = time.Minute

// StartEngine runs the external engine described by the given config and
// initializes it for a new game.
func StartEngine(config EngineConfig) (*Engine, error) {
	if config.Protocol == "" {
		config.Protocol = "uai"
	}

	if config.Name == "" {
		config.Name = config.Cmd
	}

	engine := Engine{config: config}
	process := exec.Command(config.Cmd, strings.Fields(config.Arg)...)
	process.Dir = config.Dir

	stdin, err := process.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := process.StdoutPipe()
	if err != nil {
		return nil, err
	}

	if config.Stderr != "" {
		file, err := os.Create(config.Stderr)
		if err != nil {
			return nil, err
		}

		engine.stderr = file
		process.Stderr = file
	}

	engine.writer = bufio.NewWriter(stdin)
	engine.reader = bufio.NewReader(stdout)
	engine.lines = make(chan string)
	engine.done = make(chan struct{})
	engine.Cmd = process

	if err := engine.Cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", config.Name, err)
	}

	go engine.readLines()

	if config.InitStr != "" {
		if err := engine.Write("%s", config.InitStr); err != nil {
			_ = engine.Close()
			return nil, err
		}
	}

	if err := engine.Initialize(); err != nil {
		_ = engine.Close()
		return nil, err
	}

	for name, value := range config.Options {
		if err := engine.Write("setoption name %s value %s", name, value); err != nil {
			_ = engine.Close()
			return nil, err
		}
	}

	if err := engine.NewGame(); err != nil {
		_ = engine.Close()
		return nil, err
	}

	return &engine, nil
}

// Engine is an external engine process.
type Engine struct {
	config EngineConfig

	*exec.Cmd

	writer *bufio.Writer
	reader *bufio.Reader
	stderr *os.File

	lines chan string
	done  chan struct{}

	err error
}

var _ Player = (*Engine)(nil)

func (engine *Engine) readLines() {
	for {
		line, err := engine.reader.ReadString('\n')
		if err != nil {
			engine.err = err
			close(engine.lines)
			return
		}

		line = strings.Trim(line, " \n\t\r")

		logrus.Debugf("info: (%s)> %s", engine.config.Name, line)

		select {
		case engine.lines <- line:
		case <-engine.done:
			return
		}
	}
}

func (engine *Engine) Name() string {
	return engine.config.Name
}

// NewGame prepares the engine for a new game of ataxx.
func (engine *Engine) NewGame() error {
	if err := engine.Write(engine.config.Protocol + "newgame"); err != nil {
		return err
	}

	return engine.Synchronize()
}

// Initialize initializes the engine on startup.
func (engine *Engine) Initialize() error {
	if err := engine.Write(engine.config.Protocol); err != nil {
		return err
	}

	_, err := engine.Await(engine.config.Protocol+"ok", HandshakeTimeout)
	return err
}

// Synchronize waits for the engine to complete some time consuming task
// and synchronizes the interface with it.
func (engine *Engine) Synchronize() error {
	if err := engine.Write("isready"); err != nil {
		return err
	}

	_, err := engine.Await("readyok", HandshakeTimeout)
	return err
}

// Go sends the position and the clocks to the engine and waits for its
// bestmove. Red is black in UAI terms, since it moves first.
func (engine *Engine) Go(turn *Turn) (string, error) {
	moves := ""
	if len(turn.Moves) > 0 {
		moves = " moves " + strings.Join(turn.Moves, " ")
	}

	if err := engine.Write("position fen %s%s", turn.FEN, moves); err != nil {
		return "", err
	}

	if err := engine.Synchronize(); err != nil {
		return "", err
	}

	stm := turn.Position.SideToMove()
	red, blue := turn.Clocks[ataxx.Red], turn.Clocks[ataxx.Blue]

	var err error
	switch {
	case engine.config.Depth > 0:
		err = engine.Write("go depth %d", engine.config.Depth)
	case red.Timed() || blue.Timed():
		err = engine.Write(
			"go btime %d wtime %d binc %d winc %d",
			red.Base.Milliseconds(), blue.Base.Milliseconds(),
			red.Inc.Milliseconds(), blue.Inc.Milliseconds(),
		)
	default:
		err = engine.Write("go depth %d", search.DefaultDepth)
	}

	if err != nil {
		return "", err
	}

	limit := UntimedSearchLimit
	if clock := turn.Clocks[stm]; clock.Timed() {
		limit = clock.Base
	}

	line, err := engine.Await("^bestmove .*", limit)
	if err != nil {
		return "", err
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed bestmove %q", line)
	}

	return fields[1], nil
}

// Close asks the engine to quit and kills its process.
func (engine *Engine) Close() error {
	_ = engine.Write("quit")
	close(engine.done)

	err := engine.Process.Kill()
	_ = engine.Wait()

	if engine.stderr != nil {
		_ = engine.stderr.Close()
	}

	return err
}

var ErrReadTimeout = errors.New("engine: read i/o timeout")

// Await is a utility function which waits for a particular string from
// the engine with a fixed timeout.
func (engine *Engine) Await(pattern string, timeout time.Duration) (string, error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return "", ErrReadTimeout

		case line, ok := <-engine.lines:
			if !ok {
				// engine closed its output
				return "", fmt.Errorf("engine %s: %w", engine.config.Name, engine.err)
			}

			if regex.MatchString(line) {
				return line, nil
			}
		}
	}
}

func (engine *Engine) Write(format string, a ...any) error {
	line := fmt.Sprintf(format, a...)
	logrus.Debugf("info: (%s)< %s", engine.config.Name, line)

	if _, err := fmt.Fprintln(engine.writer, line); err != nil {
		return err
	}

	return engine.writer.Flush()
}
