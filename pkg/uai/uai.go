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
// Package uai implements the engine side of the Universal Ataxx
// Interface, so that taxi can be driven by match runners and GUIs.
package uai

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/taxi/pkg/ataxx"
	"laptudirm.com/x/taxi/pkg/engine"
)

const (
	Name   = "taxi"
	Author = "Rak Laptudirm"

	MinDepth = 1
	MaxDepth = 8
)

// Client is the state of one UAI session.
type Client struct {
	config   engine.Config
	engine   *engine.Engine[*ataxx.Position]
	position *ataxx.Position

	out io.Writer
}

// NewClient creates a new UAI session which writes its replies to out.
func NewClient(config engine.Config, out io.Writer) *Client {
	client := &Client{out: out}
	client.setConfig(config)
	client.newGame()
	return client
}

func (client *Client) setConfig(config engine.Config) {
	client.engine = engine.New[*ataxx.Position](config)
	client.config = client.engine.Config()
}

func (client *Client) newGame() {
	client.position, _ = ataxx.New(ataxx.StartFEN)
}

// Run reads commands from in until it is exhausted or a quit command is
// received. Malformed commands are logged and ignored.
func (client *Client) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		logrus.Tracef("uai> %s", line)

		var err error
		switch cmd {
		case "uai":
			client.identify()
		case "isready":
			client.reply("readyok")
		case "uainewgame":
			client.newGame()
		case "setoption":
			err = client.setOption(args)
		case "position":
			err = client.setPosition(args)
		case "go":
			err = client.think()
		case "d":
			client.reply("%s", client.position)
		case "quit":
			return nil
		default:
			logrus.Warnf("uai: unknown command %q", cmd)
		}

		if err != nil {
			logrus.Errorf("uai: %s: %v", cmd, err)
		}
	}

	return scanner.Err()
}

func (client *Client) reply(format string, a ...any) {
	fmt.Fprintf(client.out, format+"\n", a...)
}

func (client *Client) identify() {
	client.reply("id name %s", Name)
	client.reply("id author %s", Author)
	client.reply(
		"option name Depth type spin default %d min %d max %d",
		engine.DefaultDepth, MinDepth, MaxDepth,
	)
	client.reply("uaiok")
}

// setOption handles "setoption name <name> value <value>".
func (client *Client) setOption(args []string) error {
	if len(args) != 4 || args[0] != "name" || args[2] != "value" {
		return fmt.Errorf("malformed option %q", strings.Join(args, " "))
	}

	switch name, value := args[1], args[3]; strings.ToLower(name) {
	case "depth":
		depth, err := strconv.Atoi(value)
		if err != nil {
			return err
		}

		if depth < MinDepth || depth > MaxDepth {
			return fmt.Errorf("depth %d out of range [%d, %d]", depth, MinDepth, MaxDepth)
		}

		config := client.config
		config.Depth = depth
		client.setConfig(config)
		return nil

	default:
		return fmt.Errorf("unknown option %q", name)
	}
}

// setPosition handles "position startpos|fen <fen> [moves <moves>...]".
// The current position is left untouched if any part is invalid.
func (client *Client) setPosition(args []string) error {
	fen, moves, _ := strings.Cut(strings.Join(args, " "), "moves")

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fmt.Errorf("missing position")
	}

	var position *ataxx.Position
	var err error

	switch fields[0] {
	case "startpos":
		position, err = ataxx.New(ataxx.StartFEN)
	case "fen":
		position, err = ataxx.New(strings.Join(fields[1:], " "))
	default:
		err = fmt.Errorf("unknown position type %q", fields[0])
	}

	if err != nil {
		return err
	}

	for _, text := range strings.Fields(moves) {
		move, err := position.ParseMove(text)
		if err != nil {
			return err
		}

		position.MakeMove(move)
	}

	client.position = position
	return nil
}

// think handles "go". Time controls are accepted but ignored since the
// search depth is fixed.
func (client *Client) think() error {
	stm := client.position.SideToMove()

	result, err := client.engine.Think(client.position, stm)
	if err != nil {
		// a move has to be sent regardless, so fall back to the first
		// legal one if there is any
		if moves := engine.Enumerate(client.position, stm); len(moves) > 0 {
			result.Move = moves[0]
		}

		err = fmt.Errorf("fen %s: %w", client.position.FEN(), err)
	} else {
		client.reply(
			"info depth %d nodes %d score cp %d",
			client.config.Depth, result.Nodes, result.Score,
		)
	}

	client.reply("bestmove %s", result.Move.UAI())
	return err
}
