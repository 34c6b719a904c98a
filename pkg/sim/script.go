// Copyright Genomesim Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package sim drives genome instances through scripted or randomly generated
// operation sequences, gathers summary statistics, and checks that the two
// backing representations remain observably equivalent.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/genomesim/go-transposon/pkg/genome"
)

// OpKind distinguishes the three operations a script can apply to a genome.
type OpKind uint8

const (
	// OpInsert inserts a fresh transposable element (Pos, Length).
	OpInsert OpKind = iota
	// OpCopy copies an existing transposable element (TE, Offset).
	OpCopy
	// OpDisable disables an existing transposable element (TE).
	OpDisable
)

// Op is a single scripted operation.  Which argument fields are meaningful
// depends on the kind.
type Op struct {
	Kind   OpKind
	Pos    uint
	Length uint
	TE     genome.TEID
	Offset int
}

func (o Op) String() string {
	switch o.Kind {
	case OpInsert:
		return fmt.Sprintf("insert %d %d", o.Pos, o.Length)
	case OpCopy:
		return fmt.Sprintf("copy %d %d", o.TE, o.Offset)
	case OpDisable:
		return fmt.Sprintf("disable %d", o.TE)
	}
	//
	return fmt.Sprintf("Op(%d)", uint8(o.Kind))
}

// Script is a replayable simulation: an initial genome size followed by an
// ordered sequence of operations.
type Script struct {
	Size uint
	Ops  []Op
}

// ParseScript reads the textual script format: one directive per line, with
// blank lines and "#" comments skipped.  The first directive must be
// "genome N"; thereafter "insert POS LEN", "copy TE OFFSET" and "disable TE"
// are accepted.
func ParseScript(r io.Reader) (Script, error) {
	var (
		script  Script
		scanner = bufio.NewScanner(r)
		sized   = false
		lineno  = 0
	)
	//
	for scanner.Scan() {
		lineno++
		//
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		//
		fields := strings.Fields(line)
		//
		if !sized {
			if fields[0] != "genome" || len(fields) != 2 {
				return script, fmt.Errorf("line %d: expected \"genome N\", got %q", lineno, line)
			}
			//
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return script, fmt.Errorf("line %d: malformed genome size %q", lineno, fields[1])
			}
			//
			script.Size = uint(n)
			sized = true
			//
			continue
		}
		//
		op, err := parseOp(fields)
		if err != nil {
			return script, fmt.Errorf("line %d: %w", lineno, err)
		}
		//
		script.Ops = append(script.Ops, op)
	}
	//
	if err := scanner.Err(); err != nil {
		return script, err
	} else if !sized {
		return script, fmt.Errorf("missing \"genome N\" directive")
	}
	//
	return script, nil
}

// WriteTo renders this script in the format accepted by ParseScript.
func (s Script) WriteTo(w io.Writer) (int64, error) {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "genome %d\n", s.Size)
	//
	for _, op := range s.Ops {
		fmt.Fprintf(&builder, "%s\n", op)
	}
	//
	n, err := io.WriteString(w, builder.String())
	//
	return int64(n), err
}

func parseOp(fields []string) (Op, error) {
	var op Op
	//
	switch fields[0] {
	case "insert":
		if len(fields) != 3 {
			return op, fmt.Errorf("expected \"insert POS LEN\"")
		}
		//
		pos, err1 := strconv.ParseUint(fields[1], 10, 64)
		length, err2 := strconv.ParseUint(fields[2], 10, 64)
		//
		if err1 != nil || err2 != nil {
			return op, fmt.Errorf("malformed insert arguments %v", fields[1:])
		}
		//
		return Op{Kind: OpInsert, Pos: uint(pos), Length: uint(length)}, nil
	case "copy":
		if len(fields) != 3 {
			return op, fmt.Errorf("expected \"copy TE OFFSET\"")
		}
		//
		te, err1 := strconv.ParseUint(fields[1], 10, 64)
		offset, err2 := strconv.Atoi(fields[2])
		//
		if err1 != nil || err2 != nil {
			return op, fmt.Errorf("malformed copy arguments %v", fields[1:])
		}
		//
		return Op{Kind: OpCopy, TE: genome.TEID(te), Offset: offset}, nil
	case "disable":
		if len(fields) != 2 {
			return op, fmt.Errorf("expected \"disable TE\"")
		}
		//
		te, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return op, fmt.Errorf("malformed disable argument %q", fields[1])
		}
		//
		return Op{Kind: OpDisable, TE: genome.TEID(te)}, nil
	}
	//
	return op, fmt.Errorf("unknown directive %q", fields[0])
}
