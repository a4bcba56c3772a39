// Copyright 2026 go-thsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/vmihailenco/msgpack/v5"
)

// Input formats accepted by --format.
const (
	formatText    = "text"
	formatMsgpack = "msgpack"
)

var errUnknownFormat = errors.New("unknown input format")

func addFormatFlag(f *pflag.FlagSet, format *string) {
	f.StringVar(format, "format", formatText, "Input format: text or msgpack")
}

// readInput decodes numbers from r. Text input is whitespace separated;
// msgpack input is a single array of numbers.
func readInput(r io.Reader, format string) ([]float64, error) {
	switch format {
	case formatText:
		return readText(r)
	case formatMsgpack:
		var x []float64
		if err := msgpack.NewDecoder(bufio.NewReader(r)).Decode(&x); err != nil {
			return nil, fmt.Errorf("decoding msgpack: %w", err)
		}
		return x, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", errUnknownFormat, format, formatText, formatMsgpack)
	}
}

func readText(r io.Reader) ([]float64, error) {
	var x []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(x)+1, err)
		}
		x = append(x, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text input: %w", err)
	}
	return x, nil
}

// readInputFile reads path, or standard input when path is "-".
func readInputFile(path, format string) ([]float64, error) {
	if path == "-" {
		return readInput(os.Stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	x, err := readInput(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}
