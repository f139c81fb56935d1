// Copyright 2026 go-sortkit Authors
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

// Command sortbench times every sortkit algorithm against a shared
// shuffled input and prints the elapsed wall-clock time per
// algorithm.
//
// Usage:
//
//	sortbench --size 100000 --runs 3
//	sortbench --algorithms quick,merge,radix --seed 42
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/sortkit/go-sortkit/sortkit"
)

var (
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Usage: "number of integers to sort",
		Value: 10000,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "shuffle seed (0 picks one from the clock)",
		Value: 0,
	}
	runsFlag = cli.IntFlag{
		Name:  "runs",
		Usage: "repetitions per algorithm; the minimum time is reported",
		Value: 1,
	}
	algorithmsFlag = cli.StringFlag{
		Name:  "algorithms",
		Usage: "comma-separated subset to run (default: all)",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "sortbench"
	app.Usage = "benchmark the sortkit sorting algorithms against a shared shuffled input"
	app.Flags = []cli.Flag{sizeFlag, seedFlag, runsFlag, algorithmsFlag}
	app.Action = benchmark

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func benchmark(c *cli.Context) error {
	size := c.GlobalInt(sizeFlag.Name)
	if size < 0 {
		return fmt.Errorf("size must be non-negative, got %d", size)
	}
	runs := c.GlobalInt(runsFlag.Name)
	if runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", runs)
	}
	seed := c.GlobalInt64(seedFlag.Name)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	algos, err := selectAlgorithms(c.GlobalString(algorithmsFlag.Name))
	if err != nil {
		return err
	}

	fmt.Printf("sorting %s integers (seed %d, %d run(s) per algorithm)\n\n",
		humanize.Comma(int64(size)), seed, runs)

	input := shuffledInput(size, seed)
	failed := false
	for _, a := range algos {
		res := run(a, input, runs)
		name := color.CyanString("%-8s", a.String())
		if res.err != nil {
			failed = true
			fmt.Printf("%s %s\n", name, color.RedString("error: %v", res.err))
			continue
		}
		fmt.Printf("%s %12v\n", name, res.elapsed)
	}
	if failed {
		return fmt.Errorf("one or more algorithms failed")
	}
	return nil
}

// selectAlgorithms parses the --algorithms flag; an empty value means
// all algorithms in declaration order.
func selectAlgorithms(spec string) ([]sortkit.Algorithm, error) {
	if spec == "" {
		return sortkit.Algorithms(), nil
	}
	var algos []sortkit.Algorithm
	for _, name := range strings.Split(spec, ",") {
		a, err := sortkit.ParseAlgorithm(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		algos = append(algos, a)
	}
	return algos, nil
}
