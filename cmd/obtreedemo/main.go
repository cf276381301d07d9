// Command obtreedemo drives a Tree[string] from a script of line-based
// commands. Mutating commands print nothing; get, len and stats print
// their result on stdout. It exists to exercise the library end to end outside of tests, in the
// same spirit as the teacher codebase's cmd/minidb entry point.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	obtree "github.com/gvozdvmozgu/ordered-btree"
)

func main() {
	var (
		bp      = pflag.IntP("bp", "b", 8, "branching factor")
		verbose = pflag.BoolP("verbose", "v", false, "log rebalance events to stderr")
		script  = pflag.StringP("script", "s", "", "path to a command script; defaults to stdin")
	)
	pflag.Parse()

	level := zerolog.Disabled
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	metrics := obtree.NewMetrics("obtreedemo")
	tree := obtree.New[string](obtree.Config{BP: *bp, Logger: &logger, Metrics: metrics})

	in := os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			fmt.Fprintln(os.Stderr, "obtreedemo:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	handles := map[string]obtree.Handle[string]{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runCommand(tree, handles, line); err != nil {
			fmt.Fprintln(os.Stderr, "obtreedemo:", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "obtreedemo:", err)
		os.Exit(1)
	}
}

// runCommand executes one line of the demo's tiny command language:
//
//	push_back <tag> <value>
//	push_front <tag> <value>
//	insert_before <tag> <value> <ref-tag>
//	insert_after <tag> <value> <ref-tag>
//	remove <ref-tag>
//	get <index>
//	set <ref-tag> <value>
//	len
//	stats
func runCommand(tree *obtree.Tree[string], handles map[string]obtree.Handle[string], line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "push_back":
		if len(args) != 2 {
			return fmt.Errorf("push_back <tag> <value>")
		}
		handles[args[0]] = tree.PushBack(args[1])
	case "push_front":
		if len(args) != 2 {
			return fmt.Errorf("push_front <tag> <value>")
		}
		handles[args[0]] = tree.PushFront(args[1])
	case "insert_before":
		if len(args) != 3 {
			return fmt.Errorf("insert_before <tag> <value> <ref-tag>")
		}
		ref, ok := handles[args[2]]
		if !ok {
			return fmt.Errorf("unknown tag %q", args[2])
		}
		handles[args[0]] = tree.InsertBefore(args[1], ref)
	case "insert_after":
		if len(args) != 3 {
			return fmt.Errorf("insert_after <tag> <value> <ref-tag>")
		}
		ref, ok := handles[args[2]]
		if !ok {
			return fmt.Errorf("unknown tag %q", args[2])
		}
		handles[args[0]] = tree.InsertAfter(args[1], ref)
	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("remove <ref-tag>")
		}
		ref, ok := handles[args[0]]
		if !ok {
			return fmt.Errorf("unknown tag %q", args[0])
		}
		tree.Remove(ref)
		delete(handles, args[0])
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get <index>")
		}
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		h := tree.GetID(idx)
		fmt.Println(tree.Value(h))
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("set <ref-tag> <value>")
		}
		ref, ok := handles[args[0]]
		if !ok {
			return fmt.Errorf("unknown tag %q", args[0])
		}
		*tree.ValueMut(ref) = args[1]
	case "len":
		fmt.Println(tree.Len())
	case "stats":
		if err := tree.Check(); err != nil {
			fmt.Println("INVALID:", err)
		} else {
			fmt.Println("OK", tree.Len(), "elements")
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
