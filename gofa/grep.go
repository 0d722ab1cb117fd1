package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mfroeh/gofa/regex"
)

type grepCmd struct {
	PatternFlags
	Paths []string `arg:"" optional:"" name:"path" help:"Paths to search" type:"path"`
}

func (c *grepCmd) Run(ctx *kong.Context) error {
	re, err := c.compile()
	if err != nil {
		return err
	}

	if len(c.Paths) == 0 {
		c.Paths = []string{"."}
	}

	for _, path := range c.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if info.IsDir() {
			err = recursivelySearchDir(ctx.Stdout, path, re)
		} else {
			err = searchFile(ctx.Stdout, path, re)
		}

		if err != nil {
			return err
		}
	}
	return nil
}

func recursivelySearchDir(w io.Writer, path string, re regex.Recognizer) error {
	return filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// symlinks may be broken, in that case, just ignore them
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}

		// symlink may resolve to a directory, in which case we just ignore it
		if info.IsDir() {
			return nil
		}

		return searchFile(w, path, re)
	})
}

func searchFile(w io.Writer, path string, re regex.Recognizer) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	printFileHeader := false
	for i, line := range strings.Split(string(content), "\n") {
		matches := re.FindAll(line, -1)
		if len(matches) == 0 {
			continue
		}

		if !printFileHeader {
			printFileHeader = true
			fmt.Fprintln(w, path, ":")
		}
		fmt.Fprintf(w, "%d:%s\n", i+1, highlight(line, matches))
	}

	if printFileHeader {
		fmt.Fprintln(w)
	}

	return nil
}

func highlight(line string, matches []regex.Match) string {
	out := strings.Builder{}
	lastMatchEnd := 0
	for _, match := range matches {
		out.WriteString(line[lastMatchEnd:match.Offset])
		matchColor.Fprint(&out, match.Str)
		lastMatchEnd = match.Offset + len(match.Str)
	}
	out.WriteString(line[lastMatchEnd:])
	return out.String()
}
