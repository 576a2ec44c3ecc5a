package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/conformity/conformity"
	"github.com/katalvlaran/conformity/core"
	"github.com/katalvlaran/conformity/gio"
)

// stdio marks stdin or stdout in place of a path.
const stdio = "-"

// documentFormat returns the explicit format if set, else the one implied by path.
func documentFormat(explicit, path string) (gio.Format, error) {
	if explicit != "" {
		return gio.ParseFormat(explicit)
	}
	if path == stdio {
		return gio.FormatJSON, nil
	}

	return gio.FormatFromPath(path)
}

func loadGraph(in io.Reader, path, format string) (*core.Graph, error) {
	f, err := documentFormat(format, path)
	if err != nil {
		return nil, err
	}
	r := in
	if path != stdio {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}
	g, err := gio.ReadGraph(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func loadHierarchies(path string) (conformity.Hierarchies, error) {
	if path == "" {
		return nil, nil
	}
	f, err := gio.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	h, err := gio.ReadHierarchies(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return h, nil
}

// writeTo calls write with stdout for "" or "-", else with a created file.
func writeTo(stdout io.Writer, path string, write func(io.Writer, gio.Format) error) error {
	if path == "" || path == stdio {
		return write(stdout, gio.FormatJSON)
	}
	f, err := gio.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(file, f); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}
