package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-claude/pkg/version"
)

type VersionCmd struct{}

func (*VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintln(globals.out.w, string(version.JSON(execName())))
	return err
}
