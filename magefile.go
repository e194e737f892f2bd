//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	name = "artifact_report"
)

// Builds the release binary for the current platform.
func Build() error {
	return build(map[string]string{}, name)
}

// Cross compile the windows binary. The report assembler does not
// need cgo.
func Windows() error {
	return build(map[string]string{
		"GOOS":        "windows",
		"GOARCH":      "amd64",
		"CGO_ENABLED": "0",
	}, name+".exe")
}

func Darwin() error {
	return build(map[string]string{
		"GOOS":        "darwin",
		"GOARCH":      "arm64",
		"CGO_ENABLED": "0",
	}, name+"-darwin")
}

func Test() error {
	return sh.RunV(mg.GoCmd(), "test", "./...")
}

func Clean() error {
	return sh.Rm("output")
}

func build(env map[string]string, output string) error {
	if err := os.Mkdir("output", 0700); err != nil && !os.IsExist(err) {
		return fmt.Errorf("failed to create output: %v", err)
	}

	return sh.RunWith(
		env,
		mg.GoCmd(), "build",
		"-o", filepath.Join("output", output),
		"-ldflags=-s -w "+flags(),
		"./bin/")
}

func flags() string {
	timestamp := time.Now().Format(time.RFC3339)
	return fmt.Sprintf(`-X "www.velocidex.com/golang/artifact_report/config.build_time=%s" -X "www.velocidex.com/golang/artifact_report/config.commit_hash=%s"`, timestamp, hash())
}

// hash returns the git hash for the current repo or "" if none.
func hash() string {
	hash, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return hash
}
