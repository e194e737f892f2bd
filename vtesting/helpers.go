/*
Velociraptor - Dig Deeper
Copyright (C) 2019-2025 Rapid7 Inc.

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published
by the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
/* An internal package with test utilities.
 */

package vtesting

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func ReadFile(t *testing.T, filename string) []byte {
	result, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed reading file: %v", err)
	}
	return result
}

// WriteFile writes content to root/relative creating any parent
// directories.
func WriteFile(t *testing.T, root, relative, content string) string {
	path := filepath.Join(root, filepath.FromSlash(relative))
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		t.Fatalf("Failed creating directory: %v", err)
	}

	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed writing file: %v", err)
	}
	return path
}

func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ListTree returns all files and directories under root as sorted
// slash separated relative paths. Directories end with /
func ListTree(t *testing.T, root string) []string {
	result := []string{}
	err := filepath.WalkDir(root, func(
		path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		relative, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relative = filepath.ToSlash(relative)
		if d.IsDir() {
			relative += "/"
		}
		result = append(result, relative)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed listing %v: %v", root, err)
	}

	sort.Strings(result)
	return result
}

// Compares lists of strings regardless of order.
func CompareStrings(expected []string, watched []string) bool {
	if len(expected) != len(watched) {
		return false
	}

	seen := make(map[string]int)
	for _, item := range expected {
		seen[item]++
	}
	for _, item := range watched {
		seen[item]--
		if seen[item] < 0 {
			return false
		}
	}
	return true
}
