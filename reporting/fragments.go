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
package reporting

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"www.velocidex.com/golang/artifact_report/constants"
)

// A Fragment is the intermediate html written by an artifact
// parser. Its location is <root>/<category>/<name><ext>.
type Fragment struct {
	Path     string
	Category string
	Name     string

	// The name of the final page (relative to the report root).
	Filename string
}

func (self *Fragment) ReadBody() (string, error) {
	data, err := os.ReadFile(self.Path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(data), nil
}

type Category struct {
	Name      string
	Fragments []*Fragment
}

// Categories keeps categories in the order they were first seen.
type Categories struct {
	order []*Category
	index map[string]*Category
}

func NewCategories() *Categories {
	return &Categories{
		index: make(map[string]*Category),
	}
}

// Add appends the fragment to its category, registering the category
// at the end if this is the first time we see it.
func (self *Categories) Add(fragment *Fragment) {
	category, pres := self.index[fragment.Category]
	if !pres {
		category = &Category{Name: fragment.Category}
		self.index[fragment.Category] = category
		self.order = append(self.order, category)
	}
	category.Fragments = append(category.Fragments, fragment)
}

func (self *Categories) Len() int {
	return len(self.order)
}

func (self *Categories) Names() []string {
	result := make([]string, 0, len(self.order))
	for _, c := range self.order {
		result = append(result, c.Name)
	}
	return result
}

func (self *Categories) Get(name string) (*Category, bool) {
	category, pres := self.index[name]
	return category, pres
}

func (self *Categories) Items() []*Category {
	return self.order
}

// All fragments in category order.
func (self *Categories) Fragments() []*Fragment {
	result := []*Fragment{}
	for _, c := range self.order {
		result = append(result, c.Fragments...)
	}
	return result
}

func newFragment(path, ext string) *Fragment {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, ext)
	return &Fragment{
		Path:     path,
		Category: filepath.Base(filepath.Dir(path)),
		Name:     name,
		Filename: name + constants.HTML_EXTENSION,
	}
}

// CollectFragments finds all the fragments under root. The tree must
// be complete - parsers may finish in any order so we never rely on
// timestamps. Instead candidates are sorted by directory and then by
// file name which makes the result reproducible.
//
// The output directory is commonly a symlink (e.g. latest -> a dated
// run) so it is resolved before walking.
func CollectFragments(root, ext string) (*Categories, error) {
	candidates := []string{}

	root, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	err = filepath.WalkDir(root, func(
		path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root itself is unreadable - nothing we can do.
			if path == root {
				return err
			}

			// Skip unreadable sub directories.
			return nil
		}

		if d.IsDir() {
			if path != root && d.Name() == constants.ELEMENTS_DIR {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ext) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Slice(candidates, func(i, j int) bool {
		dir_i, dir_j := filepath.Dir(candidates[i]), filepath.Dir(candidates[j])
		if dir_i != dir_j {
			return dir_i < dir_j
		}
		return filepath.Base(candidates[i]) < filepath.Base(candidates[j])
	})

	result := NewCategories()
	for _, path := range candidates {
		fragment := newFragment(path, ext)
		if fragment.Name == "" || fragment.Category == constants.ELEMENTS_DIR {
			continue
		}
		result.Add(fragment)
	}

	return result, nil
}
