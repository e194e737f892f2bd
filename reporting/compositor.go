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
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/logging"
	"www.velocidex.com/golang/artifact_report/utils"
)

type ReportPage struct {
	Filename string
	Html     string

	// Recoverable problems found while composing the page. The page
	// is still usable.
	Errors []error
}

type PageCompositor struct {
	config_obj *config.Config
	root       string
	shell      string
}

func NewPageCompositor(
	config_obj *config.Config, root string) (*PageCompositor, error) {
	shell, err := GetPageShell(config_obj)
	if err != nil {
		return nil, err
	}

	// Fragment paths are collected under the resolved root.
	resolved, err := filepath.EvalSymlinks(root)
	if err == nil {
		root = resolved
	}

	return &PageCompositor{
		config_obj: config_obj,
		root:       root,
		shell:      shell,
	}, nil
}

// Compose builds the final page for the fragment. Only an unreadable
// fragment is an error, a shell without a navigation slot is logged
// and the page is emitted without navigation.
func (self *PageCompositor) Compose(
	fragment *Fragment, nav *Navigation) (*ReportPage, error) {
	body, err := fragment.ReadBody()
	if err != nil {
		return nil, err
	}

	nav_html, err := nav.Render()
	if err != nil {
		return nil, err
	}

	var shell string
	slots := map[string]string{
		constants.NAV_PLACEHOLDER: nav_html,
	}

	// Fragments which carry their own shell only need the navigation.
	if strings.Contains(body, constants.NAV_PLACEHOLDER) {
		shell = body

	} else {
		shell = self.shell
		slots[constants.TITLE_PLACEHOLDER] = escapeHTML(fragment.Name)
		slots[constants.BRAND_PLACEHOLDER] = escapeHTML(self.config_obj.Report.Brand)
		slots[constants.BODY_PLACEHOLDER] = body
	}

	result := &ReportPage{Filename: fragment.Filename}
	result.Html, err = ComposeSlots(shell, slots)
	if err != nil {
		logger := logging.GetLogger(self.config_obj, &logging.ReportComponent)
		logger.Error("Error composing %v: %v", fragment.Path, err)
		templateErrors.Inc()
		result.Errors = append(result.Errors, err)
	}

	return result, nil
}

// Process composes the page, writes it into the report root and
// removes the fragment. Empty category directories are removed on a
// best effort basis.
func (self *PageCompositor) Process(
	fragment *Fragment, nav *Navigation) (*ReportPage, error) {
	page, err := self.Compose(fragment, nav)
	if err != nil {
		return nil, err
	}

	err = WritePage(self.root, page)
	if err != nil {
		return nil, err
	}
	pagesComposed.Inc()

	logger := logging.GetLogger(self.config_obj, &logging.ReportComponent)
	err = os.Remove(fragment.Path)
	if err != nil {
		// The page is written so the report is complete. A
		// leftover fragment is just clutter.
		logger.Error("Unable to remove fragment %v: %v", fragment.Path, err)
		page.Errors = append(page.Errors, err)
		return page, nil
	}

	dir := filepath.Dir(fragment.Path)
	if filepath.Clean(dir) != filepath.Clean(self.root) &&
		!utils.AdvisoryRemoveDir(dir) {
		logger.Debug("Category directory %v not removed", dir)
	}

	return page, nil
}

func WritePage(root string, page *ReportPage) error {
	err := os.WriteFile(filepath.Join(root, page.Filename),
		[]byte(page.Html), 0644)
	if err != nil {
		return errors.WithStack(err)
	}
	return nil
}
