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
	"bytes"

	"github.com/pkg/errors"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/logging"
)

const (
	SAVED_REPORTS_HEADER = "Saved Reports"
	REPORT_HOME_LABEL    = "Report Home"
)

type NavEntryType int

const (
	NavHeader NavEntryType = iota
	NavLink
)

type NavEntry struct {
	Type     NavEntryType
	Label    string
	Href     string
	Icon     string
	IsActive bool
}

func (self *NavEntry) IsHeader() bool {
	return self.Type == NavHeader
}

// Navigation is the flat sidebar model: category headers each
// followed by their artifact links. It is only ever one level deep.
type Navigation struct {
	Entries []*NavEntry
}

// BuildNavigation always starts with the link to the index page and
// then follows the category order exactly.
func BuildNavigation(categories *Categories) *Navigation {
	result := &Navigation{
		Entries: []*NavEntry{
			{Type: NavHeader, Label: SAVED_REPORTS_HEADER},
			{Type: NavLink, Label: REPORT_HOME_LABEL,
				Href: constants.INDEX_PAGE, Icon: constants.HOME_ICON},
		},
	}

	if categories == nil {
		return result
	}

	for _, category := range categories.Items() {
		result.Entries = append(result.Entries, &NavEntry{
			Type:  NavHeader,
			Label: category.Name,
		})

		for _, fragment := range category.Fragments {
			result.Entries = append(result.Entries, &NavEntry{
				Type:  NavLink,
				Label: fragment.Name,
				Href:  fragment.Filename,
				Icon:  ResolveIcon(category.Name, fragment.Name),
			})
		}
	}

	return result
}

func (self *Navigation) Copy() *Navigation {
	result := &Navigation{
		Entries: make([]*NavEntry, 0, len(self.Entries)),
	}
	for _, entry := range self.Entries {
		copied := *entry
		result.Entries = append(result.Entries, &copied)
	}
	return result
}

func (self *Navigation) Links() []*NavEntry {
	result := []*NavEntry{}
	for _, entry := range self.Entries {
		if entry.Type == NavLink {
			result = append(result, entry)
		}
	}
	return result
}

func (self *Navigation) Headers() []string {
	result := []string{}
	for _, entry := range self.Entries {
		if entry.Type == NavHeader {
			result = append(result, entry.Label)
		}
	}
	return result
}

func (self *Navigation) Active() (*NavEntry, bool) {
	for _, entry := range self.Entries {
		if entry.Type == NavLink && entry.IsActive {
			return entry, true
		}
	}
	return nil, false
}

// VariantFor returns a copy of the navigation with the link to
// filename marked active. The second return is false when no such
// link exists, in which case nothing is marked.
func (self *Navigation) VariantFor(filename string) (*Navigation, bool) {
	result := self.Copy()
	for _, entry := range result.Entries {
		entry.IsActive = false
	}

	for _, entry := range result.Entries {
		if entry.Type == NavLink && entry.Href == filename {
			entry.IsActive = true
			return result, true
		}
	}
	return result, false
}

// ActiveVariant is VariantFor which reports a miss. A miss is not an
// error - the page is still rendered, just without a highlighted tab.
func (self *Navigation) ActiveVariant(
	config_obj *config.Config, filename string) *Navigation {
	result, found := self.VariantFor(filename)
	if !found {
		logger := logging.GetLogger(config_obj, &logging.ReportComponent)
		logger.Warn("Navigation: could not find %v in the sidebar, "+
			"no tab will be marked active", filename)
		navActiveMisses.Inc()
	}
	return result
}

// Render produces the sidebar markup followed by the script which
// wires the sidebar behaviour.
func (self *Navigation) Render() (string, error) {
	buffer := &bytes.Buffer{}
	err := templates.ExecuteTemplate(buffer, "navigation", self)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return buffer.String(), nil
}
