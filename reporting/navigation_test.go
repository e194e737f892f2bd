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
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"www.velocidex.com/golang/artifact_report/vtesting"
)

type NavigationTestSuite struct {
	ReportingTestSuite

	nav *Navigation
}

func (self *NavigationTestSuite) SetupTest() {
	self.ReportingTestSuite.SetupTest()
	self.writeScenario()

	categories, err := CollectFragments(self.root, ".fraghtml")
	require.NoError(self.T(), err)

	self.nav = BuildNavigation(categories)
}

func (self *NavigationTestSuite) TestStructure() {
	assert.Equal(self.T(),
		[]string{SAVED_REPORTS_HEADER, "Accounts", "Calendar"},
		self.nav.Headers())

	labels := []string{}
	hrefs := []string{}
	for _, link := range self.nav.Links() {
		labels = append(labels, link.Label)
		hrefs = append(hrefs, link.Href)
	}
	assert.Equal(self.T(), []string{
		REPORT_HOME_LABEL, "Account Auth", "Account Profile", "Events"}, labels)
	assert.Equal(self.T(), []string{
		"index.html", "Account Auth.html", "Account Profile.html",
		"Events.html"}, hrefs)

	// Every header is followed by its own links, never nested.
	types := []NavEntryType{}
	for _, entry := range self.nav.Entries {
		types = append(types, entry.Type)
	}
	assert.Equal(self.T(), []NavEntryType{
		NavHeader, NavLink,
		NavHeader, NavLink, NavLink,
		NavHeader, NavLink}, types)

	_, active := self.nav.Active()
	assert.False(self.T(), active)
}

func (self *NavigationTestSuite) TestIcons() {
	links := self.nav.Links()
	require.Equal(self.T(), 4, len(links))

	assert.Equal(self.T(), "home", links[0].Icon)
	assert.Equal(self.T(), "key", links[1].Icon)
	assert.Equal(self.T(), "user", links[2].Icon)
	assert.Equal(self.T(), "calendar", links[3].Icon)
}

func (self *NavigationTestSuite) TestVariantFor() {
	variant, found := self.nav.VariantFor("Account Profile.html")
	require.True(self.T(), found)

	count := 0
	for _, link := range variant.Links() {
		if link.IsActive {
			count++
			assert.Equal(self.T(), "Account Profile", link.Label)
		}
	}
	assert.Equal(self.T(), 1, count)

	// The shared model is not modified.
	_, active := self.nav.Active()
	assert.False(self.T(), active)

	// A second variant does not leak the first selection.
	other, found := variant.VariantFor("Events.html")
	require.True(self.T(), found)
	entry, _ := other.Active()
	assert.Equal(self.T(), "Events", entry.Label)

	entry, _ = variant.Active()
	assert.Equal(self.T(), "Account Profile", entry.Label)
}

func (self *NavigationTestSuite) TestVariantForIndex() {
	variant, found := self.nav.VariantFor("index.html")
	require.True(self.T(), found)

	entry, pres := variant.Active()
	require.True(self.T(), pres)
	assert.Equal(self.T(), REPORT_HOME_LABEL, entry.Label)
}

func (self *NavigationTestSuite) TestMiss() {
	variant, found := self.nav.VariantFor("Missing.html")
	assert.False(self.T(), found)
	_, active := variant.Active()
	assert.False(self.T(), active)

	// Headers never match even if the label looks like a file.
	_, found = self.nav.VariantFor(SAVED_REPORTS_HEADER)
	assert.False(self.T(), found)

	variant = self.nav.ActiveVariant(self.config_obj, "Missing.html")
	_, active = variant.Active()
	assert.False(self.T(), active)
	assert.Equal(self.T(), len(self.nav.Entries), len(variant.Entries))

	vtesting.MemoryLogsContain(self.T(), "could not find Missing.html")
}

func (self *NavigationTestSuite) TestRender() {
	variant, _ := self.nav.VariantFor("Events.html")
	html, err := variant.Render()
	require.NoError(self.T(), err)

	assert.Contains(self.T(), html, SAVED_REPORTS_HEADER)
	assert.Contains(self.T(), html, `href="Account Auth.html"`)
	assert.Contains(self.T(), html, `data-feather="calendar"`)
	assert.Contains(self.T(), html, "feather.replace()")

	// The icon script is optional, a page must not fail without it.
	assert.Contains(self.T(), html, "if (window.feather)")

	assert.Equal(self.T(), 1, strings.Count(html, "nav-link active"))
	active_idx := strings.Index(html, "nav-link active")
	events_idx := strings.Index(html, `href="Events.html"`)
	assert.True(self.T(), active_idx < events_idx)
	assert.True(self.T(), events_idx-active_idx < 40)

	// Headers appear in order.
	assert.True(self.T(),
		strings.Index(html, "Accounts") < strings.Index(html, "Calendar"))
}

func (self *NavigationTestSuite) TestRenderGolden() {
	variant, found := self.nav.VariantFor("Events.html")
	require.True(self.T(), found)

	html, err := variant.Render()
	require.NoError(self.T(), err)

	g := goldie.New(self.T(),
		goldie.WithFixtureDir("fixtures"),
		goldie.WithNameSuffix(".golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
	g.Assert(self.T(), "navigation_events", []byte(html))
}

func (self *NavigationTestSuite) TestRenderEscapesLabels() {
	categories := NewCategories()
	categories.Add(newFragment(self.path("Q&A/<Chats>.fraghtml"), ".fraghtml"))

	html, err := BuildNavigation(categories).Render()
	require.NoError(self.T(), err)

	assert.Contains(self.T(), html, "Q&amp;A")
	assert.Contains(self.T(), html, "&lt;Chats&gt;")
	assert.NotContains(self.T(), html, "<Chats>")
}

func (self *NavigationTestSuite) TestEmpty() {
	nav := BuildNavigation(NewCategories())
	assert.Equal(self.T(), []string{SAVED_REPORTS_HEADER}, nav.Headers())
	assert.Equal(self.T(), 1, len(nav.Links()))

	nav = BuildNavigation(nil)
	assert.Equal(self.T(), 2, len(nav.Entries))
}

func TestNavigation(t *testing.T) {
	suite.Run(t, &NavigationTestSuite{})
}
