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
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/vtesting"
)

type CompositorTestSuite struct {
	ReportingTestSuite
}

func (self *CompositorTestSuite) collect() (*Categories, *Navigation) {
	categories, err := CollectFragments(self.root, ".fraghtml")
	require.NoError(self.T(), err)
	return categories, BuildNavigation(categories)
}

func (self *CompositorTestSuite) TestBareFragment() {
	self.writeScenario()
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	calendar, _ := categories.Get("Calendar")
	fragment := calendar.Fragments[0]

	page, err := compositor.Compose(fragment, nav.ActiveVariant(
		self.config_obj, fragment.Filename))
	require.NoError(self.T(), err)
	assert.Empty(self.T(), page.Errors)
	assert.Equal(self.T(), "Events.html", page.Filename)

	html := page.Html
	assert.Contains(self.T(), html, "<title>Events</title>")
	assert.Contains(self.T(), html, "<p>Calendar events</p>")
	assert.Contains(self.T(), html, self.config_obj.Report.Brand)
	assert.Contains(self.T(), html, `nav-link active" href="Events.html"`)

	// No slot tokens left behind.
	for _, token := range []string{
		constants.NAV_PLACEHOLDER, constants.TITLE_PLACEHOLDER,
		constants.BRAND_PLACEHOLDER, constants.BODY_PLACEHOLDER} {
		assert.NotContains(self.T(), html, token)
	}

	// Compose does not touch the disk.
	assert.True(self.T(), vtesting.FileExists(fragment.Path))
	assert.False(self.T(), vtesting.FileExists(self.path("Events.html")))
}

func (self *CompositorTestSuite) TestComposedPageGolden() {
	self.writeScenario()
	self.config_obj.Report.PageShellFile = "fixtures/page_shell.html"
	self.config_obj.Report.Brand = "Case 42 & Co"
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	calendar, _ := categories.Get("Calendar")
	fragment := calendar.Fragments[0]

	page, err := compositor.Compose(fragment, nav.ActiveVariant(
		self.config_obj, fragment.Filename))
	require.NoError(self.T(), err)
	assert.Empty(self.T(), page.Errors)

	g := goldie.New(self.T(),
		goldie.WithFixtureDir("fixtures"),
		goldie.WithNameSuffix(".golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
	g.Assert(self.T(), "compositor_events_page", []byte(page.Html))
}

func (self *CompositorTestSuite) TestSelfContainedFragment() {
	self.writeFragment("Chats/Messages.fraghtml",
		"<html><body><ul>"+constants.NAV_PLACEHOLDER+
			"</ul><p>chat</p></body></html>")
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	fragment := categories.Fragments()[0]
	page, err := compositor.Compose(fragment, nav.ActiveVariant(
		self.config_obj, fragment.Filename))
	require.NoError(self.T(), err)
	assert.Empty(self.T(), page.Errors)

	// The fragment's own document is used rather than the page shell.
	assert.True(self.T(), strings.HasPrefix(page.Html, "<html><body><ul>"))
	assert.True(self.T(), strings.HasSuffix(page.Html, "</ul><p>chat</p></body></html>"))
	assert.NotContains(self.T(), page.Html, "<!DOCTYPE html>")
	assert.Contains(self.T(), page.Html, `href="Messages.html"`)
	assert.NotContains(self.T(), page.Html, constants.NAV_PLACEHOLDER)
}

func (self *CompositorTestSuite) TestShellWithoutNavigationSlot() {
	shell_path := filepath.Join(self.T().TempDir(), "shell.html")
	require.NoError(self.T(), os.WriteFile(shell_path, []byte(
		"<title>"+constants.TITLE_PLACEHOLDER+"</title>"+
			"<main>"+constants.BODY_PLACEHOLDER+"</main>"), 0644))
	self.config_obj.Report.PageShellFile = shell_path

	self.writeScenario()
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	fragment := categories.Fragments()[0]
	page, err := compositor.Process(fragment, nav.ActiveVariant(
		self.config_obj, fragment.Filename))
	require.NoError(self.T(), err)

	// The page is still written, just without navigation.
	require.Equal(self.T(), 1, len(page.Errors))
	assert.True(self.T(), IsTemplateError(page.Errors[0]))
	assert.Equal(self.T(), 1, countTemplateErrors(page))

	html := string(vtesting.ReadFile(self.T(), self.path(fragment.Filename)))
	assert.Equal(self.T(),
		"<title>Account Auth</title><main><p>Auth tokens</p></main>", html)

	vtesting.MemoryLogsContain(self.T(), "Error composing .*Account Auth.fraghtml")
}

func (self *CompositorTestSuite) TestTitleIsEscaped() {
	self.writeFragment("Notes/A<b>.fraghtml", "<p>note</p>")
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	page, err := compositor.Compose(categories.Fragments()[0], nav)
	require.NoError(self.T(), err)
	assert.Contains(self.T(), page.Html, "<title>A&lt;b&gt;</title>")
}

func (self *CompositorTestSuite) TestProcessCleansUp() {
	self.writeScenario()
	self.writeFragment("Accounts/notes.txt", "keep me")
	categories, nav := self.collect()

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	for _, fragment := range categories.Fragments() {
		_, err := compositor.Process(fragment, nav.ActiveVariant(
			self.config_obj, fragment.Filename))
		require.NoError(self.T(), err)
	}

	assert.Equal(self.T(), []string{
		"Account Auth.html",
		"Account Profile.html",
		"Accounts/",
		"Accounts/notes.txt",
		"Events.html",
	}, vtesting.ListTree(self.T(), self.root))
}

func (self *CompositorTestSuite) TestFragmentAtRoot() {
	// A fragment directly in the root must never remove the root.
	fragment := newFragment(self.writeFragment("Stray.fraghtml", "<p/>"),
		".fraghtml")

	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	_, err = compositor.Process(fragment, BuildNavigation(nil))
	require.NoError(self.T(), err)

	assert.True(self.T(), vtesting.FileExists(self.root))
	assert.Equal(self.T(), []string{"Stray.html"},
		vtesting.ListTree(self.T(), self.root))
}

func (self *CompositorTestSuite) TestUnreadableFragment() {
	compositor, err := NewPageCompositor(self.config_obj, self.root)
	require.NoError(self.T(), err)

	fragment := newFragment(self.path("Gone/Missing.fraghtml"), ".fraghtml")
	_, err = compositor.Process(fragment, BuildNavigation(nil))
	assert.Error(self.T(), err)
	assert.False(self.T(), vtesting.FileExists(self.path("Missing.html")))
}

func (self *CompositorTestSuite) TestMissingShellFile() {
	self.config_obj.Report.PageShellFile = self.path("nope.html")
	_, err := NewPageCompositor(self.config_obj, self.root)
	assert.Error(self.T(), err)
}

func TestCompositor(t *testing.T) {
	suite.Run(t, &CompositorTestSuite{})
}
