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

	"github.com/Depado/bfchroma"
	chroma_html "github.com/alecthomas/chroma/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	blackfriday "github.com/russross/blackfriday/v2"
)

// Content we do not generate ourselves (markdown from the config,
// unescaped case data) is passed through bluemonday to restrict the
// allowed tags.
var (
	bm_policy = NewBlueMondayPolicy()
)

func NewBlueMondayPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowStandardURLs()

	// Required for syntax highlighting and bootstrap styling.
	p.AllowAttrs("class").OnElements("span")
	p.AllowAttrs("class").OnElements("div")
	p.AllowAttrs("class").OnElements("table")
	p.AllowAttrs("class").OnElements("p")

	// Feather icons.
	p.AllowAttrs("data-feather").OnElements("span")

	return p
}

func SanitizeHTML(in string) string {
	return bm_policy.Sanitize(in)
}

// RenderMarkdown converts markdown to sanitized html. Code blocks are
// highlighted with chroma.
func RenderMarkdown(in string) string {
	output := blackfriday.Run(
		[]byte(in),
		blackfriday.WithRenderer(bfchroma.NewRenderer(
			bfchroma.ChromaOptions(
				chroma_html.ClassPrefix("chroma"),
				chroma_html.WithClasses(true),
				chroma_html.WithLineNumbers(true)),
			bfchroma.Style("github"),
		)))

	// Add classes to various tags
	output_string := strings.ReplaceAll(string(output),
		"<table>", "<table class=\"table table-striped\">")

	return bm_policy.Sanitize(output_string)
}
