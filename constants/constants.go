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
package constants

var (
	VERSION = "0.3.0"
	NAME    = "artifact_report"
)

const (
	// Extension of the intermediate files written by the artifact
	// parsers. These are consumed (and removed) when the report is
	// assembled.
	FRAGMENT_EXTENSION = ".temphtml"
	HTML_EXTENSION     = ".html"

	INDEX_PAGE = "index.html"

	// Shared static assets live here. This directory is never
	// treated as a category even though it may contain html.
	ELEMENTS_DIR = "_elements"

	// Auxiliary logs written by the extraction run. They are
	// embedded into the index page.
	SCRIPT_LOGS_CATEGORY  = "Script Logs"
	DEVICE_INFO_LOG       = "DeviceInfo.html"
	SCREEN_OUTPUT_LOG     = "Screen Output.html"
	PROCESSED_FILES_LOG   = "ProcessedFilesLog.html"
	VENDOR_UI_TOOLKIT_DIR = "MDB-Free_4.13.0"

	// Slot tokens recognized in page shells.
	NAV_PLACEHOLDER   = "<!--__INSERT-NAV-BAR-DATA-HERE__-->"
	TITLE_PLACEHOLDER = "<!--__INSERT-PAGE-TITLE-HERE__-->"
	BRAND_PLACEHOLDER = "<!--__INSERT-BRAND-HERE__-->"
	BODY_PLACEHOLDER  = "<!--__INSERT-PAGE-BODY-HERE__-->"

	DEFAULT_ICON = "alert-triangle"
	HOME_ICON    = "home"
)
