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
	"fmt"
	"html"
	"os"
	"path/filepath"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/pkg/errors"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
	"www.velocidex.com/golang/artifact_report/logging"
)

const (
	EXTRACTION_LOCATION_LABEL = "Extraction location"
	EXTRACTION_TYPE_LABEL     = "Extraction type"
	REPORT_DIRECTORY_LABEL    = "Report directory"
	PROCESSING_TIME_LABEL     = "Processing time"
)

func escapeHTML(in string) string {
	return html.EscapeString(in)
}

// CaseMetadata describes the extraction run. It is immutable once
// created.
type CaseMetadata struct {
	fields *ordereddict.Dict
}

// NewCaseMetadata records the four required fields first, followed by
// any extra caller supplied fields in their original order. Extra
// fields can not replace the required ones.
func NewCaseMetadata(
	source, extraction_type, output_dir string,
	elapsed time.Duration, extra *ordereddict.Dict) *CaseMetadata {
	fields := ordereddict.NewDict().
		Set(EXTRACTION_LOCATION_LABEL, source).
		Set(EXTRACTION_TYPE_LABEL, extraction_type).
		Set(REPORT_DIRECTORY_LABEL, output_dir).
		Set(PROCESSING_TIME_LABEL, FormatElapsed(elapsed))

	if extra != nil {
		for _, key := range extra.Keys() {
			_, pres := fields.Get(key)
			if pres {
				continue
			}
			value, _ := extra.Get(key)
			fields.Set(key, fmt.Sprintf("%v", value))
		}
	}

	return &CaseMetadata{fields: fields}
}

func (self *CaseMetadata) Keys() []string {
	return self.fields.Keys()
}

func (self *CaseMetadata) Get(key string) (string, bool) {
	return self.fields.GetString(key)
}

func (self *CaseMetadata) Len() int {
	return self.fields.Len()
}

// FormatElapsed renders a duration as HH:MM:SS followed by the total
// number of seconds.
func FormatElapsed(elapsed time.Duration) string {
	total := int64(elapsed.Round(time.Second) / time.Second)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d (Total %d seconds)",
		total/3600, (total%3600)/60, total%60, total)
}

type keyValueRow struct {
	Label, Value string
}

type indexTab struct {
	Id, Title, Content string
}

type IndexComposer struct {
	config_obj *config.Config
	root       string
	shell      string
}

func NewIndexComposer(
	config_obj *config.Config, root string) (*IndexComposer, error) {
	shell, err := GetPageShell(config_obj)
	if err != nil {
		return nil, err
	}

	return &IndexComposer{
		config_obj: config_obj,
		root:       root,
		shell:      shell,
	}, nil
}

func (self *IndexComposer) caseTable(case_metadata *CaseMetadata) (string, error) {
	escape := self.config_obj.Report.ShouldEscapeCaseData()

	rows := []*keyValueRow{}
	for _, key := range case_metadata.Keys() {
		value, _ := case_metadata.Get(key)
		if escape {
			rows = append(rows, &keyValueRow{
				Label: escapeHTML(key), Value: escapeHTML(value)})
		} else {
			rows = append(rows, &keyValueRow{
				Label: SanitizeHTML(key), Value: SanitizeHTML(value)})
		}
	}

	buffer := &bytes.Buffer{}
	err := templates.ExecuteTemplate(buffer, "key_value_table", rows)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return buffer.String() + `
<div class="note note-primary mb-4">` + RenderMarkdown(self.config_obj.Report.Note) + `</div>`, nil
}

// MissingAuxLogError is recorded on the index page for every script
// log which could not be read.
type MissingAuxLogError struct {
	Path string
	Err  error
}

func (self *MissingAuxLogError) Error() string {
	return fmt.Sprintf("unable to read %v: %v", self.Path, self.Err)
}

func IsMissingAuxLog(err error) bool {
	_, ok := errors.Cause(err).(*MissingAuxLogError)
	return ok
}

// The auxiliary logs are included verbatim. A missing log is reported
// but only leaves its tab empty.
func (self *IndexComposer) readAuxLog(name string) (string, error) {
	path := filepath.Join(self.root, constants.SCRIPT_LOGS_CATEGORY, name)
	data, err := os.ReadFile(path)
	if err != nil {
		logger := logging.GetLogger(self.config_obj, &logging.ReportComponent)
		logger.Error("Index: unable to read %v: %v", path, err)
		return "", &MissingAuxLogError{Path: path, Err: err}
	}
	return string(data), nil
}

func (self *IndexComposer) Compose(
	case_metadata *CaseMetadata, nav *Navigation) (*ReportPage, error) {
	case_table, err := self.caseTable(case_metadata)
	if err != nil {
		return nil, err
	}

	result := &ReportPage{Filename: constants.INDEX_PAGE}

	tabs := []*indexTab{
		{Id: "case", Title: "Case Information", Content: case_table},
	}
	for _, aux := range []struct{ id, title, name string }{
		{"device", "Device details", constants.DEVICE_INFO_LOG},
		{"run", "Script run log", constants.SCREEN_OUTPUT_LOG},
		{"files", "Processed files list", constants.PROCESSED_FILES_LOG},
	} {
		content, err := self.readAuxLog(aux.name)
		if err != nil {
			result.Errors = append(result.Errors, err)
		}
		tabs = append(tabs, &indexTab{
			Id: aux.id, Title: aux.title, Content: content})
	}

	report_config := self.config_obj.Report
	data := map[string]interface{}{
		"Heading":      report_config.Heading,
		"Description":  RenderMarkdown(report_config.Description),
		"Tabs":         tabs,
		"Contributors": self.config_obj.Contributors,
	}

	body := &bytes.Buffer{}
	err = templates.ExecuteTemplate(body, "index_body", data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	nav_html, err := nav.ActiveVariant(
		self.config_obj, constants.INDEX_PAGE).Render()
	if err != nil {
		return nil, err
	}

	result.Html, err = ComposeSlots(self.shell, map[string]string{
		constants.TITLE_PLACEHOLDER: escapeHTML(report_config.Title),
		constants.BRAND_PLACEHOLDER: escapeHTML(report_config.Brand),
		constants.NAV_PLACEHOLDER:   nav_html,
		constants.BODY_PLACEHOLDER:  body.String(),
	})
	if err != nil {
		logger := logging.GetLogger(self.config_obj, &logging.ReportComponent)
		logger.Error("Error composing %v: %v", constants.INDEX_PAGE, err)
		templateErrors.Inc()
		result.Errors = append(result.Errors, err)
	}

	return result, nil
}

// Process composes index.html and writes it into the report root.
func (self *IndexComposer) Process(
	case_metadata *CaseMetadata, nav *Navigation) (*ReportPage, error) {
	page, err := self.Compose(case_metadata, nav)
	if err != nil {
		return nil, err
	}

	err = WritePage(self.root, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}
