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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"www.velocidex.com/golang/artifact_report/config"
	"www.velocidex.com/golang/artifact_report/constants"
)

// TemplateError is returned when a shell does not contain some of the
// slots we were asked to fill. The composed document is still valid,
// it just lacks the content for those slots.
type TemplateError struct {
	Missing []string
}

func (self *TemplateError) Error() string {
	return fmt.Sprintf("page shell is missing slot(s): %s",
		strings.Join(self.Missing, ", "))
}

func IsTemplateError(err error) bool {
	_, ok := errors.Cause(err).(*TemplateError)
	return ok
}

type slotPosition struct {
	offset int
	token  string
	value  string
}

// ComposeSlots replaces the first occurrence of each slot token in
// shell with its value. All positions are located in the original
// shell so inserted content is never searched for further tokens.
func ComposeSlots(shell string, slots map[string]string) (string, error) {
	positions := make([]slotPosition, 0, len(slots))
	missing := []string{}

	for token, value := range slots {
		offset := strings.Index(shell, token)
		if offset < 0 {
			missing = append(missing, token)
			continue
		}
		positions = append(positions, slotPosition{
			offset: offset,
			token:  token,
			value:  value,
		})
	}

	sort.Slice(positions, func(i, j int) bool {
		return positions[i].offset < positions[j].offset
	})

	builder := strings.Builder{}
	last := 0
	for _, p := range positions {
		builder.WriteString(shell[last:p.offset])
		builder.WriteString(p.value)
		last = p.offset + len(p.token)
	}
	builder.WriteString(shell[last:])

	if len(missing) > 0 {
		sort.Strings(missing)
		return builder.String(), &TemplateError{Missing: missing}
	}
	return builder.String(), nil
}

// GetPageShell returns the shell all pages are wrapped in - either the
// one configured by the user or the built in one.
func GetPageShell(config_obj *config.Config) (string, error) {
	if config_obj != nil && config_obj.Report != nil &&
		config_obj.Report.PageShellFile != "" {
		data, err := os.ReadFile(config_obj.Report.PageShellFile)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return string(data), nil
	}
	return DefaultPageShell, nil
}

const DefaultPageShell = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">
    <title>` + constants.TITLE_PLACEHOLDER + `</title>

    <link rel="stylesheet" href="_elements/MDB-Free_4.13.0/css/bootstrap.min.css">
    <link rel="stylesheet" href="_elements/MDB-Free_4.13.0/css/mdb.min.css">
    <link rel="stylesheet" href="_elements/dashboard.css">
    <link rel="stylesheet" href="_elements/chats.css">
    <link rel="stylesheet" href="_elements/dark-mode.css">
    <script src="_elements/MDB-Free_4.13.0/js/jquery.min.js"></script>
    <script src="_elements/MDB-Free_4.13.0/js/popper.min.js"></script>
    <script src="_elements/MDB-Free_4.13.0/js/bootstrap.min.js"></script>
    <script src="_elements/MDB-Free_4.13.0/js/mdb.min.js"></script>
    <script src="_elements/feather.min.js"></script>
  </head>
  <body>
    <nav class="navbar navbar-dark fixed-top bg-dark flex-md-nowrap p-0 shadow">
      <a class="navbar-brand col-sm-3 col-md-2 mr-0" href="index.html">
        <img src="_elements/logo.jpg" width="30" height="30" alt="">
        ` + constants.BRAND_PLACEHOLDER + `
      </a>
      <div class="custom-control custom-switch mr-3">
        <input type="checkbox" class="custom-control-input" id="darkSwitch">
        <label class="custom-control-label text-white" for="darkSwitch">Dark Switch</label>
      </div>
    </nav>

    <div class="container-fluid">
      <div class="row">
        <nav id="sidebarMenu" class="col-md-2 d-none d-md-block bg-light sidebar">
          <div class="sidebar-sticky" id="sidebar_id">
            <ul class="nav flex-column">
` + constants.NAV_PLACEHOLDER + `
            </ul>
          </div>
        </nav>

        <main role="main" class="col-md-9 ml-sm-auto col-lg-10 px-4">
` + constants.BODY_PLACEHOLDER + `
        </main>
      </div>
    </div>
    <script src="_elements/dark-mode-switch.js"></script>
  </body>
</html>
`
