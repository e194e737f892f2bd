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
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// We use text/template rather than html/template: most of what we
// insert is already html (fragments, sanitized markdown). Values which
// are not are escaped explicitly with the html function.
var (
	templates = template.Must(
		template.New("").Funcs(sprig.TxtFuncMap()).Parse(templateText))
)

const templateText = `
{{- define "navigation" -}}
{{- range .Entries }}
{{- if .IsHeader }}
              <h6 class="sidebar-heading justify-content-between align-items-center px-3 mt-4 mb-1 text-muted">
                {{ .Label | html }}
              </h6>
{{- else }}
              <li class="nav-item">
                <a class="nav-link{{ if .IsActive }} active{{ end }}" href="{{ .Href | html }}">
                  <span data-feather="{{ .Icon | default "alert-triangle" }}"></span> {{ .Label | html }}
                </a>
              </li>
{{- end }}
{{- end }}
{{ template "navigation_script" }}
{{- end }}

{{- define "navigation_script" }}
              <script>
                if (window.feather) {
                  feather.replace();
                }
                var active = document.querySelector("#sidebar_id .nav-link.active");
                if (active) {
                  active.scrollIntoView({block: "center"});
                }
              </script>
{{- end }}

{{- define "key_value_table" }}
<div class="table-responsive">
  <table class="table table-bordered table-hover table-sm" width="70%">
    <tbody>
{{- range . }}
      <tr><td>{{ .Label }}</td><td>{{ .Value }}</td></tr>
{{- end }}
    </tbody>
  </table>
</div>
{{- end }}

{{- define "credits" }}
<div class="card bg-white mb-3" style="max-width: 500px; padding: 20px;">
  <h4 class="card-title">Contributors</h4>
  <ul class="list-group" style="max-width: 500px">
{{- range . }}
    <li class="list-group-item d-flex justify-content-between align-items-center">
      {{ .Name | html }}
      <span>
{{- if .Homepage }}
        <a href="{{ .Homepage | html }}" target="_blank"><span data-feather="globe"></span></a> &nbsp;
{{- else }}
        <span data-feather="minus" style="visibility: hidden"></span> &nbsp;
{{- end }}
{{- if .Twitter }}
        <a href="https://twitter.com/{{ .Twitter | trimPrefix "@" | html }}" target="_blank"><span data-feather="twitter"></span></a> &nbsp;
{{- else }}
        <span data-feather="minus" style="visibility: hidden"></span> &nbsp;
{{- end }}
{{- if .Repository }}
        <a href="{{ .Repository | html }}" target="_blank"><span data-feather="github"></span></a>
{{- else }}
        <span data-feather="minus" style="visibility: hidden"></span>
{{- end }}
      </span>
    </li>
{{- end }}
  </ul>
</div>
{{- end }}

{{- define "index_body" }}
<div class="pt-3 pb-2 mb-3 border-bottom">
  <h1 class="display-5">{{ .Heading | html }}</h1>
  <div class="lead">{{ .Description }}</div>
</div>
<br />
<div class="card bg-white" style="padding: 20px;">
  <h2 class="card-title">Case Information</h2>
  <ul class="nav nav-tabs" id="reportTabs" role="tablist">
{{- range $idx, $tab := .Tabs }}
    <li class="nav-item">
      <a class="nav-link{{ if eq $idx 0 }} active{{ end }}" id="{{ $tab.Id }}-tab" data-toggle="tab" href="#{{ $tab.Id }}" role="tab" aria-controls="{{ $tab.Id }}" aria-selected="{{ eq $idx 0 }}">{{ $tab.Title | html }}</a>
    </li>
{{- end }}
  </ul>
  <div class="tab-content" id="reportTabsContent">
{{- range $idx, $tab := .Tabs }}
    <div class="tab-pane fade{{ if eq $idx 0 }} show active{{ end }}" id="{{ $tab.Id }}" role="tabpanel" aria-labelledby="{{ $tab.Id }}-tab">
{{ $tab.Content }}
    </div>
{{- end }}
  </div>
</div>
<div class="alert alert-light mb-4 text-center">
  Thank you for using this report. Please report bugs or missing artifacts
  to the project so they can be fixed for everyone.
</div>
{{ template "credits" .Contributors }}
{{- end }}
`
