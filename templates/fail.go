package templates

// Fail renders an error page from "status_code", "status_text" and
// "message".
const Fail = `
{{ define "content" }}

<br><br>
<h1>{{ .status_code }}: {{ .status_text }}</h1>
<div class="failure" style="color: red; font-weight: bold">
{{ .message }}
</div>

{{ end }}
`
