package templates

// Login renders the sign-in form.  The error region is always present so
// the login guard can bind to it; its text and inline style come from
// "error" and "error_style".  The form is marked novalidate so that empty
// fields reach the guard instead of the browser's own checks.
const Login = `
{{ define "content" }}
			<div class="user signin">
				<div class="ui middle very relaxed page grid">
					<div class="column">
						{{ with .form }}
						<form id="{{ .ID }}" class="ui form" action="{{ .Action }}" method="post" novalidate>
							<h3 class="ui top attached header">{{ .Name }}</h3>
							<div class="ui attached segment">
								{{ range $elem := .Elements }}
									<div class="{{ if $elem.Required }}required {{ end }}inline field">
										<label for="{{ $elem.ID }}">{{ $elem.Label }}</label>
										<input id="{{ $elem.ID }}" name="{{ $elem.Name }}" type="{{ $elem.Type }}" value="{{ $elem.Value }}"{{ if $elem.Autocomplete }} autocomplete="{{ $elem.Autocomplete }}"{{ end }}>
										{{ if $elem.Description }}<span class="help">{{ $elem.Description }}</span>{{ end }}
									</div>
								{{ end }}
								<div id="{{ .ErrorID }}" style="{{ $.error_style }}">{{ $.error }}</div>
								<div class="inline field">
									<label></label>
									<button class="ui green button" type="submit">{{ .Submit }}</button>
								</div>
							</div>
						</form>
						{{ end }}
					</div>
				</div>
			</div>
			<script src="/assets/wasm_exec.js"></script>
			<script>
				if (typeof Go !== "undefined" && "instantiateStreaming" in WebAssembly) {
					const go = new Go();
					WebAssembly.instantiateStreaming(fetch("/assets/loginguard.wasm"), go.importObject)
						.then(function (result) { go.run(result.instance); })
						.catch(function (err) { console.error(err); });
				}
			</script>
{{ end }}
`

// vim: ft=gohtmltmpl
