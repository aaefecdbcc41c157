package templates

// Layout is the main site template. It includes the header and footer and
// embeds the content for every other page.
//
// Expects a map with optional keys "user" (signed in username), "flash"
// (one-shot message) and "flash_kind" (success or error).
const Layout = `
{{ define "layout" }}
<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<link rel="stylesheet" href="/assets/frontdesk.css">
		<title>Front Desk</title>
	</head>
	<body>
		<div class="full height">
			<div class="following bar light">
				<div class="ui container">
					<div class="ui top secondary menu">
						<a class="item brand" href="/">Front Desk</a>
						{{ if .user }}
							<a class="item" href="/hotels">Hotels</a>
							<a class="item" href="/log">Sign-in log</a>
							<span class="item">{{ .user }}</span>
							<a class="item" href="/logout">Logout</a>
						{{ else }}
							<a class="item" href="/login">Login</a>
						{{ end }}
					</div>
				</div>
			</div>
			{{ if .flash }}
				<div class="ui container flash {{ .flash_kind }}">{{ .flash }}</div>
			{{ end }}
			{{ template "content" . }}
		</div>
		<footer>
			<div class="ui container footertext">Hotel booking front desk</div>
		</footer>
	</body>
</html>
{{ end }}
`
