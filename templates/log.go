package templates

// LogView template for displaying sign-in attempts in a list.
const LogView = `
{{define "content"}}
	<div class="ui container">
		<p id="log-desc">
			<span class="description">Sign-in log</span>
		</p>
		<table id="attempt-table" class="ui unstackable fixed single line table">
			<tbody>
				{{range $a := .attempts}}
					<tr>
						<td class="name two wide"><a href="/log/{{$a.ID}}">A{{$a.ID}}</a></td>
						<td class="name text bold four wide">{{$a.UserName}}</td>
						<td class="name two wide">{{$a.Outcome}}</td>
						<td class="name four wide">{{$a.SubmitTime.Format "15:04:05 Mon Jan 2 2006"}}</td>
						<td class="name four wide">{{$a.Message}}</td>
					</tr>
				{{end}}
			</tbody>
		</table>
	</div>
{{end}}
`

// AttemptView shows a single sign-in attempt.
const AttemptView = `
{{define "content"}}
	<div class="ui container">
		{{with .attempt}}
			<h3 class="ui header">Attempt A{{.ID}}</h3>
			<table class="ui definition table">
				<tr><td>User</td><td>{{.UserName}}</td></tr>
				<tr><td>Address</td><td>{{.RemoteAddr}}</td></tr>
				<tr><td>Outcome</td><td>{{.Outcome}}</td></tr>
				<tr><td>Submitted</td><td>{{$.submit_time}}</td></tr>
				<tr><td>Audited</td><td>{{if $.end_time}}{{$.end_time}}{{else}}In queue{{end}}</td></tr>
				{{if .Message}}<tr><td>Message</td><td>{{.Message}}</td></tr>{{end}}
			</table>
		{{end}}
	</div>
{{end}}
`
