package templates

// Hotels lists hotels.  With "manage" set, rent and manager columns are
// shown as well.
const Hotels = `
{{define "content"}}
	<div class="ui container">
		<h3 class="ui header">{{if .manage}}Manage hotels{{else}}Our hotels{{end}}</h3>
		<table id="hotel-table" class="ui table">
			<thead>
				<tr>
					<th>Name</th>
					<th>Type</th>
					<th>Description</th>
					{{if .manage}}<th>Rent</th><th>Manager</th>{{end}}
				</tr>
			</thead>
			<tbody>
				{{range $h := .hotels}}
					<tr>
						<td>{{$h.Name}}</td>
						<td>{{$h.Type}}</td>
						<td>{{$h.Description}}</td>
						{{if $.manage}}<td>{{printf "%.2f" $h.Rent}}</td><td>{{$h.ManagerID}}</td>{{end}}
					</tr>
				{{end}}
			</tbody>
		</table>
	</div>
{{end}}
`
