package render

import (
	"github.com/ozdata/bizname-search/internal/datastore"

	"github.com/olekukonko/tablewriter"
)

func (r *renderer) renderList(records []datastore.BusinessRecord) error {
	table := tablewriter.NewWriter(r.w)
	table.SetHeader([]string{"Name", "State", "Status", "Registered"})

	for _, record := range records {
		var registered string
		if record.HasRegistrationDate() {
			registered = record.Registered.Format("2006-01-02")
		}

		table.Append([]string{record.Name, record.State, record.Status, registered})
	}

	table.Render()
	return nil
}
