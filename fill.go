package formsync

import (
	"context"
)

// Fill generates a value for every field of the local template with the
// given ID. Fields still holding the unresolved sentinel are reported in a
// single error listing all of them.
func (c *client) Fill(ctx context.Context, templateID int64) (map[string]string, error) {
	t, err := c.Template(templateID)
	if err != nil {
		return nil, err
	}
	return c.filler.Fill(*t)
}

// Submit generates values for the template and creates a submission on the
// remote service.
func (c *client) Submit(ctx context.Context, templateID int64) (int64, error) {
	remote, err := c.service()
	if err != nil {
		return 0, err
	}
	values, err := c.Fill(ctx, templateID)
	if err != nil {
		return 0, err
	}
	return remote.CreateSubmission(ctx, templateID, values)
}
