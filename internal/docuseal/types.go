package docuseal

import "github.com/paperfold/formsync/pkg/catalogs"

// listResponse is the paginated shape of GET /templates. Template resources
// decode straight into catalogs.RemoteTemplate.
type listResponse struct {
	Data       []catalogs.RemoteTemplate `json:"data"`
	Pagination pagination                `json:"pagination"`
}

type pagination struct {
	Count int64 `json:"count"`
	Next  int64 `json:"next"`
	Prev  int64 `json:"prev"`
}

// submissionRequest is the body of POST /submissions.
type submissionRequest struct {
	TemplateID int64                 `json:"template_id"`
	SendEmail  bool                  `json:"send_email"`
	Submitters []submissionSubmitter `json:"submitters"`
}

type submissionSubmitter struct {
	Email  string            `json:"email"`
	Role   string            `json:"role,omitempty"`
	Values map[string]string `json:"values"`
}

// createdSubmitter is one element of the POST /submissions response.
type createdSubmitter struct {
	ID           int64  `json:"id"`
	SubmissionID int64  `json:"submission_id"`
	Status       string `json:"status"`
}

// Submission is the status of a submission as reported by the service.
type Submission struct {
	ID        int64      `json:"id"`
	Status    string     `json:"status"`
	Documents []Document `json:"documents"`
}

// Document is a completed document attached to a submission.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Completed reports whether every signer has finished.
func (s *Submission) Completed() bool {
	return s.Status == "completed"
}
