package domain

type Notification struct {
	ID         int64             `json:"id"`
	Identity   string            `json:"identity"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}
